package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/holiday"
	"github.com/ingenious-hr/hr-portal-go/internal/handler/http/response"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayHandler(holidayRepo holiday.HolidayRepository) HolidayHandler {
	return &HolidayHandlerImpl{holidayRepo: holidayRepo}
}

type holidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// List implements HolidayHandler. Optional year/month query parameters narrow
// the result to one period.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var (
		holidays []holiday.Holiday
		err      error
	)

	yearParam := r.URL.Query().Get("year")
	monthParam := r.URL.Query().Get("month")
	if yearParam != "" && monthParam != "" {
		year, yearErr := strconv.Atoi(yearParam)
		month, monthErr := strconv.Atoi(monthParam)
		if yearErr != nil || monthErr != nil || month < 1 || month > 12 {
			response.BadRequest(w, "year and month must be numeric, month between 1 and 12", nil)
			return
		}
		holidays, err = h.holidayRepo.GetByPeriod(r.Context(), year, time.Month(month))
	} else {
		holidays, err = h.holidayRepo.List(r.Context())
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]holidayResponse, 0, len(holidays))
	for _, d := range holidays {
		responses = append(responses, holidayResponse{
			ID:   d.ID,
			Date: d.Date.Format("2006-01-02"),
			Name: d.Name,
			Type: d.Type,
		})
	}
	response.Success(w, responses)
}
