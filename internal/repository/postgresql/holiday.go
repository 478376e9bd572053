package postgresql

import (
	"context"
	"time"

	"github.com/ingenious-hr/hr-portal-go/internal/domain/holiday"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func (r *holidayRepositoryImpl) GetByPeriod(ctx context.Context, year int, month time.Month) ([]holiday.Holiday, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	query := `
		SELECT id, date, name, type
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date ASC
	`

	return r.queryMany(ctx, query, first, last)
}

func (r *holidayRepositoryImpl) List(ctx context.Context) ([]holiday.Holiday, error) {
	query := `
		SELECT id, date, name, type
		FROM holidays
		ORDER BY date ASC
	`

	return r.queryMany(ctx, query)
}

func (r *holidayRepositoryImpl) queryMany(ctx context.Context, query string, args ...interface{}) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Type); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
