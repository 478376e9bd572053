package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/ingenious-hr/hr-portal-go/internal/handler/http/middleware"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AppName        string
	AppVersion     string
	AppEnv         string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	holidayHandler HolidayHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.AppVersion),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/me", employeeHandler.GetMe)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.UpdateProfile)
					r.Put("/{id}/compensation", employeeHandler.UpdateCompensation)
					r.Put("/{id}/access", employeeHandler.UpdateAccess)
					r.Get("/{id}/salary-slips", payrollHandler.GetEmployeeSlips)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/sessions", attendanceHandler.GetMySessions)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/regularize", attendanceHandler.Regularize)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/requests", leaveHandler.Submit)
				r.Get("/requests", leaveHandler.GetMyRequests)
				r.Get("/requests/{id}", leaveHandler.Get)
				r.Post("/requests/{id}/decision", leaveHandler.Act)
				r.Get("/approvals", leaveHandler.GetPendingApprovals)
				r.Get("/paid-summary", leaveHandler.GetPaidLeaveSummary)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/slips", payrollHandler.GetMySlips)
				r.Get("/slips/latest", payrollHandler.GetMyLatestSlip)
				r.Get("/slips/{id}", payrollHandler.GetSlip)
				r.Get("/slips/{id}/pdf", payrollHandler.GetSlipPDF)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/slips", payrollHandler.GenerateSlip)
				})
			})

			r.Get("/holidays", holidayHandler.List)
		})
	})
	return r
}
