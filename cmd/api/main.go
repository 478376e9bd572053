package main

import (
	"fmt"
	"net/http"

	"github.com/ingenious-hr/hr-portal-go/internal/config"
	appHTTP "github.com/ingenious-hr/hr-portal-go/internal/handler/http"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/database"
	"github.com/ingenious-hr/hr-portal-go/internal/pkg/jwt"
	"github.com/ingenious-hr/hr-portal-go/internal/repository/postgresql"
	attendanceService "github.com/ingenious-hr/hr-portal-go/internal/service/attendance"
	authService "github.com/ingenious-hr/hr-portal-go/internal/service/auth"
	employeeService "github.com/ingenious-hr/hr-portal-go/internal/service/employee"
	leaveService "github.com/ingenious-hr/hr-portal-go/internal/service/leave"
	payrollService "github.com/ingenious-hr/hr-portal-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	salarySlipRepo := postgresql.NewSalarySlipRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewService(employeeRepo)
	attendanceSvc := attendanceService.NewService(db, sessionRepo, leaveRequestRepo)
	leaveSvc := leaveService.NewService(db, leaveRequestRepo, employeeRepo)
	payrollSvc := payrollService.NewService(
		db,
		salarySlipRepo,
		employeeRepo,
		sessionRepo,
		leaveRequestRepo,
		holidayRepo,
		cfg.App.CompanyName,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidayRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppVersion:     cfg.App.Version,
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		holidayHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
