package main

import (
	"fmt"
	"net/http"

	"github.com/erp-suite/leave-backend-go/internal/config"
	appHTTP "github.com/erp-suite/leave-backend-go/internal/handler/http"
	"github.com/erp-suite/leave-backend-go/internal/pkg/database"
	"github.com/erp-suite/leave-backend-go/internal/pkg/jwt"
	"github.com/erp-suite/leave-backend-go/internal/repository/postgresql"
	employeeService "github.com/erp-suite/leave-backend-go/internal/service/employee"
	holidayService "github.com/erp-suite/leave-backend-go/internal/service/holiday"
	leaveService "github.com/erp-suite/leave-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	leaveSvc := leaveService.NewService(db, leaveRequestRepo, leaveBalanceRepo, employeeRepo, holidayRepo)
	holidaySvc := holidayService.NewService(holidayRepo)
	employeeSvc := employeeService.NewService(employeeRepo)

	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		JWTService,
		leaveHandler,
		holidayHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
