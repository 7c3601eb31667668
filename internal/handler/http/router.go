package http

import (
	"log/slog"
	"os"

	"github.com/erp-suite/leave-backend-go/internal/handler/http/middleware"
	"github.com/erp-suite/leave-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	leaveHandler LeaveHandler,
	holidayHandler HolidayHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/leave", func(r chi.Router) {
				r.Post("/apply", leaveHandler.Apply)
				r.Put("/approve/{id}", leaveHandler.Approve)
				r.Put("/reject/{id}", leaveHandler.Reject)
				r.Delete("/{id}", leaveHandler.Delete)

				r.Get("/balance/{employeeSerial}/{year}", leaveHandler.GetBalance)
				r.Get("/history/{employeeSerial}", leaveHandler.History)
				r.Get("/pending", leaveHandler.Pending)
				r.Get("/team/{reportingOfficer}", leaveHandler.Team)
				r.Get("/calendar", leaveHandler.Calendar)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Post("/", holidayHandler.Create)
				r.Get("/{year}", holidayHandler.ListByYear)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{employeeSerial}", employeeHandler.Get)
			})
		})
	})

	return r
}
