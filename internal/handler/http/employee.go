package http

import (
	"net/http"

	"github.com/erp-suite/leave-backend-go/internal/handler/http/response"
	employeeService "github.com/erp-suite/leave-backend-go/internal/service/employee"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService *employeeService.Service
}

func NewEmployeeHandler(service *employeeService.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: service}
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	serial := chi.URLParam(r, "employeeSerial")
	if serial == "" {
		response.BadRequest(w, "Employee serial is required", nil)
		return
	}

	emp, err := h.employeeService.GetBySerial(r.Context(), serial)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}
