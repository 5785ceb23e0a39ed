package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"employeedir/src/app/http/dto"
	"employeedir/src/app/http/response"
	"employeedir/src/app/middleware"
	"employeedir/src/core/domain"
	"employeedir/src/core/usecase"
)

// EmployeeHandler handles the employee CRUD endpoints.
type EmployeeHandler struct {
	employeeService *usecase.EmployeeService
}

func NewEmployeeHandler(employeeService *usecase.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// GET /api/employee
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.List(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.EmployeesFromDomain(employees))
}

// GET /api/employee/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	e, err := h.employeeService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.EmployeeFromDomain(*e))
}

// POST /api/employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	req, ok := bindEmployee(c)
	if !ok {
		return
	}
	in := req.ToDomain()
	in.ID = 0

	created, err := h.employeeService.Create(c.Request.Context(), in)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, fmt.Sprintf("/api/employee/%d", created.ID), dto.EmployeeFromDomain(*created))
}

// Update requires the body id to match the path id.
// PUT /api/employee/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	req, ok := bindEmployee(c)
	if !ok {
		return
	}
	if req.ID != id {
		response.BadRequest(c, "employee id in path does not match body", middleware.GetRequestID(c))
		return
	}

	updated, err := h.employeeService.Update(c.Request.Context(), req.ToDomain())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.EmployeeFromDomain(*updated))
}

// Delete answers 204 whether or not the employee existed.
// DELETE /api/employee/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseEmployeeID(c)
	if !ok {
		return
	}
	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}

func parseEmployeeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid employee id", middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}

func bindEmployee(c *gin.Context) (dto.EmployeeRequest, bool) {
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := middleware.GetRequestID(c)
		if errors.Is(err, dto.ErrInvalidHireDate) {
			response.ValidationFailed(c, domain.FieldErrors{"hireDate": {dto.ErrInvalidHireDate.Error()}}, requestID)
			return req, false
		}
		_ = c.Error(err)
		response.BadRequest(c, "invalid request body", requestID)
		return req, false
	}
	return req, true
}
