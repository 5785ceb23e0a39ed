package handler

import (
	"github.com/gin-gonic/gin"

	"employeedir/src/app/http/dto"
	"employeedir/src/app/http/response"
	"employeedir/src/app/middleware"
	"employeedir/src/core/usecase"
)

// DepartmentHandler serves the department reference list.
type DepartmentHandler struct {
	departmentService *usecase.DepartmentService
}

func NewDepartmentHandler(departmentService *usecase.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// List answers 204 when there are no departments.
// GET /api/department
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.departmentService.List(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	if len(departments) == 0 {
		response.NoContent(c)
		return
	}
	response.OK(c, dto.DepartmentsFromDomain(departments))
}
