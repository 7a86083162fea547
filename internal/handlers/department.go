package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/asset-management-api/internal/dto"
	apierrors "github.com/asset-management-api/internal/errors"
	"github.com/asset-management-api/internal/services"
	"github.com/gin-gonic/gin"
)

// DepartmentHandler coordinates department HTTP handlers.
type DepartmentHandler struct {
	deptService *services.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(deptService *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		deptService: deptService,
	}
}

// ListDepartments returns all departments.
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	departments, err := h.deptService.ListDepartments()
	if err != nil {
		apierrors.InternalError(c, "Failed to list departments")
		return
	}

	departmentDTOs := make([]dto.DepartmentDTO, len(departments))
	for i, department := range departments {
		departmentDTOs[i] = dto.ToDepartmentDTO(department)
	}

	c.JSON(http.StatusOK, gin.H{"departments": departmentDTOs})
}

// CreateDepartment creates a new department. Manager-gated.
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	type CreateDepartmentRequest struct {
		Name string `json:"name" binding:"required,max=100"`
	}

	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	department, err := h.deptService.CreateDepartment(req.Name)
	if err != nil {
		respondDepartmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDepartmentDTO(*department))
}

// DeleteDepartment removes a department; its users keep existing with a
// cleared department reference. Manager-gated.
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	departmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid department ID")
		return
	}

	if err := h.deptService.DeleteDepartment(departmentID); err != nil {
		respondDepartmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Department deleted successfully",
	})
}

func respondDepartmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDepartmentNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrDepartmentNameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidDepartmentName):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
