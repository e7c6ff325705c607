package handler

import (
	"github.com/gin-gonic/gin"

	unionapp "github.com/unionadmin/backend/internal/application/union"
)

// DepartmentHandler handles department endpoints
type DepartmentHandler struct {
	BaseHandler
	departmentService *unionapp.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler
func NewDepartmentHandler(departmentService *unionapp.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// Create godoc
// @ID           createDepartment
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        request body union.CreateDepartmentRequest true "Department details"
// @Success      201 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req unionapp.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	department, err := h.departmentService.Create(c.Request.Context(), req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, "Department created", department)
}

// Get godoc
// @ID           getDepartment
// @Summary      Get a department by ID
// @Tags         departments
// @Produce      json
// @Param        id path string true "Department ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /departments/{id} [get]
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid department ID")
		return
	}

	department, err := h.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "OK", department)
}

// GetByCode godoc
// @ID           getDepartmentByCode
// @Summary      Get a department by its DV code
// @Tags         departments
// @Produce      json
// @Param        code path string true "Department code"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /departments/code/{code} [get]
func (h *DepartmentHandler) GetByCode(c *gin.Context) {
	department, err := h.departmentService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "OK", department)
}

// List godoc
// @ID           listDepartments
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Success      200 {object} dto.ListEnvelope
// @Security     BearerAuth
// @Router       /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	query := listQuery(c)
	departments, total, err := h.departmentService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.BaseHandler.List(c, departments, query, total)
}

// Update godoc
// @ID           updateDepartment
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        id path string true "Department ID"
// @Param        request body union.UpdateDepartmentRequest true "Fields to update"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /departments/{id} [put]
func (h *DepartmentHandler) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid department ID")
		return
	}

	var req unionapp.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	department, err := h.departmentService.Update(c.Request.Context(), id, req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Department updated", department)
}

// Delete godoc
// @ID           deleteDepartment
// @Summary      Soft-delete a department
// @Tags         departments
// @Produce      json
// @Param        id path string true "Department ID"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid department ID")
		return
	}

	if err := h.departmentService.Delete(c.Request.Context(), id, actor); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Department deleted", nil)
}
