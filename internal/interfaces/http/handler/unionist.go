package handler

import (
	"github.com/gin-gonic/gin"

	unionapp "github.com/unionadmin/backend/internal/application/union"
)

// UnionistHandler handles union member endpoints
type UnionistHandler struct {
	BaseHandler
	unionistService *unionapp.UnionistService
}

// NewUnionistHandler creates a new UnionistHandler
func NewUnionistHandler(unionistService *unionapp.UnionistService) *UnionistHandler {
	return &UnionistHandler{unionistService: unionistService}
}

// Create godoc
// @ID           createUnionist
// @Summary      Register a union member
// @Tags         unionists
// @Accept       json
// @Produce      json
// @Param        request body union.CreateUnionistRequest true "Member details"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /unionists [post]
func (h *UnionistHandler) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req unionapp.CreateUnionistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	unionist, err := h.unionistService.Create(c.Request.Context(), req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, "Unionist created", unionist)
}

// Get godoc
// @ID           getUnionist
// @Summary      Get a union member by ID
// @Tags         unionists
// @Produce      json
// @Param        id path string true "Unionist ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /unionists/{id} [get]
func (h *UnionistHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid unionist ID")
		return
	}

	unionist, err := h.unionistService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "OK", unionist)
}

// GetByCode godoc
// @ID           getUnionistByCode
// @Summary      Get a union member by its CD code
// @Tags         unionists
// @Produce      json
// @Param        code path string true "Unionist code"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /unionists/code/{code} [get]
func (h *UnionistHandler) GetByCode(c *gin.Context) {
	unionist, err := h.unionistService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "OK", unionist)
}

// List godoc
// @ID           listUnionists
// @Summary      List union members
// @Tags         unionists
// @Produce      json
// @Success      200 {object} dto.ListEnvelope
// @Security     BearerAuth
// @Router       /unionists [get]
func (h *UnionistHandler) List(c *gin.Context) {
	query := listQuery(c)
	unionists, total, err := h.unionistService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.BaseHandler.List(c, unionists, query, total)
}

// Update godoc
// @ID           updateUnionist
// @Summary      Update a union member
// @Tags         unionists
// @Accept       json
// @Produce      json
// @Param        id path string true "Unionist ID"
// @Param        request body union.UpdateUnionistRequest true "Fields to update"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /unionists/{id} [put]
func (h *UnionistHandler) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid unionist ID")
		return
	}

	var req unionapp.UpdateUnionistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	unionist, err := h.unionistService.Update(c.Request.Context(), id, req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Unionist updated", unionist)
}

// Delete godoc
// @ID           deleteUnionist
// @Summary      Soft-delete a union member
// @Tags         unionists
// @Produce      json
// @Param        id path string true "Unionist ID"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /unionists/{id} [delete]
func (h *UnionistHandler) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid unionist ID")
		return
	}

	if err := h.unionistService.Delete(c.Request.Context(), id, actor); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Unionist deleted", nil)
}
