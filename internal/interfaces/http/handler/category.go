package handler

import (
	"github.com/gin-gonic/gin"

	financeapp "github.com/unionadmin/backend/internal/application/finance"
	"github.com/unionadmin/backend/internal/interfaces/http/dto"
)

// CategoryHandler handles document category endpoints. One instance is
// mounted per category kind; the bound service only ever sees its own kind.
type CategoryHandler struct {
	BaseHandler
	categoryService *financeapp.CategoryService
	noun            string
}

// NewIncomeCategoryHandler creates the handler for income categories
func NewIncomeCategoryHandler(categoryService *financeapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, noun: "Income category"}
}

// NewExpenseCategoryHandler creates the handler for expense categories
func NewExpenseCategoryHandler(categoryService *financeapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, noun: "Expense category"}
}

// Create godoc
// @ID           createCategory
// @Summary      Create a document category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body finance.CreateCategoryRequest true "Category details"
// @Success      201 {object} dto.Response
// @Security     BearerAuth
// @Router       /income-categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, h.noun+" created", category)
}

// Get godoc
// @ID           getCategory
// @Summary      Get a category by ID
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /income-categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "OK", category)
}

// List godoc
// @ID           listCategories
// @Summary      List categories with the filtered set's total budget
// @Tags         categories
// @Produce      json
// @Success      200 {object} dto.ListEnvelope
// @Security     BearerAuth
// @Router       /income-categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	query := listQuery(c)
	result, err := h.categoryService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	envelope := dto.NewListEnvelope(result.Items, query, result.Total).WithTotalBudget(result.TotalBudget)
	h.ListWithEnvelope(c, envelope)
}

// Update godoc
// @ID           updateCategory
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID"
// @Param        request body finance.UpdateCategoryRequest true "Fields to update"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /income-categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var req financeapp.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, h.noun+" updated", category)
}

// Delete godoc
// @ID           deleteCategory
// @Summary      Soft-delete a category
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /income-categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id, actor); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, h.noun+" deleted", nil)
}
