package handler

import (
	"github.com/gin-gonic/gin"

	financeapp "github.com/unionadmin/backend/internal/application/finance"
	"github.com/unionadmin/backend/internal/interfaces/http/dto"
)

// ReceiptHandler handles income receipt endpoints
type ReceiptHandler struct {
	BaseHandler
	receiptService *financeapp.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(receiptService *financeapp.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Create godoc
// @ID           createReceipt
// @Summary      Record an income receipt
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        request body finance.CreateReceiptRequest true "Receipt details"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Security     BearerAuth
// @Router       /receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	receipt, err := h.receiptService.Create(c.Request.Context(), req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, "Receipt created", receipt)
}

// Get godoc
// @ID           getReceipt
// @Summary      Get a receipt by ID
// @Tags         receipts
// @Produce      json
// @Param        id path string true "Receipt ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /receipts/{id} [get]
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "OK", receipt)
}

// List godoc
// @ID           listReceipts
// @Summary      List receipts with the filtered set's total amount
// @Tags         receipts
// @Produce      json
// @Success      200 {object} dto.ListEnvelope
// @Security     BearerAuth
// @Router       /receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	query := listQuery(c)
	result, err := h.receiptService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	envelope := dto.NewListEnvelope(result.Items, query, result.Total).WithTotalAmount(result.TotalAmount)
	h.ListWithEnvelope(c, envelope)
}

// Update godoc
// @ID           updateReceipt
// @Summary      Update a receipt
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        id path string true "Receipt ID"
// @Param        request body finance.UpdateReceiptRequest true "Fields to update"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /receipts/{id} [put]
func (h *ReceiptHandler) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	var req financeapp.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	receipt, err := h.receiptService.Update(c.Request.Context(), id, req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Receipt updated", receipt)
}

// Delete godoc
// @ID           deleteReceipt
// @Summary      Soft-delete a receipt
// @Tags         receipts
// @Produce      json
// @Param        id path string true "Receipt ID"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /receipts/{id} [delete]
func (h *ReceiptHandler) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.Delete(c.Request.Context(), id, actor); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Receipt deleted", nil)
}
