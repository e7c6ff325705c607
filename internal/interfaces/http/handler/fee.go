package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	financeapp "github.com/unionadmin/backend/internal/application/finance"
	"github.com/unionadmin/backend/internal/interfaces/http/dto"
)

// FeeHandler handles membership fee endpoints
type FeeHandler struct {
	BaseHandler
	feeService *financeapp.FeeService
}

// NewFeeHandler creates a new FeeHandler
func NewFeeHandler(feeService *financeapp.FeeService) *FeeHandler {
	return &FeeHandler{feeService: feeService}
}

// Create godoc
// @ID           createFee
// @Summary      Open a membership fee record for a unionist and year
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        request body finance.CreateFeeRequest true "Fee details"
// @Success      201 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /fees [post]
func (h *FeeHandler) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	fee, err := h.feeService.Create(c.Request.Context(), req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, "Fee created", fee)
}

// Get godoc
// @ID           getFee
// @Summary      Get a fee record by ID
// @Tags         fees
// @Produce      json
// @Param        id path string true "Fee ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /fees/{id} [get]
func (h *FeeHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid fee ID")
		return
	}

	fee, err := h.feeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "OK", fee)
}

// GetByUnionistYear godoc
// @ID           getFeeByUnionistYear
// @Summary      Get the fee record of a unionist for a given year
// @Tags         fees
// @Produce      json
// @Param        unionistId path string true "Unionist ID"
// @Param        year path int true "Year"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /fees/unionist/{unionistId}/year/{year} [get]
func (h *FeeHandler) GetByUnionistYear(c *gin.Context) {
	unionistID, err := uuid.Parse(c.Param("unionistId"))
	if err != nil {
		h.BadRequest(c, "Invalid unionist ID")
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.BadRequest(c, "Invalid year")
		return
	}

	fee, err := h.feeService.GetByUnionistYear(c.Request.Context(), unionistID, year)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "OK", fee)
}

// List godoc
// @ID           listFees
// @Summary      List fee records with the filtered set's total fee
// @Tags         fees
// @Produce      json
// @Success      200 {object} dto.ListEnvelope
// @Security     BearerAuth
// @Router       /fees [get]
func (h *FeeHandler) List(c *gin.Context) {
	query := listQuery(c)
	result, err := h.feeService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	envelope := dto.NewListEnvelope(result.Items, query, result.Total).WithTotalFee(result.TotalFee)
	h.ListWithEnvelope(c, envelope)
}

// Update godoc
// @ID           updateFee
// @Summary      Update a fee record
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        id path string true "Fee ID"
// @Param        request body finance.UpdateFeeRequest true "Fields to update"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /fees/{id} [put]
func (h *FeeHandler) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid fee ID")
		return
	}

	var req financeapp.UpdateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	fee, err := h.feeService.Update(c.Request.Context(), id, req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Fee updated", fee)
}

// MarkPaid godoc
// @ID           markFeePaid
// @Summary      Mark a fee record as paid
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        id path string true "Fee ID"
// @Param        request body finance.MarkFeePaidRequest true "Payment date"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /fees/{id}/pay [post]
func (h *FeeHandler) MarkPaid(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid fee ID")
		return
	}

	var req financeapp.MarkFeePaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	fee, err := h.feeService.MarkPaid(c.Request.Context(), id, req, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Fee marked as paid", fee)
}

// Delete godoc
// @ID           deleteFee
// @Summary      Soft-delete a fee record
// @Tags         fees
// @Produce      json
// @Param        id path string true "Fee ID"
// @Success      200 {object} dto.Response
// @Security     BearerAuth
// @Router       /fees/{id} [delete]
func (h *FeeHandler) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid fee ID")
		return
	}

	if err := h.feeService.Delete(c.Request.Context(), id, actor); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, "Fee deleted", nil)
}
