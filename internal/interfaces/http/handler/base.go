package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/interfaces/http/dto"
	"github.com/unionadmin/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getActor builds the audit actor from the JWT claims set by the
// authentication middleware.
func getActor(c *gin.Context) (shared.ActorRef, error) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		return shared.ActorRef{}, errors.New("no authentication claims in context")
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		return shared.ActorRef{}, err
	}
	return shared.ActorRef{ID: userID, Email: claims.Email}, nil
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// Success sends a 200 response in the standard envelope
func (h *BaseHandler) Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.NewResponse(http.StatusOK, message, data))
}

// Created sends a 201 response in the standard envelope
func (h *BaseHandler) Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, dto.NewResponse(http.StatusCreated, message, data))
}

// List sends a 200 list envelope with pagination meta
func (h *BaseHandler) List(c *gin.Context, result any, query shared.ListQuery, total int64) {
	c.JSON(http.StatusOK, dto.NewListEnvelope(result, query, total))
}

// ListWithEnvelope sends a pre-built list envelope, used by the finance
// collections that attach set-wide aggregates to the meta block.
func (h *BaseHandler) ListWithEnvelope(c *gin.Context, envelope dto.ListEnvelope) {
	c.JSON(http.StatusOK, envelope)
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewResponse(http.StatusBadRequest, message, nil))
}

// BindError sends a 400 response for a request binding failure, with
// per-field messages when the validator produced them.
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	h.BadRequest(c, middleware.FormatValidationError(err))
}

// Unauthorized sends a 401 response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, dto.NewResponse(http.StatusUnauthorized, message, nil))
}

// HandleError maps an error to the envelope, resolving domain error codes
// to their HTTP status. Unknown error types become 500 without leaking the
// underlying message.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(status, dto.NewResponse(status, domainErr.Message, nil))
		return
	}

	c.JSON(http.StatusInternalServerError,
		dto.NewResponse(http.StatusInternalServerError, "An unexpected error occurred", nil))
}

// listQuery parses the shared list query parameters from the URL
func listQuery(c *gin.Context) shared.ListQuery {
	return shared.ParseListQuery(c.Request.URL.Query())
}
