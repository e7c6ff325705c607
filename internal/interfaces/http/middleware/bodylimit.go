package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unionadmin/backend/internal/interfaces/http/dto"
)

// BodyLimit caps the request body size. Requests declaring a larger
// Content-Length are rejected up front; chunked bodies are capped by the
// reader wrapper.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewResponse(http.StatusRequestEntityTooLarge, "Request body exceeds the maximum allowed size", nil))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
