package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unionadmin/backend/internal/interfaces/http/dto"
)

// RequirePermission allows the request through only when the authenticated
// user's role carries the given "resource:action" claim. It must run after
// JWTAuth in the chain.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			abortForbidden(c)
			return
		}
		if !claims.HasPermission(permission) {
			abortForbidden(c)
			return
		}
		c.Next()
	}
}

// RequireAnyPermission allows the request through when the user holds at
// least one of the listed claims.
func RequireAnyPermission(permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil || !claims.HasAnyPermission(permissions...) {
			abortForbidden(c)
			return
		}
		c.Next()
	}
}

func abortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden,
		dto.NewResponse(http.StatusForbidden, "You do not have permission to perform this action", nil))
}
