package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/devprep/internal/apperr"
	"github.com/lshigami/devprep/internal/dto"
)

// RequireAuth verifies the bearer token before any protected handler runs and
// aborts with the mapped status on failure.
func RequireAuth(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := v.Verify(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			status, msg := http.StatusUnauthorized, MsgInvalidToken
			var appErr *apperr.Error
			if errors.As(err, &appErr) {
				status, msg = appErr.HTTPStatus(), appErr.Message
			}
			c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
			return
		}
		c.Set(principalKey, principal)
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}
