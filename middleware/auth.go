package middleware

import (
	"net/http"

	"pepe-order/models"
	"pepe-order/repositories"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests from devices that have no stored auth
// token. It must run after DeviceMiddleware.
func AuthMiddleware(store repositories.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok, err := store.Get(c.Request.Context(), DeviceID(c), models.SessionKeyToken)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Success:   false,
				Message:   "Session storage unavailable, please try again",
				Retryable: true,
			})
			c.Abort()
			return
		}

		if !ok || token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: models.ErrLoginRequired.Message,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
