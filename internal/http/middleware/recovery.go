// README: Panic recovery middleware with correlation ids.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Recovery turns a panic into a 500 carrying a correlation id that is also
// logged, so a report from a user can be matched to the stack in the logs.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				correlationID := uuid.NewString()
				log.Error().
					Str("correlation_id", correlationID).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("handler panicked")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":         "internal error",
					"correlationId": correlationID,
				})
			}
		}()
		c.Next()
	}
}
