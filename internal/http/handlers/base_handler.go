// README: Base handler utilities (error mapping to HTTP statuses).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"swiftship/internal/modules/distance"
	"swiftship/internal/modules/quote"
)

// writeQuoteError maps service errors onto transport statuses: normalizer
// errors are the caller's fault, quota exhaustion is a retryable service
// error, anything else is logged with a correlation id the caller gets
// back.
func writeQuoteError(c *gin.Context, log zerolog.Logger, err error, req quote.Request) {
	var invalid *quote.InvalidError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid quote request",
			"reason": invalid.Reason,
		})
		return
	}
	if errors.Is(err, distance.ErrQuotaExceeded) {
		// Echo the request so the caller can retry it verbatim.
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "distance service unavailable",
			"reason":    "quota_exceeded",
			"retryable": true,
			"request":   req,
		})
		return
	}
	if ctxErr := c.Request.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		// Caller went away; nothing useful to write.
		c.Abort()
		return
	}

	correlationID := uuid.NewString()
	log.Error().
		Str("correlation_id", correlationID).
		Str("path", c.Request.URL.Path).
		Err(err).
		Msg("quote request failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":         "internal error",
		"correlationId": correlationID,
	})
}
