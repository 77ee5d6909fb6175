// README: Analytics reporting handlers over the in-memory quote summaries.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftship/internal/modules/analytics"
)

type AnalyticsHandler struct {
	ring *analytics.Ring
}

func NewAnalyticsHandler(ring *analytics.Ring) *AnalyticsHandler {
	return &AnalyticsHandler{ring: ring}
}

// Stats returns aggregates over the retained summary window.
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.ring.Stats())
}

// Recent returns the retained summaries, oldest first. The window is
// bounded by the ring's halving policy, so the payload stays small.
func (h *AnalyticsHandler) Recent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quotes": h.ring.Snapshot()})
}
