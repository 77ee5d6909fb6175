// README: Quote handlers for the website form and the chatbot estimate.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"swiftship/internal/modules/quote"
)

type QuoteHandler struct {
	quotes *quote.Service
	log    zerolog.Logger
}

func NewQuoteHandler(quotes *quote.Service, log zerolog.Logger) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, log: log}
}

// Create prices a full quote and records it for analytics.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req quote.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	q, err := h.quotes.Quote(c.Request.Context(), req)
	if err != nil {
		writeQuoteError(c, h.log, err, req)
		return
	}
	c.JSON(http.StatusCreated, q)
}

// Estimate prices a quote for the chatbot without leaving an analytics
// trace.
func (h *QuoteHandler) Estimate(c *gin.Context) {
	var req quote.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	q, err := h.quotes.Estimate(c.Request.Context(), req)
	if err != nil {
		writeQuoteError(c, h.log, err, req)
		return
	}
	c.JSON(http.StatusOK, q)
}
