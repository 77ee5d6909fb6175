// README: Admin handlers for the live pricing configuration.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"swiftship/internal/modules/pricing"
)

type ConfigHandler struct {
	store *pricing.Store
	log   zerolog.Logger
}

func NewConfigHandler(store *pricing.Store, log zerolog.Logger) *ConfigHandler {
	return &ConfigHandler{store: store, log: log}
}

// Get returns the active pricing configuration snapshot.
func (h *ConfigHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Get())
}

// Update applies a shallow-merge patch. A rejected patch leaves the old
// configuration active.
func (h *ConfigHandler) Update(c *gin.Context) {
	var p pricing.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if err := h.store.Update(p); err != nil {
		if errors.Is(err, pricing.ErrConfigInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("config update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	h.log.Info().Msg("pricing config updated")
	c.JSON(http.StatusOK, h.store.Get())
}
