// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"swiftship/internal/http/handlers"
	"swiftship/internal/http/middleware"
	"swiftship/internal/modules/analytics"
	"swiftship/internal/modules/pricing"
	"swiftship/internal/modules/quote"
)

func NewRouter(quoteService *quote.Service, pricingStore *pricing.Store, ring *analytics.Ring, log zerolog.Logger) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(log), middleware.Recovery(log))

	quoteHandler := handlers.NewQuoteHandler(quoteService, log)
	r.POST("/api/quotes", quoteHandler.Create)
	r.POST("/api/quotes/estimate", quoteHandler.Estimate)

	analyticsHandler := handlers.NewAnalyticsHandler(ring)
	r.GET("/api/analytics/stats", analyticsHandler.Stats)
	r.GET("/api/analytics/recent", analyticsHandler.Recent)

	configHandler := handlers.NewConfigHandler(pricingStore, log)
	r.GET("/api/admin/pricing-config", configHandler.Get)
	r.PUT("/api/admin/pricing-config", configHandler.Update)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
