// README: Entry point; loads config, wires services, starts HTTP server and cache sweeper.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"swiftship/internal/config"
	httptransport "swiftship/internal/http"
	"swiftship/internal/infra"
	gmaps "swiftship/internal/maps"
	"swiftship/internal/modules/analytics"
	"swiftship/internal/modules/distance"
	"swiftship/internal/modules/pricing"
	"swiftship/internal/modules/quote"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := newLogger(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pricingStore, err := pricing.NewStore(pricing.NewConfig(cfg.Pricing))
	if err != nil {
		log.Fatal().Err(err).Msg("pricing config invalid")
	}

	var provider distance.Provider
	if cfg.Maps.APIKey != "" {
		provider, err = gmaps.NewDistanceService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("maps client init")
		}
	} else {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY not set, all distances will be estimates")
		provider = distance.UnavailableProvider{}
	}

	var cacheStore distance.Store
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		cacheStore = distance.NewRedisStore(redisClient, distance.DefaultTTL, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("distance cache backed by redis")
	} else {
		memStore := distance.NewMemoryStore(distance.DefaultTTL)
		go memStore.Run(ctx, distance.SweepInterval)
		cacheStore = memStore
	}

	distanceSvc := distance.NewService(provider, cacheStore, log)
	ring := analytics.NewRing()
	quoteSvc := quote.NewService(pricingStore, distanceSvc, ring, log)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(quoteSvc, pricingStore, ring, log),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTP.Addr).Msg("swiftship api listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
