// README: Config loader with env defaults for HTTP, Redis, maps, and pricing settings.
package config

import (
	"os"
	"strconv"
)

// PricingConfig carries the env-tunable pricing scalars. Tables without an
// env knob (event types, complexity factors, add-on fees) live in the
// pricing package defaults.
type PricingConfig struct {
	BaseDeliveryFee     float64
	DistanceTier1Max    float64
	DistanceTier2Max    float64
	DistanceTier1Rate   float64
	DistanceTier2Rate   float64
	DistanceTier3Rate   float64
	SmallItemFee        float64
	MediumItemFee       float64
	LargeItemFee        float64
	ExtraLargeItemFee   float64
	StandardFee         float64
	NextDayFee          float64
	SameDayFee          float64
	EmergencyFee        float64
	TaxRate             float64
	EmergencyMultiplier float64
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr string // empty means in-memory distance cache
	}
	Maps struct {
		APIKey string
	}
	Log struct {
		Level string
	}
	Pricing PricingConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("SWIFTSHIP_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("SWIFTSHIP_REDIS_ADDR", "")
	cfg.Maps.APIKey = envOrDefault("GOOGLE_MAPS_API_KEY", "")
	cfg.Log.Level = envOrDefault("SWIFTSHIP_LOG_LEVEL", "info")

	cfg.Pricing.BaseDeliveryFee = envOrDefaultFloat("BASE_DELIVERY_FEE", 75.00)
	cfg.Pricing.DistanceTier1Max = envOrDefaultFloat("DISTANCE_TIER_1_MAX", 20)
	cfg.Pricing.DistanceTier2Max = envOrDefaultFloat("DISTANCE_TIER_2_MAX", 50)
	cfg.Pricing.DistanceTier1Rate = envOrDefaultFloat("DISTANCE_TIER_1_RATE", 0.00)
	cfg.Pricing.DistanceTier2Rate = envOrDefaultFloat("DISTANCE_TIER_2_RATE", 1.50)
	cfg.Pricing.DistanceTier3Rate = envOrDefaultFloat("DISTANCE_TIER_3_RATE", 2.00)
	cfg.Pricing.SmallItemFee = envOrDefaultFloat("SMALL_ITEM_FEE", 10)
	cfg.Pricing.MediumItemFee = envOrDefaultFloat("MEDIUM_ITEM_FEE", 25)
	cfg.Pricing.LargeItemFee = envOrDefaultFloat("LARGE_ITEM_FEE", 50)
	cfg.Pricing.ExtraLargeItemFee = envOrDefaultFloat("EXTRA_LARGE_ITEM_FEE", 100)
	cfg.Pricing.StandardFee = envOrDefaultFloat("STANDARD_FEE", 0)
	cfg.Pricing.NextDayFee = envOrDefaultFloat("NEXT_DAY_FEE", 25)
	cfg.Pricing.SameDayFee = envOrDefaultFloat("SAME_DAY_FEE", 50)
	cfg.Pricing.EmergencyFee = envOrDefaultFloat("EMERGENCY_FEE", 150)
	cfg.Pricing.TaxRate = envOrDefaultFloat("TAX_RATE", 0.085)
	cfg.Pricing.EmergencyMultiplier = envOrDefaultFloat("EMERGENCY_MULTIPLIER", 2.0)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
