// README: Pricing configuration model and defaults for delivery quotes.
package pricing

import (
	"swiftship/internal/config"
)

// Item size tags accepted on quote items.
const (
	SizeSmall      = "small"
	SizeMedium     = "medium"
	SizeLarge      = "large"
	SizeExtraLarge = "extraLarge"
)

// Special-handling tags accepted on quote items.
const (
	SpecialDelicate  = "delicate"
	SpecialHighValue = "highValue"
	SpecialHazardous = "hazardous"
	SpecialOversized = "oversized"
)

// Service level tags.
const (
	ServiceStandard  = "standard"
	ServiceNextDay   = "nextDay"
	ServiceSameDay   = "sameDay"
	ServiceEmergency = "emergency"
)

// ServiceInsurancePremium is priced as a fraction of the declared value,
// not as a flat fee like every other additional service.
const ServiceInsurancePremium = "insurancePremium"

// DistanceTiers defines the three mileage bands. A distance equal to a
// band's max belongs to that band.
type DistanceTiers struct {
	Tier1Max  float64 `json:"tier1Max"`
	Tier1Rate float64 `json:"tier1Rate"`
	Tier2Max  float64 `json:"tier2Max"`
	Tier2Rate float64 `json:"tier2Rate"`
	Tier3Rate float64 `json:"tier3Rate"`
}

// ItemFees holds per-item base fees by size plus special-handling fees.
// Hazardous handling is a fraction of the size fee rather than a flat amount;
// oversized handling reuses the extraLarge fee.
type ItemFees struct {
	Small              float64 `json:"small"`
	Medium             float64 `json:"medium"`
	Large              float64 `json:"large"`
	ExtraLarge         float64 `json:"extraLarge"`
	Delicate           float64 `json:"delicate"`
	HighValue          float64 `json:"highValue"`
	HazardousSurcharge float64 `json:"hazardousSurcharge"`
}

// BySize returns the base fee for a size tag, falling back to the medium
// fee for unrecognized tags.
func (f ItemFees) BySize(size string) float64 {
	switch size {
	case SizeSmall:
		return f.Small
	case SizeMedium:
		return f.Medium
	case SizeLarge:
		return f.Large
	case SizeExtraLarge:
		return f.ExtraLarge
	default:
		return f.Medium
	}
}

// Config is the full pricing configuration. Instances handed out by the
// Store are immutable snapshots; never mutate one in place.
type Config struct {
	BaseFee                    float64            `json:"baseFee"`
	DistanceTiers              DistanceTiers      `json:"distanceTiers"`
	ItemFees                   ItemFees           `json:"itemFees"`
	ServiceLevels              map[string]float64 `json:"serviceLevels"`
	AdditionalServices         map[string]float64 `json:"additionalServices"`
	EventTypes                 map[string]float64 `json:"eventTypes"`
	ComplexityFactors          map[string]float64 `json:"complexityFactors"`
	TaxRate                    float64            `json:"taxRate"`
	EmergencyUrgencyMultiplier float64            `json:"emergencyUrgencyMultiplier"`
}

// Patch is a shallow-merge update: a nil field leaves the current value in
// place, a non-nil field replaces the whole top-level value. Callers sending
// a partial DistanceTiers or map must have filled it in upstream.
type Patch struct {
	BaseFee                    *float64           `json:"baseFee,omitempty"`
	DistanceTiers              *DistanceTiers     `json:"distanceTiers,omitempty"`
	ItemFees                   *ItemFees          `json:"itemFees,omitempty"`
	ServiceLevels              map[string]float64 `json:"serviceLevels,omitempty"`
	AdditionalServices         map[string]float64 `json:"additionalServices,omitempty"`
	EventTypes                 map[string]float64 `json:"eventTypes,omitempty"`
	ComplexityFactors          map[string]float64 `json:"complexityFactors,omitempty"`
	TaxRate                    *float64           `json:"taxRate,omitempty"`
	EmergencyUrgencyMultiplier *float64           `json:"emergencyUrgencyMultiplier,omitempty"`
}

// DefaultEventTypes maps event categories to their pricing multipliers.
func DefaultEventTypes() map[string]float64 {
	return map[string]float64{
		"corporateEvent": 1.1,
		"wedding":        1.3,
		"conference":     1.15,
		"exhibition":     1.25,
		"privateParty":   1.0,
		"concert":        1.35,
	}
}

// DefaultComplexityFactors maps special-requirement tags to multipliers.
// Every factor is at least 1 so adding a requirement never lowers a quote.
func DefaultComplexityFactors() map[string]float64 {
	return map[string]float64{
		"multiVenue":       1.25,
		"multiDay":         1.4,
		"international":    2.0,
		"hazardous":        1.5,
		"timeRestricted":   1.2,
		"specialEquipment": 1.3,
	}
}

// DefaultAdditionalServices maps add-on tags to flat fees. insurancePremium
// is the exception: it is stored as a fraction of declared value and the
// calculator branches on it.
func DefaultAdditionalServices() map[string]float64 {
	return map[string]float64{
		"packaging":             35,
		"assembly":              75,
		"storage":               50,
		"whiteGlove":            100,
		"liftGate":              25,
		ServiceInsurancePremium: 0.02,
	}
}

// NewConfig builds the full pricing configuration from the env-backed
// scalars, filling in the tables the env surface does not cover.
func NewConfig(pc config.PricingConfig) Config {
	return Config{
		BaseFee: pc.BaseDeliveryFee,
		DistanceTiers: DistanceTiers{
			Tier1Max:  pc.DistanceTier1Max,
			Tier1Rate: pc.DistanceTier1Rate,
			Tier2Max:  pc.DistanceTier2Max,
			Tier2Rate: pc.DistanceTier2Rate,
			Tier3Rate: pc.DistanceTier3Rate,
		},
		ItemFees: ItemFees{
			Small:              pc.SmallItemFee,
			Medium:             pc.MediumItemFee,
			Large:              pc.LargeItemFee,
			ExtraLarge:         pc.ExtraLargeItemFee,
			Delicate:           35,
			HighValue:          50,
			HazardousSurcharge: 0.5,
		},
		ServiceLevels: map[string]float64{
			ServiceStandard:  pc.StandardFee,
			ServiceNextDay:   pc.NextDayFee,
			ServiceSameDay:   pc.SameDayFee,
			ServiceEmergency: pc.EmergencyFee,
		},
		AdditionalServices:         DefaultAdditionalServices(),
		EventTypes:                 DefaultEventTypes(),
		ComplexityFactors:          DefaultComplexityFactors(),
		TaxRate:                    pc.TaxRate,
		EmergencyUrgencyMultiplier: pc.EmergencyMultiplier,
	}
}
