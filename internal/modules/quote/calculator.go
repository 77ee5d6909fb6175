// README: Quote calculator; pure composition of fees, multipliers, and tax.
package quote

import (
	"math"
	"time"

	"swiftship/internal/modules/distance"
	"swiftship/internal/modules/pricing"
	"swiftship/internal/types"
)

// Lead-time urgency bands, applied when no explicit emergency flag is set.
// Days until the event are rounded up, so a same-day event lands in the
// first band.
const (
	urgencyNextDayMultiplier  = 1.8
	urgencyTwoDayMultiplier   = 1.4
	urgencyThisWeekMultiplier = 1.2
)

// Calculate prices a normalized request against a distance result and a
// config snapshot. It is a pure function: no clock reads, no config
// mutation, no errors. The composition order is fixed because it pins both
// the base of percentage-style fees and the final rounding.
func Calculate(req NormalizedRequest, dist distance.Result, cfg *pricing.Config, now time.Time, discounts float64) (Components, Pricing) {
	comps := Components{
		BaseFee:   cfg.BaseFee,
		Discounts: discounts,
	}

	comps.DistanceFee = distanceFee(dist.Miles, cfg.DistanceTiers)

	comps.ItemLines, comps.ItemFeesTotal = itemFees(req.Items, cfg.ItemFees)

	comps.ServiceLevelFee = cfg.ServiceLevels[req.ServiceLevel]

	comps.ServiceLines, comps.AdditionalServicesTotal = additionalServiceFees(
		req.AdditionalServices, req.DeclaredValue, cfg.AdditionalServices)

	comps.SubtotalBeforeMultiplier = comps.BaseFee + comps.DistanceFee +
		comps.ServiceLevelFee + comps.ItemFeesTotal + comps.AdditionalServicesTotal

	comps.EventTypeMultiplier = 1.0
	if m, ok := cfg.EventTypes[req.EventType]; ok {
		comps.EventTypeMultiplier = m
	}
	subtotal := comps.SubtotalBeforeMultiplier * comps.EventTypeMultiplier

	for _, tag := range req.SpecialRequirements {
		m, ok := cfg.ComplexityFactors[tag]
		if !ok {
			continue
		}
		subtotal *= m
		comps.ComplexityFactors = append(comps.ComplexityFactors, AppliedFactor{
			Factor:     tag,
			Multiplier: m,
		})
	}

	comps.UrgencyMultiplier = urgencyMultiplier(req, cfg, now)
	subtotal *= comps.UrgencyMultiplier
	comps.SubtotalAfterMultiplier = subtotal

	comps.Taxes = subtotal * cfg.TaxRate

	price := Pricing{
		Subtotal:  types.Round2(subtotal),
		Taxes:     types.Round2(comps.Taxes),
		Discounts: types.Round2(discounts),
		Total:     types.Round2(subtotal + comps.Taxes - discounts),
		Breakdown: Breakdown{
			BaseFee:             types.Round2(comps.BaseFee),
			DistanceFee:         types.Round2(comps.DistanceFee),
			ItemFees:            types.Round2(comps.ItemFeesTotal),
			ServiceLevelFee:     types.Round2(comps.ServiceLevelFee),
			AdditionalServices:  types.Round2(comps.AdditionalServicesTotal),
			EventTypeMultiplier: comps.EventTypeMultiplier,
			UrgencyMultiplier:   comps.UrgencyMultiplier,
		},
	}
	return comps, price
}

// distanceFee charges each mile at the rate of the band it falls in. A
// distance sitting exactly on a band boundary belongs to the lower band,
// which keeps the fee function continuous across boundaries.
func distanceFee(miles float64, t pricing.DistanceTiers) float64 {
	switch {
	case miles <= t.Tier1Max:
		return miles * t.Tier1Rate
	case miles <= t.Tier2Max:
		return t.Tier1Max*t.Tier1Rate + (miles-t.Tier1Max)*t.Tier2Rate
	default:
		return t.Tier1Max*t.Tier1Rate + (t.Tier2Max-t.Tier1Max)*t.Tier2Rate +
			(miles-t.Tier2Max)*t.Tier3Rate
	}
}

func itemFees(items []Item, fees pricing.ItemFees) ([]ItemFeeLine, float64) {
	if len(items) == 0 {
		return nil, 0
	}
	lines := make([]ItemFeeLine, 0, len(items))
	var total float64
	for _, item := range items {
		base := fees.BySize(item.Size)
		var special float64
		for _, tag := range item.Special {
			switch tag {
			case pricing.SpecialDelicate:
				special += fees.Delicate
			case pricing.SpecialHighValue:
				special += fees.HighValue
			case pricing.SpecialHazardous:
				special += fees.HazardousSurcharge * base
			case pricing.SpecialOversized:
				special += fees.ExtraLarge
			}
		}
		line := ItemFeeLine{
			Description: item.Description,
			Size:        item.Size,
			Quantity:    item.Quantity,
			BaseFee:     base,
			SpecialFees: special,
			LineTotal:   (base + special) * float64(item.Quantity),
		}
		lines = append(lines, line)
		total += line.LineTotal
	}
	return lines, total
}

func additionalServiceFees(tags []string, declaredValue float64, fees map[string]float64) ([]ServiceFeeLine, float64) {
	if len(tags) == 0 {
		return nil, 0
	}
	lines := make([]ServiceFeeLine, 0, len(tags))
	var total float64
	for _, tag := range tags {
		rate, ok := fees[tag]
		if !ok {
			// Unknown add-ons contribute nothing.
			continue
		}
		fee := rate
		if tag == pricing.ServiceInsurancePremium {
			// Stored as a fraction of declared value, not a flat fee.
			fee = rate * declaredValue
		}
		lines = append(lines, ServiceFeeLine{Service: tag, Fee: fee})
		total += fee
	}
	return lines, total
}

func urgencyMultiplier(req NormalizedRequest, cfg *pricing.Config, now time.Time) float64 {
	if req.Urgency == "emergency" {
		return cfg.EmergencyUrgencyMultiplier
	}
	if req.EventDate == nil {
		return 1.0
	}
	days := int(math.Ceil(req.EventDate.Sub(now).Hours() / 24))
	switch {
	case days <= 1:
		return urgencyNextDayMultiplier
	case days <= 2:
		return urgencyTwoDayMultiplier
	case days <= 7:
		return urgencyThisWeekMultiplier
	default:
		return 1.0
	}
}
