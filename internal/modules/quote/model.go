// README: Quote request/response model; raw input, normalized form, priced output.
package quote

import (
	"encoding/json"
	"time"

	"swiftship/internal/modules/distance"
)

// ItemInput is one untrusted line item from the caller.
type ItemInput struct {
	Description string   `json:"description"`
	Size        string   `json:"size"`
	Quantity    *float64 `json:"quantity"`
	Weight      float64  `json:"weight"`
	Dimensions  string   `json:"dimensions"`
	Special     []string `json:"special"`
	Value       float64  `json:"value"`
}

// Request is the raw, untrusted quote request as posted by the site or the
// chatbot. Everything is optional except pickup and delivery; the
// normalizer materializes defaults before the calculator runs.
type Request struct {
	Pickup              string          `json:"pickup"`
	Delivery            string          `json:"delivery"`
	EventType           string          `json:"eventType"`
	ServiceLevel        string          `json:"serviceLevel"`
	EventDate           string          `json:"eventDate"`
	Items               []ItemInput     `json:"items"`
	AdditionalServices  []string        `json:"additionalServices"`
	SpecialRequirements []string        `json:"specialRequirements"`
	DeclaredValue       float64         `json:"declaredValue"`
	Urgency             string          `json:"urgency"`
	ContactInfo         json.RawMessage `json:"contactInfo,omitempty"`
	Notes               string          `json:"notes,omitempty"`
}

// Item is a line item with defaults resolved.
type Item struct {
	Description string   `json:"description"`
	Size        string   `json:"size"`
	Quantity    int      `json:"quantity"`
	Weight      float64  `json:"weight"`
	Dimensions  string   `json:"dimensions,omitempty"`
	Special     []string `json:"special,omitempty"`
	Value       float64  `json:"value"`
}

// NormalizedRequest is the canonical form the calculator consumes: pickup
// and delivery non-empty, enums resolved, numerics coerced non-negative,
// EventDate nil or in the future.
type NormalizedRequest struct {
	Pickup              string          `json:"pickup"`
	Delivery            string          `json:"delivery"`
	EventType           string          `json:"eventType"`
	ServiceLevel        string          `json:"serviceLevel"`
	EventDate           *time.Time      `json:"eventDate,omitempty"`
	Items               []Item          `json:"items"`
	AdditionalServices  []string        `json:"additionalServices"`
	SpecialRequirements []string        `json:"specialRequirements"`
	DeclaredValue       float64         `json:"declaredValue"`
	Urgency             string          `json:"urgency"`
	ContactInfo         json.RawMessage `json:"contactInfo,omitempty"`
	Notes               string          `json:"notes,omitempty"`
}

// ItemFeeLine is the audit record for one priced line item.
type ItemFeeLine struct {
	Description string  `json:"description,omitempty"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
	BaseFee     float64 `json:"baseFee"`
	SpecialFees float64 `json:"specialFees"`
	LineTotal   float64 `json:"lineTotal"`
}

// ServiceFeeLine is the audit record for one additional service.
type ServiceFeeLine struct {
	Service string  `json:"service"`
	Fee     float64 `json:"fee"`
}

// AppliedFactor records a complexity multiplier that took effect.
type AppliedFactor struct {
	Factor     string  `json:"factor"`
	Multiplier float64 `json:"multiplier"`
}

// Components preserves the unrounded intermediates of the calculation for
// auditability. Only the Pricing figures are rounded.
type Components struct {
	BaseFee                  float64          `json:"baseFee"`
	DistanceFee              float64          `json:"distanceFee"`
	ItemLines                []ItemFeeLine    `json:"itemLines,omitempty"`
	ItemFeesTotal            float64          `json:"itemFeesTotal"`
	ServiceLevelFee          float64          `json:"serviceLevelFee"`
	ServiceLines             []ServiceFeeLine `json:"serviceLines,omitempty"`
	AdditionalServicesTotal  float64          `json:"additionalServicesTotal"`
	SubtotalBeforeMultiplier float64          `json:"subtotalBeforeMultiplier"`
	EventTypeMultiplier      float64          `json:"eventTypeMultiplier"`
	ComplexityFactors        []AppliedFactor  `json:"complexityFactors,omitempty"`
	UrgencyMultiplier        float64          `json:"urgencyMultiplier"`
	SubtotalAfterMultiplier  float64          `json:"subtotalAfterMultiplier"`
	Taxes                    float64          `json:"taxes"`
	Discounts                float64          `json:"discounts"`
}

// Breakdown is the rounded, caller-facing view of the components.
type Breakdown struct {
	BaseFee             float64 `json:"baseFee"`
	DistanceFee         float64 `json:"distanceFee"`
	ItemFees            float64 `json:"itemFees"`
	ServiceLevelFee     float64 `json:"serviceLevelFee"`
	AdditionalServices  float64 `json:"additionalServices"`
	EventTypeMultiplier float64 `json:"eventTypeMultiplier"`
	UrgencyMultiplier   float64 `json:"urgencyMultiplier"`
}

// Pricing carries the rounded totals. Subtotal is the post-multiplier
// amount before tax.
type Pricing struct {
	Subtotal  float64   `json:"subtotal"`
	Taxes     float64   `json:"taxes"`
	Discounts float64   `json:"discounts"`
	Total     float64   `json:"total"`
	Breakdown Breakdown `json:"breakdown"`
}

// Quote is the final priced quote handed back to callers.
type Quote struct {
	QuoteID          string            `json:"quoteId"`
	Request          NormalizedRequest `json:"request"`
	DistanceInfo     distance.Result   `json:"distanceInfo"`
	Components       Components        `json:"components"`
	Pricing          Pricing           `json:"pricing"`
	ValidUntil       time.Time         `json:"validUntil"`
	CreatedAt        time.Time         `json:"createdAt"`
	ProcessingTimeMs int64             `json:"processingTimeMs"`
}
