// README: Quote normalizer; validates raw requests and materializes defaults.
package quote

import (
	"strings"
	"time"

	"swiftship/internal/modules/pricing"
)

// InvalidError is a caller-facing input error. Reason is part of the
// contract: callers branch on it, so the set of reasons below is fixed.
type InvalidError struct {
	Reason string
}

func (e *InvalidError) Error() string {
	return "invalid quote request: " + e.Reason
}

var (
	ErrMissingLocations = &InvalidError{Reason: "missing_locations"}
	ErrPastEventDate    = &InvalidError{Reason: "past_event_date"}
	ErrBadItemQuantity  = &InvalidError{Reason: "bad_item_quantity"}
	ErrBadDeclaredValue = &InvalidError{Reason: "bad_declared_value"}
)

const (
	defaultEventType = "corporateEvent"
	minLocationLen   = 5
	maxLocationLen   = 200
)

var knownServiceLevels = map[string]bool{
	pricing.ServiceStandard:  true,
	pricing.ServiceNextDay:   true,
	pricing.ServiceSameDay:   true,
	pricing.ServiceEmergency: true,
}

var knownEventTypes = map[string]bool{
	"corporateEvent": true,
	"wedding":        true,
	"conference":     true,
	"exhibition":     true,
	"privateParty":   true,
	"concert":        true,
}

// eventDateLayouts are tried in order when parsing the event date.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Normalize validates a raw request against now and returns its canonical
// form, or an *InvalidError naming the first violated rule. It is the sole
// producer of quote-input errors; downstream the calculator assumes a
// well-formed request.
func Normalize(req Request, now time.Time) (NormalizedRequest, error) {
	pickup := strings.TrimSpace(req.Pickup)
	delivery := strings.TrimSpace(req.Delivery)
	if !validLocation(pickup) || !validLocation(delivery) {
		return NormalizedRequest{}, ErrMissingLocations
	}

	norm := NormalizedRequest{
		Pickup:       pickup,
		Delivery:     delivery,
		EventType:    defaultEventType,
		ServiceLevel: pricing.ServiceStandard,
		Urgency:      "standard",
		ContactInfo:  req.ContactInfo,
		Notes:        req.Notes,
	}
	if knownEventTypes[req.EventType] {
		norm.EventType = req.EventType
	}
	if knownServiceLevels[req.ServiceLevel] {
		norm.ServiceLevel = req.ServiceLevel
	}
	if req.Urgency == "emergency" {
		norm.Urgency = "emergency"
	}

	if req.EventDate != "" {
		if t, ok := parseEventDate(req.EventDate); ok {
			if !t.After(now) {
				return NormalizedRequest{}, ErrPastEventDate
			}
			norm.EventDate = &t
		}
	}

	norm.Items = make([]Item, 0, len(req.Items))
	for _, in := range req.Items {
		item := Item{
			Description: strings.TrimSpace(in.Description),
			Size:        pricing.SizeMedium,
			Quantity:    1,
			Weight:      nonNegative(in.Weight),
			Dimensions:  strings.TrimSpace(in.Dimensions),
			Value:       nonNegative(in.Value),
		}
		if s := strings.TrimSpace(in.Size); s != "" {
			item.Size = s
		}
		if in.Quantity != nil {
			q := int(*in.Quantity)
			if q <= 0 {
				return NormalizedRequest{}, ErrBadItemQuantity
			}
			item.Quantity = q
		}
		// Unknown special tags are preserved; the calculator just never
		// prices them.
		item.Special = dedupe(in.Special)
		norm.Items = append(norm.Items, item)
	}

	norm.AdditionalServices = dedupe(req.AdditionalServices)
	norm.SpecialRequirements = dedupe(req.SpecialRequirements)

	if req.DeclaredValue < 0 {
		return NormalizedRequest{}, ErrBadDeclaredValue
	}
	norm.DeclaredValue = req.DeclaredValue

	return norm, nil
}

func validLocation(s string) bool {
	return len(s) >= minLocationLen && len(s) <= maxLocationLen
}

func parseEventDate(s string) (time.Time, bool) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// dedupe coerces a tag list to a set, keeping first-seen order.
func dedupe(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
