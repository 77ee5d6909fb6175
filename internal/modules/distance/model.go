// README: Distance resolution model and cache key.
package distance

import (
	"errors"
	"strings"
	"time"
)

// ErrQuotaExceeded reports that the map provider refused the lookup for
// quota reasons. Unlike other provider failures it is not absorbed into a
// fallback result; callers surface it as a retryable service error.
var ErrQuotaExceeded = errors.New("distance quota exceeded")

// Result is a resolved driving distance between two addresses.
// Estimated marks results produced by the fallback path when the provider
// was unreachable; consumers must expose the bit so users understand the
// pricing was computed on an approximate distance.
type Result struct {
	Miles        float64   `json:"miles"`
	Minutes      int       `json:"minutes"`
	DistanceText string    `json:"distanceText,omitempty"`
	DurationText string    `json:"durationText,omitempty"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Mode         string    `json:"mode"`
	Estimated    bool      `json:"estimated"`
	Note         string    `json:"note,omitempty"`
	ResolvedAt   time.Time `json:"resolvedAt"`
}

// CacheKey fingerprints a lookup. Addresses are case-insensitive.
func CacheKey(origin, destination, mode string) string {
	return strings.ToLower(origin) + "|" + strings.ToLower(destination) + "|" + mode
}
