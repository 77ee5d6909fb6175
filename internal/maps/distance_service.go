// README: Google Distance Matrix wrapper feeding the distance resolver.
package maps

import (
	"context"
	"fmt"
	"math"
	"strings"

	"googlemaps.github.io/maps"

	"swiftship/internal/modules/distance"
)

const metersPerMile = 0.000621371

// DistanceService handles interactions with the Google Maps Distance
// Matrix API. It implements distance.Provider.
type DistanceService struct {
	client *maps.Client
}

// NewDistanceService creates a new DistanceService with the given API key.
func NewDistanceService(apiKey string) (*DistanceService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client}, nil
}

// Lookup resolves the driving distance and duration between two addresses.
// Quota refusals surface as distance.ErrQuotaExceeded so the caller can
// distinguish them from recoverable failures.
func (s *DistanceService) Lookup(ctx context.Context, origin, destination, mode string) (distance.Result, error) {
	req := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         travelMode(mode),
		Units:        maps.UnitsImperial,
	}

	resp, err := s.client.DistanceMatrix(ctx, req)
	if err != nil {
		if isQuotaError(err) {
			return distance.Result{}, fmt.Errorf("%w: %v", distance.ErrQuotaExceeded, err)
		}
		return distance.Result{}, fmt.Errorf("maps api error: %w", err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return distance.Result{}, fmt.Errorf("no route found between %q and %q", origin, destination)
	}
	elem := resp.Rows[0].Elements[0]
	if elem.Status != "OK" {
		return distance.Result{}, fmt.Errorf("route element status %s", elem.Status)
	}

	minutes := int(math.Round(elem.Duration.Seconds() / 60))
	r := distance.Result{
		Miles:        math.Round(float64(elem.Distance.Meters)*metersPerMile*100) / 100,
		Minutes:      minutes,
		DistanceText: elem.Distance.HumanReadable,
		DurationText: fmt.Sprintf("%d mins", minutes),
		Origin:       origin,
		Destination:  destination,
		Mode:         mode,
	}
	if len(resp.OriginAddresses) > 0 && resp.OriginAddresses[0] != "" {
		r.Origin = resp.OriginAddresses[0]
	}
	if len(resp.DestinationAddresses) > 0 && resp.DestinationAddresses[0] != "" {
		r.Destination = resp.DestinationAddresses[0]
	}
	return r, nil
}

func travelMode(mode string) maps.Mode {
	switch mode {
	case "walking":
		return maps.TravelModeWalking
	case "bicycling":
		return maps.TravelModeBicycling
	case "transit":
		return maps.TravelModeTransit
	default:
		return maps.TravelModeDriving
	}
}

// isQuotaError spots quota statuses in the client error. The maps client
// folds the API-level status into the error text.
func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "OVER_QUERY_LIMIT") || strings.Contains(msg, "OVER_DAILY_LIMIT")
}
