// README: Quote service; normalize, resolve distance, price, mint id, record.
package quote

import (
	"context"
	"crypto/rand"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"swiftship/internal/modules/analytics"
	"swiftship/internal/modules/distance"
	"swiftship/internal/modules/pricing"
)

// ValidityWindow is how long a minted quote stays honored.
const ValidityWindow = 7 * 24 * time.Hour

// Distances resolves pickup/delivery into a distance result.
type Distances interface {
	Resolve(ctx context.Context, origin, destination, mode string) (distance.Result, error)
}

// Service glues the normalizer, the distance resolver, and the calculator,
// then mints the quote identity and records the analytics summary.
type Service struct {
	pricing   *pricing.Store
	distances Distances
	ring      *analytics.Ring
	log       zerolog.Logger

	now func() time.Time // stubbed in tests
}

func NewService(pricingStore *pricing.Store, distances Distances, ring *analytics.Ring, log zerolog.Logger) *Service {
	return &Service{
		pricing:   pricingStore,
		distances: distances,
		ring:      ring,
		log:       log,
		now:       time.Now,
	}
}

// Quote prices a raw request end to end and records its summary for
// analytics. Normalizer errors pass through as *InvalidError; a quota-dead
// resolver propagates distance.ErrQuotaExceeded and no quote is minted.
func (s *Service) Quote(ctx context.Context, req Request) (*Quote, error) {
	return s.build(ctx, req, true)
}

// Estimate prices a raw request the same way but leaves no analytics
// trace. It backs the chatbot's ballpark figures.
func (s *Service) Estimate(ctx context.Context, req Request) (*Quote, error) {
	return s.build(ctx, req, false)
}

func (s *Service) build(ctx context.Context, req Request, record bool) (*Quote, error) {
	start := s.now()

	norm, err := Normalize(req, start)
	if err != nil {
		return nil, err
	}

	dist, err := s.distances.Resolve(ctx, norm.Pickup, norm.Delivery, "driving")
	if err != nil {
		return nil, err
	}

	cfg := s.pricing.Get()
	comps, price := Calculate(norm, dist, cfg, start, 0)

	createdAt := start
	q := &Quote{
		QuoteID:      NewQuoteID(createdAt),
		Request:      norm,
		DistanceInfo: dist,
		Components:   comps,
		Pricing:      price,
		CreatedAt:    createdAt,
		ValidUntil:   createdAt.Add(ValidityWindow),
	}

	if record {
		s.ring.Append(analytics.Summary{
			QuoteID:       q.QuoteID,
			TotalPrice:    price.Total,
			DistanceMiles: dist.Miles,
			EventType:     norm.EventType,
			ServiceLevel:  norm.ServiceLevel,
			Timestamp:     createdAt,
		})
	}

	q.ProcessingTimeMs = s.now().Sub(start).Milliseconds()

	s.log.Info().
		Str("quote_id", q.QuoteID).
		Float64("total", price.Total).
		Float64("miles", dist.Miles).
		Bool("estimated_distance", dist.Estimated).
		Int64("duration_ms", q.ProcessingTimeMs).
		Msg("quote priced")

	return q, nil
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewQuoteID mints a consumer-visible quote identifier:
// QC-<base36 epoch millis>-<5 random base36 chars>, upper-cased.
func NewQuoteID(t time.Time) string {
	var b [5]byte
	_, _ = rand.Read(b[:])
	for i := range b {
		b[i] = base36[int(b[i])%len(base36)]
	}
	id := "qc-" + strconv.FormatInt(t.UnixMilli(), 36) + "-" + string(b[:])
	return strings.ToUpper(id)
}
