// README: Distance resolver; cached provider lookups with estimated fallback.
package distance

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultTTL is how long a resolved distance stays valid in the cache.
	DefaultTTL = 24 * time.Hour

	// SweepInterval is how often the in-memory cache drops expired entries.
	SweepInterval = time.Hour

	providerTimeout = 10 * time.Second

	fallbackMiles   = 25
	fallbackMinutes = 45
	fallbackNote    = "Estimated distance; live route lookup was unavailable"
)

// Provider performs the remote lookup. Implementations return
// ErrQuotaExceeded (possibly wrapped) for quota failures and any other
// error for recoverable ones.
type Provider interface {
	Lookup(ctx context.Context, origin, destination, mode string) (Result, error)
}

// Service resolves distances through the cache, falling back to a flagged
// estimate when the provider fails for non-quota reasons. Concurrent calls
// for the same key may each hit the provider; they converge on whichever
// result lands in the cache last.
type Service struct {
	provider Provider
	store    Store
	log      zerolog.Logger

	now func() time.Time // stubbed in tests
}

func NewService(provider Provider, store Store, log zerolog.Logger) *Service {
	return &Service{
		provider: provider,
		store:    store,
		log:      log,
		now:      time.Now,
	}
}

// Resolve returns the distance between origin and destination for the given
// travel mode. Mode defaults to driving. Cached results are returned
// verbatim, estimated ones included.
func (s *Service) Resolve(ctx context.Context, origin, destination, mode string) (Result, error) {
	if mode == "" {
		mode = "driving"
	}
	key := CacheKey(origin, destination, mode)

	if r, ok := s.store.Get(ctx, key); ok {
		return r, nil
	}

	lctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()
	r, err := s.provider.Lookup(lctx, origin, destination, mode)
	if err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			s.log.Error().Err(err).Str("origin", origin).Str("destination", destination).
				Msg("distance lookup quota exhausted")
			return Result{}, err
		}
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		// Recoverable failure: hand back an estimate but leave the cache
		// alone so the next call retries upstream.
		s.log.Warn().Err(err).Str("origin", origin).Str("destination", destination).
			Msg("distance lookup failed, using estimate")
		return Result{
			Miles:       fallbackMiles,
			Minutes:     fallbackMinutes,
			Origin:      origin,
			Destination: destination,
			Mode:        mode,
			Estimated:   true,
			Note:        fallbackNote,
			ResolvedAt:  s.now(),
		}, nil
	}

	r.Mode = mode
	r.Estimated = false
	r.ResolvedAt = s.now()
	if ctx.Err() != nil {
		// Caller went away while we were looking up; abort without
		// touching the cache.
		return Result{}, ctx.Err()
	}
	s.store.Set(ctx, key, r)
	return r, nil
}
