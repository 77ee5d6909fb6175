// README: No-op provider used when the maps API key is not configured.
package distance

import (
	"context"
	"errors"
)

// UnavailableProvider fails every lookup, which drives the resolver down
// its estimated-fallback path. Wired in when no maps API key is set so the
// service still quotes, just on approximate distances.
type UnavailableProvider struct{}

func (UnavailableProvider) Lookup(context.Context, string, string, string) (Result, error) {
	return Result{}, errors.New("map provider not configured")
}
