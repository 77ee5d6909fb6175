package distance

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_LazyEviction(t *testing.T) {
	clk := newClock()
	store := NewMemoryStore(DefaultTTL)
	store.now = clk.now
	ctx := context.Background()

	store.Set(ctx, "a|b|driving", Result{Miles: 10})

	r, ok := store.Get(ctx, "a|b|driving")
	require.True(t, ok)
	assert.Equal(t, 10.0, r.Miles)

	clk.advance(DefaultTTL)
	_, ok = store.Get(ctx, "a|b|driving")
	assert.False(t, ok, "entry at exactly TTL age is expired")
	assert.Equal(t, 0, store.Len(), "expired entry dropped on access")
}

func TestMemoryStore_Sweep(t *testing.T) {
	clk := newClock()
	store := NewMemoryStore(DefaultTTL)
	store.now = clk.now
	ctx := context.Background()

	store.Set(ctx, "old|b|driving", Result{Miles: 1})
	clk.advance(20 * time.Hour)
	store.Set(ctx, "new|b|driving", Result{Miles: 2})
	clk.advance(5 * time.Hour) // old is 25h, new is 5h

	removed := store.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())

	_, ok := store.Get(ctx, "new|b|driving")
	assert.True(t, ok)
}

func TestMemoryStore_SetRefreshesEntry(t *testing.T) {
	clk := newClock()
	store := NewMemoryStore(DefaultTTL)
	store.now = clk.now
	ctx := context.Background()

	store.Set(ctx, "a|b|driving", Result{Miles: 10})
	clk.advance(23 * time.Hour)
	store.Set(ctx, "a|b|driving", Result{Miles: 11})
	clk.advance(2 * time.Hour)

	r, ok := store.Get(ctx, "a|b|driving")
	require.True(t, ok, "rewrite restarted the TTL")
	assert.Equal(t, 11.0, r.Miles)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(DefaultTTL)
	ctx := context.Background()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("origin %d|dest %d|driving", i%10, g%3)
				store.Set(ctx, key, Result{Miles: float64(i)})
				store.Get(ctx, key)
				if i%50 == 0 {
					store.Sweep()
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "123 main st|456 oak ave|driving", CacheKey("123 Main St", "456 Oak Ave", "driving"))
	assert.Equal(t, CacheKey("A", "B", "walking"), CacheKey("a", "b", "walking"))
	assert.NotEqual(t, CacheKey("a", "b", "driving"), CacheKey("b", "a", "driving"))
}
