package analytics

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summary(i int) Summary {
	return Summary{
		QuoteID:       fmt.Sprintf("QC-TEST-%05d", i),
		TotalPrice:    float64(100 + i),
		DistanceMiles: float64(i % 60),
		EventType:     "corporateEvent",
		ServiceLevel:  "standard",
		Timestamp:     time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Second),
	}
}

func TestRing_AppendAndSnapshot(t *testing.T) {
	r := NewRing()
	for i := 0; i < 3; i++ {
		r.Append(summary(i))
	}

	snap := r.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "QC-TEST-00000", snap[0].QuoteID)
	assert.Equal(t, "QC-TEST-00002", snap[2].QuoteID)

	// The snapshot is a copy; later appends do not leak into it.
	r.Append(summary(3))
	assert.Len(t, snap, 3)
}

func TestRing_HalvingPolicy(t *testing.T) {
	r := newRing(4, 2)
	for i := 0; i < 4; i++ {
		r.Append(summary(i))
	}
	require.Equal(t, 4, r.Len())

	// The fifth append halves first: entries 2,3 survive, then 4 lands.
	r.Append(summary(4))
	snap := r.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "QC-TEST-00002", snap[0].QuoteID)
	assert.Equal(t, "QC-TEST-00003", snap[1].QuoteID)
	assert.Equal(t, "QC-TEST-00004", snap[2].QuoteID)
}

func TestRing_DefaultCapacity(t *testing.T) {
	r := NewRing()
	for i := 0; i < 1000; i++ {
		r.Append(summary(i))
	}
	require.Equal(t, 1000, r.Len())

	r.Append(summary(1000))
	// 500 retained plus the new entry.
	assert.Equal(t, 501, r.Len())
	snap := r.Snapshot()
	assert.Equal(t, "QC-TEST-00500", snap[0].QuoteID)
	assert.Equal(t, "QC-TEST-01000", snap[len(snap)-1].QuoteID)
}

func TestRing_Stats(t *testing.T) {
	r := NewRing()
	assert.Equal(t, Stats{}, r.Stats())

	r.Append(Summary{TotalPrice: 100, DistanceMiles: 10})
	r.Append(Summary{TotalPrice: 200, DistanceMiles: 30})

	st := r.Stats()
	assert.Equal(t, 2, st.Count)
	assert.Equal(t, 150.0, st.AverageTotal)
	assert.Equal(t, 20.0, st.AverageMiles)
}

func TestRing_ConcurrentAppends(t *testing.T) {
	r := newRing(100, 50)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				r.Append(summary(i))
				if i%100 == 0 {
					r.Snapshot()
					r.Stats()
				}
			}
		}()
	}
	wg.Wait()

	// Whatever interleaving happened, the bound holds.
	assert.LessOrEqual(t, r.Len(), 100)
	assert.Greater(t, r.Len(), 0)
}
