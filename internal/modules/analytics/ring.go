// README: Bounded in-memory ring of quote summaries with replace-by-halving.
package analytics

import (
	"sync"

	"swiftship/internal/types"
)

const (
	defaultCapacity = 1000
	defaultRetained = 500
)

// Ring keeps the most recent quote summaries. When the ring is full it
// drops the older half in one step rather than evicting per entry, so
// appends stay cheap and reporting always has a recent window to work
// with.
type Ring struct {
	mu       sync.Mutex
	capacity int
	retained int
	entries  []Summary
}

func NewRing() *Ring {
	return newRing(defaultCapacity, defaultRetained)
}

func newRing(capacity, retained int) *Ring {
	return &Ring{
		capacity: capacity,
		retained: retained,
		entries:  make([]Summary, 0, capacity),
	}
}

// Append records a summary, halving the ring first if it is full.
func (r *Ring) Append(s Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) >= r.capacity {
		kept := make([]Summary, r.retained, r.capacity)
		copy(kept, r.entries[len(r.entries)-r.retained:])
		r.entries = kept
	}
	r.entries = append(r.entries, s)
}

// Len reports the current entry count.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Snapshot returns a copy of the current entries, oldest first.
func (r *Ring) Snapshot() []Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Summary, len(r.entries))
	copy(out, r.entries)
	return out
}

// Stats aggregates the retained window.
func (r *Ring) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := Stats{Count: len(r.entries)}
	if st.Count == 0 {
		return st
	}
	var totalSum, milesSum float64
	for _, e := range r.entries {
		totalSum += e.TotalPrice
		milesSum += e.DistanceMiles
	}
	st.AverageTotal = types.Round2(totalSum / float64(st.Count))
	st.AverageMiles = types.Round2(milesSum / float64(st.Count))
	return st
}
