// README: Pricing config store; atomic snapshot reads, validated shallow-merge updates.
package pricing

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrConfigInvalid rejects an update whose numerics violate their ranges.
// The wrapped message names the offending field.
var ErrConfigInvalid = errors.New("invalid pricing config")

// Store holds the current pricing configuration. Readers get an immutable
// snapshot and never block behind writers; writers serialize among
// themselves and install a fresh snapshot atomically, so a concurrent
// reader sees either the old or the new config, never a torn mix.
type Store struct {
	mu  sync.Mutex // serializes writers only
	cur atomic.Pointer[Config]
}

func NewStore(initial Config) (*Store, error) {
	if err := validate(initial); err != nil {
		return nil, err
	}
	s := &Store{}
	snap := cloneConfig(initial)
	s.cur.Store(&snap)
	return s, nil
}

// Get returns the current snapshot. Callers must treat it as read-only.
func (s *Store) Get() *Config {
	return s.cur.Load()
}

// Update merges the patch over the current config at the top level,
// validates the result, and installs it. On error the old config stays
// active.
func (s *Store) Update(p Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := cloneConfig(*s.cur.Load())
	if p.BaseFee != nil {
		merged.BaseFee = *p.BaseFee
	}
	if p.DistanceTiers != nil {
		merged.DistanceTiers = *p.DistanceTiers
	}
	if p.ItemFees != nil {
		merged.ItemFees = *p.ItemFees
	}
	if p.ServiceLevels != nil {
		merged.ServiceLevels = cloneMap(p.ServiceLevels)
	}
	if p.AdditionalServices != nil {
		merged.AdditionalServices = cloneMap(p.AdditionalServices)
	}
	if p.EventTypes != nil {
		merged.EventTypes = cloneMap(p.EventTypes)
	}
	if p.ComplexityFactors != nil {
		merged.ComplexityFactors = cloneMap(p.ComplexityFactors)
	}
	if p.TaxRate != nil {
		merged.TaxRate = *p.TaxRate
	}
	if p.EmergencyUrgencyMultiplier != nil {
		merged.EmergencyUrgencyMultiplier = *p.EmergencyUrgencyMultiplier
	}

	if err := validate(merged); err != nil {
		return err
	}
	s.cur.Store(&merged)
	return nil
}

func validate(c Config) error {
	if c.BaseFee < 0 {
		return fieldErr("baseFee")
	}
	t := c.DistanceTiers
	if t.Tier1Max < 0 || t.Tier2Max < 0 || t.Tier1Rate < 0 || t.Tier2Rate < 0 || t.Tier3Rate < 0 {
		return fieldErr("distanceTiers")
	}
	if t.Tier1Max >= t.Tier2Max {
		return fieldErr("distanceTiers")
	}
	f := c.ItemFees
	if f.Small < 0 || f.Medium < 0 || f.Large < 0 || f.ExtraLarge < 0 ||
		f.Delicate < 0 || f.HighValue < 0 || f.HazardousSurcharge < 0 {
		return fieldErr("itemFees")
	}
	for tag, fee := range c.ServiceLevels {
		if fee < 0 {
			return fieldErr("serviceLevels." + tag)
		}
	}
	for tag, fee := range c.AdditionalServices {
		if fee < 0 {
			return fieldErr("additionalServices." + tag)
		}
	}
	for tag, m := range c.EventTypes {
		if m < 0 {
			return fieldErr("eventTypes." + tag)
		}
	}
	for tag, m := range c.ComplexityFactors {
		if m < 1 {
			return fieldErr("complexityFactors." + tag)
		}
	}
	if c.TaxRate < 0 || c.TaxRate > 1 {
		return fieldErr("taxRate")
	}
	if c.EmergencyUrgencyMultiplier < 1 {
		return fieldErr("emergencyUrgencyMultiplier")
	}
	return nil
}

func fieldErr(field string) error {
	return fmt.Errorf("%w: %s", ErrConfigInvalid, field)
}

// cloneConfig deep-copies the maps so installed snapshots never share
// mutable state with callers or with each other.
func cloneConfig(c Config) Config {
	c.ServiceLevels = cloneMap(c.ServiceLevels)
	c.AdditionalServices = cloneMap(c.AdditionalServices)
	c.EventTypes = cloneMap(c.EventTypes)
	c.ComplexityFactors = cloneMap(c.ComplexityFactors)
	return c
}

func cloneMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
