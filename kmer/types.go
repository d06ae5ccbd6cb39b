// Package kmer defines the Multiset container and the options shared by
// extraction (Count) and downsampling (Sample).
package kmer

import (
	"errors"
	"math/rand"
	"time"
)

var (
	// ErrSampleSize indicates a removal request larger than the number of
	// distinct keys currently in the multiset.
	ErrSampleSize = errors.New("kmer: sample size exceeds distinct key count")
)

// Multiset is an insertion-ordered multiset of k-mers.
//
// Keys are kept in first-occurrence order; iteration via Keys is
// deterministic for a given insertion sequence. The zero value is not
// usable; construct with NewMultiset.
type Multiset struct {
	counts map[string]int
	order  []string
}

// NewMultiset returns an empty Multiset.
func NewMultiset() *Multiset {
	return &Multiset{counts: make(map[string]int)}
}

// Add increments the multiplicity of key by one, registering the key at
// the end of the insertion order on first sight.
func (m *Multiset) Add(key string) {
	if _, seen := m.counts[key]; !seen {
		m.order = append(m.order, key)
	}
	m.counts[key]++
}

// Count returns the multiplicity of key, or 0 if absent.
func (m *Multiset) Count(key string) int { return m.counts[key] }

// Len returns the number of distinct keys.
func (m *Multiset) Len() int { return len(m.order) }

// Total returns the sum of all multiplicities (the total edge budget the
// de Bruijn graph built from this multiset will carry).
func (m *Multiset) Total() int {
	total := 0
	for _, c := range m.counts {
		total += c
	}

	return total
}

// Keys returns the distinct keys in first-occurrence order.
// The returned slice is a copy and safe to retain.
func (m *Multiset) Keys() []string {
	keys := make([]string, len(m.order))
	copy(keys, m.order)

	return keys
}

// Delete removes key and its whole multiplicity. Unknown keys are a no-op.
func (m *Multiset) Delete(key string) {
	if _, seen := m.counts[key]; !seen {
		return
	}
	delete(m.counts, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Clone returns an independent copy preserving insertion order.
func (m *Multiset) Clone() *Multiset {
	c := &Multiset{
		counts: make(map[string]int, len(m.counts)),
		order:  make([]string, len(m.order)),
	}
	copy(c.order, m.order)
	for k, v := range m.counts {
		c.counts[k] = v
	}

	return c
}

// Option configures k-mer extraction. Use with Count(seq, k, opts...).
type Option func(*Options)

// Options holds configurable parameters for Count.
type Options struct {
	// Cyclic treats the sequence as circular: windows running past the end
	// wrap around to the start so every position yields a full k-mer.
	// Default is false (incomplete trailing windows are dropped).
	Cyclic bool
}

// DefaultOptions returns the extraction defaults (linear sequence).
func DefaultOptions() Options {
	return Options{Cyclic: false}
}

// WithCyclic returns an Option enabling circular window wrap-around.
func WithCyclic() Option {
	return func(o *Options) { o.Cyclic = true }
}

// SampleOption configures random downsampling. Use with Sample.
type SampleOption func(*SampleOptions)

// SampleOptions holds configurable parameters for Sample.
type SampleOptions struct {
	// Rand is the randomness source for key selection. Inject a seeded
	// generator for reproducible removal; defaults to a time-seeded one.
	Rand *rand.Rand
}

// DefaultSampleOptions returns sampling defaults (time-seeded generator).
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// WithRand returns a SampleOption that injects rng as the randomness
// source. Passing nil has no effect (the default source is retained).
func WithRand(rng *rand.Rand) SampleOption {
	return func(o *SampleOptions) {
		if rng != nil {
			o.Rand = rng
		}
	}
}
