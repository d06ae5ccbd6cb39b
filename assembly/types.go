// Package assembly defines the pipeline options and the Report type.
package assembly

import (
	"math/rand"
	"time"

	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/align"
)

// Option configures one assembly run. Use with Run(seq, k, opts...).
type Option func(*Options)

// Options holds the configurable parameters of a run.
type Options struct {
	// Cyclic treats the source as circular: extraction wraps trailing
	// windows and scoring searches all rotations. Default is true, the
	// behavior the engine was built to evaluate.
	Cyclic bool

	// RemovalPercent is the percentage of distinct k-mers to delete
	// before graph construction. Default 0 (no removal).
	RemovalPercent float64

	// Rand is the randomness source for removal. Inject a seeded
	// generator for reproducible runs.
	Rand *rand.Rand

	// Scoring carries extra align options (e.g. align.WithScores).
	// Circularity is appended automatically from Cyclic.
	Scoring []align.Option

	// Validate runs the Eulerian-feasibility check before traversal.
	// Default is false (best-effort, matching the reference behavior).
	Validate bool
}

// DefaultOptions returns the run defaults: cyclic, no removal,
// time-seeded randomness, reference scoring weights, no validation.
func DefaultOptions() Options {
	return Options{
		Cyclic: true,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithLinear returns an Option treating the source as a linear sequence
// (no wrap-around extraction, no rotation search).
func WithLinear() Option {
	return func(o *Options) { o.Cyclic = false }
}

// WithRemoval returns an Option deleting pct percent of distinct k-mers
// before graph construction.
func WithRemoval(pct float64) Option {
	return func(o *Options) { o.RemovalPercent = pct }
}

// WithRand returns an Option injecting rng as the sampling randomness
// source. Passing nil has no effect.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithScoring returns an Option appending align options to the scoring
// stage.
func WithScoring(opts ...align.Option) Option {
	return func(o *Options) { o.Scoring = append(o.Scoring, opts...) }
}

// WithValidation returns an Option enabling the pre-traversal Eulerian
// feasibility check.
func WithValidation() Option {
	return func(o *Options) { o.Validate = true }
}

// Report is the outcome of one assembly run.
type Report struct {
	// K is the k-mer length the run used.
	K int

	// RemovalPercent is the requested k-mer removal percentage.
	RemovalPercent float64

	// Original is the source sequence.
	Original string

	// Reconstructed is the assembled sequence (empty when no k-mers
	// survived).
	Reconstructed string

	// Result is the alignment score breakdown against Original.
	Result align.Result

	// Elapsed is the wall-clock runtime of the run.
	Elapsed time.Duration
}
