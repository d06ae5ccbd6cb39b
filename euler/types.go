// Package euler defines traversal options.
package euler

// Option configures optional behavior of Path. Use with Path(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for the Eulerian traversal.
type Options struct {
	// Validate runs the graph's Eulerian-feasibility check before the
	// traversal and aborts with debruijn.ErrNotEulerian on failure.
	// Default is false: best-effort traversal, leftover edges dropped.
	Validate bool
}

// DefaultOptions returns the traversal defaults (no validation).
func DefaultOptions() Options {
	return Options{Validate: false}
}

// WithValidation returns an Option enabling the pre-traversal
// Eulerian-feasibility check.
func WithValidation() Option {
	return func(o *Options) { o.Validate = true }
}
