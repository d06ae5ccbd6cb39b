// Package align defines scoring options and the Result breakdown.
package align

// Mode labels which alignment strategy produced a Result.
const (
	// ModeLinear is a plain position-by-position comparison.
	ModeLinear = "linear"

	// ModeCircular is the exhaustive rotation search.
	ModeCircular = "circular"
)

// Option configures scoring. Use with Score(original, candidate, opts...).
type Option func(*Options)

// Options holds the scoring weights and the alignment mode.
type Options struct {
	// MatchScore is added per matching position. Default 1.0.
	MatchScore float64

	// MismatchScore is added per mismatching position. Default -0.5.
	MismatchScore float64

	// LengthPenalty is added per symbol of length difference. Default -1.0.
	LengthPenalty float64

	// Circular enables the exhaustive rotation search over the candidate.
	// Default is false (single linear comparison).
	Circular bool
}

// DefaultOptions returns the reference scoring weights in linear mode.
func DefaultOptions() Options {
	return Options{
		MatchScore:    1.0,
		MismatchScore: -0.5,
		LengthPenalty: -1.0,
		Circular:      false,
	}
}

// WithScores returns an Option overriding the three scoring weights.
func WithScores(match, mismatch, lengthPenalty float64) Option {
	return func(o *Options) {
		o.MatchScore = match
		o.MismatchScore = mismatch
		o.LengthPenalty = lengthPenalty
	}
}

// WithCircular returns an Option enabling the rotation search.
func WithCircular() Option {
	return func(o *Options) { o.Circular = true }
}

// Result is the full breakdown of one alignment.
type Result struct {
	// Matches counts positions where original and candidate agree.
	Matches int

	// Mismatches counts compared positions that disagree.
	Mismatches int

	// LengthDiff is the absolute difference of the two lengths.
	LengthDiff int

	// BaseScore is Matches·MatchScore + Mismatches·MismatchScore.
	BaseScore float64

	// LengthPenalty is LengthDiff·(per-symbol penalty weight).
	LengthPenalty float64

	// Score is BaseScore + LengthPenalty, the quantity the rotation
	// search maximizes.
	Score float64

	// PercentIdentity is Matches over the shorter length, ×100.
	// Zero when either input is empty.
	PercentIdentity float64

	// Rotation is the winning candidate rotation offset (circular mode
	// only; 0 in linear mode).
	Rotation int

	// Aligned is the candidate string as compared — rotated by Rotation
	// in circular mode, verbatim in linear mode.
	Aligned string

	// Mode is ModeLinear or ModeCircular.
	Mode string
}
