package align

import "math"

// Score aligns candidate against original and returns the breakdown.
//
// Linear mode compares position-by-position over the shorter length;
// the absolute length difference is charged at the LengthPenalty weight.
// Percent identity is matches over the shorter length (0 when a side is
// empty).
//
// Circular mode (WithCircular) scores every rotation of candidate in
// linear mode and keeps the rotation with the strictly highest combined
// score — ties go to the lowest offset. The winning offset and rotated
// string are recorded in Rotation and Aligned. An empty candidate has no
// rotations and falls back to a single linear comparison.
func Score(original, candidate string, opts ...Option) Result {
	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}

	if !sopts.Circular || len(candidate) == 0 {
		return linear(original, candidate, sopts)
	}

	// Exhaustive rotation search; strict > keeps the first best offset.
	best := Result{Score: math.Inf(-1)}
	for i := 0; i < len(candidate); i++ {
		rotated := candidate[i:] + candidate[:i]
		res := linear(original, rotated, sopts)
		if res.Score > best.Score {
			res.Rotation = i
			res.Mode = ModeCircular
			best = res
		}
	}

	return best
}

// linear is the single-shot comparison both modes are built on.
func linear(original, candidate string, opts Options) Result {
	minLen := len(original)
	if len(candidate) < minLen {
		minLen = len(candidate)
	}

	matches := 0
	for i := 0; i < minLen; i++ {
		if original[i] == candidate[i] {
			matches++
		}
	}
	mismatches := minLen - matches

	lengthDiff := len(original) - len(candidate)
	if lengthDiff < 0 {
		lengthDiff = -lengthDiff
	}

	res := Result{
		Matches:       matches,
		Mismatches:    mismatches,
		LengthDiff:    lengthDiff,
		BaseScore:     float64(matches)*opts.MatchScore + float64(mismatches)*opts.MismatchScore,
		LengthPenalty: float64(lengthDiff) * opts.LengthPenalty,
		Aligned:       candidate,
		Mode:          ModeLinear,
	}
	res.Score = res.BaseScore + res.LengthPenalty
	if minLen > 0 {
		res.PercentIdentity = float64(matches) / float64(minLen) * 100
	}

	return res
}
