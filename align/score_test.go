package align_test

import (
	"testing"

	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/align"
	"github.com/stretchr/testify/assert"
)

// TestScore_LinearIdentical verifies a perfect linear alignment.
func TestScore_LinearIdentical(t *testing.T) {
	res := align.Score("ACGT", "ACGT")

	assert.Equal(t, 4, res.Matches)
	assert.Zero(t, res.Mismatches)
	assert.Zero(t, res.LengthDiff)
	assert.Equal(t, 4.0, res.Score)
	assert.Equal(t, 100.0, res.PercentIdentity)
	assert.Equal(t, align.ModeLinear, res.Mode)
}

// TestScore_LinearMismatchAndLength verifies the default weights: 1.0
// per match, −0.5 per mismatch, −1.0 per symbol of length difference.
func TestScore_LinearMismatchAndLength(t *testing.T) {
	// 3 compared positions: A=A, C≠G, G≠C ... against a 5-long original.
	res := align.Score("ACGTT", "AGC")

	assert.Equal(t, 1, res.Matches)
	assert.Equal(t, 2, res.Mismatches)
	assert.Equal(t, 2, res.LengthDiff)
	assert.InDelta(t, 1.0*1.0+2.0*-0.5, res.BaseScore, 1e-9)
	assert.InDelta(t, -2.0, res.LengthPenalty, 1e-9)
	assert.InDelta(t, -2.0, res.Score, 1e-9)
	assert.InDelta(t, 100.0/3.0, res.PercentIdentity, 1e-9)
}

// TestScore_EmptyCandidate verifies the degenerate empty comparison:
// zero identity, pure length penalty, no rotation search.
func TestScore_EmptyCandidate(t *testing.T) {
	res := align.Score("ACGT", "", align.WithCircular())

	assert.Zero(t, res.Matches)
	assert.Zero(t, res.PercentIdentity, "identity is 0 when nothing was compared")
	assert.Equal(t, 4, res.LengthDiff)
	assert.InDelta(t, -4.0, res.Score, 1e-9)
	assert.Equal(t, align.ModeLinear, res.Mode, "no rotations exist for an empty candidate")
}

// TestScore_CircularFindsRotation verifies the rotation search recovers
// a rotated copy of the original at 100% identity.
func TestScore_CircularFindsRotation(t *testing.T) {
	original := "ACGTTGCA"
	rotated := original[3:] + original[:3] // candidate is original shifted by 3

	res := align.Score(original, rotated, align.WithCircular())

	assert.Equal(t, 100.0, res.PercentIdentity)
	assert.Equal(t, original, res.Aligned, "winning rotation restores the original")
	assert.Equal(t, len(original)-3, res.Rotation)
	assert.Equal(t, align.ModeCircular, res.Mode)
}

// TestScore_CircularNeverWorseThanLinear verifies the exhaustive search
// dominates the offset-0 alignment for any input pair.
func TestScore_CircularNeverWorseThanLinear(t *testing.T) {
	cases := [][2]string{
		{"ACGTACGT", "GTACGTAC"},
		{"AAACCC", "CCCAAA"},
		{"ACGT", "TTTT"},
		{"ACGTTGCA", "ACG"},
	}
	for _, c := range cases {
		lin := align.Score(c[0], c[1])
		circ := align.Score(c[0], c[1], align.WithCircular())
		assert.GreaterOrEqual(t, circ.Score, lin.Score,
			"rotation search must dominate offset 0 for %q vs %q", c[0], c[1])
	}
}

// TestScore_CircularTieBreak verifies ties go to the first (lowest)
// rotation offset: strict >, not ≥.
func TestScore_CircularTieBreak(t *testing.T) {
	// Every rotation of a homopolymer scores identically.
	res := align.Score("AAAA", "AAAA", align.WithCircular())

	assert.Zero(t, res.Rotation, "all rotations tie; offset 0 must win")
	assert.Equal(t, 100.0, res.PercentIdentity)
}

// TestScore_CustomWeights verifies WithScores overrides all three
// weights.
func TestScore_CustomWeights(t *testing.T) {
	res := align.Score("AC", "AG", align.WithScores(2.0, -1.0, -3.0))

	assert.InDelta(t, 2.0-1.0, res.BaseScore, 1e-9)
	assert.Zero(t, res.LengthPenalty)

	res = align.Score("ACGT", "AC", align.WithScores(2.0, -1.0, -3.0))
	assert.InDelta(t, -6.0, res.LengthPenalty, 1e-9)
}
