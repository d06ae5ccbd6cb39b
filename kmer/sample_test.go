package kmer_test

import (
	"math/rand"
	"testing"

	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/kmer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSample_ZeroPercentIsNoOp verifies that percentage ≤ 0 returns the
// input multiset unchanged (same pointer, identical contents).
func TestSample_ZeroPercentIsNoOp(t *testing.T) {
	ms := kmer.Count("ACGTACGT", 3, kmer.WithCyclic())

	out, err := kmer.Sample(ms, 0)
	require.NoError(t, err)
	assert.Same(t, ms, out, "0% sampling must be the identity")

	out, err = kmer.Sample(ms, -5)
	require.NoError(t, err)
	assert.Same(t, ms, out, "negative percentage behaves like 0%")
}

// TestSample_RemovesFloorCount verifies exactly floor(d·p/100) distinct
// keys are removed, never more.
func TestSample_RemovesFloorCount(t *testing.T) {
	ms := kmer.Count("ACGTTGCAAC", 3, kmer.WithCyclic()) // 10 positions
	d := ms.Len()
	rng := rand.New(rand.NewSource(42))

	out, err := kmer.Sample(ms, 25, kmer.WithRand(rng))
	require.NoError(t, err)

	want := d - d*25/100
	assert.Equal(t, want, out.Len(), "floor(d·25/100) keys removed")
	assert.Equal(t, d, ms.Len(), "input multiset left intact")
}

// TestSample_SeededReproducibility verifies two samplers with the same
// seed remove the same key set.
func TestSample_SeededReproducibility(t *testing.T) {
	ms := kmer.Count("ACGTTGCAACGGTT", 4, kmer.WithCyclic())

	a, err := kmer.Sample(ms, 50, kmer.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	b, err := kmer.Sample(ms, 50, kmer.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	assert.Equal(t, a.Keys(), b.Keys(), "same seed, same survivors, same order")
}

// TestSample_FullRemoval verifies percentage = 100 empties the multiset.
func TestSample_FullRemoval(t *testing.T) {
	ms := kmer.Count("ACGTACGT", 3, kmer.WithCyclic())

	out, err := kmer.Sample(ms, 100, kmer.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	assert.Zero(t, out.Len(), "100% removal leaves no keys")
	assert.Zero(t, out.Total())
}

// TestSample_OversizeErrors verifies a removal budget beyond the distinct
// key count surfaces ErrSampleSize.
func TestSample_OversizeErrors(t *testing.T) {
	ms := kmer.Count("ACGT", 2)

	_, err := kmer.Sample(ms, 150, kmer.WithRand(rand.New(rand.NewSource(1))))
	assert.ErrorIs(t, err, kmer.ErrSampleSize, "percentage > 100 must error")
}

// TestSample_SurvivorsKeepOrder verifies surviving keys preserve their
// relative first-occurrence order after removal.
func TestSample_SurvivorsKeepOrder(t *testing.T) {
	ms := kmer.Count("ACGTTGCAACGGTT", 3, kmer.WithCyclic())

	out, err := kmer.Sample(ms, 30, kmer.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	// Survivors must appear in the same relative order as in the source.
	pos := make(map[string]int)
	for i, k := range ms.Keys() {
		pos[k] = i
	}
	prev := -1
	for _, k := range out.Keys() {
		require.Contains(t, pos, k, "survivor must come from the source")
		assert.Greater(t, pos[k], prev, "relative order preserved")
		prev = pos[k]
	}
}
