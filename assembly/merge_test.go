package assembly_test

import (
	"testing"

	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/assembly"
	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/kmer"
	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/seqio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeReads_ChainsSingleSymbolOverlaps verifies the merge recovers
// a genome from seqio.Reads output. Adjacent reads share only one
// symbol, which the graph walk cannot chain: fed the same reads as
// k-mers, it spells just the first read before running out of edges.
func TestMergeReads_ChainsSingleSymbolOverlaps(t *testing.T) {
	genome := "ACGTTGCAACGGTTACGATCCGTAGGCT"
	reads := seqio.Reads(genome, 10)
	require.Len(t, reads, 3)

	snapshot := append([]string(nil), reads...)
	assert.Equal(t, genome, assembly.MergeReads(reads, 4))
	assert.Equal(t, snapshot, reads, "input slice stays intact")

	ms := kmer.NewMultiset()
	for _, r := range reads {
		ms.Add(r)
	}
	assert.Equal(t, reads[0], assembly.RunKmers(ms),
		"one-symbol overlaps leave the graph disconnected; the walk stops after one read")
}

// TestMergeReads_PrefersLargestOverlap verifies each round merges the
// pair with the biggest overlap, not the first overlapping pair found.
func TestMergeReads_PrefersLargestOverlap(t *testing.T) {
	// CDEF→FGH overlaps by 1 and is scanned before ABCD→CDEF (overlap 2);
	// the larger overlap must still win the first round.
	reads := []string{"CDEF", "FGH", "ABCD"}

	assert.Equal(t, "ABCDEFGH", assembly.MergeReads(reads, 3))
}

// TestMergeReads_TieGoesToFirstPair pins the deterministic tie-break:
// equal overlaps resolve to the pair scanned first.
func TestMergeReads_TieGoesToFirstPair(t *testing.T) {
	// AB→BC and AB→BD both overlap by 1; AB→BC is scanned first, and BD
	// has no partner afterwards.
	reads := []string{"AB", "BC", "BD"}

	assert.Equal(t, "ABC", assembly.MergeReads(reads, 1))
}

// TestMergeReads_StopsWhenDisjoint verifies merging halts once no pair
// overlaps, returning the most recently merged contig.
func TestMergeReads_StopsWhenDisjoint(t *testing.T) {
	reads := []string{"TTT", "ABCD", "CDEF"}

	assert.Equal(t, "ABCDEF", assembly.MergeReads(reads, 4),
		"the mergeable pair fuses; the disjoint contig is left behind")
}

// TestMergeReads_OverlapCap verifies overlaps longer than the cap are
// invisible: the same pair merges at cap 3 and stays apart at cap 2.
func TestMergeReads_OverlapCap(t *testing.T) {
	reads := []string{"XXABC", "ABCYY"}

	assert.Equal(t, "XXABCYY", assembly.MergeReads(reads, 3))
	assert.Equal(t, "ABCYY", assembly.MergeReads(reads, 2),
		"a 3-symbol overlap is not found when the cap stops the scan at 2")
}

// TestMergeReads_Degenerate verifies empty and single-read inputs.
func TestMergeReads_Degenerate(t *testing.T) {
	assert.Empty(t, assembly.MergeReads(nil, 4))
	assert.Equal(t, "ACGT", assembly.MergeReads([]string{"ACGT"}, 4))
}
