// Package kmer provides k-mer extraction and downsampling for sequence
// assembly experiments.
//
// What:
//
//   - Multiset: an insertion-ordered multiset of k-mers with occurrence
//     counts. Key order reflects first occurrence in the source sequence,
//     which downstream graph construction relies on for reproducibility.
//   - Count: slides a window of length k over a sequence, optionally
//     wrapping around the end (cyclic mode), accumulating multiplicities.
//   - Sample: removes a percentage of distinct k-mer keys uniformly at
//     random, simulating missing coverage.
//
// Why:
//   - Feed de Bruijn graph construction (package debruijn) with the exact
//     multiset of k-mers present in a source sequence.
//   - Characterize assembly robustness by deleting a controlled fraction
//     of the k-mer evidence before reconstruction.
//
// Complexity:
//
//   - Count:  Time O(n·k), Memory O(d·k) for d distinct k-mers.
//   - Sample: Time O(d), Memory O(d).
//
// Determinism:
//
//	Sample draws from an explicitly injected *rand.Rand (WithRand); with a
//	fixed seed the removed key set is fully reproducible. No package-level
//	random state is consulted.
//
// Errors:
//
//   - ErrSampleSize — removal would delete more distinct keys than exist.
package kmer
