// Package assembly wires the engine end to end: k-mer extraction,
// optional random downsampling, de Bruijn graph construction, Eulerian
// traversal, sequence reconstruction, and alignment scoring.
//
// What:
//
//   - Run: one full assembly of a source sequence at a given k, with an
//     optional removal percentage simulating missing coverage, returning
//     a Report (reconstruction, score breakdown, wall-clock runtime).
//   - RunKmers: assembly straight from an existing k-mer multiset, for
//     inputs that arrive as a k-mer list rather than a sequence.
//   - MergeReads: greedy best-overlap merging of fixed-length reads
//     (seqio.Reads output), whose one-symbol overlaps are too short for
//     the de Bruijn walk to chain.
//   - Report.WriteTo: the plain-text per-run report used by the sweep
//     driver's output files.
//
// Why:
//   - The individual stages (packages kmer, debruijn, euler, align) are
//     deliberately small and single-purpose; this package is the one
//     place that fixes their composition order and threads the options
//     through.
//
// Determinism:
//
//	The only nondeterministic stage is sampling. Inject a seeded
//	generator with WithRand to make a Run fully reproducible.
//
// Errors:
//
//   - kmer.ErrSampleSize — removal percentage beyond 100.
//   - debruijn.ErrNotEulerian — only with WithValidation enabled.
package assembly
