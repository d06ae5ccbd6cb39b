package assembly

import (
	"time"

	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/align"
	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/debruijn"
	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/euler"
	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/kmer"
)

// Run performs one full assembly of seq at k-mer length k and scores the
// reconstruction against seq.
//
// Stages: extract → sample (if removal > 0) → build graph → Eulerian
// walk → fold path → score. Preconditions on k (≥ 2, and ≤ len(seq) for
// linear runs) are the caller's to enforce; degenerate inputs flow
// through to a degenerate, zero-identity Report rather than an error.
func Run(seq string, k int, opts ...Option) (*Report, error) {
	ropts := DefaultOptions()
	for _, fn := range opts {
		fn(&ropts)
	}

	started := time.Now()

	// 1. Extract the k-mer multiset
	var countOpts []kmer.Option
	if ropts.Cyclic {
		countOpts = append(countOpts, kmer.WithCyclic())
	}
	ms := kmer.Count(seq, k, countOpts...)

	// 2. Simulate missing coverage
	if ropts.RemovalPercent > 0 {
		sampled, err := kmer.Sample(ms, ropts.RemovalPercent, kmer.WithRand(ropts.Rand))
		if err != nil {
			return nil, err
		}
		ms = sampled
	}

	// 3. Build the graph and walk it
	g := debruijn.Build(ms)
	var pathOpts []euler.Option
	if ropts.Validate {
		pathOpts = append(pathOpts, euler.WithValidation())
	}
	path, err := euler.Path(g, pathOpts...)
	if err != nil {
		return nil, err
	}

	// 4. Fold and score
	reconstructed := euler.Reconstruct(path)
	scoreOpts := ropts.Scoring
	if ropts.Cyclic {
		scoreOpts = append(scoreOpts, align.WithCircular())
	}
	result := align.Score(seq, reconstructed, scoreOpts...)

	return &Report{
		K:              k,
		RemovalPercent: ropts.RemovalPercent,
		Original:       seq,
		Reconstructed:  reconstructed,
		Result:         result,
		Elapsed:        time.Since(started),
	}, nil
}

// RunKmers assembles a sequence straight from an existing k-mer multiset
// (the k-mer-file input variant). No scoring happens — there is no
// original to compare against — so the result is just the reconstruction.
func RunKmers(ms *kmer.Multiset) string {
	g := debruijn.Build(ms)
	path, _ := euler.Path(g) // no validation: best-effort by contract

	return euler.Reconstruct(path)
}
