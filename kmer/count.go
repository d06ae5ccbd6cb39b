package kmer

// Count extracts every k-length window of seq into a Multiset.
//
// For each start index i in [0, len(seq)): the window seq[i:i+k] is taken
// whole; if it runs past the end and Cyclic is set, the missing tail is
// completed with symbols from the start of seq; without Cyclic the
// incomplete window is discarded. Multiplicities accumulate per distinct
// window, keys ordered by first occurrence.
//
// Preconditions (not validated, degenerate output otherwise): k ≥ 1, and
// for non-cyclic extraction k ≤ len(seq). Callers validate upstream.
func Count(seq string, k int, opts ...Option) *Multiset {
	// 1. Apply options
	copts := DefaultOptions()
	for _, fn := range opts {
		fn(&copts)
	}

	// 2. Slide the window over every start position
	ms := NewMultiset()
	if k <= 0 {
		return ms
	}
	n := len(seq)
	for i := 0; i < n; i++ {
		if i+k <= n {
			ms.Add(seq[i : i+k])
			continue
		}
		// 3. Window overruns the end: wrap or drop
		if !copts.Cyclic {
			continue
		}
		wrap := k - (n - i)
		if wrap > n {
			// k exceeds the sequence length; a single lap is all there is.
			wrap = n
		}
		ms.Add(seq[i:] + seq[:wrap])
	}

	return ms
}
