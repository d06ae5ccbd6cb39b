package kmer

// Sample removes a percentage of the distinct keys of ms uniformly at
// random, returning a new Multiset with the survivors; ms itself is not
// modified. Whole keys are removed, multiplicity and all — Sample models
// missing coverage for a k-mer value, not thinning of individual reads.
//
// percentage ≤ 0 returns ms unchanged (same pointer, zero allocations).
// The number of keys removed is exactly floor(Len × percentage / 100),
// selected without replacement from the injected randomness source.
//
// Returns ErrSampleSize when the computed removal count exceeds the
// number of distinct keys (only possible for percentage > 100).
func Sample(ms *Multiset, percentage float64, opts ...SampleOption) (*Multiset, error) {
	// 1. Fast path: nothing to remove
	if percentage <= 0 {
		return ms, nil
	}

	// 2. Apply options
	sopts := DefaultSampleOptions()
	for _, fn := range opts {
		fn(&sopts)
	}

	// 3. Compute the removal budget
	distinct := ms.Len()
	removeCount := int(float64(distinct) * percentage / 100)
	if removeCount > distinct {
		return nil, ErrSampleSize
	}

	// 4. Partial Fisher-Yates over a copy of the key order: the first
	//    removeCount slots end up holding the victims.
	keys := ms.Keys()
	for i := 0; i < removeCount; i++ {
		j := i + sopts.Rand.Intn(distinct-i)
		keys[i], keys[j] = keys[j], keys[i]
	}

	// 5. Delete the victims from a clone
	out := ms.Clone()
	for _, key := range keys[:removeCount] {
		out.Delete(key)
	}

	return out, nil
}
