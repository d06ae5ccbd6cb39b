package assembly

// findOverlap returns the length of the longest suffix of a that equals
// a prefix of b, capped at max and at either string's length. 0 means
// the strings cannot be chained in this orientation.
func findOverlap(a, b string, max int) int {
	if max > len(a) {
		max = len(a)
	}
	if max > len(b) {
		max = len(b)
	}
	for i := max; i >= 1; i-- {
		if a[len(a)-i:] == b[:i] {
			return i
		}
	}

	return 0
}

// MergeReads greedily assembles reads into one sequence by repeatedly
// merging the pair of contigs with the largest suffix/prefix overlap.
// Overlaps are capped at maxOverlap symbols; ties go to the first pair
// in scan order (strict > comparison), which keeps the merge order
// deterministic. It is the consumer for seqio.Reads output, whose
// one-symbol overlaps the de Bruijn walk cannot chain.
//
// When no pair overlaps at all the assembly is incomplete: merging
// stops and the most recently merged contig is returned as-is
// (best-effort, like the rest of the engine). Empty input yields the
// empty string.
//
// Cost is O(r² · maxOverlap) comparisons per merge round, r rounds —
// fine for the read counts this engine targets.
func MergeReads(reads []string, maxOverlap int) string {
	contigs := append([]string(nil), reads...)

	for len(contigs) > 1 {
		// 1. Find the best-overlapping ordered pair
		best, bi, bj := 0, 0, 0
		for i := range contigs {
			for j := range contigs {
				if i == j {
					continue
				}
				if ov := findOverlap(contigs[i], contigs[j], maxOverlap); ov > best {
					best, bi, bj = ov, i, j
				}
			}
		}

		// 2. No overlap anywhere: disjoint contigs, stop merging
		if best == 0 {
			break
		}

		// 3. Fuse the pair and retire both halves
		merged := contigs[bi] + contigs[bj][best:]
		next := make([]string, 0, len(contigs)-1)
		for i, c := range contigs {
			if i != bi && i != bj {
				next = append(next, c)
			}
		}
		contigs = append(next, merged)
	}

	if len(contigs) == 0 {
		return ""
	}

	return contigs[len(contigs)-1]
}
