package seqio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/kmer"
)

// Reads breaks genome into fixed-length reads. Consecutive reads overlap
// by exactly one symbol (the window advances by length−1), so adjacent
// reads chain back together during assembly. A trailing window shorter
// than length is dropped.
//
// length < 2 would not advance; it yields nil, as does a genome shorter
// than length.
func Reads(genome string, length int) []string {
	if length < 2 || len(genome) < length {
		return nil
	}

	var reads []string
	for i := 0; i+length <= len(genome); i += length - 1 {
		reads = append(reads, genome[i:i+length])
	}

	return reads
}

// WriteReads persists reads one per line.
func WriteReads(path string, reads []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("seqio: write reads: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, read := range reads {
		if _, err := fmt.Fprintln(w, read); err != nil {
			return fmt.Errorf("seqio: write reads %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("seqio: flush reads %s: %w", path, err)
	}

	return nil
}

// WriteKmers persists a multiset one key per multiplicity unit, in
// first-occurrence order — the inverse of ReadKmers.
func WriteKmers(path string, ms *kmer.Multiset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("seqio: write kmers: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, key := range ms.Keys() {
		for i := ms.Count(key); i > 0; i-- {
			if _, err := fmt.Fprintln(w, key); err != nil {
				return fmt.Errorf("seqio: write kmers %s: %w", path, err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("seqio: flush kmers %s: %w", path, err)
	}

	return nil
}

// ReportPath names the per-run output file inside dir:
// output_k<K>_missing<P>.txt, with P formatted without a trailing zero
// tail (10 rather than 10.0, 12.5 kept as-is).
func ReportPath(dir string, k int, pct float64) string {
	p := strconv.FormatFloat(pct, 'f', -1, 64)

	return filepath.Join(dir, fmt.Sprintf("output_k%d_missing%s.txt", k, p))
}
