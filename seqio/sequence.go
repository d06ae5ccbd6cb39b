package seqio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/KaylBing/Varied-Kmer-Assembly-and-Analysis/kmer"
)

// ReadSequence loads one sequence from path. FASTA files (.fa/.fasta
// extension, or a leading '>') are parsed record by record and their
// sequences concatenated; anything else is treated as raw text with all
// newlines stripped.
func ReadSequence(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("seqio: read sequence: %w", err)
	}

	if isFasta(path, raw) {
		seq, err := readFasta(raw)
		if err != nil {
			return "", fmt.Errorf("seqio: parse fasta %s: %w", path, err)
		}

		return seq, nil
	}

	seq := strings.TrimSpace(string(raw))
	seq = strings.ReplaceAll(seq, "\r", "")
	seq = strings.ReplaceAll(seq, "\n", "")

	return seq, nil
}

// isFasta sniffs the input format by extension, then by leading '>'.
func isFasta(path string, raw []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".fa", ".fasta":
		return true
	}

	return len(raw) > 0 && raw[0] == '>'
}

// readFasta concatenates every record in the FASTA payload.
func readFasta(raw []byte) (string, error) {
	r := fasta.NewReader(strings.NewReader(string(raw)), linear.NewSeq("", nil, alphabet.DNA))

	var b strings.Builder
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		l := s.(*linear.Seq)
		b.WriteString(alphabet.Letters(l.Seq).String())
	}

	return b.String(), nil
}

// ReadReads loads reads one per line, skipping blank lines, preserving
// order and duplicates — the inverse of WriteReads.
func ReadReads(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: read reads: %w", err)
	}
	defer f.Close()

	var reads []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		reads = append(reads, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seqio: scan reads %s: %w", path, err)
	}

	return reads, nil
}

// ReadKmers loads a k-mer list, one per line, skipping blank lines, into
// an ordered multiset (duplicates accumulate multiplicity).
func ReadKmers(path string) (*kmer.Multiset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: read kmers: %w", err)
	}
	defer f.Close()

	ms := kmer.NewMultiset()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ms.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seqio: scan kmers %s: %w", path, err)
	}

	return ms, nil
}
