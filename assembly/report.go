package assembly

import (
	"fmt"
	"io"
	"strings"
)

// snippetLen bounds the sequence excerpts embedded in the text report.
const snippetLen = 100

// WriteTo renders the plain-text per-run report: parameters, runtime,
// score breakdown, sequence snippets, and the full reconstruction. It is
// the payload of the sweep driver's output_k<K>_missing<P>.txt files.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "K value: %d\n", r.K)
	fmt.Fprintf(&b, "Missing k-mers: %.2f%%\n", r.RemovalPercent)
	fmt.Fprintf(&b, "Runtime: %.3f seconds\n", r.Elapsed.Seconds())
	fmt.Fprintf(&b, "Score: %.1f\n", r.Result.BaseScore)
	fmt.Fprintf(&b, "Identity: %.1f%%\n", r.Result.PercentIdentity)
	fmt.Fprintf(&b, "Rotation: %d positions\n", r.Result.Rotation)
	fmt.Fprintf(&b, "Original length: %d\n", len(r.Original))
	fmt.Fprintf(&b, "Reconstructed length: %d\n", len(r.Reconstructed))
	fmt.Fprintf(&b, "Original snippet: %s\n", snippet(r.Original))
	fmt.Fprintf(&b, "Reconstructed snippet: %s\n", snippet(r.Reconstructed))
	fmt.Fprintf(&b, "Reconstructed sequence:\n%s\n", r.Reconstructed)

	n, err := io.WriteString(w, b.String())

	return int64(n), err
}

// snippet returns the leading excerpt of seq, elided when truncated.
func snippet(seq string) string {
	if len(seq) <= snippetLen {
		return seq
	}

	return seq[:snippetLen] + "..."
}
