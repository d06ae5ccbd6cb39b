// Package seqio handles the text formats around the assembly engine:
// sequence files, k-mer lists, synthetic read sets, and the per-run
// report file naming used by the sweep driver.
//
// What:
//
//   - ReadSequence: one sequence from a plain-text file (newlines
//     stripped and concatenated) or from FASTA (detected by extension or
//     a leading '>'; records are concatenated).
//   - ReadKmers / WriteKmers: one k-mer per line, blank lines ignored.
//   - Reads / WriteReads: break a sequence into fixed-length reads whose
//     consecutive windows overlap by one symbol, and persist them.
//   - ReportPath: the output_k<K>_missing<P>.txt naming scheme.
//
// Why:
//   - The engine itself stays free of file I/O; everything that touches
//     the filesystem funnels through here, so the CLI and the sweep
//     driver share one set of formats.
//
// Errors:
//
//	Plain wrapped I/O and FASTA parse errors; no sentinel taxonomy of
//	its own.
package seqio
