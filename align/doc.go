// Package align scores a reconstructed sequence against its original,
// either position-by-position (linear) or over every cyclic rotation of
// the candidate (circular).
//
// What:
//
//   - Score: counts matches and mismatches over the shorter of the two
//     lengths, applies a per-symbol length penalty for the difference,
//     and reports percent identity. In circular mode it tries all
//     rotations of the candidate and keeps the first strictly best one,
//     recording the winning offset and the rotated string.
//   - Result: the full score breakdown (matches, mismatches, length
//     difference, base score, penalty, identity, rotation, aligned
//     candidate).
//
// Why:
//   - A correct assembly of a circular sequence is only equal to the
//     original up to rotation: the Eulerian walk may enter the cycle
//     anywhere. The rotation search makes the round-trip property
//     testable without fixing an origin.
//
// Tie-break contract:
//
//	The rotation search compares with strict > — of several equally good
//	rotations the first (lowest offset) wins. Keep this in mind before
//	swapping the O(n²) search for anything cleverer; the tie-break is
//	part of the observable behavior.
//
// Complexity:
//
//   - Linear:   Time O(n), Memory O(1).
//   - Circular: Time O(n²), Memory O(n) for the rotated candidate.
package align
