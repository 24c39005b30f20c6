// Package dpalign implements the windowed dynamic-programming pairwise
// aligner at the core of the SSAP/SNAP-style structure comparison
// pipeline: given two abstract sequences of length n and m, a gap
// penalty, and an optional diagonal band width, it finds a maximum-score
// alignment path through the (n+1) x (m+1) edit grid.
//
// Key properties:
//   - scores are supplied by a caller-implemented ScoreSource, so the
//     aligner is agnostic to what's being compared (sequence identity,
//     residue-view geometry, an arbitrary precomputed matrix);
//   - an optional window restricts the DP to a diagonal band, trading
//     alignment generality for the winmatrix package's sub-quadratic
//     storage;
//   - ties between the diagonal, up and left moves are broken by a fixed
//     five-step precedence so two runs over identical input always
//     produce the identical path (see chooseStep);
//   - the aligner is total over its declared domain: the only failure
//     mode is ErrInvalidShape on a malformed shape (zero length, a
//     non-zero window narrower than 1 plus the two sequences' length
//     difference) or a negative gap penalty.
//
// Usage:
//
//	opts := dpalign.DefaultOptions()
//	opts.GapPenalty = 2
//	alignment, err := dpalign.Align(scoreSource, opts)
//	openings, extensions := alignment.GapStats()
//
// Performance: O(m*w) time and storage for a window of width w, via
// winmatrix.Matrix's banded storage; with no window, w is n+m.
package dpalign
