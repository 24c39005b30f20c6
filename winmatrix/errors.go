// Package winmatrix provides a memory-efficient rectangular matrix that is
// restricted to a window around the leading diagonal, as used by the
// return-path and score-accumulation matrices of the windowed DP aligner.
//
// Only cells within the requested band are storable; the mapping from
// (i, j) to the underlying flat storage is hidden behind Get/Set.
package winmatrix

import "errors"

// Sentinel errors for windowed-matrix construction and access.
var (
	// ErrInvalidShape indicates a zero length or a window narrower than
	// 1 + |lengthA - lengthB|.
	ErrInvalidShape = errors.New("winmatrix: invalid shape")

	// ErrInvalidIndex indicates an out-of-band (i, j) access.
	ErrInvalidIndex = errors.New("winmatrix: index out of band")
)
