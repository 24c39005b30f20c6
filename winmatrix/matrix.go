package winmatrix

// Matrix is a rectangular lengthA x lengthB matrix restricted to a diagonal
// band of the requested width. Indices are 0-based: i in [0, lengthA),
// j in [0, lengthB). Cells outside the band are neither stored nor
// accessible; Get/Set on them return ErrInvalidIndex.
//
// Construction requires lengthA >= 1, lengthB >= 1 and
// window >= 1 + |lengthA - lengthB|. When the excess (window minus the
// minimal central band) is odd and lengthA == lengthB, the stored band is
// silently widened by one so that swapping lengthA and lengthB produces the
// exact transpose of the original storable cells.
type Matrix[T any] struct {
	lengthA, lengthB int
	upper, lower     int // band widths either side of the leading diagonal
	window           int // actual stored window width (>= requested)
	data             []T
}

// New constructs a Matrix with the given dimensions and requested window.
func New[T any](lengthA, lengthB, window int) (*Matrix[T], error) {
	m := &Matrix[T]{}
	if err := m.Reset(lengthA, lengthB, window); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset reinitialises the matrix for reuse with new dimensions, clearing
// all previously stored values.
func (m *Matrix[T]) Reset(lengthA, lengthB, window int) error {
	upper, lower, err := UpperLowerWidths(lengthA, lengthB, window)
	if err != nil {
		return err
	}
	m.lengthA = lengthA
	m.lengthB = lengthB
	m.upper = upper
	m.lower = lower
	m.window = upper + lower + 1
	m.data = make([]T, lengthB*m.window)
	return nil
}

// LengthA returns the number of rows (the length of the first sequence).
func (m *Matrix[T]) LengthA() int { return m.lengthA }

// LengthB returns the number of columns (the length of the second sequence).
func (m *Matrix[T]) LengthB() int { return m.lengthB }

// Window returns the actual stored band width, which may be one larger
// than originally requested (see the symmetry note on Matrix).
func (m *Matrix[T]) Window() int { return m.window }

// WindowStartA returns the smallest in-band row index for column j.
func (m *Matrix[T]) WindowStartA(j int) int {
	return windowStartA(m.lengthA, m.upper, j)
}

// WindowStopA returns the largest in-band row index for column j.
func (m *Matrix[T]) WindowStopA(j int) int {
	return windowStopA(m.lengthA, m.lower, j)
}

// rowOffsetBase is the (possibly negative / possibly >= lengthA) row index
// that would align with the top of column j's physical storage block were
// the band unclamped.
func (m *Matrix[T]) rowOffsetBase(j int) int {
	return j - m.upper
}

// slot computes the flat storage index for (i, j), assuming it is in-band.
func (m *Matrix[T]) slot(i, j int) int {
	return j*m.window + (i - m.rowOffsetBase(j))
}

func (m *Matrix[T]) inBand(i, j int) bool {
	if j < 0 || j >= m.lengthB {
		return false
	}
	return i >= m.WindowStartA(j) && i <= m.WindowStopA(j)
}

// Get returns the value stored at (i, j), or ErrInvalidIndex if (i, j) is
// not in the band.
func (m *Matrix[T]) Get(i, j int) (T, error) {
	var zero T
	if !m.inBand(i, j) {
		return zero, ErrInvalidIndex
	}
	return m.data[m.slot(i, j)], nil
}

// Set stores v at (i, j), or returns ErrInvalidIndex if (i, j) is not in
// the band.
func (m *Matrix[T]) Set(i, j int, v T) error {
	if !m.inBand(i, j) {
		return ErrInvalidIndex
	}
	m.data[m.slot(i, j)] = v
	return nil
}

// UpperLowerWidths computes the band widths either side of the leading
// diagonal for a lengthA x lengthB matrix with the given requested window,
// resolving the odd-excess/square-matrix symmetry case by widening both
// sides by one.
func UpperLowerWidths(lengthA, lengthB, window int) (upper, lower int, err error) {
	if lengthA < 1 || lengthB < 1 {
		return 0, 0, ErrInvalidShape
	}
	diff := lengthA - lengthB
	absDiff := diff
	if absDiff < 0 {
		absDiff = -absDiff
	}
	if window < 1+absDiff {
		return 0, 0, ErrInvalidShape
	}

	upper = (window - 1 - diff) / 2
	lower = (window - 1 + diff) / 2

	// Any increments below are decided from the pre-increment widths, so
	// that the two decisions can't interfere with each other.
	tooNarrow := upper+lower+1 < window
	upperLEQLower := upper <= lower
	upperGEQLower := upper >= lower
	if tooNarrow && upperLEQLower {
		upper++
	}
	if tooNarrow && upperGEQLower {
		lower++
	}
	return upper, lower, nil
}

// windowStartA returns the smallest in-band row index (0-based) for the
// given column, clamped to [0, lengthA).
func windowStartA(lengthA, upper, j int) int {
	start := j - upper
	if start < 0 {
		start = 0
	}
	if start > lengthA-1 {
		start = lengthA - 1
	}
	return start
}

// windowStopA returns the largest in-band row index (0-based) for the
// given column, clamped to [0, lengthA).
func windowStopA(lengthA, lower, j int) int {
	stop := j + lower
	if stop < 0 {
		stop = 0
	}
	if stop > lengthA-1 {
		stop = lengthA - 1
	}
	return stop
}

// FullWindow returns a window width large enough that no cell is pruned
// for a lengthA x lengthB matrix (spec's "full-matrix width").
func FullWindow(lengthA, lengthB int) int {
	return lengthA + lengthB
}
