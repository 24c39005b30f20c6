package dpalign

import (
	"github.com/katalvlaran/ssapcore/winmatrix"
)

// scoreAccumulationMatrix wraps a windowed matrix of Score. Cell (i, j)
// holds the best achievable score from (i, j) to the terminal cell.
type scoreAccumulationMatrix struct {
	m *winmatrix.Matrix[Score]
}

func newScoreAccumulationMatrix(lengthA, lengthB, window int) (*scoreAccumulationMatrix, error) {
	m, err := winmatrix.New[Score](lengthA, lengthB, window)
	if err != nil {
		return nil, err
	}
	return &scoreAccumulationMatrix{m: m}, nil
}

func (s *scoreAccumulationMatrix) set(i, j int, v Score) error {
	return s.m.Set(i, j, v)
}

// get returns the best score from (i, j) to the end. The two synthetic
// one-past-the-end indices (i == lengthA or j == lengthB) always read as
// 0, matching the legacy boundary convention: once either sequence is
// exhausted, the DP treats the remainder as already fully (and freely)
// resolved.
//
// Every other index get is called with must already be known in-band:
// the population loop in Align checks InsertIntoFirst/InsertIntoSecond
// eligibility against the window before ever reaching here, since an
// in-domain but out-of-band successor is an ineligible candidate, not a
// boundary — it must never be scored as 0.
func (s *scoreAccumulationMatrix) get(i, j int) Score {
	if i >= s.m.LengthA() || j >= s.m.LengthB() {
		return 0
	}
	v, err := s.m.Get(i, j)
	if err != nil {
		panic("dpalign: get called on an out-of-band, non-boundary cell")
	}
	return v
}
