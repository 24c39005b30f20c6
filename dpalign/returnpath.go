package dpalign

import (
	"github.com/katalvlaran/ssapcore/pathstep"
	"github.com/katalvlaran/ssapcore/winmatrix"
)

// returnPathMatrix wraps a windowed matrix of pathstep.Step. For every
// in-band cell it stores the locally-optimal next move toward the end of
// the two sequences (NOT toward the start — see traceback).
type returnPathMatrix struct {
	m *winmatrix.Matrix[pathstep.Step]
}

func newReturnPathMatrix(lengthA, lengthB, window int) (*returnPathMatrix, error) {
	m, err := winmatrix.New[pathstep.Step](lengthA, lengthB, window)
	if err != nil {
		return nil, err
	}
	return &returnPathMatrix{m: m}, nil
}

func (r *returnPathMatrix) setStep(i, j int, s pathstep.Step) error {
	return r.m.Set(i, j, s)
}

func (r *returnPathMatrix) getStep(i, j int) (pathstep.Step, error) {
	return r.m.Get(i, j)
}

// traceback walks from (0, 0) to the terminal cell (lengthA, lengthB),
// emitting the stored step at each in-band cell. Once one coordinate runs
// past its sequence's length the only legal remaining move is to keep
// draining the other sequence with the corresponding insertion step (no
// further decision is possible, since the DP's boundary convention scores
// that drain as free — see the score-accumulation boundary rule).
func (r *returnPathMatrix) traceback() []pathstep.Step {
	n, m := r.m.LengthA(), r.m.LengthB()
	var steps []pathstep.Step
	i, j := 0, 0
	for i < n || j < m {
		var step pathstep.Step
		switch {
		case i < n && j < m:
			s, err := r.getStep(i, j)
			if err != nil {
				// The DP population always stores a step for every
				// in-band cell it visits, and traceback only ever
				// follows the path that population laid down, so this
				// would indicate an internal consistency failure.
				panic("dpalign: traceback stepped onto an un-set cell")
			}
			step = s
		case i < n:
			step = pathstep.InsertIntoFirst
		default:
			step = pathstep.InsertIntoSecond
		}
		steps = append(steps, step)
		i, j = pathstep.NextIndices(step, i, j)
	}
	return steps
}
