package dpalign

import (
	"math"

	"github.com/katalvlaran/ssapcore/pathstep"
	"github.com/katalvlaran/ssapcore/winmatrix"
)

// Align computes the maximum-score alignment of src's two sequences under
// the given gap penalty and window, by populating the score-accumulation
// and return-path matrices from the bottom-right cell to the top-left and
// then tracing a path out from (0, 0).
//
// Complexity: O(m*w) time and memory, where w is the resolved window
// width (n+m when the caller requests the full matrix).
func Align(src ScoreSource, opts Options) (Alignment, error) {
	if err := opts.Validate(); err != nil {
		return Alignment{}, err
	}

	n, m := src.LengthA(), src.LengthB()
	if n < 1 || m < 1 {
		return Alignment{}, ErrInvalidShape
	}
	window := opts.Window
	if window == 0 {
		window = winmatrix.FullWindow(n, m)
	} else if window < 1+absInt(n-m) {
		return Alignment{}, ErrInvalidShape
	}

	acc, err := newScoreAccumulationMatrix(n, m, window)
	if err != nil {
		return Alignment{}, err
	}
	path, err := newReturnPathMatrix(n, m, window)
	if err != nil {
		return Alignment{}, err
	}

	gap := opts.GapPenalty
	ratioTarget := float64(n) / float64(m)

	for j := m - 1; j >= 0; j-- {
		start := acc.m.WindowStartA(j)
		stop := acc.m.WindowStopA(j)
		for i := stop; i >= start; i-- {
			scoreAlign := src.Score(i, j) + acc.get(i+1, j+1)

			scoreIns1 := ineligibleScore
			if insertIntoFirstEligible(acc, i, j) {
				scoreIns1 = acc.get(i+1, j) - gap
			}
			scoreIns2 := ineligibleScore
			if insertIntoSecondEligible(acc, i, j) {
				scoreIns2 = acc.get(i, j+1) - gap
			}

			best, step := chooseStep(ratioTarget, scoreAlign, scoreIns1, scoreIns2, i+1, j, i, j+1)
			if err := acc.set(i, j, best); err != nil {
				return Alignment{}, err
			}
			if err := path.setStep(i, j, step); err != nil {
				return Alignment{}, err
			}
		}
	}

	steps := path.traceback()
	return Alignment{TotalScore: acc.get(0, 0), Steps: steps}, nil
}

// ineligibleScore marks a candidate step whose successor cell falls
// outside its column's (or row's) window: a real, in-domain cell that
// was never populated, as opposed to the one-past-the-end boundary
// that acc.get legitimately scores as 0. It must never win maxScore
// against an actually-computed score.
const ineligibleScore Score = math.MinInt32

// insertIntoFirstEligible reports whether stepping from column j, row
// i to row i+1 stays legal: either sequence A is exhausted (the
// boundary convention, handled by acc.get) or row i+1 is still inside
// column j's window. It is false exactly at the top of the window,
// where spec.md forbids InsertIntoFirst.
func insertIntoFirstEligible(acc *scoreAccumulationMatrix, i, j int) bool {
	if i+1 >= acc.m.LengthA() {
		return true
	}
	return i+1 <= acc.m.WindowStopA(j)
}

// insertIntoSecondEligible reports whether stepping from row i, column
// j to column j+1 stays legal: either sequence B is exhausted or row i
// is still inside column j+1's window. It is false exactly at the
// bottom of the window, where spec.md forbids InsertIntoSecond.
func insertIntoSecondEligible(acc *scoreAccumulationMatrix, i, j int) bool {
	if j+1 >= acc.m.LengthB() {
		return true
	}
	return i >= acc.m.WindowStartA(j+1) && i <= acc.m.WindowStopA(j+1)
}

// chooseStep implements the five-step tie-break from the module's design:
//  1. Prefer AlignPair.
//  2. If only one insertion wins, take it.
//  3. Otherwise both insertions tie on score: prefer whichever insertion's
//     post-step row/col ratio is closer to n/m.
//  4. If still tied, prefer whichever is closer to a ratio of 1.0.
//  5. If still tied, prefer InsertIntoFirst.
func chooseStep(ratioTarget float64, scoreAlign, scoreIns1, scoreIns2 Score, i1, j1, i2, j2 int) (Score, pathstep.Step) {
	best := maxScore(scoreAlign, scoreIns1, scoreIns2)

	if scoreAlign == best {
		return best, pathstep.AlignPair
	}
	ins1Wins := scoreIns1 == best
	ins2Wins := scoreIns2 == best
	if ins1Wins && !ins2Wins {
		return best, pathstep.InsertIntoFirst
	}
	if ins2Wins && !ins1Wins {
		return best, pathstep.InsertIntoSecond
	}

	ratio1 := float64(i1) / float64(j1)
	ratio2 := float64(i2) / float64(j2)
	d1 := math.Abs(ratio1 - ratioTarget)
	d2 := math.Abs(ratio2 - ratioTarget)
	if d1 < d2 {
		return best, pathstep.InsertIntoFirst
	}
	if d2 < d1 {
		return best, pathstep.InsertIntoSecond
	}

	e1 := math.Abs(ratio1 - 1.0)
	e2 := math.Abs(ratio2 - 1.0)
	if e2 < e1 {
		return best, pathstep.InsertIntoSecond
	}
	return best, pathstep.InsertIntoFirst
}

func maxScore(a, b, c Score) Score {
	best := a
	if b > best {
		best = b
	}
	if c > best {
		best = c
	}
	return best
}

// MaxOfThreeScores returns the maximum of the three scores recorded for
// AlignPair, InsertIntoFirst and InsertIntoSecond in m. It is the
// "max-of-three" primitive exercised directly by the tie-break-determinism
// invariant.
func MaxOfThreeScores(m map[pathstep.Step]Score) Score {
	return maxScore(m[pathstep.AlignPair], m[pathstep.InsertIntoFirst], m[pathstep.InsertIntoSecond])
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
