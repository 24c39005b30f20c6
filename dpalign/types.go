package dpalign

import (
	"github.com/katalvlaran/ssapcore/pathstep"
)

// Score is the integer type the DP recurrence is defined over. It is kept
// 32-bit to match the source's precision choices and to guarantee exact,
// reproducible arithmetic.
type Score = int32

// ScoreSource supplies the per-cell pairwise score the aligner consumes.
// Implementations are queried only for in-band (i, j) with
// 0 <= i < LengthA() and 0 <= j < LengthB(); the aligner never calls
// Score outside that domain.
type ScoreSource interface {
	LengthA() int
	LengthB() int
	Score(i, j int) Score
}

// Options configures a single Align call.
type Options struct {
	// GapPenalty is the non-negative per-step cost of an InsertIntoFirst
	// or InsertIntoSecond move.
	GapPenalty Score

	// Window is the requested diagonal band width. Zero selects
	// FullWindow, which performs no pruning; any other value less than
	// 1+|lengthA-lengthB| makes Align fail with ErrInvalidShape.
	Window int
}

// DefaultOptions returns zero gap penalty and a full (unwindowed) matrix.
func DefaultOptions() Options {
	return Options{GapPenalty: 0, Window: 0}
}

// Validate checks GapPenalty is non-negative. Window compatibility is
// checked against the actual sequence lengths inside Align, since Options
// alone doesn't know them.
func (o *Options) Validate() error {
	if o.GapPenalty < 0 {
		return ErrInvalidShape
	}
	return nil
}

// Alignment is the output of Align: the total score and the ordered list
// of path steps tracing (0, 0) to the terminal cell.
type Alignment struct {
	TotalScore Score
	Steps      []pathstep.Step
}

// GapStats counts the number of gap-openings and gap-extensions implied by
// the alignment's path steps, where a run of k consecutive insertion steps
// (InsertIntoFirst or InsertIntoSecond, in any mix) counts as 1 opening and
// k-1 extensions. This is the primitive behind the gap-counting invariant
// in the module's test suite (e.g. "A-B" -> (1, 0), "A---B" -> (1, 2)).
func (al Alignment) GapStats() (openings, extensions int) {
	inRun := false
	for _, s := range al.Steps {
		if !pathstep.ChargesGapPenalty(s) {
			inRun = false
			continue
		}
		if !inRun {
			openings++
			inRun = true
		} else {
			extensions++
		}
	}
	return openings, extensions
}
