package dpalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ssapcore/pathstep"
	"github.com/katalvlaran/ssapcore/winmatrix"
)

// matrixScoreSource is a test double that serves a fixed score matrix.
type matrixScoreSource struct {
	lengthA, lengthB int
	scores           [][]Score
}

func (s *matrixScoreSource) LengthA() int { return s.lengthA }
func (s *matrixScoreSource) LengthB() int { return s.lengthB }
func (s *matrixScoreSource) Score(i, j int) Score {
	return s.scores[i][j]
}

func uniformSource(n, m int, v Score) *matrixScoreSource {
	rows := make([][]Score, n)
	for i := range rows {
		row := make([]Score, m)
		for j := range row {
			row[j] = v
		}
		rows[i] = row
	}
	return &matrixScoreSource{lengthA: n, lengthB: m, scores: rows}
}

func TestMaxOfThreeScoresFixtures(t *testing.T) {
	assert.Equal(t, Score(1564), MaxOfThreeScores(map[pathstep.Step]Score{
		pathstep.AlignPair:        0,
		pathstep.InsertIntoFirst:  1564,
		pathstep.InsertIntoSecond: -50,
	}))
	assert.Equal(t, Score(1), MaxOfThreeScores(map[pathstep.Step]Score{
		pathstep.AlignPair:        1,
		pathstep.InsertIntoFirst:  -1,
		pathstep.InsertIntoSecond: -1,
	}))
}

func TestAlignRejectsInvalidOptions(t *testing.T) {
	src := uniformSource(3, 3, 1)
	_, err := Align(src, Options{GapPenalty: -1})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestAlignRejectsEmptySequence(t *testing.T) {
	src := uniformSource(0, 3, 1)
	_, err := Align(src, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestAlignDiagonalPerfectMatch(t *testing.T) {
	// A strong bonus only on the diagonal and a real gap cost should force
	// a pure AlignPair path through a square, equal-length pair.
	n := 5
	src := uniformSource(n, n, -100)
	for i := 0; i < n; i++ {
		src.scores[i][i] = 100
	}
	al, err := Align(src, Options{GapPenalty: 10, Window: winmatrix.FullWindow(n, n)})
	require.NoError(t, err)
	require.Len(t, al.Steps, n)
	for _, s := range al.Steps {
		assert.Equal(t, pathstep.AlignPair, s)
	}
	assert.Equal(t, Score(500), al.TotalScore)
}

func TestAlignSymmetricUnderSequenceSwap(t *testing.T) {
	// Swapping the two sequences (transposing the score source) should
	// yield the same total score, mirroring the matrix's transpose
	// guarantee.
	n, m := 4, 6
	fwd := uniformSource(n, m, 0)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			fwd.scores[i][j] = Score((i + 1) * (j + 1))
		}
	}
	rev := uniformSource(m, n, 0)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			rev.scores[i][j] = fwd.scores[j][i]
		}
	}

	alFwd, err := Align(fwd, Options{GapPenalty: 2, Window: winmatrix.FullWindow(n, m)})
	require.NoError(t, err)
	alRev, err := Align(rev, Options{GapPenalty: 2, Window: winmatrix.FullWindow(m, n)})
	require.NoError(t, err)
	assert.Equal(t, alFwd.TotalScore, alRev.TotalScore)
}

func TestAlignWindowMonotonicity(t *testing.T) {
	// A narrower window can never score higher than the full window, since
	// the full window's search space is a superset.
	n, m := 6, 6
	src := uniformSource(n, m, 0)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			src.scores[i][j] = Score((i - j) * (i - j))
		}
	}
	full, err := Align(src, Options{GapPenalty: 1, Window: winmatrix.FullWindow(n, m)})
	require.NoError(t, err)
	narrow, err := Align(src, Options{GapPenalty: 1, Window: 1})
	require.NoError(t, err)
	assert.LessOrEqual(t, narrow.TotalScore, full.TotalScore)
}

func TestAlignNarrowWindowExcludesOutOfBandInsertion(t *testing.T) {
	// At window 1 on a square 4x4 matrix, only the leading diagonal is
	// in-band: InsertIntoFirst/InsertIntoSecond are illegal everywhere
	// except the very last row/column. A hugely negative diagonal score
	// at (2, 2) must still force AlignPair there, even though a bogus
	// insertion "scored" as the boundary value of 0 would otherwise beat
	// it: the cells such an insertion would land on, (3, 2) and (2, 3),
	// are real in-domain cells the sweep never populates, not the
	// one-past-the-end boundary.
	n, m := 4, 4
	src := uniformSource(n, m, 0)
	src.scores[0][0] = 10
	src.scores[1][1] = 50
	src.scores[2][2] = -200
	src.scores[3][3] = 100

	al, err := Align(src, Options{GapPenalty: 2, Window: 1})
	require.NoError(t, err)
	require.Len(t, al.Steps, n)
	for _, s := range al.Steps {
		assert.Equal(t, pathstep.AlignPair, s)
	}
	assert.Equal(t, Score(-40), al.TotalScore)

	i, j := 0, 0
	for _, s := range al.Steps {
		i, j = pathstep.NextIndices(s, i, j)
	}
	assert.Equal(t, n, i)
	assert.Equal(t, m, j)
}

func TestAlignTracebackReachesTerminus(t *testing.T) {
	n, m := 5, 3
	src := uniformSource(n, m, 1)
	al, err := Align(src, Options{GapPenalty: 1, Window: winmatrix.FullWindow(n, m)})
	require.NoError(t, err)

	i, j := 0, 0
	for _, s := range al.Steps {
		i, j = pathstep.NextIndices(s, i, j)
	}
	assert.Equal(t, n, i)
	assert.Equal(t, m, j)
}

func TestGapStatsFixtures(t *testing.T) {
	cases := []struct {
		name               string
		steps              []pathstep.Step
		openings, extensions int
	}{
		{
			name:     "A-B",
			steps:    []pathstep.Step{pathstep.AlignPair, pathstep.InsertIntoFirst, pathstep.AlignPair},
			openings: 1, extensions: 0,
		},
		{
			name: "A---B",
			steps: []pathstep.Step{
				pathstep.AlignPair,
				pathstep.InsertIntoFirst, pathstep.InsertIntoFirst, pathstep.InsertIntoFirst,
				pathstep.AlignPair,
			},
			openings: 1, extensions: 2,
		},
		{
			name: "A-B-C",
			steps: []pathstep.Step{
				pathstep.AlignPair, pathstep.InsertIntoSecond, pathstep.AlignPair,
				pathstep.InsertIntoSecond, pathstep.AlignPair,
			},
			openings: 2, extensions: 0,
		},
		{
			name: "A---B---C",
			steps: []pathstep.Step{
				pathstep.AlignPair,
				pathstep.InsertIntoFirst, pathstep.InsertIntoFirst, pathstep.InsertIntoFirst,
				pathstep.AlignPair,
				pathstep.InsertIntoSecond, pathstep.InsertIntoSecond, pathstep.InsertIntoSecond,
				pathstep.AlignPair,
			},
			openings: 2, extensions: 4,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			al := Alignment{Steps: tc.steps}
			openings, extensions := al.GapStats()
			assert.Equal(t, tc.openings, openings)
			assert.Equal(t, tc.extensions, extensions)
		})
	}
}
