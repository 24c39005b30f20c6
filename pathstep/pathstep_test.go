package pathstep_test

import (
	"testing"

	"github.com/katalvlaran/ssapcore/pathstep"
	"github.com/stretchr/testify/assert"
)

func TestAllOrder(t *testing.T) {
	assert.Equal(t, []pathstep.Step{
		pathstep.AlignPair,
		pathstep.InsertIntoFirst,
		pathstep.InsertIntoSecond,
	}, pathstep.All())
}

func TestNextIndices(t *testing.T) {
	cases := []struct {
		step   pathstep.Step
		ni, nj int
	}{
		{pathstep.AlignPair, 6, 8},
		{pathstep.InsertIntoFirst, 6, 7},
		{pathstep.InsertIntoSecond, 5, 8},
	}
	for _, c := range cases {
		ni, nj := pathstep.NextIndices(c.step, 5, 7)
		assert.Equal(t, c.ni, ni, c.step.String())
		assert.Equal(t, c.nj, nj, c.step.String())
	}
}

func TestChargesGapPenalty(t *testing.T) {
	assert.False(t, pathstep.ChargesGapPenalty(pathstep.AlignPair))
	assert.True(t, pathstep.ChargesGapPenalty(pathstep.InsertIntoFirst))
	assert.True(t, pathstep.ChargesGapPenalty(pathstep.InsertIntoSecond))
}

func TestStringer(t *testing.T) {
	assert.Equal(t, "AlignPair", pathstep.AlignPair.String())
	assert.Equal(t, "InsertIntoFirst", pathstep.InsertIntoFirst.String())
	assert.Equal(t, "InsertIntoSecond", pathstep.InsertIntoSecond.String())
}
