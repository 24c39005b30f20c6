package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ssapcore/linkgraph"
)

func fourItemGraph(t *testing.T) *linkgraph.Graph {
	t.Helper()
	g := linkgraph.NewGraph(4)
	require.NoError(t, g.AddLink(0, 1, 2))
	require.NoError(t, g.AddLink(0, 2, 6))
	require.NoError(t, g.AddLink(0, 3, 10))
	require.NoError(t, g.AddLink(1, 2, 5))
	require.NoError(t, g.AddLink(1, 3, 9))
	require.NoError(t, g.AddLink(2, 3, 4))
	return g
}

func TestRunProducesExpectedMergeTree(t *testing.T) {
	g := fourItemGraph(t)
	merges, err := Run(g, 4, []int{0, 1, 2, 3}, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, merges, 3)

	assert.Equal(t, Merge{A: 0, B: 1, New: 4, Dissim: 2}, merges[0])
	assert.Equal(t, Merge{A: 2, B: 3, New: 5, Dissim: 4}, merges[1])
	assert.Equal(t, Merge{A: 4, B: 5, New: 6, Dissim: 10}, merges[2])
}

func TestMergeOrderIsNonDecreasing(t *testing.T) {
	g := fourItemGraph(t)
	merges, err := Run(g, 4, []int{0, 1, 2, 3}, DefaultOptions())
	require.NoError(t, err)
	for i := 1; i < len(merges); i++ {
		assert.LessOrEqual(t, merges[i-1].Dissim, merges[i].Dissim)
	}
}

func TestCompleteLinkageLawHoldsForEveryMerge(t *testing.T) {
	// Recompute, from scratch, the pairwise distance implied by the leaf
	// sets merged at each step, and check the recorded dissimilarity
	// equals the max over both children's original distances to every
	// other leaf.
	dist := map[[2]int]float32{
		{0, 1}: 2, {0, 2}: 6, {0, 3}: 10,
		{1, 2}: 5, {1, 3}: 9, {2, 3}: 4,
	}
	pairDist := func(a, b int) float32 {
		if a > b {
			a, b = b, a
		}
		return dist[[2]int{a, b}]
	}

	g := fourItemGraph(t)
	merges, err := Run(g, 4, []int{0, 1, 2, 3}, DefaultOptions())
	require.NoError(t, err)

	leaves := map[int][]int{0: {0}, 1: {1}, 2: {2}, 3: {3}}
	for _, m := range merges {
		la, lb := leaves[m.A], leaves[m.B]
		var want float32 = -1
		for _, x := range la {
			for _, y := range lb {
				d := pairDist(x, y)
				if d > want {
					want = d
				}
			}
		}
		assert.Equal(t, want, m.Dissim, "merge %+v", m)
		leaves[m.New] = append(append([]int{}, la...), lb...)
	}
}

func TestRunIsDeterministicAcrossRuns(t *testing.T) {
	run := func() []Merge {
		g := fourItemGraph(t)
		merges, err := Run(g, 4, []int{0, 1, 2, 3}, DefaultOptions())
		require.NoError(t, err)
		return merges
	}
	assert.Equal(t, run(), run())
}

func TestCutoffTruncatesMergeList(t *testing.T) {
	g := fourItemGraph(t)
	cutoff := float32(4)
	merges, err := Run(g, 4, []int{0, 1, 2, 3}, Options{Cutoff: &cutoff})
	require.NoError(t, err)
	require.Len(t, merges, 2)
	for _, m := range merges {
		assert.LessOrEqual(t, m.Dissim, cutoff)
	}
}

func TestRunRejectsInvalidInput(t *testing.T) {
	g := linkgraph.NewGraph(3)
	_, err := Run(g, 0, nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Run(g, 3, []int{0, 1}, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRunHandlesIsolatedItemsWithInfiniteDissim(t *testing.T) {
	g := linkgraph.NewGraph(2) // no links at all between the two items
	merges, err := Run(g, 2, []int{0, 1}, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.True(t, merges[0].Dissim > 1e30) // +Inf, compared loosely
}
