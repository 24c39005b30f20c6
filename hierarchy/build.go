package hierarchy

import "github.com/katalvlaran/ssapcore/cluster"

// Build converts an ordered merge list plus a sorted-ascending sequence of
// cutoffs into a layered Hierarchy. Layer 0 (the shallowest) is drawn at
// the loosest (last) cutoff; the deepest layer is drawn at the tightest
// (first) cutoff and holds only Entry values, since it has no deeper
// layer to reference. Every item therefore appears exactly once in the
// deepest layer and is reached from every shallower layer via a chain of
// Cluster references — an item merged at no cutoff simply ends up a
// singleton group, threaded up unchanged through every layer.
//
// merges must be sorted ascending by dissimilarity (cluster.Run's output
// already is). cutoffs must be sorted ascending and non-empty.
//
// Build also returns, for each item, the tuple of group indices it
// belongs to at each layer (shallowest first) — the "cluster assignment"
// derived output.
func Build(merges []cluster.Merge, n int, cutoffs []float32) (Hierarchy, [][]int, error) {
	if n <= 0 || len(cutoffs) == 0 {
		return nil, nil, ErrInvalidInput
	}
	for i := 1; i < len(cutoffs); i++ {
		if cutoffs[i] < cutoffs[i-1] {
			return nil, nil, ErrInvalidInput
		}
	}

	boundaries := mergeCutoffBoundaries(merges, cutoffs)
	idSpace := n + len(merges)
	k := len(cutoffs)

	layers := make([]Layer, k)

	deepDSU := newDSU(idSpace)
	applyMerges(deepDSU, merges, boundaries[0])
	deepMembers, itemGroup := deepDSU.groups(n)
	layers[k-1] = make(Layer, len(deepMembers))
	for gi, members := range deepMembers {
		g := make(Group, len(members))
		for vi, item := range members {
			g[vi] = Value{Kind: Entry, Index: item}
		}
		layers[k-1][gi] = g
	}

	assignment := make([][]int, n)
	for item := 0; item < n; item++ {
		assignment[item] = make([]int, k)
		assignment[item][k-1] = itemGroup[item]
	}

	prevItemGroup := itemGroup
	prevGroupCount := len(deepMembers)

	for li := k - 2; li >= 0; li-- {
		d := newDSU(idSpace)
		applyMerges(d, merges, boundaries[k-1-li])
		hereMembers, hereItemGroup := d.groups(n)
		groupCount := len(hereMembers)
		layer := make(Layer, groupCount)
		attached := make([]bool, prevGroupCount)
		for item := 0; item < n; item++ {
			hereG := hereItemGroup[item]
			deepG := prevItemGroup[item]
			if !attached[deepG] {
				attached[deepG] = true
				layer[hereG] = append(layer[hereG], Value{Kind: Cluster, Index: deepG})
			}
			assignment[item][li] = hereG
		}
		layers[li] = layer

		prevItemGroup = hereItemGroup
		prevGroupCount = groupCount
	}

	return Hierarchy(layers), assignment, nil
}

// mergeCutoffBoundaries returns, for each cutoff, the count of merges
// (from the start of the ascending-sorted list) with dissimilarity <=
// that cutoff — an upper_bound partition, so a merge exactly at a cutoff
// falls in the tighter region before it.
func mergeCutoffBoundaries(merges []cluster.Merge, cutoffs []float32) []int {
	boundaries := make([]int, len(cutoffs))
	idx := 0
	for i, c := range cutoffs {
		for idx < len(merges) && merges[idx].Dissim <= c {
			idx++
		}
		boundaries[i] = idx
	}
	return boundaries
}

// applyMerges folds the first count merges into d. Each merge unions its
// two endpoints and also unions the new cluster id into the same
// component, so that a later merge referencing that new id (as it always
// does once the cluster participates again) still resolves to the same
// set of original items.
func applyMerges(d *dsu, merges []cluster.Merge, count int) {
	for i := 0; i < count; i++ {
		m := merges[i]
		d.union(m.A, m.B)
		d.union(m.A, m.New)
	}
}
