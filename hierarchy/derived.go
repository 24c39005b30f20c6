package hierarchy

import (
	"sort"

	"github.com/katalvlaran/ssapcore/linkgraph"
	"github.com/katalvlaran/ssapcore/mst"
)

// Representative returns the first leaf reached by always following the
// first value of a group, starting at (layerIdx, groupIndex) and
// descending through Cluster references until an Entry is found. This is
// the "first leaf in depth-first traversal" representative used for the
// shallowest layer's top-level clusters.
func Representative(h Hierarchy, layerIdx, groupIndex int) (int, error) {
	for {
		if layerIdx < 0 || layerIdx >= len(h) {
			return 0, ErrUnreachable
		}
		layer := h[layerIdx]
		if groupIndex < 0 || groupIndex >= len(layer) || len(layer[groupIndex]) == 0 {
			return 0, ErrInvalidInput
		}
		v := layer[groupIndex][0]
		if v.Kind == Entry {
			return v.Index, nil
		}
		layerIdx++
		groupIndex = v.Index
	}
}

// Flatten collects every leaf item reachable from (layerIdx, groupIndex)
// by recursively following Cluster references down to Entry values. The
// returned order follows each group's value order, depth-first.
func Flatten(h Hierarchy, layerIdx, groupIndex int) []int {
	var out []int
	var walk func(li, gi int)
	walk = func(li, gi int) {
		for _, v := range h[li][gi] {
			if v.Kind == Entry {
				out = append(out, v.Index)
			} else {
				walk(li+1, v.Index)
			}
		}
	}
	walk(layerIdx, groupIndex)
	return out
}

// SortBySortKey reorders the values within every group (never the groups
// themselves, whose indices are load-bearing Cluster references) so that
// each group's values appear in ascending order of the sorting key of
// their first-reached leaf. It processes layers deepest-first, since a
// shallower group's ordering depends on its referenced deeper groups
// already having been sorted (a sorted group's first value is its
// minimum, the group's sort proxy).
func SortBySortKey(h Hierarchy, sortKey []int) {
	for li := len(h) - 1; li >= 0; li-- {
		layer := h[li]
		for _, group := range layer {
			sort.SliceStable(group, func(a, b int) bool {
				ka, _ := firstLeafKey(h, sortKey, li, group[a])
				kb, _ := firstLeafKey(h, sortKey, li, group[b])
				return ka < kb
			})
		}
	}
}

func firstLeafKey(h Hierarchy, sortKey []int, depth int, v Value) (int, error) {
	for v.Kind == Cluster {
		depth++
		if depth >= len(h) || v.Index < 0 || v.Index >= len(h[depth]) || len(h[depth][v.Index]) == 0 {
			return 0, ErrUnreachable
		}
		v = h[depth][v.Index][0]
	}
	return sortKey[v.Index], nil
}

// EdgesFromLinks converts a linkgraph.Graph's symmetric half-edges over
// items 0..n-1 into a deduplicated undirected edge list (U < V), suitable
// for mst.Kruskal and for the reordered-link-list derived output. Only
// ids in [0, n) are visited, since higher ids belong to clusters that
// have already been merged away by the time the original link set is
// wanted for these derived outputs.
func EdgesFromLinks(g *linkgraph.Graph, n int) []mst.Edge {
	var edges []mst.Edge
	for u := 0; u < n; u++ {
		for _, l := range g.Links(u) {
			if l.Target > u && l.Target < n {
				edges = append(edges, mst.Edge{U: u, V: l.Target, Weight: l.Dissim})
			}
		}
	}
	return edges
}

// SpanningTree computes the minimum spanning tree over the items reached
// from the shallowest layer's groupIndex, restricted to the given
// original (pre-clustering) link set.
func SpanningTree(h Hierarchy, groupIndex int, links []mst.Edge) ([]mst.Edge, error) {
	items := Flatten(h, 0, groupIndex)
	return mst.Kruskal(items, links)
}

// ReorderedLinks sorts links lexicographically by
// (min(sortKey[u], sortKey[v]), max(sortKey[u], sortKey[v])) and
// canonicalises each edge so U < V by item id — the stability fixture
// required by downstream TCluster-format consumers (spec.md §4.6).
func ReorderedLinks(links []mst.Edge, sortKey []int) []mst.Edge {
	out := make([]mst.Edge, len(links))
	for i, e := range links {
		u, v := e.U, e.V
		if u > v {
			u, v = v, u
		}
		out[i] = mst.Edge{U: u, V: v, Weight: e.Weight}
	}
	sort.SliceStable(out, func(i, j int) bool {
		minI, maxI := orderedPair(sortKey[out[i].U], sortKey[out[i].V])
		minJ, maxJ := orderedPair(sortKey[out[j].U], sortKey[out[j].V])
		if minI != minJ {
			return minI < minJ
		}
		return maxI < maxJ
	})
	return out
}

func orderedPair(a, b int) (lo, hi int) {
	if a <= b {
		return a, b
	}
	return b, a
}
