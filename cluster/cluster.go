package cluster

import (
	"math"
	"sort"

	"github.com/katalvlaran/ssapcore/linkgraph"
)

// Run computes the ordered complete-linkage merge history for n items
// joined by the links recorded in graph, breaking ties in favour of lower
// sortKey values. graph is consumed destructively: merged clusters' link
// lists are cleared as the run progresses.
//
// sortKey must have length n; sortKey[i] is item i's tie-break preference
// (lower sorts earlier). graph must hold exactly n ids (graph.Size() == n),
// as linkgraph.NewGraph(n) builds it: each new cluster id is grown in graph
// and must equal the pot's next id, so a graph of any other size makes Run
// return ErrUnreachable.
func Run(graph *linkgraph.Graph, n int, sortKey []int, opts Options) ([]Merge, error) {
	if n <= 0 || len(sortKey) != n {
		return nil, ErrInvalidInput
	}

	pot := newPot(n)
	keys := make([]int, n, n*2)
	copy(keys, sortKey)

	var results []Merge
	var chain []int
	numClusters := n

	for numClusters > 1 {
		var a, b int
		if len(chain) < 4 {
			a = pot.nth(0)
			b = pot.nth(1)
			chain = []int{a}
		} else {
			a = chain[len(chain)-4]
			b = chain[len(chain)-3]
			chain = chain[:len(chain)-3]
		}

		var dist float32
		for {
			active := graph.CompactActive(a, pot.has)
			target, tdist, found := nearest(active, b, keys)
			b = a
			if !found {
				a = pot.minExcluding(a)
				dist = float32(math.Inf(1))
			} else {
				a = target
				dist = tdist
			}
			chain = append(chain, a)
			if len(chain) >= 3 && a == chain[len(chain)-3] {
				break
			}
		}

		pot.remove(a)
		pot.remove(b)

		newID := pot.addNew()
		if newID != graph.Grow() {
			return nil, ErrUnreachable
		}
		if newID != len(keys) {
			return nil, ErrUnreachable
		}
		keys = append(keys, minInt(keys[a], keys[b]))

		mergeLinks(graph, a, b, newID, pot.has)

		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		results = append(results, Merge{A: lo, B: hi, New: newID, Dissim: dist})
		numClusters--
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Dissim < results[j].Dissim
	})

	if opts.Cutoff != nil {
		cutoff := *opts.Cutoff
		end := len(results)
		for i, m := range results {
			if m.Dissim > cutoff {
				end = i
				break
			}
		}
		results = results[:end]
	}

	return results, nil
}

// nearest scans links for the lexicographically smallest
// (dissim, sortKey[target], target-is-not-b) key, implementing the
// "closest neighbour, ties to lower sort key, ties to b" rule.
func nearest(links []linkgraph.Link, b int, sortKey []int) (target int, dissim float32, found bool) {
	var bestSortKey int
	var bestIsNotB int
	for _, l := range links {
		isNotB := 1
		if l.Target == b {
			isNotB = 0
		}
		if !found || lessKey(l.Dissim, sortKey[l.Target], isNotB, dissim, bestSortKey, bestIsNotB) {
			found = true
			target = l.Target
			dissim = l.Dissim
			bestSortKey = sortKey[l.Target]
			bestIsNotB = isNotB
		}
	}
	return target, dissim, found
}

func lessKey(d1 float32, s1, n1 int, d2 float32, s2, n2 int) bool {
	if d1 != d2 {
		return d1 < d2
	}
	if s1 != s2 {
		return s1 < s2
	}
	return n1 < n2
}

// mergeLinks folds a's and b's link lists into newID's list: a target
// present in both, and still active, gets a half-edge of
// max(dist-to-a, dist-to-b); a target present in only one list is
// discarded (complete-linkage treats the missing side as +Inf). a and b's
// own lists are then cleared.
func mergeLinks(graph *linkgraph.Graph, a, b, newID int, active func(int) bool) {
	distA := make(map[int]float32, len(graph.Links(a)))
	for _, l := range graph.Links(a) {
		distA[l.Target] = l.Dissim
	}

	var merged []linkgraph.Link
	for _, l := range graph.Links(b) {
		da, ok := distA[l.Target]
		if !ok || !active(l.Target) {
			continue
		}
		merged = append(merged, linkgraph.Link{Target: l.Target, Dissim: maxFloat32(da, l.Dissim)})
	}

	graph.SetLinks(newID, merged)
	for _, l := range merged {
		graph.SetLinks(l.Target, append(graph.Links(l.Target), linkgraph.Link{Target: newID, Dissim: l.Dissim}))
	}

	graph.Clear(a)
	graph.Clear(b)
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
