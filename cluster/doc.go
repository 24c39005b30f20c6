// Package cluster implements agglomerative complete-linkage clustering via
// the nearest-neighbour-chain (NN-chain) algorithm over a sparse undirected
// weighted link graph.
//
// Key properties:
//   - complete linkage: a merged cluster's dissimilarity to every other
//     cluster is the max over its two constituents' dissimilarities, so
//     the tightest possible clusters form first;
//   - NN-chain guarantees O((n+|E|) log n) amortised time rather than the
//     naive O(n^3) all-pairs-at-every-step scan, by following a chain of
//     mutual-nearest-neighbour candidates down to a reciprocal pair
//     before merging;
//   - merges are returned as a flat, dissimilarity-ascending list, ready
//     for hierarchy.Build to fold into a layered hierarchy, or for
//     clustfile.WriteMergeList to serialise directly;
//   - ties between equal dissimilarities go to the lower sort key, then
//     to the chain's previous cluster, then to the earlier link in the
//     link list, so two runs over identical input and link order produce
//     byte-identical output.
//
// Usage:
//
//	g := linkgraph.NewGraph(n)
//	// ... g.AddLink(a, b, dissim) for every known pair ...
//	merges, err := cluster.Run(g, n, sortKeys, cluster.DefaultOptions())
//
// Run mutates g destructively (merged clusters' link lists are folded
// together and retired lists freed) and is not safe to call twice on the
// same Graph.
package cluster
