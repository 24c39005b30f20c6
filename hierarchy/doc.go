// Package hierarchy turns an ordered complete-linkage merge list plus a
// sorted sequence of dissimilarity cutoffs into a layered cluster
// hierarchy, and derives the representative, spanning-tree and
// reordered-link-list views a downstream cluster-file writer needs.
//
// Usage:
//
//	h, assignment, err := hierarchy.Build(merges, n, cutoffs)
//	hierarchy.SortBySortKey(h, sortKey)
//	rep, err := hierarchy.Representative(h, 0, groupIndex)
//	tree, err := hierarchy.SpanningTree(h, groupIndex, hierarchy.EdgesFromLinks(originalLinks, n))
//
// Build runs in O(n * k) time for k cutoffs, dominated by k independent
// union-find passes over the merge list.
package hierarchy
