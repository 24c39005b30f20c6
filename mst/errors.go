// Package mst computes a minimum spanning tree over a restricted subset of
// items and their pairwise link weights, via Kruskal's algorithm with a
// disjoint-set union-find. It is used to derive the per-cluster spanning
// tree the hierarchy builder reports alongside the merge-derived groups.
package mst

import "errors"

// ErrDisconnected indicates the given items cannot all be joined by the
// given edges: no spanning tree exists over the requested item set.
var ErrDisconnected = errors.New("mst: item set is disconnected")
