package mst

import "sort"

// Edge is an undirected weighted edge between two item ids.
type Edge struct {
	U, V   int
	Weight float32
}

// Kruskal computes the minimum spanning tree over items using edges as the
// candidate pool (edges whose endpoints are outside items are ignored). A
// single-item set returns an empty tree. Kruskal fails with
// ErrDisconnected if items cannot all be joined by edges restricted to
// items.
//
// Ties in weight are broken by the order edges are given, via a stable
// sort, so the result is a deterministic function of the input order.
func Kruskal(items []int, edges []Edge) ([]Edge, error) {
	if len(items) <= 1 {
		return []Edge{}, nil
	}

	inSet := make(map[int]bool, len(items))
	for _, it := range items {
		inSet[it] = true
	}

	candidates := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		if inSet[e.U] && inSet[e.V] {
			candidates = append(candidates, e)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight < candidates[j].Weight
	})

	parent := make(map[int]int, len(items))
	rank := make(map[int]int, len(items))
	for _, it := range items {
		parent[it] = it
	}

	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	var tree []Edge
	for _, e := range candidates {
		if find(e.U) != find(e.V) {
			union(e.U, e.V)
			tree = append(tree, e)
			if len(tree) == len(items)-1 {
				break
			}
		}
	}

	if len(tree) < len(items)-1 {
		return nil, ErrDisconnected
	}
	return tree, nil
}
