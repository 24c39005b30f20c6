// Package linkgraph implements the sparse undirected weighted link
// container used by the complete-linkage clustering engine: for each item
// id, an ordered, mergeable sequence of half-edges. Adding a link appends a
// half-edge symmetrically to each endpoint's list; merging two ids' lists
// into a new id's list, and discarding the old ones, is a first-class
// operation rather than a side effect of deletion, since the clustering
// engine's arena of ids grows across a run.
package linkgraph

import "errors"

// ErrSelfLink indicates an attempt to link an item to itself.
var ErrSelfLink = errors.New("linkgraph: self-link rejected")

// ErrUnknownID indicates an operation referenced an id with no allocated
// slot in the graph's arena.
var ErrUnknownID = errors.New("linkgraph: unknown id")
