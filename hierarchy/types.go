package hierarchy

// ValueKind tags a HierarchyValue as either a leaf item or a reference to
// a group one layer deeper.
type ValueKind int

const (
	// Entry holds a leaf item id directly.
	Entry ValueKind = iota

	// Cluster holds the index of a group in the next deeper layer.
	Cluster
)

// Value is the tagged variant stored in a Group: either a leaf item
// (Entry) or a reference to a group in the next deeper layer (Cluster).
type Value struct {
	Kind  ValueKind
	Index int
}

// Group is an ordered sequence of values belonging to one cluster at one
// layer.
type Group []Value

// Layer is an ordered sequence of groups.
type Layer []Group

// Hierarchy is a sequence of layers, shallowest first. The shallowest
// layer has one group per top-level cluster; the deepest layer's groups
// hold only Entry values, since there is no layer left to reference.
type Hierarchy []Layer
