package hierarchy

import "errors"

// ErrInvalidInput indicates malformed hierarchy-building input: a
// non-positive item count, an empty cutoff list, or a cutoff list that
// isn't sorted ascending.
var ErrInvalidInput = errors.New("hierarchy: invalid input")

// ErrUnreachable indicates an internal consistency-check failure, such as
// a Cluster reference pointing past the deepest layer. This should never
// occur in practice and signals a bug rather than a data problem.
var ErrUnreachable = errors.New("hierarchy: unreachable internal state")
