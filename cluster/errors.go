package cluster

import "errors"

// ErrInvalidInput indicates malformed clustering input: zero items, or a
// sort-key slice whose length doesn't match the item count.
var ErrInvalidInput = errors.New("cluster: invalid input")

// ErrUnreachable indicates an internal consistency-check failure: a
// newly allocated cluster id did not equal the expected next value. This
// should never occur in practice and signals a bug rather than a data
// problem.
var ErrUnreachable = errors.New("cluster: unreachable internal state")
