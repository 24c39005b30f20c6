// Package idreg implements a bidirectional mapping between string names and
// consecutive non-negative integer ids. Ids are assigned in insertion order
// starting at 0 and remain stable until Clear. Re-registering an existing
// name returns its existing id rather than allocating a new one.
package idreg

import "errors"

// ErrUnknownName indicates NameOf was called with an id that was never
// assigned (or has been invalidated by a Clear).
var ErrUnknownName = errors.New("idreg: unknown id")

// ErrUnknownID indicates IDOf was called with a name that was never
// registered.
var ErrUnknownID = errors.New("idreg: unknown name")
