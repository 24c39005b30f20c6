package dpalign

import "errors"

// ErrInvalidShape indicates invalid sequence lengths or an incompatible
// window width.
var ErrInvalidShape = errors.New("dpalign: invalid shape")
