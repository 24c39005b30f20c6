// Package clustfile reads the names and links files consumed by the
// clustering front-end and writes the merge-list, hierarchy, spanning-tree,
// representatives and sorted-links files it produces. The formats mirror
// those of the cath-cluster front-end: whitespace- or tab-separated text,
// one record per line.
//
// Parsing is line-oriented and column-indexed rather than using a general
// CSV reader, since fields may be separated by runs of whitespace and a
// line may carry extra trailing columns a caller ignores via a configured
// column index — encoding/csv's fixed-delimiter, fixed-field-count model
// doesn't fit either requirement.
package clustfile

import "errors"

// ErrInvalidInput indicates a malformed line: too few fields, a column
// index out of range, or a field that doesn't parse as the expected type.
var ErrInvalidInput = errors.New("clustfile: invalid input line")
