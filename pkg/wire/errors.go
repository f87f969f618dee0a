// Package wire implements the primitive encodings of the transaction wire
// format: CompactSize varints and fixed-width little-endian integers.
package wire

import "errors"

var (
	// ErrTruncatedInput is returned when a buffer ends before a field's declared width.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrMalformedInput is returned when a buffer is structurally invalid.
	ErrMalformedInput = errors.New("malformed input")
)
