// Package format implements the low-level binary primitives shared by
// every decoder: bounds-safe reads, record framing, and FileHeader
// parsing.
package format

import "errors"

var (
	// ErrTruncated indicates the cursor lacked the bytes required for a read.
	ErrTruncated = errors.New("format: truncated input")
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrMalformedRecord indicates a record's declared size does not fit
	// within the remaining stream bytes.
	ErrMalformedRecord = errors.New("format: malformed record")
	// ErrIllFormedSurrogate indicates a UTF-16 code unit sequence could not
	// be decoded because of an unpaired or mismatched surrogate.
	ErrIllFormedSurrogate = errors.New("format: ill-formed UTF-16 surrogate pair")
)
