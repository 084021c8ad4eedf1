package model

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindIO                 ErrKind = iota // underlying stream/file I/O failure
	ErrKindContainer                         // compound container is malformed or a required stream is missing
	ErrKindInvalidSignature                  // FileHeader signature does not match the HWP v5 magic
	ErrKindUnsupportedVersion                // document declares a version below 5.0.0.0
	ErrKindEncrypted                         // document is marked encrypted
	ErrKindDistributionOnly                  // document is distribution-locked
	ErrKindParse                             // a record or stream failed to decode
	ErrKindNotFound                          // a requested section/stream does not exist (also used as the section-loop terminator)
	ErrKindSizeLimitExceeded                 // a resource cap (SectionLimits) was tripped
	ErrKindUnsupportedFormat                 // input is a recognizable but unsupported sibling format (e.g. HWPX)
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindIO:
		return "io"
	case ErrKindContainer:
		return "container"
	case ErrKindInvalidSignature:
		return "invalid_signature"
	case ErrKindUnsupportedVersion:
		return "unsupported_version"
	case ErrKindEncrypted:
		return "encrypted"
	case ErrKindDistributionOnly:
		return "distribution_only"
	case ErrKindParse:
		return "parse"
	case ErrKindNotFound:
		return "not_found"
	case ErrKindSizeLimitExceeded:
		return "size_limit_exceeded"
	case ErrKindUnsupportedFormat:
		return "unsupported_format"
	default:
		return fmt.Sprintf("unknown_err_kind_%d", int(k))
	}
}

// Error is a typed error with an optional underlying cause. Callers should
// use errors.As to recover the Kind rather than matching on message text.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// newErr wraps err (which may be nil) under the given kind and message.
func newErr(kind ErrKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Sentinels for the conditions Open/parse can report directly.
var (
	ErrNotHWP             = &Error{Kind: ErrKindInvalidSignature, Msg: "not an HWP v5 document (signature mismatch)"}
	ErrUnsupportedVersion = &Error{Kind: ErrKindUnsupportedVersion, Msg: "unsupported HWP version (requires 5.x)"}
	ErrEncrypted          = &Error{Kind: ErrKindEncrypted, Msg: "document is encrypted"}
	ErrDistributionOnly   = &Error{Kind: ErrKindDistributionOnly, Msg: "document is a distribution-locked copy"}
	ErrNotFound           = &Error{Kind: ErrKindNotFound, Msg: "stream or section not found"}
	ErrSizeLimitExceeded  = &Error{Kind: ErrKindSizeLimitExceeded, Msg: "resource limit exceeded"}
	ErrUnsupportedFormat  = &Error{Kind: ErrKindUnsupportedFormat, Msg: "HWPX is not supported; this reader only supports HWP v5 (compound-binary-container)"}
)
