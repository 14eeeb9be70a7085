package multihash

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindUnsupportedAlgorithm: a digest computation was requested for an
	// algorithm outside the closed registry.
	KindUnsupportedAlgorithm Kind = "UnsupportedAlgorithm"
	// KindInvalidAlgorithm: a decoded identifier or textual name does not
	// correspond to any known algorithm.
	KindInvalidAlgorithm Kind = "InvalidAlgorithm"
	// KindTruncatedInput: binary decode ran out of bytes before the declared
	// digest length.
	KindTruncatedInput Kind = "TruncatedInput"
	// KindInvalidEncoding: malformed textual or structural payload.
	KindInvalidEncoding Kind = "InvalidEncoding"
	// KindMissingField: a mandatory field is absent from a human-readable
	// record.
	KindMissingField Kind = "MissingField"
	// KindDuplicateField: a field appears more than once in a human-readable
	// record.
	KindDuplicateField Kind = "DuplicateField"
)

// Error is the library's structured error type.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, msg string, cause error) error {
	if cause == nil {
		return &Error{Kind: kind, Message: msg}
	}
	return &Error{Kind: kind, Message: msg + ": " + cause.Error(), Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// ErrMissingDigest is returned by Builder.Build when neither Sum nor
// WithDigest supplied digest bytes.
var ErrMissingDigest = errors.New("missing digest bytes")
