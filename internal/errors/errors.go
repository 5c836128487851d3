// Package errors provides the typed error taxonomy used at pipeline
// stage boundaries. Stage-local recoverable issues degrade in place;
// anything crossing a stage boundary without usable output carries a Kind.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a stage-boundary failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindDecode means the input audio container is unreadable or unsupported.
	KindDecode
	// KindModelUnavailable means a speech or summarization model could not be acquired.
	KindModelUnavailable
	// KindSourceNotFound means the input path does not resolve.
	KindSourceNotFound
	// KindSummarizationFailed means every chunk-level summarization call failed.
	KindSummarizationFailed
	// KindAssembly means document generation failed.
	KindAssembly
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "DECODE_ERROR"
	case KindModelUnavailable:
		return "MODEL_UNAVAILABLE"
	case KindSourceNotFound:
		return "SOURCE_NOT_FOUND"
	case KindSummarizationFailed:
		return "SUMMARIZATION_FAILED"
	case KindAssembly:
		return "ASSEMBLY_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Error is the base error type with a structured kind and optional cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	s := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	return s
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error { return e.Cause }

// New creates a new Error with the given kind and message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf creates a new Error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an Error of the given kind.
func Wrap(err error, kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Cause: err}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: err}
}

// IsKind reports whether any error in err's chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
