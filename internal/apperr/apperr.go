package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP layer can pick a status and the
// presentation layer can distinguish "no results" from a real error.
type Kind int

const (
	KindUnknown Kind = iota
	Unauthenticated
	Forbidden
	ValidationFailed
	Conflict
	SourceUnavailable
	NotConfigured
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case ValidationFailed:
		return "validation_failed"
	case Conflict:
		return "conflict"
	case SourceUnavailable:
		return "source_unavailable"
	case NotConfigured:
		return "not_configured"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind carried by err, or KindUnknown for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is lets errors.Is match on kind alone: errors.Is(err, apperr.New(Conflict, "")).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && (t.Message == "" || t.Message == e.Message)
}
