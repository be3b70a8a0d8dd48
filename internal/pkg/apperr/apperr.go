// Package apperr classifies failures surfaced to RPC callers.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindStore is any persistence or unexpected failure.
	KindStore Kind = iota
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "BAD_REQUEST"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Error carries a Kind and a human readable message alongside the cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

// NotFound reports that entity with id does not exist, e.g. "Project not found".
func NotFound(entity string, id int64) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("%s not found (id=%d)", entity, id)}
}

func Validation(msg string, err error) error {
	return &Error{Kind: KindValidation, Msg: msg, Err: err}
}

// KindOf returns the Kind of err; unclassified errors are KindStore.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}
