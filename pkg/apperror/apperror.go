// Package apperror holds the error taxonomy shared by services and delivery layers.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidState      = errors.New("invalid state")
	ErrNotFound          = errors.New("not found")
	ErrDataUnavailable   = errors.New("data unavailable")
)

// Error carries a user facing message together with one of the sentinel kinds.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validation reports bad input values.
func Validation(format string, args ...interface{}) error {
	return newError(ErrValidation, format, args...)
}

// InvalidState reports an operation on an entity in the wrong status.
func InvalidState(format string, args ...interface{}) error {
	return newError(ErrInvalidState, format, args...)
}

// NotFound reports an unknown id.
func NotFound(format string, args ...interface{}) error {
	return newError(ErrNotFound, format, args...)
}

// DataUnavailable reports missing external data such as a price.
func DataUnavailable(format string, args ...interface{}) error {
	return newError(ErrDataUnavailable, format, args...)
}

// TransitionError is returned when a lifecycle move is not in the transition table.
// Moves out of a terminal state also match ErrInvalidState.
type TransitionError struct {
	Entity   string
	ID       uint
	From     string
	To       string
	Terminal bool
}

func (e *TransitionError) Error() string {
	if e.Terminal {
		return fmt.Sprintf("%s %d is %s and cannot change to %s", e.Entity, e.ID, e.From, e.To)
	}
	return fmt.Sprintf("%s %d cannot move from %s to %s", e.Entity, e.ID, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	if target == ErrInvalidTransition {
		return true
	}
	return e.Terminal && target == ErrInvalidState
}

// Code returns a short machine readable code for err.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrDataUnavailable):
		return "data_unavailable"
	default:
		return "internal_error"
	}
}
