// Package failure classifies provider, wallet and contract errors into user-presentable states.
package failure

import (
	"errors"

	"github.com/goodnatureofminers/kingofthehill-client/internal/model"
)

// Error is an error that already carries its category and user-facing message.
type Error struct {
	Category model.ErrorCategory
	Message  string
	Err      error
}

// New returns an Error without an underlying cause.
func New(category model.ErrorCategory, message string) *Error {
	return &Error{Category: category, Message: message}
}

// Wrap attaches a category and message to err.
func Wrap(category model.ErrorCategory, message string, err error) *Error {
	return &Error{Category: category, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// State converts the error to an ErrorState.
func (e *Error) State() model.ErrorState {
	return model.ErrorState{Category: e.Category, Message: e.Message}
}

// CategoryOf returns the category carried by err, or false when err is unclassified.
func CategoryOf(err error) (model.ErrorCategory, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Category, true
	}
	return "", false
}
