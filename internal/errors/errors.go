// Package errors is the error toolbox for this codebase: stdlib helpers
// for inspection plus pkg/errors for attaching stack traces at wrap sites.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with the given text and no stack trace.
func New(text string) error {
	return stderrors.New(text)
}

// Is walks err's chain looking for target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As walks err's chain looking for an error assignable to target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with a message and records the call stack.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack records the call stack without changing err's message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
