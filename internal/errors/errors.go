// Package errors wraps stdlib errors, pkg/errors stack traces, multierr
// aggregation and gocloud portable error codes behind one import.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/multierr"
	"gocloud.dev/gcerrors"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap returns an error annotating err with a stack trace and the supplied message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf returns an error annotating err with a stack trace and the format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error with stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Combine merges errors, skipping nils. It returns nil when all are nil.
func Combine(errs ...error) error {
	return multierr.Combine(errs...)
}

// Append adds right to left, skipping nils.
func Append(left, right error) error {
	return multierr.Append(left, right)
}

// Errors flattens an error produced by Combine or Append.
func Errors(err error) []error {
	return multierr.Errors(err)
}

// IsNotFound reports whether a gocloud (docstore or blob) call failed because
// the document or object does not exist.
func IsNotFound(err error) bool {
	return err != nil && gcerrors.Code(err) == gcerrors.NotFound
}

// IsAlreadyExists reports whether a gocloud create collided with an existing key.
func IsAlreadyExists(err error) bool {
	return err != nil && gcerrors.Code(err) == gcerrors.AlreadyExists
}

// IsFailedPrecondition reports whether a gocloud write lost a revision check.
func IsFailedPrecondition(err error) bool {
	return err != nil && gcerrors.Code(err) == gcerrors.FailedPrecondition
}
