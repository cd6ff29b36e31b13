package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

func New(message string) error {
	return errors.New(message)
}

func Errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join drops nil errors and returns nil when nothing remains.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Unwraps returns the errors held by a joined or multierror error.
func Unwraps(err error) []error {
	var merr *multierror.Error
	if stderrors.As(err, &merr) {
		return merr.WrappedErrors()
	}
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return u.Unwrap()
	}
	return nil
}

// Root follows single-error unwrapping until it reaches the innermost error.
func Root(err error) error {
	for {
		next := stderrors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
