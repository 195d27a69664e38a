package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Thin wrappers around cockroachdb/errors so the rest of the codebase
// does not import it directly.

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr to err so errors.Is(err, markErr) holds while the
// original cause (and its stack) is preserved.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func Is(err, target error) bool {
	return cr.Is(err, target)
}
