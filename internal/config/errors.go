package config

import "errors"

// Error is a configuration problem the user has to fix. Its message is shown as is.
type Error struct {
	err error
}

func newError(err error) error {
	return &Error{err: err}
}

func (e *Error) Error() string { return e.err.Error() }
func (e *Error) Unwrap() error { return e.err }

// IsConfigError reports whether err comes from resolving the configuration
func IsConfigError(err error) bool {
	var cfgErr *Error
	return errors.As(err, &cfgErr)
}
