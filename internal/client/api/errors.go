package api

import "errors"

// StatusError carries the HTTP status of a failed API call plus the matching
// sentinel from internal/common (when one applies) so callers can use
// errors.Is against both layers.
type StatusError struct {
	Code    int
	Message string
	Err     error
}

func (e *StatusError) Error() string {
	return e.Message
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func asStatusError(err error, target **StatusError) bool {
	return errors.As(err, target)
}
