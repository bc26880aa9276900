package timesheet

import "errors"

var (
	ErrMissingField   = errors.New("missing field")
	ErrInvalidRange   = errors.New("invalid time range")
	ErrDuplicateShift = errors.New("duplicate shift")
)
