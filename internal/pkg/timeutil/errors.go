package timeutil

import "errors"

var (
	ErrInvalidTime    = errors.New("clock time must be HH:MM with hour 0-23 and minute 0-59")
	ErrInvalidRange   = errors.New("end of range must be strictly after its start")
	ErrInvalidWeekday = errors.New("unrecognized weekday name")
)
