package attendance

import "errors"

// Attendance domain errors
var (
	// Write-rule errors
	ErrInvalidTime    = errors.New("invalid clock time")
	ErrInvalidRange   = errors.New("check-out must be strictly after check-in")
	ErrNoCheckIn      = errors.New("cannot record a check-out without a prior check-in")
	ErrStatusConflict = errors.New("cannot record a check-in against a non-working status")
	ErrInvalidStatus  = errors.New("unknown working status")

	// General errors
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrInvalidThreshold = errors.New("overtime threshold must be between 0 and 24 hours")
)
