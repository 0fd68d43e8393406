package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// RecordCheckIn opens (or updates) a day with a working status and its
	// check-in timestamp.
	RecordCheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// RecordCheckOut closes the day's open check-in.
	RecordCheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// SetWorkingStatus sets a day's status without timestamps. Non-working
	// statuses clear any stored check-in/check-out.
	SetWorkingStatus(ctx context.Context, req SetStatusRequest) (RecordResponse, error)

	// GetDay returns the record for one day; a day with no record yet
	// returns ErrRecordNotFound.
	GetDay(ctx context.Context, employeeID, date string) (RecordResponse, error)

	// ListMonth returns one slot per calendar day, nil where no record exists.
	ListMonth(ctx context.Context, employeeID string, year, month int) (MonthResponse, error)

	// GetOvertimeThreshold returns the process-wide threshold in hours/day.
	GetOvertimeThreshold(ctx context.Context) (int, error)

	// SetOvertimeThreshold updates the threshold (0-24 hours).
	SetOvertimeThreshold(ctx context.Context, req SetThresholdRequest) error
}
