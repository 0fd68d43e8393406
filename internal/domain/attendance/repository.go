package attendance

import (
	"context"
	"time"
)

// RecordStore is the persistence contract for attendance records, keyed by
// (employeeID, calendar day). Implementations must apply each Upsert
// atomically and serialize concurrent writers to the same key; writers to
// different keys proceed independently.
type RecordStore interface {
	// Upsert merges patch into the record for (employeeID, date), creating
	// one if absent, and returns the stored record.
	Upsert(ctx context.Context, employeeID string, date time.Time, patch RecordPatch) (AttendanceRecord, error)

	// Get returns the record for (employeeID, date), or (nil, nil) when no
	// record exists yet. A missing record is a valid, non-error result.
	Get(ctx context.Context, employeeID string, date time.Time) (*AttendanceRecord, error)

	// ListMonth returns one slot per calendar day of the month in order,
	// nil where no record exists.
	ListMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]*AttendanceRecord, error)
}

// ThresholdStore holds the single process-wide overtime threshold in whole
// hours per day.
type ThresholdStore interface {
	GetThreshold(ctx context.Context) (int, error)
	SetThreshold(ctx context.Context, hours int) error
}
