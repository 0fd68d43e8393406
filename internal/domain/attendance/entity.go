package attendance

import (
	"time"
)

// WorkingStatus is the categorical label for an employee's day.
type WorkingStatus string

const (
	StatusFullwork         WorkingStatus = "fullwork"
	StatusFullworkOvertime WorkingStatus = "fullworkOvertime"
	StatusPartialWork      WorkingStatus = "partialWork"
	StatusAbsent           WorkingStatus = "absent"
	StatusHoliday          WorkingStatus = "holiday"
	StatusVacation         WorkingStatus = "vacation"
)

// Valid reports whether s is one of the known working statuses.
func (s WorkingStatus) Valid() bool {
	switch s {
	case StatusFullwork, StatusFullworkOvertime, StatusPartialWork,
		StatusAbsent, StatusHoliday, StatusVacation:
		return true
	}
	return false
}

// IsWorking reports whether s represents a day the employee worked.
// Absent, holiday and vacation days carry no timestamps.
func (s WorkingStatus) IsWorking() bool {
	switch s {
	case StatusFullwork, StatusFullworkOvertime, StatusPartialWork:
		return true
	}
	return false
}

// AttendanceRecord is the single record kept per (employee, calendar day).
// Date is the ISO calendar day truncated to midnight UTC; CheckIn/CheckOut
// are UTC instants at nanosecond resolution. Writes overwrite in place,
// no history is kept.
type AttendanceRecord struct {
	EmployeeID string
	Date       time.Time
	Status     WorkingStatus
	CheckIn    *time.Time
	CheckOut   *time.Time
}

// RecordPatch is a partial update merged into the record for a day.
// Nil fields leave the stored value untouched.
type RecordPatch struct {
	Status   *WorkingStatus
	CheckIn  *time.Time
	CheckOut *time.Time
}

// Apply merges patch into the existing record for the given day, creating
// one if existing is nil. Write rules are evaluated in order:
//
//  1. setting a non-working status clears any stored timestamps;
//  2. a check-in against a non-working status is rejected;
//  3. a check-out requires a prior check-in;
//  4. a check-out must be strictly after the check-in.
func Apply(employeeID string, date time.Time, existing *AttendanceRecord, patch RecordPatch) (AttendanceRecord, error) {
	rec := AttendanceRecord{
		EmployeeID: employeeID,
		Date:       date,
		Status:     StatusAbsent,
	}
	if existing != nil {
		rec = *existing
	}

	if patch.Status != nil {
		if !patch.Status.Valid() {
			return AttendanceRecord{}, ErrInvalidStatus
		}
		rec.Status = *patch.Status
		if !rec.Status.IsWorking() {
			rec.CheckIn = nil
			rec.CheckOut = nil
		}
	}

	if patch.CheckIn != nil {
		if !rec.Status.IsWorking() {
			return AttendanceRecord{}, ErrStatusConflict
		}
		in := patch.CheckIn.UTC()
		rec.CheckIn = &in
	}

	if patch.CheckOut != nil {
		if rec.CheckIn == nil {
			return AttendanceRecord{}, ErrNoCheckIn
		}
		out := patch.CheckOut.UTC()
		if !out.After(*rec.CheckIn) {
			return AttendanceRecord{}, ErrInvalidRange
		}
		rec.CheckOut = &out
	}

	return rec, nil
}
