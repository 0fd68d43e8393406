package attendance

import (
	"time"

	"github.com/caffeinepub/attendance-backend-go/internal/pkg/validator"
)

// CheckInRequest records a check-in for a calendar day. WorkingStatus rides
// along so a fresh day can be opened with a working status and its first
// timestamp in one write.
type CheckInRequest struct {
	EmployeeID    string `json:"employee_id"`
	Date          string `json:"date"`           // YYYY-MM-DD
	CheckIn       string `json:"check_in"`       // HH:MM wall clock on Date
	WorkingStatus string `json:"working_status"` // fullwork | fullworkOvertime | partialWork
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !validator.IsClockFormat(r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be in HH:MM format"})
	}
	if !WorkingStatus(r.WorkingStatus).IsWorking() {
		errs = append(errs, validator.ValidationError{Field: "working_status", Message: "working_status must be fullwork, fullworkOvertime or partialWork"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	CheckOut   string `json:"check_out"` // HH:MM wall clock on Date
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !validator.IsClockFormat(r.CheckOut) {
		errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be in HH:MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetStatusRequest struct {
	EmployeeID    string `json:"employee_id"`
	Date          string `json:"date"`
	WorkingStatus string `json:"working_status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !WorkingStatus(r.WorkingStatus).Valid() {
		errs = append(errs, validator.ValidationError{Field: "working_status", Message: "unknown working status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetThresholdRequest struct {
	Hours int `json:"hours"`
}

func (r *SetThresholdRequest) Validate() error {
	if r.Hours < 0 || r.Hours > 24 {
		return validator.ValidationErrors{{Field: "hours", Message: "hours must be between 0 and 24"}}
	}
	return nil
}

// RecordResponse is the wire shape of a stored attendance record.
type RecordResponse struct {
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	WorkingStatus string  `json:"working_status"`
	CheckIn       *string `json:"check_in,omitempty"`
	CheckOut      *string `json:"check_out,omitempty"`
}

// MonthResponse lists a month of day slots; days without a record carry a
// nil entry so callers see one slot per calendar day.
type MonthResponse struct {
	EmployeeID string            `json:"employee_id"`
	Year       int               `json:"year"`
	Month      int               `json:"month"`
	Days       []*RecordResponse `json:"days"`
}

// NewRecordResponse maps a stored record onto the wire shape.
func NewRecordResponse(rec AttendanceRecord) RecordResponse {
	resp := RecordResponse{
		EmployeeID:    rec.EmployeeID,
		Date:          rec.Date.Format("2006-01-02"),
		WorkingStatus: string(rec.Status),
	}
	if rec.CheckIn != nil {
		s := rec.CheckIn.Format(time.RFC3339Nano)
		resp.CheckIn = &s
	}
	if rec.CheckOut != nil {
		s := rec.CheckOut.Format(time.RFC3339Nano)
		resp.CheckOut = &s
	}
	return resp
}
