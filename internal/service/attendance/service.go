package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/attendance"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/timeutil"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/validator"
)

type attendanceService struct {
	records    attendance.RecordStore
	thresholds attendance.ThresholdStore
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(records attendance.RecordStore, thresholds attendance.ThresholdStore) attendance.AttendanceService {
	return &attendanceService{
		records:    records,
		thresholds: thresholds,
	}
}

// RecordCheckIn implements attendance.AttendanceService.
func (s *attendanceService) RecordCheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	day, _ := validator.IsValidDate(req.Date)
	checkIn, err := timeutil.ParseClockTime(day, req.CheckIn)
	if err != nil {
		return attendance.RecordResponse{}, attendance.ErrInvalidTime
	}

	status := attendance.WorkingStatus(req.WorkingStatus)
	rec, err := s.records.Upsert(ctx, req.EmployeeID, day, attendance.RecordPatch{
		Status:  &status,
		CheckIn: &checkIn,
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	return attendance.NewRecordResponse(rec), nil
}

// RecordCheckOut implements attendance.AttendanceService.
func (s *attendanceService) RecordCheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	day, _ := validator.IsValidDate(req.Date)
	checkOut, err := timeutil.ParseClockTime(day, req.CheckOut)
	if err != nil {
		return attendance.RecordResponse{}, attendance.ErrInvalidTime
	}

	rec, err := s.records.Upsert(ctx, req.EmployeeID, day, attendance.RecordPatch{
		CheckOut: &checkOut,
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to record check-out: %w", err)
	}

	return attendance.NewRecordResponse(rec), nil
}

// SetWorkingStatus implements attendance.AttendanceService.
func (s *attendanceService) SetWorkingStatus(ctx context.Context, req attendance.SetStatusRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	day, _ := validator.IsValidDate(req.Date)
	status := attendance.WorkingStatus(req.WorkingStatus)

	rec, err := s.records.Upsert(ctx, req.EmployeeID, day, attendance.RecordPatch{
		Status: &status,
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to set working status: %w", err)
	}

	return attendance.NewRecordResponse(rec), nil
}

// GetDay implements attendance.AttendanceService.
func (s *attendanceService) GetDay(ctx context.Context, employeeID, date string) (attendance.RecordResponse, error) {
	if !validator.IsValidEmployeeID(employeeID) {
		return attendance.RecordResponse{}, validator.ValidationErrors{{Field: "employee_id", Message: "employee_id is required"}}
	}
	day, ok := validator.IsValidDate(date)
	if !ok {
		return attendance.RecordResponse{}, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}

	rec, err := s.records.Get(ctx, employeeID, day)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if rec == nil {
		return attendance.RecordResponse{}, attendance.ErrRecordNotFound
	}

	return attendance.NewRecordResponse(*rec), nil
}

// ListMonth implements attendance.AttendanceService.
func (s *attendanceService) ListMonth(ctx context.Context, employeeID string, year, month int) (attendance.MonthResponse, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidEmployeeID(employeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if year < 1 || year > 9999 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}
	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if len(errs) > 0 {
		return attendance.MonthResponse{}, errs
	}

	records, err := s.records.ListMonth(ctx, employeeID, year, time.Month(month))
	if err != nil {
		return attendance.MonthResponse{}, fmt.Errorf("failed to list month: %w", err)
	}

	days := make([]*attendance.RecordResponse, len(records))
	for i, rec := range records {
		if rec == nil {
			continue
		}
		resp := attendance.NewRecordResponse(*rec)
		days[i] = &resp
	}

	return attendance.MonthResponse{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Days:       days,
	}, nil
}

// GetOvertimeThreshold implements attendance.AttendanceService.
func (s *attendanceService) GetOvertimeThreshold(ctx context.Context) (int, error) {
	hours, err := s.thresholds.GetThreshold(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get overtime threshold: %w", err)
	}
	return hours, nil
}

// SetOvertimeThreshold implements attendance.AttendanceService.
func (s *attendanceService) SetOvertimeThreshold(ctx context.Context, req attendance.SetThresholdRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.thresholds.SetThreshold(ctx, req.Hours); err != nil {
		return fmt.Errorf("failed to set overtime threshold: %w", err)
	}
	return nil
}
