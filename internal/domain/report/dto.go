package report

import (
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// FilterAll is the explicit "no constraint" value for report filters.
const FilterAll = "all"

// MonthlyReportRequest selects the period and filters for an aggregation
// run. Empty or "all" filter values apply no constraint; Project matches by
// case-insensitive substring.
type MonthlyReportRequest struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	Location     string `json:"location"`
	Project      string `json:"project"`
	EmployeeType string `json:"employee_type"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is required"})
	}
	if r.Location != "" && r.Location != FilterAll && r.Location != "kuwait" && r.Location != "saudi" {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "location must be all, kuwait or saudi"})
	}
	if r.EmployeeType != "" && r.EmployeeType != FilterAll && r.EmployeeType != "company" && r.EmployeeType != "supplier" {
		errs = append(errs, validator.ValidationError{Field: "employee_type", Message: "employee_type must be all, company or supplier"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthlyReportRow is one employee's summary of a month. It is derived on
// every query and never stored. NormalHours/OvertimeHours are nil for
// supplier employees: the breakdown is an explicit absence of value there,
// not zero.
type MonthlyReportRow struct {
	EmployeeID           string           `json:"employee_id"`
	EmployeeName         string           `json:"employee_name"`
	EmployeeType         string           `json:"employee_type"`
	Location             string           `json:"location"`
	Project              string           `json:"project,omitempty"`
	ExpectedWorkingDays  int              `json:"expected_working_days"`
	ExpectedHours        decimal.Decimal  `json:"expected_hours"`
	WorkingDays          int              `json:"working_days"`
	AbsentDays           int              `json:"absent_days"`
	AbsentHours          decimal.Decimal  `json:"absent_hours"`
	TotalWorkedHours     decimal.Decimal  `json:"total_worked_hours"`
	NormalHours          *decimal.Decimal `json:"normal_hours,omitempty"`
	OvertimeHours        *decimal.Decimal `json:"overtime_hours,omitempty"`
}

// MonthlyReport wraps the rows with the period they describe.
type MonthlyReport struct {
	Year      int                `json:"year"`
	Month     int                `json:"month"`
	Threshold int                `json:"overtime_threshold"`
	Rows      []MonthlyReportRow `json:"rows"`
}
