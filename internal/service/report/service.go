package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/attendance"
	"github.com/caffeinepub/attendance-backend-go/internal/domain/employee"
	"github.com/caffeinepub/attendance-backend-go/internal/domain/report"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/timeutil"
	attendanceservice "github.com/caffeinepub/attendance-backend-go/internal/service/attendance"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type reportService struct {
	roster     employee.Roster
	records    attendance.RecordStore
	thresholds attendance.ThresholdStore
	weekend    []time.Weekday
}

// NewReportService creates a new monthly report service. weekend lists the
// weekdays excluded from expected working days; an empty pattern means every
// calendar day is expected.
func NewReportService(
	roster employee.Roster,
	records attendance.RecordStore,
	thresholds attendance.ThresholdStore,
	weekend []time.Weekday,
) report.ReportService {
	return &reportService{
		roster:     roster,
		records:    records,
		thresholds: thresholds,
		weekend:    weekend,
	}
}

// MonthlyReport implements report.ReportService.
func (s *reportService) MonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	threshold, err := s.thresholds.GetThreshold(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to get overtime threshold: %w", err)
	}

	employees, err := s.roster.List(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	var selected []employee.Employee
	for _, emp := range employees {
		if matchesFilters(emp, req) {
			selected = append(selected, emp)
		}
	}

	// Shared across employees for the whole period.
	month := time.Month(req.Month)
	expectedDays := timeutil.ExpectedWorkingDays(req.Year, month, s.weekend)
	expectedHours := decimal.NewFromInt(int64(expectedDays * threshold))

	// One slot per employee keeps the fan-out order independent.
	rows := make([]report.MonthlyReportRow, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	for i, emp := range selected {
		g.Go(func() error {
			days, err := s.records.ListMonth(gctx, emp.ID, req.Year, month)
			if err != nil {
				return fmt.Errorf("failed to list month for %s: %w", emp.ID, err)
			}
			rows[i] = buildRow(emp, days, threshold, expectedDays, expectedHours)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.MonthlyReport{}, err
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].EmployeeID < rows[j].EmployeeID })

	return report.MonthlyReport{
		Year:      req.Year,
		Month:     req.Month,
		Threshold: threshold,
		Rows:      rows,
	}, nil
}

// ExportMonthlyReportCSV implements report.ReportService.
func (s *reportService) ExportMonthlyReportCSV(ctx context.Context, req report.MonthlyReportRequest) ([]byte, string, error) {
	rep, err := s.MonthlyReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data, err := CSVBytes(rep.Rows)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render csv: %w", err)
	}

	return data, ExportFilename(rep.Year, time.Month(rep.Month)), nil
}

// ExportFilename names a monthly export, e.g. "monthly-report-2024-03-March.csv".
func ExportFilename(year int, month time.Month) string {
	return fmt.Sprintf("monthly-report-%04d-%02d-%s.csv", year, int(month), month.String())
}

func matchesFilters(emp employee.Employee, req report.MonthlyReportRequest) bool {
	if req.Location != "" && req.Location != report.FilterAll && string(emp.Location) != req.Location {
		return false
	}
	if req.EmployeeType != "" && req.EmployeeType != report.FilterAll && string(emp.Type) != req.EmployeeType {
		return false
	}
	if req.Project != "" && req.Project != report.FilterAll {
		if emp.Project == nil {
			return false
		}
		if !strings.Contains(strings.ToLower(*emp.Project), strings.ToLower(req.Project)) {
			return false
		}
	}
	return true
}

// buildRow folds one employee's month of day records into a summary row.
// Days with no record count as absent; holiday and vacation are neutral. A
// day the calculator rejects is tallied as if it had no record, so one bad
// day never sinks the whole report.
func buildRow(
	emp employee.Employee,
	days []*attendance.AttendanceRecord,
	threshold, expectedDays int,
	expectedHours decimal.Decimal,
) report.MonthlyReportRow {
	var workingDays, absentDays int
	totalWorked := decimal.Zero
	normal := decimal.Zero
	overtime := decimal.Zero

	for _, rec := range days {
		if rec == nil || rec.Status == attendance.StatusAbsent {
			absentDays++
			continue
		}
		if !rec.Status.IsWorking() {
			// Holiday and vacation count toward neither tally.
			continue
		}

		hours, err := attendanceservice.DailyHours(rec, threshold)
		if err != nil {
			absentDays++
			continue
		}

		workingDays++
		totalWorked = totalWorked.Add(hours.Worked)
		normal = normal.Add(hours.Normal)
		overtime = overtime.Add(hours.Overtime)
	}

	row := report.MonthlyReportRow{
		EmployeeID:          emp.ID,
		EmployeeName:        emp.Name,
		EmployeeType:        string(emp.Type),
		Location:            string(emp.Location),
		ExpectedWorkingDays: expectedDays,
		ExpectedHours:       expectedHours,
		WorkingDays:         workingDays,
		AbsentDays:          absentDays,
		AbsentHours:         decimal.NewFromInt(int64(absentDays * threshold)),
		TotalWorkedHours:    totalWorked,
	}
	if emp.Project != nil {
		row.Project = *emp.Project
	}
	// The hour breakdown only applies to company employees; supplier rows
	// carry no value at all rather than zero.
	if emp.Type == employee.TypeCompany {
		row.NormalHours = &normal
		row.OvertimeHours = &overtime
	}

	return row
}
