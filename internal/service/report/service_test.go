package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/attendance"
	"github.com/caffeinepub/attendance-backend-go/internal/domain/employee"
	"github.com/caffeinepub/attendance-backend-go/internal/domain/report"
	"github.com/caffeinepub/attendance-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	roster     employee.Roster
	records    attendance.RecordStore
	thresholds attendance.ThresholdStore
	svc        report.ReportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		roster:     memory.NewRoster(),
		records:    memory.NewRecordStore(),
		thresholds: memory.NewThresholdStore(8),
	}
	f.svc = NewReportService(f.roster, f.records, f.thresholds, nil)
	return f
}

func (f *fixture) addEmployee(t *testing.T, id, name string, typ employee.EmployeeType, loc employee.Location, project string) {
	t.Helper()
	emp := employee.Employee{
		ID:          id,
		Name:        name,
		Designation: employee.DesignationGeneralSupervisor,
		Type:        typ,
		Location:    loc,
	}
	if project != "" {
		emp.Project = &project
	}
	require.NoError(t, f.roster.Create(context.Background(), emp))
}

func (f *fixture) workDay(t *testing.T, employeeID string, day time.Time, inHour, outHour int) {
	t.Helper()
	status := attendance.StatusFullwork
	checkIn := day.Add(time.Duration(inHour) * time.Hour)
	checkOut := day.Add(time.Duration(outHour) * time.Hour)
	_, err := f.records.Upsert(context.Background(), employeeID, day, attendance.RecordPatch{
		Status:  &status,
		CheckIn: &checkIn,
	})
	require.NoError(t, err)
	_, err = f.records.Upsert(context.Background(), employeeID, day, attendance.RecordPatch{
		CheckOut: &checkOut,
	})
	require.NoError(t, err)
}

func (f *fixture) setStatus(t *testing.T, employeeID string, day time.Time, status attendance.WorkingStatus) {
	t.Helper()
	_, err := f.records.Upsert(context.Background(), employeeID, day, attendance.RecordPatch{
		Status: &status,
	})
	require.NoError(t, err)
}

func marchRequest() report.MonthlyReportRequest {
	return report.MonthlyReportRequest{Year: 2024, Month: 3}
}

func TestMonthlyReport_CompanyEmployeeBreakdown(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.addEmployee(t, "E1", "Alice", employee.TypeCompany, employee.LocationKuwait, "Tower A")

	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	f.workDay(t, "E1", day, 8, 18)

	rep, err := f.svc.MonthlyReport(context.Background(), marchRequest())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)

	row := rep.Rows[0]
	assert.Equal(t, 1, row.WorkingDays)
	assert.Equal(t, 30, row.AbsentDays)
	assert.True(t, row.TotalWorkedHours.Equal(decimal.NewFromInt(10)), "total = %s", row.TotalWorkedHours)
	require.NotNil(t, row.NormalHours)
	require.NotNil(t, row.OvertimeHours)
	assert.True(t, row.NormalHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, row.OvertimeHours.Equal(decimal.NewFromInt(2)))
}

func TestMonthlyReport_SupplierHasNoBreakdown(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.addEmployee(t, "E2", "Bob", employee.TypeSupplier, employee.LocationSaudi, "")

	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	f.workDay(t, "E2", day, 8, 18)

	rep, err := f.svc.MonthlyReport(context.Background(), marchRequest())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)

	row := rep.Rows[0]
	assert.True(t, row.TotalWorkedHours.Equal(decimal.NewFromInt(10)))
	assert.Nil(t, row.NormalHours)
	assert.Nil(t, row.OvertimeHours)
}

func TestMonthlyReport_MissingDaysCountAsAbsent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.addEmployee(t, "E3", "Carol", employee.TypeCompany, employee.LocationKuwait, "")

	rep, err := f.svc.MonthlyReport(context.Background(), marchRequest())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)

	row := rep.Rows[0]
	assert.Equal(t, 0, row.WorkingDays)
	assert.Equal(t, 31, row.AbsentDays)
	assert.True(t, row.AbsentHours.Equal(decimal.NewFromInt(31*8)), "absent hours = %s", row.AbsentHours)
}

func TestMonthlyReport_HolidayAndVacationAreNeutral(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.addEmployee(t, "E1", "Alice", employee.TypeCompany, employee.LocationKuwait, "")

	f.setStatus(t, "E1", time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), attendance.StatusHoliday)
	f.setStatus(t, "E1", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), attendance.StatusVacation)

	rep, err := f.svc.MonthlyReport(context.Background(), marchRequest())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)

	row := rep.Rows[0]
	assert.Equal(t, 0, row.WorkingDays)
	assert.Equal(t, 29, row.AbsentDays)
}

func TestMonthlyReport_ExpectedValuesFromCalendar(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.addEmployee(t, "E1", "Alice", employee.TypeCompany, employee.LocationKuwait, "")
	f.addEmployee(t, "E2", "Bob", employee.TypeSupplier, employee.LocationSaudi, "")

	rep, err := f.svc.MonthlyReport(context.Background(), marchRequest())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)

	// March has 31 days and no weekend pattern is configured.
	for _, row := range rep.Rows {
		assert.Equal(t, 31, row.ExpectedWorkingDays)
		assert.True(t, row.ExpectedHours.Equal(decimal.NewFromInt(248)), "expected hours = %s", row.ExpectedHours)
	}
}

func TestMonthlyReport_Filters(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.addEmployee(t, "E1", "Alice", employee.TypeCompany, employee.LocationKuwait, "Tower A")
	f.addEmployee(t, "E2", "Bob", employee.TypeSupplier, employee.LocationSaudi, "Refinery")
	f.addEmployee(t, "E3", "Carol", employee.TypeCompany, employee.LocationSaudi, "Tower B")

	ids := func(rep report.MonthlyReport) []string {
		var out []string
		for _, row := range rep.Rows {
			out = append(out, row.EmployeeID)
		}
		return out
	}

	req := marchRequest()
	req.Location = "saudi"
	rep, err := f.svc.MonthlyReport(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"E2", "E3"}, ids(rep))

	req = marchRequest()
	req.EmployeeType = "company"
	rep, err = f.svc.MonthlyReport(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"E1", "E3"}, ids(rep))

	// Project matches by case-insensitive substring.
	req = marchRequest()
	req.Project = "tower"
	rep, err = f.svc.MonthlyReport(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"E1", "E3"}, ids(rep))

	// "all" is equivalent to no constraint.
	req = marchRequest()
	req.Location = report.FilterAll
	req.EmployeeType = report.FilterAll
	rep, err = f.svc.MonthlyReport(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"E1", "E2", "E3"}, ids(rep))
}

func TestMonthlyReport_RowsSortedByEmployeeID(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	for _, id := range []string{"E9", "E1", "E5", "E3"} {
		f.addEmployee(t, id, "Employee "+id, employee.TypeCompany, employee.LocationKuwait, "")
	}

	rep, err := f.svc.MonthlyReport(context.Background(), marchRequest())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 4)
	for i := 1; i < len(rep.Rows); i++ {
		assert.Less(t, rep.Rows[i-1].EmployeeID, rep.Rows[i].EmployeeID)
	}
}

func TestMonthlyReport_IsDeterministic(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("E%d", i)
		f.addEmployee(t, id, "Employee "+id, employee.TypeCompany, employee.LocationKuwait, "")
		f.workDay(t, id, day.AddDate(0, 0, i), 8, 17)
	}

	first, err := f.svc.MonthlyReport(context.Background(), marchRequest())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := f.svc.MonthlyReport(context.Background(), marchRequest())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMonthlyReport_UsesCurrentThreshold(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.addEmployee(t, "E1", "Alice", employee.TypeCompany, employee.LocationKuwait, "")
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	f.workDay(t, "E1", day, 8, 18)

	require.NoError(t, f.thresholds.SetThreshold(context.Background(), 10))

	rep, err := f.svc.MonthlyReport(context.Background(), marchRequest())
	require.NoError(t, err)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, 10, rep.Threshold)
	require.NotNil(t, rep.Rows[0].OvertimeHours)
	assert.True(t, rep.Rows[0].OvertimeHours.IsZero())
}

func TestExportFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "monthly-report-2024-03-March.csv", ExportFilename(2024, time.March))
	assert.Equal(t, "monthly-report-2025-12-December.csv", ExportFilename(2025, time.December))
}
