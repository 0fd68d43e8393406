package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

// csvHeader lists the export columns in row field order.
var csvHeader = []string{
	"Employee ID",
	"Name",
	"Type",
	"Location",
	"Project",
	"Expected Working Days",
	"Expected Hours",
	"Working Days",
	"Absent Days",
	"Absent Hours",
	"Total Worked Hours",
	"Normal Hours",
	"Overtime Hours",
}

// WriteCSV renders report rows as CSV. The output starts with a UTF-8
// byte-order marker so spreadsheet tools decode non-ASCII names correctly.
// Hour quantities carry one decimal place, day counts are plain integers,
// and an unset hour breakdown is a single dash.
func WriteCSV(w io.Writer, rows []report.MonthlyReportRow) error {
	if _, err := io.WriteString(w, "﻿"); err != nil {
		return fmt.Errorf("write byte-order marker: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.EmployeeID,
			row.EmployeeName,
			row.EmployeeType,
			row.Location,
			row.Project,
			strconv.Itoa(row.ExpectedWorkingDays),
			row.ExpectedHours.StringFixed(1),
			strconv.Itoa(row.WorkingDays),
			strconv.Itoa(row.AbsentDays),
			row.AbsentHours.StringFixed(1),
			row.TotalWorkedHours.StringFixed(1),
			hoursOrDash(row.NormalHours),
			hoursOrDash(row.OvertimeHours),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVBytes renders report rows as an in-memory CSV document.
func CSVBytes(rows []report.MonthlyReportRow) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func hoursOrDash(hours *decimal.Decimal) string {
	if hours == nil {
		return "-"
	}
	return hours.StringFixed(1)
}
