package report

import "context"

// ReportService defines the monthly aggregation and export contract
type ReportService interface {
	// MonthlyReport folds a month of per-day records into one summary row
	// per employee passing the filters, ordered by employee id.
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// ExportMonthlyReportCSV renders the same report as CSV text (UTF-8
	// with a leading byte-order marker) and returns the suggested filename.
	ExportMonthlyReportCSV(ctx context.Context, req MonthlyReportRequest) (csv []byte, filename string, err error)
}
