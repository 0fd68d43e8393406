package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/report"
	"github.com/caffeinepub/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	ExportMonthlyCSV(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func monthlyRequestFromQuery(r *http.Request) report.MonthlyReportRequest {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	month, _ := strconv.Atoi(q.Get("month"))
	return report.MonthlyReportRequest{
		Year:         year,
		Month:        month,
		Location:     q.Get("location"),
		Project:      q.Get("project"),
		EmployeeType: q.Get("employee_type"),
	}
}

// Monthly implements ReportHandler.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reportService.MonthlyReport(r.Context(), monthlyRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

// ExportMonthlyCSV implements ReportHandler.
func (h *reportHandlerImpl) ExportMonthlyCSV(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.reportService.ExportMonthlyReportCSV(r.Context(), monthlyRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
