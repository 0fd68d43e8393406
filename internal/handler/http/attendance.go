package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/attendance"
	"github.com/caffeinepub/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	GetThreshold(w http.ResponseWriter, r *http.Request)
	SetThreshold(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.RecordCheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.RecordCheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

// SetStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rec, err := h.attendanceService.SetWorkingStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

// GetDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	rec, err := h.attendanceService.GetDay(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rec)
}

// ListMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))

	result, err := h.attendanceService.ListMonth(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetThreshold implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetThreshold(w http.ResponseWriter, r *http.Request) {
	hours, err := h.attendanceService.GetOvertimeThreshold(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"hours": hours})
}

// SetThreshold implements AttendanceHandler.
func (h *attendanceHandlerImpl) SetThreshold(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetThresholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.SetOvertimeThreshold(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime threshold updated", map[string]int{"hours": req.Hours})
}
