package response

import (
	"errors"
	"net/http"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/attendance"
	"github.com/caffeinepub/attendance-backend-go/internal/domain/auth"
	"github.com/caffeinepub/attendance-backend-go/internal/domain/employee"
	"github.com/caffeinepub/attendance-backend-go/internal/domain/user"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrStatusConflict):
		Conflict(w, "Day has a non-working status; set a working status before recording times")
	case errors.Is(err, attendance.ErrNoCheckIn):
		BadRequest(w, "No check-in recorded for this day", nil)
	case errors.Is(err, attendance.ErrInvalidRange):
		BadRequest(w, "Check-out must be after check-in", nil)
	case errors.Is(err, attendance.ErrInvalidTime):
		BadRequest(w, "Invalid clock time", nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Unknown working status", nil)
	case errors.Is(err, attendance.ErrInvalidThreshold):
		BadRequest(w, "Overtime threshold must be between 0 and 24 hours", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee id already exists")

	// Auth and user domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Unknown role", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
