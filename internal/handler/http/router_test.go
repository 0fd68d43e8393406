package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/user"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/jwt"
	"github.com/caffeinepub/attendance-backend-go/internal/repository/memory"
	attendanceService "github.com/caffeinepub/attendance-backend-go/internal/service/attendance"
	authService "github.com/caffeinepub/attendance-backend-go/internal/service/auth"
	employeeService "github.com/caffeinepub/attendance-backend-go/internal/service/employee"
	reportService "github.com/caffeinepub/attendance-backend-go/internal/service/report"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	router     *chi.Mux
	adminToken string
	userToken  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	records := memory.NewRecordStore()
	thresholds := memory.NewThresholdStore(8)
	roster := memory.NewRoster()
	users := memory.NewUserRepository()

	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin, err := users.Create(context.Background(), user.User{
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	})
	require.NoError(t, err)
	regular, err := users.Create(context.Background(), user.User{
		Email:        "user@example.com",
		Name:         "User",
		PasswordHash: string(hash),
		Role:         user.RoleUser,
	})
	require.NoError(t, err)

	adminToken, _, err := jwtService.GenerateAccessToken(admin.ID, admin.Email, admin.Role)
	require.NoError(t, err)
	userToken, _, err := jwtService.GenerateAccessToken(regular.ID, regular.Email, regular.Role)
	require.NoError(t, err)

	router := NewRouter(
		jwtService,
		"http://localhost:3000",
		NewAuthHandler(authService.NewAuthService(users, jwtService), jwtService),
		NewAttendanceHandler(attendanceService.NewAttendanceService(records, thresholds)),
		NewEmployeeHandler(employeeService.NewEmployeeService(roster, records)),
		NewReportHandler(reportService.NewReportService(roster, records, thresholds, nil)),
	)

	return &testEnv{router: router, adminToken: adminToken, userToken: userToken}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_LoginAndMe(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var loginResp struct {
		Data struct {
			AccessToken string `json:"access_token"`
			Role        string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginResp))
	assert.Equal(t, "admin", loginResp.Data.Role)
	require.NotEmpty(t, loginResp.Data.AccessToken)

	rec = env.do(t, http.MethodGet, "/api/v1/auth/me", loginResp.Data.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@example.com")
}

func TestRouter_LoginRejectsBadPassword(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RequiresAuthentication(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/employees/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AttendanceFlow(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/attendance/check-in", env.userToken, map[string]string{
		"employee_id":    "E1",
		"date":           "2024-03-01",
		"check_in":       "08:00",
		"working_status": "fullwork",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/v1/attendance/check-out", env.userToken, map[string]string{
		"employee_id": "E1",
		"date":        "2024-03-01",
		"check_out":   "18:00",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/v1/attendance/E1/2024-03-01", env.userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fullwork")

	// Check-out before check-in on a fresh day is rejected.
	rec = env.do(t, http.MethodPost, "/api/v1/attendance/check-out", env.userToken, map[string]string{
		"employee_id": "E1",
		"date":        "2024-03-02",
		"check_out":   "18:00",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_CheckInReopensNonWorkingDay(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/attendance/status", env.userToken, map[string]string{
		"employee_id":    "E1",
		"date":           "2024-03-01",
		"working_status": "vacation",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// A check-in always carries a working status, so it reopens the day
	// instead of tripping the status conflict.
	rec = env.do(t, http.MethodPost, "/api/v1/attendance/check-in", env.userToken, map[string]string{
		"employee_id":    "E1",
		"date":           "2024-03-01",
		"check_in":       "08:00",
		"working_status": "fullwork",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "fullwork")
}

func TestRouter_ValidationErrorsMapTo422(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/attendance/check-in", env.userToken, map[string]string{
		"employee_id":    "E1",
		"date":           "01-03-2024",
		"check_in":       "8am",
		"working_status": "fullwork",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Well-formed but out-of-range clock values fail at parse time.
	rec = env.do(t, http.MethodPost, "/api/v1/attendance/check-in", env.userToken, map[string]string{
		"employee_id":    "E1",
		"date":           "2024-03-01",
		"check_in":       "25:99",
		"working_status": "fullwork",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_EmployeeRosterAdminGate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	body := map[string]any{
		"id":            "E1",
		"name":          "Alice",
		"designation":   "accountant",
		"employee_type": "company",
		"location":      "kuwait",
	}

	rec := env.do(t, http.MethodPost, "/api/v1/employees/", env.userToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/employees/", env.adminToken, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/v1/employees/E1", env.userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Accountant")

	rec = env.do(t, http.MethodGet, "/api/v1/employees/nobody", env.userToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_WorkingStatusDefaultsToAbsent(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/employees/", env.adminToken, map[string]any{
		"id":            "E1",
		"name":          "Alice",
		"designation":   "accountant",
		"employee_type": "company",
		"location":      "kuwait",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/employees/E1/working-status?date=2024-03-01", env.userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "absent")
}

func TestRouter_ThresholdAdminGate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/overtime-threshold/", env.userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hours":8`)

	rec = env.do(t, http.MethodPut, "/api/v1/overtime-threshold/", env.userToken, map[string]int{"hours": 9})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/overtime-threshold/", env.adminToken, map[string]int{"hours": 9})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/overtime-threshold/", env.userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hours":9`)
}

func TestRouter_MonthlyReportAndExport(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/employees/", env.adminToken, map[string]any{
		"id":            "E1",
		"name":          "Alice",
		"designation":   "accountant",
		"employee_type": "company",
		"location":      "kuwait",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/attendance/check-in", env.userToken, map[string]string{
		"employee_id":    "E1",
		"date":           "2024-03-01",
		"check_in":       "08:00",
		"working_status": "fullwork",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodPost, "/api/v1/attendance/check-out", env.userToken, map[string]string{
		"employee_id": "E1",
		"date":        "2024-03-01",
		"check_out":   "18:00",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/reports/monthly?year=2024&month=3", env.userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"total_worked_hours":"10"`)

	// Export is admin only and ships as a CSV attachment.
	rec = env.do(t, http.MethodGet, "/api/v1/reports/monthly/export?year=2024&month=3", env.userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/reports/monthly/export?year=2024&month=3", env.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, fmt.Sprintf("attachment; filename=%q", "monthly-report-2024-03-March.csv"),
		rec.Header().Get("Content-Disposition"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "﻿"))
	assert.Contains(t, body, "Employee ID,Name,Type,Location,Project")
	assert.Contains(t, body, "E1,Alice,company,kuwait")
}

func TestRouter_AssignRole(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	// Look up the regular user's id through login + me.
	rec := env.do(t, http.MethodGet, "/api/v1/auth/me", env.userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var meResp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meResp))

	rec = env.do(t, http.MethodPut, "/api/v1/users/role", env.userToken, map[string]string{
		"user_id": meResp.Data.ID,
		"role":    "admin",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/users/role", env.adminToken, map[string]string{
		"user_id": meResp.Data.ID,
		"role":    "guest",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/v1/auth/me", env.userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"guest"`)
}
