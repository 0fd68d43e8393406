package employee

import (
	"context"
	"fmt"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/attendance"
	"github.com/caffeinepub/attendance-backend-go/internal/domain/employee"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/validator"
)

type employeeService struct {
	roster  employee.Roster
	records attendance.RecordStore
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(roster employee.Roster, records attendance.RecordStore) employee.EmployeeService {
	return &employeeService{
		roster:  roster,
		records: records,
	}
}

// AddEmployee implements employee.EmployeeService.
func (s *employeeService) AddEmployee(ctx context.Context, req employee.AddEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		ID:          req.ID,
		Name:        req.Name,
		Designation: employee.Designation(req.Designation),
		Type:        employee.EmployeeType(req.EmployeeType),
		Location:    employee.Location(req.Location),
		Project:     req.Project,
	}

	if err := s.roster.Create(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to add employee: %w", err)
	}

	return employee.NewEmployeeResponse(emp), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *employeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidEmployeeID(id) {
		return employee.EmployeeResponse{}, validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}

	emp, err := s.roster.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee.NewEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *employeeService) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.roster.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}

	return responses, nil
}

// GetWorkingStatus implements employee.EmployeeService.
func (s *employeeService) GetWorkingStatus(ctx context.Context, employeeID, date string) (employee.WorkingStatusResponse, error) {
	if !validator.IsValidEmployeeID(employeeID) {
		return employee.WorkingStatusResponse{}, validator.ValidationErrors{{Field: "employee_id", Message: "employee_id is required"}}
	}
	day, ok := validator.IsValidDate(date)
	if !ok {
		return employee.WorkingStatusResponse{}, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}

	if _, err := s.roster.GetByID(ctx, employeeID); err != nil {
		return employee.WorkingStatusResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	rec, err := s.records.Get(ctx, employeeID, day)
	if err != nil {
		return employee.WorkingStatusResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	// A day with no record counts as absent.
	status := attendance.StatusAbsent
	if rec != nil {
		status = rec.Status
	}

	return employee.WorkingStatusResponse{
		EmployeeID:    employeeID,
		Date:          day.Format("2006-01-02"),
		WorkingStatus: string(status),
	}, nil
}
