package employee

import "context"

// EmployeeService defines business logic for roster operations
type EmployeeService interface {
	// AddEmployee registers a new employee in the roster.
	AddEmployee(ctx context.Context, req AddEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee returns a single employee by id.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees returns the whole roster ordered by id.
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetWorkingStatus returns the employee's status for a day; a day with
	// no record is reported as absent.
	GetWorkingStatus(ctx context.Context, employeeID, date string) (WorkingStatusResponse, error)
}
