package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/employee"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type roster struct {
	db *database.DB
}

// NewRoster creates a PostgreSQL-backed employee roster.
func NewRoster(db *database.DB) employee.Roster {
	return &roster{db: db}
}

// Create implements employee.Roster.
func (r *roster) Create(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, name, designation, employee_type, location, project)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query,
		emp.ID, emp.Name, emp.Designation, emp.Type, emp.Location, emp.Project,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmployeeExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// GetByID implements employee.Roster.
func (r *roster) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, designation, employee_type, location, project
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Designation, &emp.Type, &emp.Location, &emp.Project,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.Roster.
func (r *roster) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, designation, employee_type, location, project
		FROM employees
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Designation, &emp.Type, &emp.Location, &emp.Project); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
