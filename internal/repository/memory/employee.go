package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/employee"
)

type roster struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewRoster() employee.Roster {
	return &roster{employees: make(map[string]employee.Employee)}
}

// Create implements employee.Roster.
func (r *roster) Create(ctx context.Context, e employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.employees[e.ID]; exists {
		return employee.ErrEmployeeExists
	}
	r.employees[e.ID] = e
	return nil
}

// GetByID implements employee.Roster.
func (r *roster) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

// List implements employee.Roster.
func (r *roster) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
