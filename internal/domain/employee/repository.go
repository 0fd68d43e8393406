package employee

import "context"

// Roster is the read-mostly employee reference store. The attendance core
// only ever reads from it.
type Roster interface {
	Create(ctx context.Context, e Employee) error
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
}
