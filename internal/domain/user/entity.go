package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Full access: roster edits, threshold, exports
	RoleUser  Role = "user"  // Can record attendance and view reports
	RoleGuest Role = "guest" // Read-only
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser || r == RoleGuest
}

// IsAdmin reports whether the role may mutate the roster, the overtime
// threshold, and export reports.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
