package auth

import "context"

// AuthService issues tokens and manages role assignment. Authorization
// checks happen at the router middleware; the attendance core only enforces
// data invariants.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// AssignRole changes another user's role (admin only, enforced at the
	// router).
	AssignRole(ctx context.Context, req AssignRoleRequest) error

	// Me returns the profile of the acting principal.
	Me(ctx context.Context) (ProfileResponse, error)
}
