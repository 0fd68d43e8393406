package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrInvalidRole            = errors.New("role must be admin, user or guest")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
