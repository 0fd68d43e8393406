package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/user"
	"github.com/google/uuid"
)

type userRepository struct {
	mu      sync.RWMutex
	byID    map[string]user.User
	byEmail map[string]string
}

func NewUserRepository() user.UserRepository {
	return &userRepository{
		byID:    make(map[string]user.User),
		byEmail: make(map[string]string),
	}
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(u.Email)
	if _, exists := r.byEmail[email]; exists {
		return user.User{}, user.ErrEmailExists
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	r.byID[u.ID] = u
	r.byEmail[email] = u.ID
	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return r.byID[id], nil
}

// UpdateRole implements user.UserRepository.
func (r *userRepository) UpdateRole(ctx context.Context, id string, role user.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	u.UpdatedAt = time.Now().UTC()
	r.byID[id] = u
	return nil
}
