package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/auth"
	"github.com/caffeinepub/attendance-backend-go/internal/domain/user"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	users user.UserRepository
	jwt   jwt.Service
}

// NewAuthService creates a new auth service.
func NewAuthService(users user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &authService{
		users: users,
		jwt:   jwtService,
	}
}

// Login implements auth.AuthService.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresAt:        expiresAt,
		RefreshExpiresAt: refreshExpiresAt,
		Role:             string(u.Role),
	}, nil
}

// AssignRole implements auth.AuthService.
func (s *authService) AssignRole(ctx context.Context, req auth.AssignRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.users.UpdateRole(ctx, req.UserID, user.Role(req.Role)); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	return nil
}

// Me implements auth.AuthService.
func (s *authService) Me(ctx context.Context) (auth.ProfileResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.ProfileResponse{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.ProfileResponse{}, auth.ErrInvalidToken
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return auth.ProfileResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return auth.ProfileResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}, nil
}
