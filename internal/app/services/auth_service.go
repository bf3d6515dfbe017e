package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/app/repositories"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
	"github.com/baris/acadrecords/internal/pkg/auth"
	"github.com/baris/acadrecords/internal/pkg/logger"
	"github.com/baris/acadrecords/internal/pkg/validation"
)

// AuthService handles authentication, token issuance and account creation
type AuthService struct {
	userRepo    UserGateway
	studentRepo StudentGateway
	teacherRepo TeacherGateway
	adminRepo   AdministratorGateway
	jwtService  *auth.JWTService
	hasher      *auth.PasswordHasher
}

// NewAuthService creates a new AuthService instance
func NewAuthService(
	userRepo UserGateway,
	studentRepo StudentGateway,
	teacherRepo TeacherGateway,
	adminRepo AdministratorGateway,
	jwtService *auth.JWTService,
	hasher *auth.PasswordHasher,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		adminRepo:   adminRepo,
		jwtService:  jwtService,
		hasher:      hasher,
	}
}

// LoginResult carries the issued token pair and the authenticated identity
type LoginResult struct {
	User         *models.User
	DisplayName  string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Login verifies credentials and issues a token pair. Unknown usernames and
// wrong passwords produce the same opaque credential error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if validation.IsBlank(username) || validation.IsBlank(password) {
		return nil, apperrors.NewValidationError("Username and password are required")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid credentials")
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("User authenticated")
	return result, nil
}

// Refresh redeems a refresh token for a fresh token pair. The account is
// reloaded so that revoked users stop refreshing immediately.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, &apperrors.CustomError{Err: apperrors.ErrTokenExpired, Message: "Refresh token expired"}
		}
		return nil, &apperrors.CustomError{Err: apperrors.ErrTokenInvalid, Message: "Invalid refresh token"}
	}

	user, err := s.userRepo.GetUserByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, &apperrors.CustomError{Err: apperrors.ErrTokenInvalid, Message: "Invalid refresh token"}
		}
		return nil, fmt.Errorf("refresh failed: %w", err)
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*LoginResult, error) {
	accessToken, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.jwtService.GenerateRefreshToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &LoginResult{
		User:         user,
		DisplayName:  s.DisplayName(ctx, user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.jwtService.AccessTokenExpirySeconds(),
	}, nil
}

// GetProfile returns the account identified by userID
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, string, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", apperrors.NewNotFoundError("User", "id", userID)
		}
		return nil, "", fmt.Errorf("failed to load profile: %w", err)
	}
	return user, s.DisplayName(ctx, user), nil
}

// DisplayName resolves the human readable name for an account from its role
// profile, falling back to the username when no profile row exists.
func (s *AuthService) DisplayName(ctx context.Context, user *models.User) string {
	switch user.Role {
	case models.RoleStudent:
		if student, err := s.studentRepo.GetByUsername(ctx, user.Username); err == nil {
			return student.FullName()
		}
	case models.RoleTeacher:
		if teacher, err := s.teacherRepo.GetByUsername(ctx, user.Username); err == nil {
			return teacher.FullName()
		}
	case models.RoleAdministrator:
		if admin, err := s.adminRepo.GetByUsername(ctx, user.Username); err == nil {
			return admin.FullName()
		}
	}
	return user.Username
}

// CreateAccount registers a user account for a new role profile. The
// username is the lowercased first name and the initial password is the
// last name, matching the institution's onboarding convention.
func (s *AuthService) CreateAccount(ctx context.Context, firstName, lastName string, role models.Role) (*models.User, error) {
	username := strings.ToLower(strings.TrimSpace(firstName))

	hash, err := s.hasher.Hash(strings.TrimSpace(lastName))
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: hash,
		Role:     role,
	}
	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return nil, apperrors.NewDuplicateError("User", "username", username)
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return user, nil
}
