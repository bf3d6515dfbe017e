package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/app/repositories"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
	"github.com/baris/acadrecords/internal/pkg/logger"
)

// TeacherService handles teacher registration and profile management
type TeacherService struct {
	userRepo    UserGateway
	teacherRepo TeacherGateway
	authService *AuthService
}

// NewTeacherService creates a new TeacherService instance
func NewTeacherService(
	userRepo UserGateway,
	teacherRepo TeacherGateway,
	authService *AuthService,
) *TeacherService {
	return &TeacherService{
		userRepo:    userRepo,
		teacherRepo: teacherRepo,
		authService: authService,
	}
}

// Register creates a teacher account and profile. The account username is the
// lowercased first name; the initial password is the last name.
func (s *TeacherService) Register(ctx context.Context, firstName, lastName, email string) (*models.Teacher, error) {
	if err := validatePersonFields(firstName, lastName, email); err != nil {
		return nil, err
	}
	if err := s.requireFreeEmail(ctx, email, 0); err != nil {
		return nil, err
	}

	user, err := s.authService.CreateAccount(ctx, firstName, lastName, models.RoleTeacher)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		ID:        user.ID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		if delErr := s.userRepo.DeleteUser(ctx, user.ID); delErr != nil {
			logger.Error().Err(delErr).Int64("userId", user.ID).Msg("Failed to remove orphaned account")
		}
		if errors.Is(err, repositories.ErrTeacherEmailTaken) {
			return nil, apperrors.NewDuplicateError("Teacher", "email", email)
		}
		return nil, fmt.Errorf("failed to create teacher profile: %w", err)
	}

	logger.Info().Int64("teacherId", teacher.ID).Str("username", user.Username).Msg("Teacher registered")
	return teacher, nil
}

// GetByID returns a teacher profile by ID
func (s *TeacherService) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil, apperrors.NewNotFoundError("Teacher", "id", id)
		}
		return nil, fmt.Errorf("failed to get teacher: %w", err)
	}
	return teacher, nil
}

// GetByUsername returns a teacher profile by account username
func (s *TeacherService) GetByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil, apperrors.NewNotFoundError("Teacher", "username", username)
		}
		return nil, fmt.Errorf("failed to get teacher: %w", err)
	}
	return teacher, nil
}

// GetAll lists every teacher profile
func (s *TeacherService) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherRepo.GetAll(ctx)
}

// Update replaces the profile fields of a teacher
func (s *TeacherService) Update(ctx context.Context, id int64, firstName, lastName, email string) (*models.Teacher, error) {
	if err := validatePersonFields(firstName, lastName, email); err != nil {
		return nil, err
	}
	if err := s.requireFreeEmail(ctx, email, id); err != nil {
		return nil, err
	}

	teacher, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	teacher.FirstName = firstName
	teacher.LastName = lastName
	teacher.Email = email
	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		if errors.Is(err, repositories.ErrTeacherNotFound) {
			return nil, apperrors.NewNotFoundError("Teacher", "id", id)
		}
		if errors.Is(err, repositories.ErrTeacherEmailTaken) {
			return nil, apperrors.NewDuplicateError("Teacher", "email", email)
		}
		return nil, fmt.Errorf("failed to update teacher: %w", err)
	}
	return teacher, nil
}

func (s *TeacherService) requireFreeEmail(ctx context.Context, email string, id int64) error {
	taken, err := s.teacherRepo.EmailTakenByOther(ctx, email, id)
	if err != nil {
		return fmt.Errorf("failed to check teacher email: %w", err)
	}
	if taken {
		return apperrors.NewDuplicateError("Teacher", "email", email)
	}
	return nil
}

// Delete removes a teacher together with its account. Assignments taught by
// the teacher and their grades are removed by the database cascade.
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	exists, err := s.teacherRepo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check teacher: %w", err)
	}
	if !exists {
		return apperrors.NewNotFoundError("Teacher", "id", id)
	}

	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}

	logger.Info().Int64("teacherId", id).Msg("Teacher deleted")
	return nil
}
