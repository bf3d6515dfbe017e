package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/app/repositories"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
	"github.com/baris/acadrecords/internal/pkg/logger"
	"github.com/baris/acadrecords/internal/pkg/validation"
)

// StudentService handles student registration and profile management
type StudentService struct {
	userRepo    UserGateway
	studentRepo StudentGateway
	groupRepo   GroupGateway
	authService *AuthService
}

// NewStudentService creates a new StudentService instance
func NewStudentService(
	userRepo UserGateway,
	studentRepo StudentGateway,
	groupRepo GroupGateway,
	authService *AuthService,
) *StudentService {
	return &StudentService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		groupRepo:   groupRepo,
		authService: authService,
	}
}

func validatePersonFields(firstName, lastName, email string) error {
	if validation.IsBlank(firstName) {
		return apperrors.NewValidationError("First name is required")
	}
	if validation.IsBlank(lastName) {
		return apperrors.NewValidationError("Last name is required")
	}
	if validation.IsBlank(email) || !validation.IsValidEmail(email) {
		return apperrors.NewValidationError("A valid email address is required")
	}
	return nil
}

// Register creates a student account and profile. The account username is the
// lowercased first name; the initial password is the last name.
func (s *StudentService) Register(ctx context.Context, firstName, lastName, email string, groupID *int64) (*models.Student, error) {
	if err := validatePersonFields(firstName, lastName, email); err != nil {
		return nil, err
	}
	if groupID != nil {
		if err := s.requireGroup(ctx, *groupID); err != nil {
			return nil, err
		}
	}
	if err := s.requireFreeEmail(ctx, email, 0); err != nil {
		return nil, err
	}

	user, err := s.authService.CreateAccount(ctx, firstName, lastName, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:        user.ID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		GroupID:   groupID,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		// Roll back the orphaned account so the username can be reused.
		if delErr := s.userRepo.DeleteUser(ctx, user.ID); delErr != nil {
			logger.Error().Err(delErr).Int64("userId", user.ID).Msg("Failed to remove orphaned account")
		}
		if errors.Is(err, repositories.ErrStudentEmailTaken) {
			return nil, apperrors.NewDuplicateError("Student", "email", email)
		}
		return nil, fmt.Errorf("failed to create student profile: %w", err)
	}

	logger.Info().Int64("studentId", student.ID).Str("username", user.Username).Msg("Student registered")
	return student, nil
}

// GetByID returns a student profile by ID
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.NewNotFoundError("Student", "id", id)
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

// GetByUsername returns a student profile by account username
func (s *StudentService) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	student, err := s.studentRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.NewNotFoundError("Student", "username", username)
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

// GetAll lists every student profile
func (s *StudentService) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetByGroup lists the students in a study group
func (s *StudentService) GetByGroup(ctx context.Context, groupID int64) ([]*models.Student, error) {
	if err := s.requireGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByGroup(ctx, groupID)
}

// Update replaces the profile fields of a student. A nil groupID removes the
// student from its current group.
func (s *StudentService) Update(ctx context.Context, id int64, firstName, lastName, email string, groupID *int64) (*models.Student, error) {
	if err := validatePersonFields(firstName, lastName, email); err != nil {
		return nil, err
	}
	if groupID != nil {
		if err := s.requireGroup(ctx, *groupID); err != nil {
			return nil, err
		}
	}
	if err := s.requireFreeEmail(ctx, email, id); err != nil {
		return nil, err
	}

	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.FirstName = firstName
	student.LastName = lastName
	student.Email = email
	student.GroupID = groupID
	student.Group = nil
	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.NewNotFoundError("Student", "id", id)
		}
		if errors.Is(err, repositories.ErrStudentEmailTaken) {
			return nil, apperrors.NewDuplicateError("Student", "email", email)
		}
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return s.GetByID(ctx, id)
}

// AssignToGroup moves a student into a study group
func (s *StudentService) AssignToGroup(ctx context.Context, studentID, groupID int64) error {
	if err := s.requireGroup(ctx, groupID); err != nil {
		return err
	}
	if err := s.studentRepo.SetGroup(ctx, studentID, &groupID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.NewNotFoundError("Student", "id", studentID)
		}
		return fmt.Errorf("failed to assign student to group: %w", err)
	}
	return nil
}

// RemoveFromGroup detaches a student from its study group
func (s *StudentService) RemoveFromGroup(ctx context.Context, studentID int64) error {
	if err := s.studentRepo.SetGroup(ctx, studentID, nil); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.NewNotFoundError("Student", "id", studentID)
		}
		return fmt.Errorf("failed to remove student from group: %w", err)
	}
	return nil
}

// Delete removes a student together with its account. Grades held by the
// student are removed by the database cascade.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	exists, err := s.studentRepo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check student: %w", err)
	}
	if !exists {
		return apperrors.NewNotFoundError("Student", "id", id)
	}

	// The profile and grades share the account's lifetime; removing the
	// user row cascades through both.
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}

func (s *StudentService) requireFreeEmail(ctx context.Context, email string, id int64) error {
	taken, err := s.studentRepo.EmailTakenByOther(ctx, email, id)
	if err != nil {
		return fmt.Errorf("failed to check student email: %w", err)
	}
	if taken {
		return apperrors.NewDuplicateError("Student", "email", email)
	}
	return nil
}

func (s *StudentService) requireGroup(ctx context.Context, groupID int64) error {
	exists, err := s.groupRepo.ExistsByID(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to check study group: %w", err)
	}
	if !exists {
		return apperrors.NewNotFoundError("StudyGroup", "id", groupID)
	}
	return nil
}
