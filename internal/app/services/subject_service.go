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

// SubjectService handles subject management
type SubjectService struct {
	subjectRepo    SubjectGateway
	assignmentRepo AssignmentGateway
}

// NewSubjectService creates a new SubjectService instance
func NewSubjectService(subjectRepo SubjectGateway, assignmentRepo AssignmentGateway) *SubjectService {
	return &SubjectService{subjectRepo: subjectRepo, assignmentRepo: assignmentRepo}
}

func validateSubjectFields(name, code string, credits int) error {
	if validation.IsBlank(name) {
		return apperrors.NewValidationError("Subject name is required")
	}
	if validation.IsBlank(code) {
		return apperrors.NewValidationError("Subject code is required")
	}
	if credits < 0 {
		return apperrors.NewValidationError("Credits must not be negative")
	}
	return nil
}

// Create adds a subject with a unique code
func (s *SubjectService) Create(ctx context.Context, name, code string, credits int, description string) (*models.Subject, error) {
	if err := validateSubjectFields(name, code, credits); err != nil {
		return nil, err
	}

	taken, err := s.subjectRepo.CodeTakenByOther(ctx, code, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check subject code: %w", err)
	}
	if taken {
		return nil, apperrors.NewDuplicateError("Subject", "code", code)
	}

	subject := &models.Subject{
		Name:        name,
		Code:        code,
		Credits:     credits,
		Description: description,
	}
	if _, err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}

	logger.Info().Int64("subjectId", subject.ID).Str("code", code).Msg("Subject created")
	return subject, nil
}

// GetByID returns a subject by ID
func (s *SubjectService) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSubjectNotFound) {
			return nil, apperrors.NewNotFoundError("Subject", "id", id)
		}
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}
	return subject, nil
}

// GetAll lists every subject
func (s *SubjectService) GetAll(ctx context.Context) ([]*models.Subject, error) {
	return s.subjectRepo.GetAll(ctx)
}

// Update replaces the fields of a subject, keeping codes unique
func (s *SubjectService) Update(ctx context.Context, id int64, name, code string, credits int, description string) (*models.Subject, error) {
	if err := validateSubjectFields(name, code, credits); err != nil {
		return nil, err
	}

	subject, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.subjectRepo.CodeTakenByOther(ctx, code, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check subject code: %w", err)
	}
	if taken {
		return nil, apperrors.NewDuplicateError("Subject", "code", code)
	}

	subject.Name = name
	subject.Code = code
	subject.Credits = credits
	subject.Description = description
	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		if errors.Is(err, repositories.ErrSubjectNotFound) {
			return nil, apperrors.NewNotFoundError("Subject", "id", id)
		}
		return nil, fmt.Errorf("failed to update subject: %w", err)
	}
	return subject, nil
}

// Delete removes a subject together with its assignments. Grades under those
// assignments are removed by the database cascade.
func (s *SubjectService) Delete(ctx context.Context, id int64) error {
	exists, err := s.subjectRepo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check subject: %w", err)
	}
	if !exists {
		return apperrors.NewNotFoundError("Subject", "id", id)
	}

	assignments, err := s.assignmentRepo.GetBySubject(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list subject assignments: %w", err)
	}
	for _, assignment := range assignments {
		if err := s.assignmentRepo.Delete(ctx, assignment.ID); err != nil &&
			!errors.Is(err, repositories.ErrAssignmentNotFound) {
			return fmt.Errorf("failed to delete subject assignment: %w", err)
		}
	}

	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSubjectNotFound) {
			return apperrors.NewNotFoundError("Subject", "id", id)
		}
		return fmt.Errorf("failed to delete subject: %w", err)
	}

	logger.Info().Int64("subjectId", id).Int("assignments", len(assignments)).Msg("Subject deleted")
	return nil
}
