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

// GroupService handles study group management
type GroupService struct {
	groupRepo   GroupGateway
	studentRepo StudentGateway
}

// NewGroupService creates a new GroupService instance
func NewGroupService(groupRepo GroupGateway, studentRepo StudentGateway) *GroupService {
	return &GroupService{groupRepo: groupRepo, studentRepo: studentRepo}
}

func validateGroupFields(name string, year int) error {
	if validation.IsBlank(name) {
		return apperrors.NewValidationError("Group name is required")
	}
	if len(name) > validation.GroupNameMaxLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("Group name must not exceed %d characters", validation.GroupNameMaxLength))
	}
	if !validation.IsValidGroupYear(year) {
		return apperrors.NewValidationError(
			fmt.Sprintf("Year must be between %d and %d, got: %d",
				validation.MinGroupYear, validation.MaxGroupYear, year))
	}
	return nil
}

// Create adds a study group with a unique name
func (s *GroupService) Create(ctx context.Context, name string, year int) (*models.StudyGroup, error) {
	if err := validateGroupFields(name, year); err != nil {
		return nil, err
	}

	exists, err := s.groupRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check group name: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateError("StudyGroup", "name", name)
	}

	group := &models.StudyGroup{Name: name, Year: year}
	if _, err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create study group: %w", err)
	}

	logger.Info().Int64("groupId", group.ID).Str("name", name).Msg("Study group created")
	return group, nil
}

// GetByID returns a study group by ID
func (s *GroupService) GetByID(ctx context.Context, id int64) (*models.StudyGroup, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, apperrors.NewNotFoundError("StudyGroup", "id", id)
		}
		return nil, fmt.Errorf("failed to get study group: %w", err)
	}
	return group, nil
}

// GetAll lists every study group
func (s *GroupService) GetAll(ctx context.Context) ([]*models.StudyGroup, error) {
	return s.groupRepo.GetAll(ctx)
}

// GetMembers lists the students in a study group
func (s *GroupService) GetMembers(ctx context.Context, id int64) ([]*models.Student, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByGroup(ctx, id)
}

// Update replaces the name and year of a study group, keeping names unique
func (s *GroupService) Update(ctx context.Context, id int64, name string, year int) (*models.StudyGroup, error) {
	if err := validateGroupFields(name, year); err != nil {
		return nil, err
	}

	group, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.groupRepo.NameTakenByOther(ctx, name, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check group name: %w", err)
	}
	if taken {
		return nil, apperrors.NewDuplicateError("StudyGroup", "name", name)
	}

	group.Name = name
	group.Year = year
	if err := s.groupRepo.Update(ctx, group); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, apperrors.NewNotFoundError("StudyGroup", "id", id)
		}
		return nil, fmt.Errorf("failed to update study group: %w", err)
	}
	return group, nil
}

// Delete removes a study group. Members stay enrolled but lose their group
// membership; assignments bound to the group are removed by the cascade.
func (s *GroupService) Delete(ctx context.Context, id int64) error {
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return apperrors.NewNotFoundError("StudyGroup", "id", id)
		}
		return fmt.Errorf("failed to delete study group: %w", err)
	}
	logger.Info().Int64("groupId", id).Msg("Study group deleted")
	return nil
}
