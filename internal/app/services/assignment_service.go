package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/app/repositories"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
	"github.com/baris/acadrecords/internal/pkg/logger"
	"github.com/baris/acadrecords/internal/pkg/validation"
)

// AssignmentService handles subject assignment management
type AssignmentService struct {
	assignmentRepo AssignmentGateway
	subjectRepo    SubjectGateway
	teacherRepo    TeacherGateway
	groupRepo      GroupGateway
}

// NewAssignmentService creates a new AssignmentService instance
func NewAssignmentService(
	assignmentRepo AssignmentGateway,
	subjectRepo SubjectGateway,
	teacherRepo TeacherGateway,
	groupRepo GroupGateway,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		subjectRepo:    subjectRepo,
		teacherRepo:    teacherRepo,
		groupRepo:      groupRepo,
	}
}

func validateAssignmentFields(academicYear, semester string) error {
	if !validation.IsValidAcademicYear(academicYear) {
		return apperrors.NewValidationError("Academic year must be in format YYYY/YYYY")
	}
	if !models.IsValidSemester(semester) {
		return apperrors.NewValidationError(fmt.Sprintf(
			"Invalid semester: %s. Must be one of: %s",
			semester, strings.Join(models.ValidSemesters, ", ")))
	}
	return nil
}

func (s *AssignmentService) requireRelations(ctx context.Context, subjectID, teacherID, groupID int64) error {
	exists, err := s.subjectRepo.ExistsByID(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("failed to check subject: %w", err)
	}
	if !exists {
		return apperrors.NewNotFoundError("Subject", "id", subjectID)
	}

	exists, err = s.teacherRepo.ExistsByID(ctx, teacherID)
	if err != nil {
		return fmt.Errorf("failed to check teacher: %w", err)
	}
	if !exists {
		return apperrors.NewNotFoundError("Teacher", "id", teacherID)
	}

	exists, err = s.groupRepo.ExistsByID(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to check study group: %w", err)
	}
	if !exists {
		return apperrors.NewNotFoundError("StudyGroup", "id", groupID)
	}
	return nil
}

// Create binds a subject to a teacher and a study group for one academic
// year and semester. The same five-tuple can exist only once.
func (s *AssignmentService) Create(ctx context.Context, subjectID, teacherID, groupID int64, academicYear, semester string) (*models.SubjectAssignment, error) {
	if err := validateAssignmentFields(academicYear, semester); err != nil {
		return nil, err
	}
	if err := s.requireRelations(ctx, subjectID, teacherID, groupID); err != nil {
		return nil, err
	}

	exists, err := s.assignmentRepo.ExistsByFields(ctx, subjectID, teacherID, groupID, academicYear, semester)
	if err != nil {
		return nil, fmt.Errorf("failed to check assignment uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateMessageError("This subject assignment already exists")
	}

	assignment := &models.SubjectAssignment{
		SubjectID:    subjectID,
		TeacherID:    teacherID,
		GroupID:      groupID,
		AcademicYear: academicYear,
		Semester:     semester,
	}
	if _, err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		if errors.Is(err, repositories.ErrAssignmentExists) {
			return nil, apperrors.NewDuplicateMessageError("This subject assignment already exists")
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	logger.Info().
		Int64("assignmentId", assignment.ID).
		Int64("subjectId", subjectID).
		Int64("teacherId", teacherID).
		Int64("groupId", groupID).
		Msg("Subject assignment created")
	return s.GetByID(ctx, assignment.ID)
}

// GetByID returns an assignment by ID with joined relations
func (s *AssignmentService) GetByID(ctx context.Context, id int64) (*models.SubjectAssignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAssignmentNotFound) {
			return nil, apperrors.NewNotFoundError("SubjectAssignment", "id", id)
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment, nil
}

// GetAll lists every assignment
func (s *AssignmentService) GetAll(ctx context.Context) ([]*models.SubjectAssignment, error) {
	return s.assignmentRepo.GetAll(ctx)
}

// GetByTeacher lists the assignments taught by a teacher
func (s *AssignmentService) GetByTeacher(ctx context.Context, teacherID int64) ([]*models.SubjectAssignment, error) {
	return s.assignmentRepo.GetByTeacher(ctx, teacherID)
}

// GetBySubject lists the assignments of a subject
func (s *AssignmentService) GetBySubject(ctx context.Context, subjectID int64) ([]*models.SubjectAssignment, error) {
	return s.assignmentRepo.GetBySubject(ctx, subjectID)
}

// GetByGroup lists the assignments bound to a study group
func (s *AssignmentService) GetByGroup(ctx context.Context, groupID int64) ([]*models.SubjectAssignment, error) {
	return s.assignmentRepo.GetByGroup(ctx, groupID)
}

// GetByAcademicYear lists the assignments within an academic year
func (s *AssignmentService) GetByAcademicYear(ctx context.Context, academicYear string) ([]*models.SubjectAssignment, error) {
	return s.assignmentRepo.GetByAcademicYear(ctx, academicYear)
}

// Update replaces the fields of an assignment under the same uniqueness rule
func (s *AssignmentService) Update(ctx context.Context, id, subjectID, teacherID, groupID int64, academicYear, semester string) (*models.SubjectAssignment, error) {
	if err := validateAssignmentFields(academicYear, semester); err != nil {
		return nil, err
	}
	if err := s.requireRelations(ctx, subjectID, teacherID, groupID); err != nil {
		return nil, err
	}

	assignment, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	assignment.SubjectID = subjectID
	assignment.TeacherID = teacherID
	assignment.GroupID = groupID
	assignment.AcademicYear = academicYear
	assignment.Semester = semester
	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		switch {
		case errors.Is(err, repositories.ErrAssignmentExists):
			return nil, apperrors.NewDuplicateMessageError("This subject assignment already exists")
		case errors.Is(err, repositories.ErrAssignmentNotFound):
			return nil, apperrors.NewNotFoundError("SubjectAssignment", "id", id)
		}
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}
	return s.GetByID(ctx, id)
}

// Delete removes an assignment. Its grades are removed by the database cascade.
func (s *AssignmentService) Delete(ctx context.Context, id int64) error {
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrAssignmentNotFound) {
			return apperrors.NewNotFoundError("SubjectAssignment", "id", id)
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	logger.Info().Int64("assignmentId", id).Msg("Subject assignment deleted")
	return nil
}
