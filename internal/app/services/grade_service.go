package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/app/repositories"
	"github.com/baris/acadrecords/internal/pkg/apperrors"
	"github.com/baris/acadrecords/internal/pkg/logger"
	"github.com/baris/acadrecords/internal/pkg/validation"
)

// GradeService handles grade entry, correction and retrieval. Every write
// operation is authorized against the acting teacher before it touches a row.
type GradeService struct {
	gradeRepo      GradeGateway
	studentRepo    StudentGateway
	assignmentRepo AssignmentGateway
}

// NewGradeService creates a new GradeService instance
func NewGradeService(
	gradeRepo GradeGateway,
	studentRepo StudentGateway,
	assignmentRepo AssignmentGateway,
) *GradeService {
	return &GradeService{
		gradeRepo:      gradeRepo,
		studentRepo:    studentRepo,
		assignmentRepo: assignmentRepo,
	}
}

func validateGradeValue(value int) error {
	if value < models.MinGradeValue || value > models.MaxGradeValue {
		return apperrors.NewValidationError(fmt.Sprintf(
			"Grade must be between %d and %d", models.MinGradeValue, models.MaxGradeValue))
	}
	return nil
}

func validateGradeComments(comments string) error {
	if len(comments) > validation.CommentsMaxLength {
		return apperrors.NewValidationError(fmt.Sprintf(
			"Comments must not exceed %d characters", validation.CommentsMaxLength))
	}
	return nil
}

// EnterGrade records a grade for a student under one of the teacher's
// assignments. The referenced student and assignment must exist, the
// assignment must belong to the acting teacher, the student must sit in the
// assignment's group, and the student must not already hold a grade there.
func (s *GradeService) EnterGrade(ctx context.Context, teacherID, studentID, assignmentID int64, value int, comments string) (*models.Grade, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.NewNotFoundError("Student", "id", studentID)
		}
		return nil, fmt.Errorf("failed to load student: %w", err)
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrAssignmentNotFound) {
			return nil, apperrors.NewNotFoundError("SubjectAssignment", "id", assignmentID)
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}

	if assignment.TeacherID != teacherID {
		return nil, apperrors.NewForbiddenError("You are not assigned to teach this subject")
	}
	if student.GroupID == nil || *student.GroupID != assignment.GroupID {
		return nil, apperrors.NewValidationError("Student is not in the group for this subject")
	}

	exists, err := s.gradeRepo.ExistsByStudentAndAssignment(ctx, studentID, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing grade: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicateMessageError(
			"Grade already exists for this student and assignment. Use update instead.")
	}

	if err := validateGradeValue(value); err != nil {
		return nil, err
	}
	if err := validateGradeComments(comments); err != nil {
		return nil, err
	}

	grade := &models.Grade{
		StudentID:    studentID,
		AssignmentID: assignmentID,
		Value:        value,
		Date:         time.Now(),
		Comments:     comments,
	}
	if _, err := s.gradeRepo.Create(ctx, grade); err != nil {
		// The unique index catches a duplicate slipping in between the
		// existence check and the insert.
		if errors.Is(err, repositories.ErrGradeExists) {
			return nil, apperrors.NewDuplicateMessageError(
				"Grade already exists for this student and assignment. Use update instead.")
		}
		return nil, fmt.Errorf("failed to record grade: %w", err)
	}

	logger.Info().
		Int64("gradeId", grade.ID).
		Int64("teacherId", teacherID).
		Int64("studentId", studentID).
		Int64("assignmentId", assignmentID).
		Int("value", value).
		Msg("Grade entered")
	return grade, nil
}

// UpdateGrade replaces the value and comments of a grade the teacher assigned
func (s *GradeService) UpdateGrade(ctx context.Context, teacherID, gradeID int64, value int, comments string) (*models.Grade, error) {
	grade, err := s.getOwnedGrade(ctx, teacherID, gradeID, "You can only edit grades you assigned")
	if err != nil {
		return nil, err
	}

	if err := validateGradeValue(value); err != nil {
		return nil, err
	}
	if err := validateGradeComments(comments); err != nil {
		return nil, err
	}

	grade.Value = value
	grade.Comments = comments
	grade.Date = time.Now()
	if err := s.gradeRepo.Update(ctx, grade); err != nil {
		if errors.Is(err, repositories.ErrGradeNotFound) {
			return nil, apperrors.NewNotFoundError("Grade", "id", gradeID)
		}
		return nil, fmt.Errorf("failed to update grade: %w", err)
	}

	logger.Info().Int64("gradeId", gradeID).Int64("teacherId", teacherID).Int("value", value).Msg("Grade updated")
	return grade, nil
}

// DeleteGrade removes a grade the teacher assigned and returns the removed row
func (s *GradeService) DeleteGrade(ctx context.Context, teacherID, gradeID int64) (*models.Grade, error) {
	grade, err := s.getOwnedGrade(ctx, teacherID, gradeID, "You can only delete grades you assigned")
	if err != nil {
		return nil, err
	}

	if err := s.gradeRepo.Delete(ctx, gradeID); err != nil {
		if errors.Is(err, repositories.ErrGradeNotFound) {
			return nil, apperrors.NewNotFoundError("Grade", "id", gradeID)
		}
		return nil, fmt.Errorf("failed to delete grade: %w", err)
	}

	logger.Info().Int64("gradeId", gradeID).Int64("teacherId", teacherID).Msg("Grade deleted")
	return grade, nil
}

// getOwnedGrade loads a grade and verifies the acting teacher owns the
// assignment it was recorded under
func (s *GradeService) getOwnedGrade(ctx context.Context, teacherID, gradeID int64, denial string) (*models.Grade, error) {
	grade, err := s.gradeRepo.GetByID(ctx, gradeID)
	if err != nil {
		if errors.Is(err, repositories.ErrGradeNotFound) {
			return nil, apperrors.NewNotFoundError("Grade", "id", gradeID)
		}
		return nil, fmt.Errorf("failed to load grade: %w", err)
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, grade.AssignmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrAssignmentNotFound) {
			return nil, apperrors.NewNotFoundError("SubjectAssignment", "id", grade.AssignmentID)
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}
	if assignment.TeacherID != teacherID {
		return nil, apperrors.NewForbiddenError(denial)
	}
	return grade, nil
}

// GetByID returns a grade by ID
func (s *GradeService) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	grade, err := s.gradeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGradeNotFound) {
			return nil, apperrors.NewNotFoundError("Grade", "id", id)
		}
		return nil, fmt.Errorf("failed to get grade: %w", err)
	}
	return grade, nil
}

// GetTeacherGrades lists every grade recorded under the teacher's assignments
func (s *GradeService) GetTeacherGrades(ctx context.Context, teacherID int64) ([]*models.Grade, error) {
	return s.gradeRepo.GetByTeacher(ctx, teacherID)
}

// GetTeacherGradesBySubject restricts the teacher's grades to one subject
func (s *GradeService) GetTeacherGradesBySubject(ctx context.Context, teacherID, subjectID int64) ([]*models.Grade, error) {
	return s.gradeRepo.GetByTeacherAndSubject(ctx, teacherID, subjectID)
}

// GetAssignmentGrades lists the grades of one of the teacher's assignments
func (s *GradeService) GetAssignmentGrades(ctx context.Context, teacherID, assignmentID int64) ([]*models.Grade, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrAssignmentNotFound) {
			return nil, apperrors.NewNotFoundError("SubjectAssignment", "id", assignmentID)
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}
	if assignment.TeacherID != teacherID {
		return nil, apperrors.NewForbiddenError("You are not assigned to teach this subject")
	}
	return s.gradeRepo.GetByAssignment(ctx, assignmentID)
}

// GetStudentGrades lists the grades held by a student
func (s *GradeService) GetStudentGrades(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	exists, err := s.studentRepo.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check student: %w", err)
	}
	if !exists {
		return nil, apperrors.NewNotFoundError("Student", "id", studentID)
	}
	return s.gradeRepo.GetByStudent(ctx, studentID)
}
