package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/pkg/dberrors"
	"github.com/baris/acadrecords/internal/pkg/helpers"
)

// Common grade repository errors
var (
	ErrGradeNotFound = errors.New("grade not found")
	ErrGradeExists   = errors.New("grade already exists for student and assignment")
)

// GradeRepository handles database operations for grades
type GradeRepository struct {
	pool *pgxpool.Pool
}

// NewGradeRepository creates a new GradeRepository instance
func NewGradeRepository(pool *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{pool: pool}
}

// scanGrade reads one bare grade row
func scanGrade(row pgx.Row) (*models.Grade, error) {
	grade := &models.Grade{}
	var comments *string
	err := row.Scan(&grade.ID, &grade.StudentID, &grade.AssignmentID,
		&grade.Value, &grade.Date, &comments)
	if err != nil {
		return nil, err
	}
	if comments != nil {
		grade.Comments = *comments
	}
	return grade, nil
}

// Create inserts a grade and returns its generated ID. The unique index over
// (student_id, assignment_id) rejects concurrent duplicates.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) (int64, error) {
	query := `
		INSERT INTO grades (student_id, assignment_id, value, date, comments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		grade.StudentID, grade.AssignmentID, grade.Value, grade.Date,
		helpers.GetNullString(grade.Comments)).Scan(&grade.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrGradeExists
		}
		return 0, fmt.Errorf("error creating grade: %w", err)
	}
	return grade.ID, nil
}

// GetByID finds a grade by its primary key
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	query := `
		SELECT id, student_id, assignment_id, value, date, comments
		FROM grades
		WHERE id = $1`

	grade, err := scanGrade(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGradeNotFound
		}
		return nil, fmt.Errorf("error getting grade: %w", err)
	}
	return grade, nil
}

// Update replaces the value, date and comments of a grade
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	query := `
		UPDATE grades
		SET value = $1, date = $2, comments = $3
		WHERE id = $4`

	result, err := r.pool.Exec(ctx, query,
		grade.Value, grade.Date, helpers.GetNullString(grade.Comments), grade.ID)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrGradeNotFound
	}
	return nil
}

// Delete removes a grade row
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM grades WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrGradeNotFound
	}
	return nil
}

// ExistsByStudentAndAssignment reports whether the student already holds a
// grade for the assignment
func (r *GradeRepository) ExistsByStudentAndAssignment(ctx context.Context, studentID, assignmentID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM grades WHERE student_id = $1 AND assignment_id = $2)`
	err := r.pool.QueryRow(ctx, query, studentID, assignmentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking grade existence: %w", err)
	}
	return exists, nil
}

// GetByStudent lists the grades of a student, newest first
func (r *GradeRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	query := `
		SELECT id, student_id, assignment_id, value, date, comments
		FROM grades
		WHERE student_id = $1
		ORDER BY date DESC, id DESC`

	return r.queryGrades(ctx, query, studentID)
}

// GetByAssignment lists the grades recorded for an assignment, newest first
func (r *GradeRepository) GetByAssignment(ctx context.Context, assignmentID int64) ([]*models.Grade, error) {
	query := `
		SELECT id, student_id, assignment_id, value, date, comments
		FROM grades
		WHERE assignment_id = $1
		ORDER BY date DESC, id DESC`

	return r.queryGrades(ctx, query, assignmentID)
}

// GetByTeacher lists every grade recorded under the teacher's assignments
func (r *GradeRepository) GetByTeacher(ctx context.Context, teacherID int64) ([]*models.Grade, error) {
	query := `
		SELECT gr.id, gr.student_id, gr.assignment_id, gr.value, gr.date, gr.comments
		FROM grades gr
		JOIN subject_assignments a ON a.id = gr.assignment_id
		WHERE a.teacher_id = $1
		ORDER BY gr.date DESC, gr.id DESC`

	return r.queryGrades(ctx, query, teacherID)
}

// GetByTeacherAndSubject lists the teacher's grades restricted to one subject
func (r *GradeRepository) GetByTeacherAndSubject(ctx context.Context, teacherID, subjectID int64) ([]*models.Grade, error) {
	query := `
		SELECT gr.id, gr.student_id, gr.assignment_id, gr.value, gr.date, gr.comments
		FROM grades gr
		JOIN subject_assignments a ON a.id = gr.assignment_id
		WHERE a.teacher_id = $1 AND a.subject_id = $2
		ORDER BY gr.date DESC, gr.id DESC`

	return r.queryGrades(ctx, query, teacherID, subjectID)
}

func (r *GradeRepository) queryGrades(ctx context.Context, query string, args ...interface{}) ([]*models.Grade, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		grade, err := scanGrade(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning grade: %w", err)
		}
		grades = append(grades, grade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grades: %w", err)
	}
	return grades, nil
}

// GetAll lists every grade together with the identifying keys of its
// assignment and the student's group, for aggregate reporting
func (r *GradeRepository) GetAll(ctx context.Context) ([]*models.Grade, error) {
	query := `
		SELECT gr.id, gr.student_id, gr.assignment_id, gr.value, gr.date, gr.comments,
		       s.group_id,
		       a.subject_id, a.teacher_id, a.group_id
		FROM grades gr
		JOIN students s ON s.id = gr.student_id
		JOIN subject_assignments a ON a.id = gr.assignment_id
		ORDER BY gr.date DESC, gr.id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		grade := &models.Grade{}
		student := &models.Student{}
		assignment := &models.SubjectAssignment{}
		var comments *string

		err := rows.Scan(&grade.ID, &grade.StudentID, &grade.AssignmentID,
			&grade.Value, &grade.Date, &comments,
			&student.GroupID,
			&assignment.SubjectID, &assignment.TeacherID, &assignment.GroupID)
		if err != nil {
			return nil, fmt.Errorf("error scanning grade: %w", err)
		}
		if comments != nil {
			grade.Comments = *comments
		}
		student.ID = grade.StudentID
		assignment.ID = grade.AssignmentID
		grade.Student = student
		grade.Assignment = assignment
		grades = append(grades, grade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grades: %w", err)
	}
	return grades, nil
}

// CountByTeacher returns the number of grades recorded under the teacher's assignments
func (r *GradeRepository) CountByTeacher(ctx context.Context, teacherID int64) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*)
		FROM grades gr
		JOIN subject_assignments a ON a.id = gr.assignment_id
		WHERE a.teacher_id = $1`
	err := r.pool.QueryRow(ctx, query, teacherID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting teacher grades: %w", err)
	}
	return count, nil
}

// CountByStudent returns the number of grades held by a student
func (r *GradeRepository) CountByStudent(ctx context.Context, studentID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM grades WHERE student_id = $1`
	err := r.pool.QueryRow(ctx, query, studentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting student grades: %w", err)
	}
	return count, nil
}

// Count returns the total number of grades
func (r *GradeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM grades`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting grades: %w", err)
	}
	return count, nil
}
