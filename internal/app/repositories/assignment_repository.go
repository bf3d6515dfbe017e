package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/pkg/dberrors"
)

// Common assignment repository errors
var (
	ErrAssignmentNotFound = errors.New("subject assignment not found")
	ErrAssignmentExists   = errors.New("subject assignment already exists")
)

// AssignmentRepository handles database operations for subject assignments
type AssignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository instance
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

const assignmentSelectColumns = `
	a.id, a.subject_id, a.teacher_id, a.group_id, a.academic_year, a.semester,
	sub.name, sub.code, sub.credits,
	t.first_name, t.last_name,
	g.name, g.year`

// scanAssignment reads one assignment row with its joined relations
func scanAssignment(row pgx.Row) (*models.SubjectAssignment, error) {
	assignment := &models.SubjectAssignment{}
	subject := &models.Subject{}
	teacher := &models.Teacher{}
	group := &models.StudyGroup{}

	err := row.Scan(
		&assignment.ID, &assignment.SubjectID, &assignment.TeacherID, &assignment.GroupID,
		&assignment.AcademicYear, &assignment.Semester,
		&subject.Name, &subject.Code, &subject.Credits,
		&teacher.FirstName, &teacher.LastName,
		&group.Name, &group.Year,
	)
	if err != nil {
		return nil, err
	}

	subject.ID = assignment.SubjectID
	teacher.ID = assignment.TeacherID
	group.ID = assignment.GroupID
	assignment.Subject = subject
	assignment.Teacher = teacher
	assignment.Group = group
	return assignment, nil
}

// Create inserts an assignment and returns its generated ID. The unique
// index over the five identifying columns rejects duplicates under races.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.SubjectAssignment) (int64, error) {
	query := `
		INSERT INTO subject_assignments (subject_id, teacher_id, group_id, academic_year, semester)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		assignment.SubjectID, assignment.TeacherID, assignment.GroupID,
		assignment.AcademicYear, assignment.Semester).Scan(&assignment.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrAssignmentExists
		}
		return 0, fmt.Errorf("error creating assignment: %w", err)
	}
	return assignment.ID, nil
}

// GetByID finds an assignment by its primary key, joining its relations
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.SubjectAssignment, error) {
	query := `
		SELECT ` + assignmentSelectColumns + `
		FROM subject_assignments a
		JOIN subjects sub ON sub.id = a.subject_id
		JOIN teachers t ON t.id = a.teacher_id
		JOIN study_groups g ON g.id = a.group_id
		WHERE a.id = $1`

	assignment, err := scanAssignment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error getting assignment: %w", err)
	}
	return assignment, nil
}

// GetAll lists every assignment with joined relations
func (r *AssignmentRepository) GetAll(ctx context.Context) ([]*models.SubjectAssignment, error) {
	return r.queryAssignments(ctx, ``)
}

// GetByTeacher lists assignments taught by the given teacher
func (r *AssignmentRepository) GetByTeacher(ctx context.Context, teacherID int64) ([]*models.SubjectAssignment, error) {
	return r.queryAssignments(ctx, `WHERE a.teacher_id = $1`, teacherID)
}

// GetBySubject lists assignments for the given subject
func (r *AssignmentRepository) GetBySubject(ctx context.Context, subjectID int64) ([]*models.SubjectAssignment, error) {
	return r.queryAssignments(ctx, `WHERE a.subject_id = $1`, subjectID)
}

// GetByGroup lists assignments for the given study group
func (r *AssignmentRepository) GetByGroup(ctx context.Context, groupID int64) ([]*models.SubjectAssignment, error) {
	return r.queryAssignments(ctx, `WHERE a.group_id = $1`, groupID)
}

// GetByAcademicYear lists assignments within the given academic year
func (r *AssignmentRepository) GetByAcademicYear(ctx context.Context, academicYear string) ([]*models.SubjectAssignment, error) {
	return r.queryAssignments(ctx, `WHERE a.academic_year = $1`, academicYear)
}

func (r *AssignmentRepository) queryAssignments(ctx context.Context, where string, args ...interface{}) ([]*models.SubjectAssignment, error) {
	query := `
		SELECT ` + assignmentSelectColumns + `
		FROM subject_assignments a
		JOIN subjects sub ON sub.id = a.subject_id
		JOIN teachers t ON t.id = a.teacher_id
		JOIN study_groups g ON g.id = a.group_id
		` + where + `
		ORDER BY a.academic_year DESC, a.semester, sub.code`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.SubjectAssignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}
	return assignments, nil
}

// Update replaces the fields of an assignment
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.SubjectAssignment) error {
	query := `
		UPDATE subject_assignments
		SET subject_id = $1, teacher_id = $2, group_id = $3, academic_year = $4, semester = $5
		WHERE id = $6`

	result, err := r.pool.Exec(ctx, query,
		assignment.SubjectID, assignment.TeacherID, assignment.GroupID,
		assignment.AcademicYear, assignment.Semester, assignment.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrAssignmentExists
		}
		return fmt.Errorf("error updating assignment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// Delete removes an assignment. Grades referencing it are removed by the
// database through ON DELETE CASCADE.
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM subject_assignments WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting assignment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// ExistsByID reports whether an assignment exists
func (r *AssignmentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM subject_assignments WHERE id = $1)`
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking assignment existence: %w", err)
	}
	return exists, nil
}

// ExistsByFields reports whether an assignment with the same identifying
// five-tuple already exists
func (r *AssignmentRepository) ExistsByFields(ctx context.Context, subjectID, teacherID, groupID int64, academicYear, semester string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM subject_assignments
			WHERE subject_id = $1 AND teacher_id = $2 AND group_id = $3
			  AND academic_year = $4 AND semester = $5)`
	err := r.pool.QueryRow(ctx, query, subjectID, teacherID, groupID, academicYear, semester).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking assignment uniqueness: %w", err)
	}
	return exists, nil
}

// Count returns the total number of assignments
func (r *AssignmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM subject_assignments`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting assignments: %w", err)
	}
	return count, nil
}
