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

// Common student repository errors
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrStudentEmailTaken = errors.New("student email already in use")
)

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository instance
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentSelectColumns = `
	s.id, s.first_name, s.last_name, s.email, s.group_id,
	g.id, g.name, g.year`

// scanStudent reads one student row with its optional group join
func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	var groupID, groupYear *int64
	var groupName *string

	err := row.Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Email, &student.GroupID,
		&groupID, &groupName, &groupYear,
	)
	if err != nil {
		return nil, err
	}
	if groupID != nil {
		student.Group = &models.StudyGroup{
			ID:   *groupID,
			Name: *groupName,
			Year: int(*groupYear),
		}
	}
	return student, nil
}

// Create inserts a student profile row linked to an existing user account
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (id, first_name, last_name, email, group_id)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		student.ID, student.FirstName, student.LastName, student.Email, student.GroupID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrStudentEmailTaken
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByID finds a student profile by ID, joining its study group when set
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT ` + studentSelectColumns + `
		FROM students s
		LEFT JOIN study_groups g ON g.id = s.group_id
		WHERE s.id = $1`

	student, err := scanStudent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return student, nil
}

// GetByUsername finds a student profile through its account username
func (r *StudentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	query := `
		SELECT ` + studentSelectColumns + `
		FROM students s
		JOIN users u ON u.id = s.id
		LEFT JOIN study_groups g ON g.id = s.group_id
		WHERE u.username = $1`

	student, err := scanStudent(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student by username: %w", err)
	}
	return student, nil
}

// GetByGroup lists students belonging to a study group
func (r *StudentRepository) GetByGroup(ctx context.Context, groupID int64) ([]*models.Student, error) {
	query := `
		SELECT ` + studentSelectColumns + `
		FROM students s
		LEFT JOIN study_groups g ON g.id = s.group_id
		WHERE s.group_id = $1
		ORDER BY s.last_name, s.first_name`

	return r.queryStudents(ctx, query, groupID)
}

// GetAll lists every student profile
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT ` + studentSelectColumns + `
		FROM students s
		LEFT JOIN study_groups g ON g.id = s.group_id
		ORDER BY s.last_name, s.first_name`

	return r.queryStudents(ctx, query)
}

func (r *StudentRepository) queryStudents(ctx context.Context, query string, args ...interface{}) ([]*models.Student, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}
	return students, nil
}

// Update replaces the profile fields of a student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, email = $3, group_id = $4
		WHERE id = $5`

	result, err := r.pool.Exec(ctx, query,
		student.FirstName, student.LastName, student.Email, student.GroupID, student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrStudentEmailTaken
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// SetGroup assigns the student to a group, or removes it when groupID is nil
func (r *StudentRepository) SetGroup(ctx context.Context, studentID int64, groupID *int64) error {
	query := `UPDATE students SET group_id = $1 WHERE id = $2`
	result, err := r.pool.Exec(ctx, query, groupID, studentID)
	if err != nil {
		return fmt.Errorf("error setting student group: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// Delete removes a student profile row
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM students WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// ExistsByID reports whether a student profile exists
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// EmailTakenByOther reports whether the email belongs to a different student.
// Pass id 0 when checking a new registration.
func (r *StudentRepository) EmailTakenByOther(ctx context.Context, email string, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id != $2)`
	err := r.pool.QueryRow(ctx, query, email, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student email: %w", err)
	}
	return exists, nil
}

// CountByGroup returns the number of students in a study group
func (r *StudentRepository) CountByGroup(ctx context.Context, groupID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM students WHERE group_id = $1`
	err := r.pool.QueryRow(ctx, query, groupID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students in group: %w", err)
	}
	return count, nil
}

// Count returns the total number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
