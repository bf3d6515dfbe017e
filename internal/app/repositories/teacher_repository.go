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

// Common teacher repository errors
var (
	ErrTeacherNotFound   = errors.New("teacher not found")
	ErrTeacherEmailTaken = errors.New("teacher email already in use")
)

// TeacherRepository handles database operations for teacher profiles
type TeacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository instance
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

// Create inserts a teacher profile row linked to an existing user account
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (id, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query,
		teacher.ID, teacher.FirstName, teacher.LastName, teacher.Email)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrTeacherEmailTaken
		}
		return fmt.Errorf("error creating teacher: %w", err)
	}
	return nil
}

// GetByID finds a teacher profile by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := `
		SELECT id, first_name, last_name, email
		FROM teachers
		WHERE id = $1`

	teacher := &models.Teacher{}
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error getting teacher: %w", err)
	}
	return teacher, nil
}

// GetByUsername finds a teacher profile through its account username
func (r *TeacherRepository) GetByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	query := `
		SELECT t.id, t.first_name, t.last_name, t.email
		FROM teachers t
		JOIN users u ON u.id = t.id
		WHERE u.username = $1`

	teacher := &models.Teacher{}
	err := r.pool.QueryRow(ctx, query, username).
		Scan(&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error getting teacher by username: %w", err)
	}
	return teacher, nil
}

// GetAll lists every teacher profile
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	query := `
		SELECT id, first_name, last_name, email
		FROM teachers
		ORDER BY last_name, first_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher := &models.Teacher{}
		if err := rows.Scan(&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.Email); err != nil {
			return nil, fmt.Errorf("error scanning teacher: %w", err)
		}
		teachers = append(teachers, teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teachers: %w", err)
	}
	return teachers, nil
}

// Update replaces the profile fields of a teacher
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	query := `
		UPDATE teachers
		SET first_name = $1, last_name = $2, email = $3
		WHERE id = $4`

	result, err := r.pool.Exec(ctx, query,
		teacher.FirstName, teacher.LastName, teacher.Email, teacher.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return ErrTeacherEmailTaken
		}
		return fmt.Errorf("error updating teacher: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrTeacherNotFound
	}
	return nil
}

// Delete removes a teacher profile row
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM teachers WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrTeacherNotFound
	}
	return nil
}

// ExistsByID reports whether a teacher profile exists
func (r *TeacherRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM teachers WHERE id = $1)`
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking teacher existence: %w", err)
	}
	return exists, nil
}

// EmailTakenByOther reports whether the email belongs to a different teacher.
// Pass id 0 when checking a new registration.
func (r *TeacherRepository) EmailTakenByOther(ctx context.Context, email string, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM teachers WHERE email = $1 AND id != $2)`
	err := r.pool.QueryRow(ctx, query, email, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking teacher email: %w", err)
	}
	return exists, nil
}

// Count returns the total number of teachers
func (r *TeacherRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}
	return count, nil
}
