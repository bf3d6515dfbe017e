package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/pkg/helpers"
)

// Common subject repository errors
var (
	ErrSubjectNotFound = errors.New("subject not found")
)

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	pool *pgxpool.Pool
}

// NewSubjectRepository creates a new SubjectRepository instance
func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

// Create inserts a subject and returns its generated ID
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) (int64, error) {
	query := `
		INSERT INTO subjects (name, code, credits, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		subject.Name, subject.Code, subject.Credits,
		helpers.GetNullString(subject.Description)).Scan(&subject.ID)
	if err != nil {
		return 0, fmt.Errorf("error creating subject: %w", err)
	}
	return subject.ID, nil
}

// scanSubject reads one subject row
func scanSubject(row pgx.Row) (*models.Subject, error) {
	subject := &models.Subject{}
	var description *string
	err := row.Scan(&subject.ID, &subject.Name, &subject.Code, &subject.Credits, &description)
	if err != nil {
		return nil, err
	}
	if description != nil {
		subject.Description = *description
	}
	return subject, nil
}

// GetByID finds a subject by its primary key
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `SELECT id, name, code, credits, description FROM subjects WHERE id = $1`

	subject, err := scanSubject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error getting subject: %w", err)
	}
	return subject, nil
}

// GetAll lists every subject
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	query := `SELECT id, name, code, credits, description FROM subjects ORDER BY code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning subject: %w", err)
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subjects: %w", err)
	}
	return subjects, nil
}

// Update replaces the fields of a subject
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET name = $1, code = $2, credits = $3, description = $4
		WHERE id = $5`

	result, err := r.pool.Exec(ctx, query,
		subject.Name, subject.Code, subject.Credits,
		helpers.GetNullString(subject.Description), subject.ID)
	if err != nil {
		return fmt.Errorf("error updating subject: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrSubjectNotFound
	}
	return nil
}

// Delete removes a subject row
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM subjects WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrSubjectNotFound
	}
	return nil
}

// ExistsByID reports whether a subject exists
func (r *SubjectRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM subjects WHERE id = $1)`
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking subject existence: %w", err)
	}
	return exists, nil
}

// CodeTakenByOther reports whether another subject already uses the given code
func (r *SubjectRepository) CodeTakenByOther(ctx context.Context, code string, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM subjects WHERE code = $1 AND id != $2)`
	err := r.pool.QueryRow(ctx, query, code, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking subject code: %w", err)
	}
	return exists, nil
}

// Count returns the total number of subjects
func (r *SubjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM subjects`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting subjects: %w", err)
	}
	return count, nil
}
