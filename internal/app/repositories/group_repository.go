package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baris/acadrecords/internal/app/models"
)

// Common study group repository errors
var (
	ErrGroupNotFound = errors.New("study group not found")
)

// GroupRepository handles database operations for study groups
type GroupRepository struct {
	pool *pgxpool.Pool
}

// NewGroupRepository creates a new GroupRepository instance
func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{pool: pool}
}

// Create inserts a study group and returns its generated ID
func (r *GroupRepository) Create(ctx context.Context, group *models.StudyGroup) (int64, error) {
	query := `
		INSERT INTO study_groups (name, year)
		VALUES ($1, $2)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query, group.Name, group.Year).Scan(&group.ID)
	if err != nil {
		return 0, fmt.Errorf("error creating study group: %w", err)
	}
	return group.ID, nil
}

// GetByID finds a study group by its primary key
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*models.StudyGroup, error) {
	query := `SELECT id, name, year FROM study_groups WHERE id = $1`

	group := &models.StudyGroup{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&group.ID, &group.Name, &group.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("error getting study group: %w", err)
	}
	return group, nil
}

// GetByName finds a study group by its unique name
func (r *GroupRepository) GetByName(ctx context.Context, name string) (*models.StudyGroup, error) {
	query := `SELECT id, name, year FROM study_groups WHERE name = $1`

	group := &models.StudyGroup{}
	err := r.pool.QueryRow(ctx, query, name).Scan(&group.ID, &group.Name, &group.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("error getting study group by name: %w", err)
	}
	return group, nil
}

// GetAll lists every study group
func (r *GroupRepository) GetAll(ctx context.Context) ([]*models.StudyGroup, error) {
	query := `SELECT id, name, year FROM study_groups ORDER BY year, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing study groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.StudyGroup
	for rows.Next() {
		group := &models.StudyGroup{}
		if err := rows.Scan(&group.ID, &group.Name, &group.Year); err != nil {
			return nil, fmt.Errorf("error scanning study group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating study groups: %w", err)
	}
	return groups, nil
}

// Update replaces the name and year of a study group
func (r *GroupRepository) Update(ctx context.Context, group *models.StudyGroup) error {
	query := `UPDATE study_groups SET name = $1, year = $2 WHERE id = $3`

	result, err := r.pool.Exec(ctx, query, group.Name, group.Year, group.ID)
	if err != nil {
		return fmt.Errorf("error updating study group: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrGroupNotFound
	}
	return nil
}

// Delete removes a study group. Members keep their profiles; the database
// nulls their group reference through ON DELETE SET NULL.
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM study_groups WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting study group: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrGroupNotFound
	}
	return nil
}

// ExistsByID reports whether a study group exists
func (r *GroupRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM study_groups WHERE id = $1)`
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking study group existence: %w", err)
	}
	return exists, nil
}

// ExistsByName reports whether a study group with the given name exists
func (r *GroupRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM study_groups WHERE name = $1)`
	err := r.pool.QueryRow(ctx, query, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking study group name: %w", err)
	}
	return exists, nil
}

// NameTakenByOther reports whether another group already uses the given name
func (r *GroupRepository) NameTakenByOther(ctx context.Context, name string, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM study_groups WHERE name = $1 AND id != $2)`
	err := r.pool.QueryRow(ctx, query, name, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking study group name: %w", err)
	}
	return exists, nil
}

// Count returns the total number of study groups
func (r *GroupRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM study_groups`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting study groups: %w", err)
	}
	return count, nil
}
