package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baris/acadrecords/internal/app/models"
)

// Common administrator repository errors
var (
	ErrAdministratorNotFound = errors.New("administrator not found")
)

// AdministratorRepository handles database operations for administrator profiles
type AdministratorRepository struct {
	pool *pgxpool.Pool
}

// NewAdministratorRepository creates a new AdministratorRepository instance
func NewAdministratorRepository(pool *pgxpool.Pool) *AdministratorRepository {
	return &AdministratorRepository{pool: pool}
}

// Create inserts an administrator profile row linked to an existing user account
func (r *AdministratorRepository) Create(ctx context.Context, admin *models.Administrator) error {
	query := `
		INSERT INTO administrators (id, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query,
		admin.ID, admin.FirstName, admin.LastName, admin.Email)
	if err != nil {
		return fmt.Errorf("error creating administrator: %w", err)
	}
	return nil
}

// GetByUsername finds an administrator profile through its account username
func (r *AdministratorRepository) GetByUsername(ctx context.Context, username string) (*models.Administrator, error) {
	query := `
		SELECT a.id, a.first_name, a.last_name, a.email
		FROM administrators a
		JOIN users u ON u.id = a.id
		WHERE u.username = $1`

	admin := &models.Administrator{}
	err := r.pool.QueryRow(ctx, query, username).
		Scan(&admin.ID, &admin.FirstName, &admin.LastName, &admin.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdministratorNotFound
		}
		return nil, fmt.Errorf("error getting administrator by username: %w", err)
	}
	return admin, nil
}
