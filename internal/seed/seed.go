// Package seed creates the default records the application needs on first start.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/baris/acadrecords/internal/app/models"
	"github.com/baris/acadrecords/internal/pkg/auth"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin"
)

// CreateDefaultData ensures a default administrator account exists so the
// system can be bootstrapped on an empty database.
func CreateDefaultData(ctx context.Context, pool *pgxpool.Pool, hasher *auth.PasswordHasher, lgr zerolog.Logger) error {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`,
		models.RoleAdministrator).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check for administrator accounts: %w", err)
	}
	if exists {
		lgr.Debug().Msg("Administrator account already present, skipping seed")
		return nil
	}

	hash, err := hasher.Hash(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default administrator password: %w", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var adminID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, password, role) VALUES ($1, $2, $3) RETURNING id`,
		defaultAdminUsername, hash, models.RoleAdministrator).Scan(&adminID)
	if err != nil {
		return fmt.Errorf("failed to create default administrator account: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO administrators (id, first_name, last_name, email) VALUES ($1, $2, $3, $4)`,
		adminID, "System", "Administrator", "admin@localhost")
	if err != nil {
		return fmt.Errorf("failed to create default administrator profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	lgr.Info().Str("username", defaultAdminUsername).Msg("Default administrator account created, change its password immediately")
	return nil
}
