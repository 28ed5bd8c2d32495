package repository

import (
	"context"
	"errors"
	"fmt"

	"admin-panel/internal/data/entity"
	"admin-panel/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)
	// Upsert inserts admin, or leaves an existing row with the same email untouched.
	Upsert(ctx context.Context, admin *entity.Admin) error
}

type adminRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminRepository(db database.PgxIface, log *zap.Logger) AdminRepository {
	return &adminRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin")),
	}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	query := `
		SELECT id, email, password, name, created_at, updated_at
		FROM admins
		WHERE LOWER(email) = LOWER($1)
	`

	var admin entity.Admin
	err := r.db.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Name,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find admin by email %s: %w", email, err)
	}

	return &admin, nil
}

func (r *adminRepository) Upsert(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (id, email, password, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.Name,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to upsert admin",
			zap.Error(err),
			zap.String("email", admin.Email),
		)
		return fmt.Errorf("upsert admin %s: %w", admin.Email, err)
	}

	if result.RowsAffected() > 0 {
		r.log.Info("Admin created", zap.String("email", admin.Email))
	}
	return nil
}
