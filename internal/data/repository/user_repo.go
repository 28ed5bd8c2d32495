package repository

import (
	"context"
	"errors"
	"fmt"

	"admin-panel/internal/data/entity"
	"admin-panel/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, filter ListFilter) ([]*entity.User, error)
	CountAll(ctx context.Context, filter ListFilter) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const userColumns = `id, email, name, phone, status, created_at, updated_at`

var userList = listSpec{
	table:         "users",
	columns:       userColumns,
	searchColumns: []string{"name", "email", "phone"},
	orderBy:       "created_at DESC, id DESC",
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Phone,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, name, phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Phone,
		user.Status,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return fmt.Errorf("create user %s: %w", user.Email, ErrDuplicate)
	}
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	user, err := scanUser(ur.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

// FindAll retrieves one page of users matching filter
func (ur *userRepository) FindAll(ctx context.Context, filter ListFilter) ([]*entity.User, error) {
	query, args := buildListQuery(userList, filter)

	rows, err := ur.db.Query(ctx, query, args...)
	if err != nil {
		ur.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("limit", filter.Limit),
			zap.Int("offset", filter.Offset),
		)
		return nil, fmt.Errorf("find all users limit %d offset %d: %w", filter.Limit, filter.Offset, err)
	}
	defer rows.Close() // release the connection

	users := []*entity.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) CountAll(ctx context.Context, filter ListFilter) (int64, error) {
	query, args := buildCountQuery(userList, filter)

	var count int64
	if err := ur.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		ur.log.Error("Database error counting users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET email = $2, name = $3, phone = $4, status = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Phone,
		user.Status,
		user.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return fmt.Errorf("update user %s: %w", user.ID.String(), ErrDuplicate)
	}
	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update user %s: %w", user.ID.String(), ErrNotFound)
	}

	return nil
}

// UpdateStatus writes status and returns the stored row, nil when id is absent.
func (ur *userRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) (*entity.User, error) {
	query := `
		UPDATE users SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := scanUser(ur.db.QueryRow(ctx, query, id, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to update user status",
			zap.Error(err),
			zap.String("user_id", id.String()),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update user status %s: %w", id.String(), err)
	}

	return user, nil
}

func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := ur.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete user %s: %w", id.String(), ErrNotFound)
	}

	ur.log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}
