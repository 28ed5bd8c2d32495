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

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	FindAll(ctx context.Context, filter ListFilter) ([]*entity.Service, error)
	CountAll(ctx context.Context, filter ListFilter) (int64, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const serviceColumns = `id, name, description, category, price, status, created_at, updated_at`

var serviceList = listSpec{
	table:         "services",
	columns:       serviceColumns,
	searchColumns: []string{"name", "category"},
	orderBy:       "created_at DESC, id DESC",
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var service entity.Service
	err := row.Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&service.Category,
		&service.Price,
		&service.Status,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (id, name, description, category, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		service.ID,
		service.Name,
		service.Description,
		service.Category,
		service.Price,
		service.Status,
		service.CreatedAt,
		service.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("name", service.Name),
			zap.String("category", service.Category),
		)
		return fmt.Errorf("create service %s: %w", service.Name, err)
	}

	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	service, err := scanService(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id.String(), err)
	}

	return service, nil
}

func (r *serviceRepository) FindAll(ctx context.Context, filter ListFilter) ([]*entity.Service, error) {
	query, args := buildListQuery(serviceList, filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all services",
			zap.Error(err),
			zap.Int("limit", filter.Limit),
			zap.Int("offset", filter.Offset),
		)
		return nil, fmt.Errorf("find all services limit %d offset %d: %w", filter.Limit, filter.Offset, err)
	}
	defer rows.Close()

	services := []*entity.Service{}
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate service rows: %w", err)
	}

	return services, nil
}

func (r *serviceRepository) CountAll(ctx context.Context, filter ListFilter) (int64, error) {
	query, args := buildCountQuery(serviceList, filter)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count services", zap.Error(err))
		return 0, fmt.Errorf("count all services: %w", err)
	}

	return total, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	query := `
		UPDATE services
		SET name = $2, description = $3, category = $4, price = $5,
		    status = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		service.ID,
		service.Name,
		service.Description,
		service.Category,
		service.Price,
		service.Status,
		service.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update service",
			zap.Error(err),
			zap.String("service_id", service.ID.String()),
		)
		return fmt.Errorf("update service %s: %w", service.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update service %s: %w", service.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete service",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return fmt.Errorf("delete service %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete service %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Service deleted", zap.String("service_id", id.String()))
	return nil
}
