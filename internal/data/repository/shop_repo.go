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

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	FindAll(ctx context.Context, filter ListFilter) ([]*entity.Shop, error)
	CountAll(ctx context.Context, filter ListFilter) (int64, error)
	Update(ctx context.Context, shop *entity.Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const shopColumns = `id, name, description, address, phone, email, status, created_at, updated_at`

var shopList = listSpec{
	table:         "shops",
	columns:       shopColumns,
	searchColumns: []string{"name", "address"},
	orderBy:       "created_at DESC, id DESC",
}

type shopRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShopRepository(db database.PgxIface, log *zap.Logger) ShopRepository {
	return &shopRepository{
		db:  db,
		log: log.With(zap.String("repository", "shop")),
	}
}

func scanShop(row pgx.Row) (*entity.Shop, error) {
	var shop entity.Shop
	err := row.Scan(
		&shop.ID,
		&shop.Name,
		&shop.Description,
		&shop.Address,
		&shop.Phone,
		&shop.Email,
		&shop.Status,
		&shop.CreatedAt,
		&shop.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, name, description, address, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		shop.ID,
		shop.Name,
		shop.Description,
		shop.Address,
		shop.Phone,
		shop.Email,
		shop.Status,
		shop.CreatedAt,
		shop.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create shop",
			zap.Error(err),
			zap.String("name", shop.Name),
		)
		return fmt.Errorf("create shop %s: %w", shop.Name, err)
	}

	return nil
}

func (r *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE id = $1`

	shop, err := scanShop(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find shop by ID",
			zap.Error(err),
			zap.String("shop_id", id.String()),
		)
		return nil, fmt.Errorf("find shop by ID %s: %w", id.String(), err)
	}

	return shop, nil
}

func (r *shopRepository) FindAll(ctx context.Context, filter ListFilter) ([]*entity.Shop, error) {
	query, args := buildListQuery(shopList, filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all shops",
			zap.Error(err),
			zap.Int("limit", filter.Limit),
			zap.Int("offset", filter.Offset),
			zap.String("search", filter.Search),
		)
		return nil, fmt.Errorf("find all shops limit %d offset %d: %w", filter.Limit, filter.Offset, err)
	}
	defer rows.Close()

	shops := []*entity.Shop{}
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			r.log.Error("Failed to scan shop row", zap.Error(err))
			return nil, fmt.Errorf("scan shop row: %w", err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate shop rows: %w", err)
	}

	return shops, nil
}

func (r *shopRepository) CountAll(ctx context.Context, filter ListFilter) (int64, error) {
	query, args := buildCountQuery(shopList, filter)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count shops", zap.Error(err))
		return 0, fmt.Errorf("count all shops: %w", err)
	}

	return total, nil
}

func (r *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	query := `
		UPDATE shops
		SET name = $2, description = $3, address = $4, phone = $5,
		    email = $6, status = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		shop.ID,
		shop.Name,
		shop.Description,
		shop.Address,
		shop.Phone,
		shop.Email,
		shop.Status,
		shop.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update shop",
			zap.Error(err),
			zap.String("shop_id", shop.ID.String()),
		)
		return fmt.Errorf("update shop %s: %w", shop.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update shop %s: %w", shop.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete shop",
			zap.Error(err),
			zap.String("shop_id", id.String()),
		)
		return fmt.Errorf("delete shop %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete shop %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Shop deleted", zap.String("shop_id", id.String()))
	return nil
}
