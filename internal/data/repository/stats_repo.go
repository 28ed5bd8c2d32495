package repository

import (
	"context"
	"fmt"

	"admin-panel/pkg/database"

	"go.uber.org/zap"
)

// StatusCounts maps a status value to the number of rows carrying it.
type StatusCounts map[string]int64

// Total sums every status bucket.
func (c StatusCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}

type StatsRepository interface {
	CountUsersByStatus(ctx context.Context) (StatusCounts, error)
	CountShopsByStatus(ctx context.Context) (StatusCounts, error)
	CountEventsByStatus(ctx context.Context) (StatusCounts, error)
	CountServicesByStatus(ctx context.Context) (StatusCounts, error)
}

type statsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStatsRepository(db database.PgxIface, log *zap.Logger) StatsRepository {
	return &statsRepository{
		db:  db,
		log: log.With(zap.String("repository", "stats")),
	}
}

func (r *statsRepository) CountUsersByStatus(ctx context.Context) (StatusCounts, error) {
	return r.countByStatus(ctx, "users")
}

func (r *statsRepository) CountShopsByStatus(ctx context.Context) (StatusCounts, error) {
	return r.countByStatus(ctx, "shops")
}

func (r *statsRepository) CountEventsByStatus(ctx context.Context) (StatusCounts, error) {
	return r.countByStatus(ctx, "events")
}

func (r *statsRepository) CountServicesByStatus(ctx context.Context) (StatusCounts, error) {
	return r.countByStatus(ctx, "services")
}

// countByStatus scans table once. table is always one of the constants above.
func (r *statsRepository) countByStatus(ctx context.Context, table string) (StatusCounts, error) {
	query := `SELECT status, COUNT(*) FROM ` + table + ` GROUP BY status`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count by status",
			zap.Error(err),
			zap.String("table", table),
		)
		return nil, fmt.Errorf("count %s by status: %w", table, err)
	}
	defer rows.Close()

	counts := StatusCounts{}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan %s status count: %w", table, err)
		}
		counts[status] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s status counts: %w", table, err)
	}

	return counts, nil
}
