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

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	FindAll(ctx context.Context, filter ListFilter) ([]*entity.Event, error)
	CountAll(ctx context.Context, filter ListFilter) (int64, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const eventColumns = `id, title, description, location, start_date, end_date, status, created_at, updated_at`

// Events are listed by when they happen, not when they were entered.
var eventList = listSpec{
	table:         "events",
	columns:       eventColumns,
	searchColumns: []string{"title", "location"},
	orderBy:       "start_date DESC, id DESC",
}

type eventRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEventRepository(db database.PgxIface, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:  db,
		log: log.With(zap.String("repository", "event")),
	}
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var event entity.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.StartDate,
		&event.EndDate,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, title, description, location, start_date, end_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.StartDate,
		event.EndDate,
		event.Status,
		event.CreatedAt,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("title", event.Title),
		)
		return fmt.Errorf("create event %s: %w", event.Title, err)
	}

	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return nil, fmt.Errorf("find event by ID %s: %w", id.String(), err)
	}

	return event, nil
}

func (r *eventRepository) FindAll(ctx context.Context, filter ListFilter) ([]*entity.Event, error) {
	query, args := buildListQuery(eventList, filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all events",
			zap.Error(err),
			zap.Int("limit", filter.Limit),
			zap.Int("offset", filter.Offset),
		)
		return nil, fmt.Errorf("find all events limit %d offset %d: %w", filter.Limit, filter.Offset, err)
	}
	defer rows.Close()

	events := []*entity.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			r.log.Error("Failed to scan event row", zap.Error(err))
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}

	return events, nil
}

func (r *eventRepository) CountAll(ctx context.Context, filter ListFilter) (int64, error) {
	query, args := buildCountQuery(eventList, filter)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count events", zap.Error(err))
		return 0, fmt.Errorf("count all events: %w", err)
	}

	return total, nil
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, location = $4, start_date = $5,
		    end_date = $6, status = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.StartDate,
		event.EndDate,
		event.Status,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update event",
			zap.Error(err),
			zap.String("event_id", event.ID.String()),
		)
		return fmt.Errorf("update event %s: %w", event.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update event %s: %w", event.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete event",
			zap.Error(err),
			zap.String("event_id", id.String()),
		)
		return fmt.Errorf("delete event %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete event %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Event deleted", zap.String("event_id", id.String()))
	return nil
}
