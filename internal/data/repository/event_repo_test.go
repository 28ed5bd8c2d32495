package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"admin-panel/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var eventRowColumns = []string{"id", "title", "description", "location", "start_date", "end_date", "status", "created_at", "updated_at"}

func newEventRepoMock(t *testing.T) (pgxmock.PgxPoolIface, EventRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewEventRepository(mock, zap.NewNop())
}

func TestEventRepository_FindAll_OrderedByStartDate(t *testing.T) {
	mock, repo := newEventRepoMock(t)
	now := time.Now().UTC()
	later := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT "+eventColumns+" FROM events"+
			" WHERE (title ILIKE $1 OR location ILIKE $1)"+
			" ORDER BY start_date DESC, id DESC LIMIT $2 OFFSET $3")).
		WithArgs("%hall%", 10, 0).
		WillReturnRows(pgxmock.NewRows(eventRowColumns).
			AddRow(uuid.NewString(), "Summer", (*string)(nil), "Hall B", later, later.Add(2*time.Hour), entity.EventStatusUpcoming, now, now).
			AddRow(uuid.NewString(), "Launch", (*string)(nil), "Hall A", earlier, earlier.Add(2*time.Hour), entity.EventStatusCompleted, now, now))

	events, err := repo.FindAll(context.Background(), ListFilter{Search: "hall", Limit: 10})

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Summer", events[0].Title)
	assert.True(t, events[0].StartDate.Equal(later))
	assert.True(t, events[0].EndDate.Equal(later.Add(2*time.Hour)))
	assert.Equal(t, "Hall A", events[1].Location)
	assert.Equal(t, entity.EventStatusCompleted, events[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete_NotFound(t *testing.T) {
	mock, repo := newEventRepoMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
