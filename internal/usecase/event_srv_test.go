package usecase_test

import (
	"context"
	"testing"
	"time"

	"admin-panel/internal/data/entity"
	"admin-panel/internal/dto/request"
	"admin-panel/internal/usecase"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(title string, start time.Time) *request.EventRequest {
	return &request.EventRequest{
		Title:     title,
		Location:  "Hall A",
		StartDate: ptr(start),
		EndDate:   ptr(start.Add(2 * time.Hour)),
	}
}

func TestEventService_CreateEvent(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	start := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

	event, err := svc.Event.CreateEvent(ctx, newEvent("Launch", start))
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusUpcoming, event.Status)
	assert.True(t, event.StartDate.Equal(start))

	t.Run("end before start", func(t *testing.T) {
		req := newEvent("Backwards", start)
		req.EndDate = ptr(start.Add(-time.Minute))

		_, err := svc.Event.CreateEvent(ctx, req)
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})

	t.Run("dates required", func(t *testing.T) {
		_, err := svc.Event.CreateEvent(ctx, &request.EventRequest{Title: "No dates", Location: "Hall B"})
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})
}

func TestEventService_UpdateEvent_ChecksMergedDates(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	start := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

	event, err := svc.Event.CreateEvent(ctx, newEvent("Launch", start))
	require.NoError(t, err)

	// moving only the start past the stored end is rejected
	_, err = svc.Event.UpdateEvent(ctx, event.ID, &request.EventUpdateRequest{
		StartDate: ptr(start.Add(3 * time.Hour)),
	})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	updated, err := svc.Event.UpdateEvent(ctx, event.ID, &request.EventUpdateRequest{
		Status:      ptr("ongoing"),
		Description: nullable.NewNullableWithValue("Doors at six"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusOngoing, updated.Status)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Doors at six", *updated.Description)
	assert.True(t, updated.StartDate.Equal(start))
}

func TestEventService_GetEvents_NewestStartFirst(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, e := range []struct {
		title  string
		months int
	}{
		{"January", 0},
		{"March", 2},
		{"February", 1},
	} {
		_, err := svc.Event.CreateEvent(ctx, newEvent(e.title, base.AddDate(0, e.months, 0)))
		require.NoError(t, err)
	}

	list, err := svc.Event.GetEvents(ctx, request.ListRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 3)

	titles := []string{list.Items[0].Title, list.Items[1].Title, list.Items[2].Title}
	assert.Equal(t, []string{"March", "February", "January"}, titles)
}
