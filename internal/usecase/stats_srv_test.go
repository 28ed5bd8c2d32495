package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"admin-panel/internal/dto/request"
	"admin-panel/internal/dto/response"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetStats(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for _, u := range []struct{ email, status string }{
		{"a@example.com", ""},
		{"b@example.com", ""},
		{"c@example.com", "blocked"},
	} {
		_, err := svc.User.CreateUser(ctx, &request.UserRequest{Email: u.email, Name: "User", Status: u.status})
		require.NoError(t, err)
	}
	for _, status := range []string{"active", "pending", "pending", "inactive"} {
		_, err := svc.Shop.CreateShop(ctx, &request.ShopRequest{Name: "Shop", Address: "Street", Phone: "1", Status: status})
		require.NoError(t, err)
	}
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, status := range []string{"upcoming", "cancelled"} {
		req := newEvent("Event", start)
		req.Status = status
		_, err := svc.Event.CreateEvent(ctx, req)
		require.NoError(t, err)
	}
	_, err := svc.Services.CreateService(ctx, &request.ServiceRequest{
		Name:     "Service",
		Category: "misc",
		Price:    ptr(decimal.Zero),
		Status:   "unavailable",
	})
	require.NoError(t, err)

	stats, err := svc.Stats.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, response.UserStats{Total: 3, Active: 2, Blocked: 1}, stats.Users)
	assert.Equal(t, response.ShopStats{Total: 4, Active: 1, Inactive: 1, Pending: 2}, stats.Shops)
	assert.Equal(t, response.EventStats{Total: 2, Upcoming: 1, Cancelled: 1}, stats.Events)
	assert.Equal(t, response.ServiceStats{Total: 1, Unavailable: 1}, stats.Services)
}

func TestStatsService_EmptyStore(t *testing.T) {
	svc, _ := newService(t)

	stats, err := svc.Stats.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, response.StatsResponse{}, *stats)
}

func TestStatsService_StoreFailure(t *testing.T) {
	svc, store := newService(t)
	store.Err = errors.New("timeout")

	_, err := svc.Stats.GetStats(context.Background())
	assert.ErrorIs(t, err, store.Err)
}
