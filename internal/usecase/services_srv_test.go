package usecase_test

import (
	"context"
	"testing"

	"admin-panel/internal/data/entity"
	"admin-panel/internal/dto/request"
	"admin-panel/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicesService_CreateService(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Services.CreateService(ctx, &request.ServiceRequest{
		Name:     "Deep clean",
		Category: "cleaning",
		Price:    ptr(decimal.RequireFromString("49.90")),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceStatusAvailable, created.Status)
	assert.Equal(t, "49.9", created.Price.String())

	_, err = svc.Services.CreateService(ctx, &request.ServiceRequest{
		Name:     "Refund",
		Category: "billing",
		Price:    ptr(decimal.NewFromInt(-1)),
	})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	_, err = svc.Services.CreateService(ctx, &request.ServiceRequest{Name: "No price", Category: "billing"})
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestServicesService_GetServices_CategoryFilter(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for _, s := range []struct{ name, category string }{
		{"Deep clean", "cleaning"},
		{"Window clean", "cleaning"},
		{"Tax advice", "finance"},
	} {
		_, err := svc.Services.CreateService(ctx, &request.ServiceRequest{
			Name:     s.name,
			Category: s.category,
			Price:    ptr(decimal.NewFromInt(10)),
		})
		require.NoError(t, err)
	}

	cleaning, err := svc.Services.GetServices(ctx, request.ListRequest{Category: "cleaning"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), cleaning.Pagination.Total)

	searched, err := svc.Services.GetServices(ctx, request.ListRequest{Search: "tax"})
	require.NoError(t, err)
	require.Len(t, searched.Items, 1)
	assert.Equal(t, "finance", searched.Items[0].Category)
}

func TestServicesService_UpdateService(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Services.CreateService(ctx, &request.ServiceRequest{
		Name:     "Deep clean",
		Category: "cleaning",
		Price:    ptr(decimal.NewFromInt(50)),
	})
	require.NoError(t, err)

	_, err = svc.Services.UpdateService(ctx, created.ID, &request.ServiceUpdateRequest{Price: ptr(decimal.NewFromInt(-5))})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	updated, err := svc.Services.UpdateService(ctx, created.ID, &request.ServiceUpdateRequest{
		Price:  ptr(decimal.RequireFromString("55.50")),
		Status: ptr("unavailable"),
	})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("55.5")))
	assert.Equal(t, entity.ServiceStatusUnavailable, updated.Status)
	assert.Equal(t, "cleaning", updated.Category)
}
