package usecase_test

import (
	"context"
	"testing"

	"admin-panel/internal/data/entity"
	"admin-panel/internal/dto/request"
	"admin-panel/internal/usecase"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopService_CreateAndSearch(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	acme, err := svc.Shop.CreateShop(ctx, &request.ShopRequest{
		Name:        "Acme",
		Address:     "1 Main St",
		Phone:       "555-0100",
		Description: ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ShopStatusActive, acme.Status)
	assert.Nil(t, acme.Description, "empty optional text is stored as null")

	_, err = svc.Shop.CreateShop(ctx, &request.ShopRequest{
		Name:    "Bolt Hardware",
		Address: "22 Acme Road",
		Phone:   "555-0101",
		Status:  "pending",
	})
	require.NoError(t, err)

	byNameOrAddress, err := svc.Shop.GetShops(ctx, request.ListRequest{Search: "acme"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), byNameOrAddress.Pagination.Total)

	pending, err := svc.Shop.GetShops(ctx, request.ListRequest{Search: "acme", Status: "pending"})
	require.NoError(t, err)
	require.Len(t, pending.Items, 1)
	assert.Equal(t, "Bolt Hardware", pending.Items[0].Name)
}

func TestShopService_CreateShop_Invalid(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Shop.CreateShop(context.Background(), &request.ShopRequest{
		Name:    "Acme",
		Address: "1 Main St",
		Phone:   "555-0100",
		Email:   ptr("nope"),
	})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	_, err = svc.Shop.CreateShop(context.Background(), &request.ShopRequest{Name: "No address"})
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestShopService_UpdateShop(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	shop, err := svc.Shop.CreateShop(ctx, &request.ShopRequest{
		Name:    "Acme",
		Address: "1 Main St",
		Phone:   "555-0100",
		Email:   ptr("shop@acme.test"),
	})
	require.NoError(t, err)

	_, err = svc.Shop.UpdateShop(ctx, shop.ID, &request.ShopUpdateRequest{
		Email: nullable.NewNullableWithValue("bad"),
	})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	updated, err := svc.Shop.UpdateShop(ctx, shop.ID, &request.ShopUpdateRequest{
		Status: ptr("inactive"),
		Email:  nullable.NewNullNullable[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ShopStatusInactive, updated.Status)
	assert.Nil(t, updated.Email)
	assert.Equal(t, "Acme", updated.Name)

	_, err = svc.Shop.UpdateShop(ctx, "missing", &request.ShopUpdateRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestShopService_DeleteShop(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	shop, err := svc.Shop.CreateShop(ctx, &request.ShopRequest{Name: "Acme", Address: "1 Main St", Phone: "1"})
	require.NoError(t, err)

	require.NoError(t, svc.Shop.DeleteShop(ctx, shop.ID))
	assert.ErrorIs(t, svc.Shop.DeleteShop(ctx, shop.ID), usecase.ErrNotFound)
}
