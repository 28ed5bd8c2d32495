package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"admin-panel/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var serviceRowColumns = []string{"id", "name", "description", "category", "price", "status", "created_at", "updated_at"}

func newServiceRepoMock(t *testing.T) (pgxmock.PgxPoolIface, ServiceRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewServiceRepository(mock, zap.NewNop())
}

func TestServiceRepository_FindAll_SearchAndCategory(t *testing.T) {
	mock, repo := newServiceRepoMock(t)
	now := time.Now().UTC()
	description := "Whole flat"
	price := decimal.RequireFromString("19.99")

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT "+serviceColumns+" FROM services"+
			" WHERE (name ILIKE $1 OR category ILIKE $1) AND status = $2 AND category = $3"+
			" ORDER BY created_at DESC, id DESC LIMIT $4 OFFSET $5")).
		WithArgs("%deep%", "available", "cleaning", 20, 40).
		WillReturnRows(pgxmock.NewRows(serviceRowColumns).
			AddRow(uuid.NewString(), "Deep clean", &description, "cleaning", price, entity.ServiceStatusAvailable, now, now))

	services, err := repo.FindAll(context.Background(), ListFilter{
		Search: "deep",
		Status: "available",
		Equals: map[string]string{"category": "cleaning"},
		Limit:  20,
		Offset: 40,
	})

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Deep clean", services[0].Name)
	assert.Equal(t, "cleaning", services[0].Category)
	assert.True(t, services[0].Price.Equal(price), services[0].Price.String())
	require.NotNil(t, services[0].Description)
	assert.Equal(t, description, *services[0].Description)
	assert.Equal(t, entity.ServiceStatusAvailable, services[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRepository_CountAll_CategoryOnly(t *testing.T) {
	mock, repo := newServiceRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM services WHERE category = $1")).
		WithArgs("cleaning").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	total, err := repo.CountAll(context.Background(), ListFilter{
		Equals: map[string]string{"category": "cleaning"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRepository_CreateThenFind_Price(t *testing.T) {
	mock, repo := newServiceRepoMock(t)
	service := &entity.Service{
		Base:     entity.NewBase(),
		Name:     "Repair",
		Category: "maintenance",
		Price:    decimal.RequireFromString("1234.50"),
		Status:   entity.ServiceStatusAvailable,
	}

	mock.ExpectExec("INSERT INTO services").
		WithArgs(service.ID, service.Name, service.Description, service.Category, service.Price,
			service.Status, service.CreatedAt, service.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id = $1")).
		WithArgs(service.ID).
		WillReturnRows(pgxmock.NewRows(serviceRowColumns).
			AddRow(service.ID.String(), service.Name, (*string)(nil), service.Category, service.Price,
				service.Status, service.CreatedAt, service.UpdatedAt))

	require.NoError(t, repo.Create(context.Background(), service))
	found, err := repo.FindByID(context.Background(), service.ID)

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, service.ID, found.ID)
	assert.Equal(t, "1234.5", found.Price.String())
	assert.Nil(t, found.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRepository_FindByID_NotFound(t *testing.T) {
	mock, repo := newServiceRepoMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id = $1")).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	service, err := repo.FindByID(context.Background(), id)

	require.NoError(t, err)
	assert.Nil(t, service)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRepository_UpdateMissing(t *testing.T) {
	mock, repo := newServiceRepoMock(t)
	service := &entity.Service{
		Base:     entity.NewBase(),
		Name:     "Repair",
		Category: "maintenance",
		Price:    decimal.NewFromInt(10),
		Status:   entity.ServiceStatusUnavailable,
	}

	mock.ExpectExec(`UPDATE services\s+SET name = \$2`).
		WithArgs(service.ID, service.Name, service.Description, service.Category, service.Price,
			service.Status, service.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), service)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
