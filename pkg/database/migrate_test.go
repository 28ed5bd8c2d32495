package database

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMigrationNames(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_init.sql", names[0])
	assert.IsIncreasing(t, names)
}

func TestMigrate_SkipsApplied(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("001_init.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, Migrate(context.Background(), mock, zap.NewNop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_RollsBackFailedFile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	boom := errors.New("syntax error at or near")

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("001_init.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE").WillReturnError(boom)
	mock.ExpectRollback()

	err = Migrate(context.Background(), mock, zap.NewNop())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "001_init.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}
