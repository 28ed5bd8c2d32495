package database

import (
	"testing"
	"time"

	"admin-panel/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig(t *testing.T) {
	cfg, err := poolConfig(utils.DatabaseConfig{
		Host:     "db.internal",
		Port:     "6543",
		Name:     "admin_panel",
		User:     "admin",
		Password: "p@ss word/#1",
		MaxConns: 8,
	})
	require.NoError(t, err)

	conn := cfg.ConnConfig
	assert.Equal(t, "db.internal", conn.Host)
	assert.Equal(t, uint16(6543), conn.Port)
	assert.Equal(t, "admin_panel", conn.Database)
	assert.Equal(t, "admin", conn.User)
	assert.Equal(t, "p@ss word/#1", conn.Password)
	assert.Nil(t, conn.TLSConfig)
	assert.Equal(t, 5*time.Second, conn.ConnectTimeout)

	assert.Equal(t, int32(8), cfg.MaxConns)
	assert.Equal(t, int32(2), cfg.MinConns)
}

func TestPoolConfig_SmallPool(t *testing.T) {
	cfg, err := poolConfig(utils.DatabaseConfig{
		Host: "localhost", Port: "5432", Name: "db", User: "u", MaxConns: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(1), cfg.MaxConns)
	assert.Equal(t, int32(1), cfg.MinConns)
}
