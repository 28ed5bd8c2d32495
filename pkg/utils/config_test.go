package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")

	file := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET=file-secret\n" +
		"PORT=9090\n" +
		"CORS_ALLOWED_ORIGINS=http://a.test, http://b.test\n" +
		"ADMIN_EMAIL=root@example.com\n" +
		"ADMIN_PASSWORD=pw\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	config, err := loadConfig(viper.New(), file)
	require.NoError(t, err)

	assert.Equal(t, "file-secret", config.JWT.Secret)
	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, 24, config.JWT.ExpiryHours)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.CORS.AllowedOrigins)
	assert.True(t, config.Admin.Enabled())
	assert.Equal(t, "Admin User", config.Admin.Name)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("JWT_SECRET=file-secret\nPORT=9090\n"), 0o600))

	t.Setenv("PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")

	config, err := loadConfig(viper.New(), file)
	require.NoError(t, err)

	assert.Equal(t, "7070", config.App.Port)
	assert.Equal(t, "env-secret", config.JWT.Secret)
}

func TestLoadConfig_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ADMIN_EMAIL", "")

	config, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", config.JWT.Secret)
	assert.False(t, config.Admin.Enabled())
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	assert.EqualError(t, err, "JWT_SECRET is required")
}
