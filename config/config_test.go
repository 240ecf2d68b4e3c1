package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "mongo", cfg.DBType)
	assert.Equal(t, "assetverse", cfg.DBName)
	assert.Equal(t, "firebase", cfg.AuthDriver)
	assert.Len(t, cfg.CORSOrigins, 3)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("AUTH_DRIVER", "jwt")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ORIGINS", "https://one.example,https://two.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, "jwt", cfg.AuthDriver)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, []string{"https://one.example", "https://two.example"}, cfg.CORSOrigins)
}
