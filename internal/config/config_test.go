package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
	assert.Equal(t, EnvDevelopment, cfg.Environment)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_HTTP_PORT", "9999")
	t.Setenv("PORTFOLIO_FIRESTORE_PROJECT_ID", "my-project")
	t.Setenv("PORTFOLIO_ENVIRONMENT", "production")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.HTTPPort)
	assert.True(t, cfg.StoreConfigured())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9999", cfg.GetHTTPAddr())
}

func TestStoreConfigured(t *testing.T) {
	cfg := NewForTesting()
	assert.True(t, cfg.StoreConfigured())
	cfg.FirestoreProjectID = ""
	assert.False(t, cfg.StoreConfigured())
}

func TestAdminConfigured(t *testing.T) {
	cfg := NewForTesting()
	assert.True(t, cfg.AdminConfigured())
	cfg.AdminPassword = ""
	assert.False(t, cfg.AdminConfigured())
}
