package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwtsecret")
}

func TestLoadWithSecret(t *testing.T) {
	t.Setenv("STOREFRONT_SECURITY.JWTSECRET", "env-secret")
	t.Setenv("STOREFRONT_FRONTENDURL", "http://localhost:7777")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.Security.JWTSecret)
	assert.Equal(t, "240h0m0s", cfg.Security.SessionTTL.String())
	assert.Equal(t, "1h0m0s", cfg.Security.ResetTokenTTL.String())
}
