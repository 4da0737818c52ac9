package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:         3001,
		DatabaseURL:  "postgres://localhost/pathfinder",
		GeminiAPIKey: "key",
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_RequiresDatabaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = ""

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestValidate_RequiresGeminiKey(t *testing.T) {
	cfg := validConfig()
	cfg.GeminiAPIKey = ""

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestValidate_ProviderCredentialsOptional(t *testing.T) {
	cfg := validConfig()
	cfg.TheirStackAPIKey = ""
	cfg.RapidAPIKey = ""
	cfg.AdzunaAppID = ""
	cfg.AdzunaAPIKey = ""

	assert.NoError(t, cfg.Validate())
}

func TestValidate_PortRange(t *testing.T) {
	cfg := validConfig()
	cfg.Port = 0

	assert.Error(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/pathfinder")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("PORT", "8090")
	t.Setenv("RAPIDAPI_KEY", "rapid")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8090, cfg.Port)
	assert.Equal(t, "rapid", cfg.RapidAPIKey)
	assert.Equal(t, "gem-key", cfg.GeminiAPIKey)
}

func TestLoad_WithoutDatabaseURL(t *testing.T) {
	// Load itself stays permissive; only Validate enforces the server's
	// requirements. Store-less CLI runs depend on this.
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "gem-key")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Error(t, cfg.Validate())
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/pathfinder")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()

	assert.Error(t, err)
}

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()

	require.NoError(t, err)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()

	assert.Error(t, err)
}
