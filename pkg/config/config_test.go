package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("test-version")
	require.NoError(t, err)

	assert.Equal(t, "test-version", cfg.Version)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 100, cfg.Reports.DefaultRowLimit)
	assert.Equal(t, 1000, cfg.Reports.MaxRowLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LLM_PROVIDER", "groq")
	t.Setenv("LLM_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("PGPASSWORD", "p@ss/word")

	cfg, err := Load("dev")
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "groq", cfg.LLM.Provider)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.Model)
	assert.Equal(t, "p@ss/word", cfg.Database.Password)
}

func TestLoad_RejectsBadRowLimits(t *testing.T) {
	t.Setenv("REPORTS_DEFAULT_ROW_LIMIT", "5000")
	t.Setenv("REPORTS_MAX_ROW_LIMIT", "1000")

	_, err := Load("dev")
	require.Error(t, err)
}

func TestDatabaseURL_EscapesCredentials(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "svc",
		Password: "p@ss:word/#?",
		Database: "analytics",
		SSLMode:  "require",
	}

	url := d.URL()
	assert.Contains(t, url, "db.internal:5432")
	assert.NotContains(t, url, "p@ss:word/#?")
	assert.Contains(t, url, "sslmode=require")
}
