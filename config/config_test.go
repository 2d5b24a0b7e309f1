package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "groq")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("SUPABASE_URL", "https://demo.supabase.co/")
	t.Setenv("SUPABASE_KEY", "service-key")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://prep.example.com")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://prep.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "gsk-test", cfg.LLM.APIKey)
	assert.Equal(t, groqBaseURL, cfg.LLM.BaseURL)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM.Model)
	assert.Equal(t, "https://demo.supabase.co", cfg.Supabase.URL)
	assert.True(t, cfg.Supabase.Configured())
	assert.Equal(t, 10*time.Second, cfg.Supabase.HTTPTimeout)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
}

func TestNewConfigRejectsUnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "carrier-pigeon")

	_, err := NewConfig()
	assert.ErrorContains(t, err, "unknown LLM_PROVIDER")
}

func TestNewConfigRejectsUnknownGinMode(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "groq")
	t.Setenv("GIN_MODE", "verbose")

	_, err := NewConfig()
	assert.ErrorContains(t, err, "unknown GIN_MODE")
}

func TestNewConfigAcceptsGinModes(t *testing.T) {
	for _, mode := range []string{"debug", "release", "test"} {
		t.Run(mode, func(t *testing.T) {
			t.Setenv("LLM_PROVIDER", "groq")
			t.Setenv("GIN_MODE", mode)

			cfg, err := NewConfig()
			require.NoError(t, err)
			assert.Equal(t, mode, cfg.Server.GinMode)
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	d := Database{Driver: DriverPostgres, Host: "db", Port: "5432", User: "postgres", Password: "pw", Name: "prep", SSLMode: "disable"}
	assert.True(t, d.Configured())
	assert.Equal(t, "host=db port=5432 user=postgres password=pw dbname=prep sslmode=disable", d.DSN())

	d.URL = "postgres://u:p@pooler:6543/postgres"
	assert.Equal(t, d.URL, d.DSN())

	assert.False(t, Database{Driver: DriverSQLite}.Configured())
	assert.True(t, Database{Driver: DriverSQLite, URL: "prep.db"}.Configured())
}
