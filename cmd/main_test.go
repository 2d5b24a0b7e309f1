package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lshigami/devprep/config"
	"github.com/lshigami/devprep/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoMigrateDBLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Database.AutoMigrate = true
	require.NoError(t, AutoMigrateDB(db, cfg))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "Running database migrations"))
	assert.Equal(t, 1, strings.Count(out, "Database migration completed"))
}

func TestAutoMigrateDBSkipped(t *testing.T) {
	assert.NoError(t, AutoMigrateDB(nil, &config.Config{}))

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrateDB(db, &config.Config{}))
	assert.False(t, db.Migrator().HasTable("sessions"))
}
