package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg := load(envFrom(nil))

	require.Equal(t, StorageMemory, cfg.Storage.Type)
	require.Equal(t, "8888", cfg.HTTP.Port)
	require.Equal(t, 10, cfg.Storage.MaxConns)
	require.True(t, cfg.Storage.Migrate)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Empty(t, cfg.StaticDir)
}

func TestLoad_StorageTypeFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{url: "postgres://u:p@localhost:5432/tweets", want: StoragePostgres},
		{url: "postgresql://localhost/tweets", want: StoragePostgres},
		{url: "sqlite:tweets.db", want: StorageSQLite},
		{url: "file:tweets.db?cache=shared", want: StorageSQLite},
		{url: "/var/lib/tweets.db", want: StorageSQLite},
	}

	for _, tt := range tests {
		cfg := load(envFrom(map[string]string{"DATABASE_URL": tt.url}))
		require.Equal(t, tt.want, cfg.Storage.Type, tt.url)
		require.Equal(t, tt.url, cfg.Storage.URL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Parallel()

	cfg := load(envFrom(map[string]string{
		"STORAGE_TYPE": "SQLite",
		"DATABASE_URL": "tweets.db",
		"HTTP_PORT":    "9000",
		"DB_MAX_CONNS": "3",
		"MIGRATE":      "false",
		"LOG_LEVEL":    "debug",
		"LOG_FORMAT":   "json",
		"STATIC_DIR":   "./static",
	}))

	require.Equal(t, StorageSQLite, cfg.Storage.Type)
	require.Equal(t, "9000", cfg.HTTP.Port)
	require.Equal(t, 3, cfg.Storage.MaxConns)
	require.False(t, cfg.Storage.Migrate)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "./static", cfg.StaticDir)
}

func TestLoad_PostgresFromParts(t *testing.T) {
	t.Parallel()

	cfg := load(envFrom(map[string]string{
		"STORAGE_TYPE":      "postgres",
		"POSTGRES_USER":     "tweeter",
		"POSTGRES_PASSWORD": "secret",
		"POSTGRES_DB":       "tweets",
		"POSTGRES_HOST":     "db",
		"POSTGRES_PORT":     "5432",
	}))

	require.Equal(t, "postgres://tweeter:secret@db:5432/tweets?sslmode=disable", cfg.Storage.URL)
}

func TestLoad_Panics(t *testing.T) {
	t.Parallel()

	tests := map[string]map[string]string{
		"unknown storage":         {"STORAGE_TYPE": "mongo"},
		"sqlite without url":      {"STORAGE_TYPE": "sqlite"},
		"postgres missing parts":  {"STORAGE_TYPE": "postgres", "POSTGRES_USER": "u"},
		"bad max conns":           {"DB_MAX_CONNS": "many"},
		"bad migrate flag":        {"MIGRATE": "sometimes"},
		"bad postgres port value": {"STORAGE_TYPE": "postgres", "POSTGRES_USER": "u", "POSTGRES_PASSWORD": "p", "POSTGRES_DB": "d", "POSTGRES_HOST": "h", "POSTGRES_PORT": "x"},
	}

	for name, env := range tests {
		require.Panics(t, func() { load(envFrom(env)) }, name)
	}
}
