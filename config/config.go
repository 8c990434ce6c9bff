package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type Config struct {
	Storage   StorageConfig
	Postgres  PostgresConfig
	HTTP      HTTPConfig
	Log       LogConfig
	StaticDir string
}

type StorageConfig struct {
	Type     string
	URL      string
	MaxConns int
	Migrate  bool
}

// PostgresConfig is only consulted when DATABASE_URL is empty.
type PostgresConfig struct {
	User     string
	Password string
	DB       string
	Host     string
	Port     int
	SSLMode  string
}

func (pc PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.User,
		pc.Password,
		pc.Host,
		pc.Port,
		pc.DB,
		pc.SSLMode,
	)
}

type HTTPConfig struct {
	Port string
}

type LogConfig struct {
	Level  string
	Format string
}

func LoadConfig() Config {
	return load(os.Getenv)
}

func load(getenv func(string) string) Config {
	env := envReader{getenv: getenv}

	cfg := Config{
		Storage: StorageConfig{
			URL:      env.get("DATABASE_URL", ""),
			MaxConns: env.getInt("DB_MAX_CONNS", 10),
			Migrate:  env.getBool("MIGRATE", true),
		},
		HTTP: HTTPConfig{
			Port: env.get("HTTP_PORT", "8888"),
		},
		Log: LogConfig{
			Level:  env.get("LOG_LEVEL", "info"),
			Format: env.get("LOG_FORMAT", "text"),
		},
		StaticDir: env.get("STATIC_DIR", ""),
	}

	cfg.Storage.Type = strings.ToLower(env.get("STORAGE_TYPE", storageTypeFromURL(cfg.Storage.URL)))

	switch cfg.Storage.Type {
	case StorageMemory:
	case StorageSQLite:
		if cfg.Storage.URL == "" {
			panic("missing required env var: DATABASE_URL")
		}
	case StoragePostgres:
		if cfg.Storage.URL == "" {
			cfg.Postgres = PostgresConfig{
				User:     env.mustGet("POSTGRES_USER"),
				Password: env.mustGet("POSTGRES_PASSWORD"),
				DB:       env.mustGet("POSTGRES_DB"),
				Host:     env.mustGet("POSTGRES_HOST"),
				Port:     env.mustGetInt("POSTGRES_PORT"),
				SSLMode:  env.get("POSTGRES_SSLMODE", "disable"),
			}
			cfg.Storage.URL = cfg.Postgres.GetDSN()
		}
	default:
		panic("unsupported STORAGE_TYPE: " + cfg.Storage.Type)
	}

	return cfg
}

func storageTypeFromURL(url string) string {
	switch {
	case url == "":
		return StorageMemory
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return StoragePostgres
	default:
		return StorageSQLite
	}
}

type envReader struct {
	getenv func(string) string
}

func (e envReader) get(key, def string) string {
	if val := strings.TrimSpace(e.getenv(key)); val != "" {
		return val
	}
	return def
}

func (e envReader) mustGet(key string) string {
	val := e.getenv(key)
	if val == "" {
		panic("missing required env var: " + key)
	}
	return val
}

func (e envReader) getInt(key string, def int) int {
	val := e.get(key, "")
	if val == "" {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}

func (e envReader) mustGetInt(key string) int {
	val := e.mustGet(key)
	i, err := strconv.Atoi(val)
	if err != nil {
		panic("invalid int for env var " + key + ": " + val)
	}
	return i
}

func (e envReader) getBool(key string, def bool) bool {
	val := e.get(key, "")
	if val == "" {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		panic("invalid bool for env var " + key + ": " + val)
	}
	return b
}
