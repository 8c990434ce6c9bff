package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"tweetfeed/pkg/logger"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite3/*.sql
var embedded embed.FS

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var dialects = map[string]goose.Dialect{
	DialectPostgres: goose.DialectPostgres,
	DialectSQLite:   goose.DialectSQLite3,
}

// Up applies every pending migration for dialect and returns the
// resulting schema version.
func Up(ctx context.Context, db *sql.DB, dialect string) (int64, error) {
	p, err := newProvider(db, dialect)
	if err != nil {
		return 0, err
	}

	results, err := p.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	log := logger.FromContext(ctx)
	for _, r := range results {
		log.Info("migration applied", "version", r.Source.Version, "duration", r.Duration)
	}

	return p.GetDBVersion(ctx)
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB, dialect string) error {
	p, err := newProvider(db, dialect)
	if err != nil {
		return err
	}
	if _, err := p.Down(ctx); err != nil {
		return fmt.Errorf("rollback migration: %w", err)
	}
	return nil
}

func newProvider(db *sql.DB, dialect string) (*goose.Provider, error) {
	d, ok := dialects[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported migration dialect %q", dialect)
	}

	fsys, err := fs.Sub(embedded, dialect)
	if err != nil {
		return nil, fmt.Errorf("migrations for %s: %w", dialect, err)
	}

	p, err := goose.NewProvider(d, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return p, nil
}
