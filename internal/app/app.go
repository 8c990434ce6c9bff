package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"
	"tweetfeed/config"
	"tweetfeed/internal/adapter/in/rest"
	memstore "tweetfeed/internal/adapter/out/storage/inmemory"
	"tweetfeed/internal/adapter/out/storage/migrations"
	pgstore "tweetfeed/internal/adapter/out/storage/postgres"
	sqlitestore "tweetfeed/internal/adapter/out/storage/sqlite"
	"tweetfeed/internal/service"
	"tweetfeed/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	cfg     config.Config
	srv     *http.Server
	closers []func()
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)
	a := &App{cfg: cfg}

	tweetStorage, err := a.openStorage(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	tweetSvc := service.NewTweetService(tweetStorage)

	handler := rest.NewRouter(rest.NewHandler(tweetSvc), rest.RouterConfig{
		Logger:    log,
		Metrics:   rest.NewMetrics(),
		StaticDir: cfg.StaticDir,
	})

	addr := ":" + cfg.HTTP.Port
	a.srv = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized", "addr", addr, "storage", cfg.Storage.Type)
	return a, nil
}

func (a *App) openStorage(ctx context.Context) (service.TweetStorage, error) {
	switch a.cfg.Storage.Type {
	case config.StoragePostgres:
		poolCfg, err := pgxpool.ParseConfig(a.cfg.Storage.URL)
		if err != nil {
			return nil, fmt.Errorf("pgxpool config: %w", err)
		}
		if a.cfg.Storage.MaxConns > 0 {
			poolCfg.MaxConns = int32(a.cfg.Storage.MaxConns)
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		a.closers = append(a.closers, pool.Close)

		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("ping postgres: %w", err)
		}

		if a.cfg.Storage.Migrate {
			db := stdlib.OpenDBFromPool(pool)
			err := migrate(ctx, db, migrations.DialectPostgres)
			_ = db.Close()
			if err != nil {
				return nil, err
			}
		}
		return pgstore.NewTweetStorage(pool, trmpgx.DefaultCtxGetter), nil

	case config.StorageSQLite:
		db, err := sqlitestore.Open(a.cfg.Storage.URL, a.cfg.Storage.MaxConns)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = db.Close() })

		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("ping sqlite: %w", err)
		}

		if a.cfg.Storage.Migrate {
			if err := migrate(ctx, db, migrations.DialectSQLite); err != nil {
				return nil, err
			}
		}
		return sqlitestore.NewTweetStorage(db), nil

	default:
		return memstore.NewTweetStorage(), nil
	}
}

func migrate(ctx context.Context, db *sql.DB, dialect string) error {
	version, err := migrations.Up(ctx, db, dialect)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info("schema up to date", "dialect", dialect, "version", version)
	return nil
}

func (a *App) Handler() http.Handler {
	return a.srv.Handler
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	defer a.close()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.srv.Shutdown(shCtx); err != nil {
			log.Error("http shutdown", "error", err)
		}
		return nil

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
