package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"tweetfeed/internal/adapter/out/storage"
	"tweetfeed/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

const DriverName = "sqlite3"

var ErrBuildingQuery = errors.New("error building sql-query")

type TweetStorage struct {
	db *sql.DB
}

func NewTweetStorage(db *sql.DB) *TweetStorage {
	return &TweetStorage{db: db}
}

// Open opens a sqlite database. Both "sqlite:" / "sqlite://" prefixed URLs
// and plain paths or file: URIs are accepted.
func Open(dsn string, maxConns int) (*sql.DB, error) {
	db, err := sql.Open(DriverName, TrimScheme(dsn))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return db, nil
}

func TrimScheme(dsn string) string {
	for _, p := range []string{"sqlite3://", "sqlite://", "sqlite3:", "sqlite:"} {
		if strings.HasPrefix(dsn, p) {
			return strings.TrimPrefix(dsn, p)
		}
	}
	return dsn
}

func (s *TweetStorage) InsertTweet(ctx context.Context, rec storage.Record) error {
	query, args, err := sq.
		Insert(tableinfo.TweetsTableName).
		Columns(
			tableinfo.TweetIDColumn,
			tableinfo.TweetDateColumn,
			tableinfo.TweetMessageColumn,
		).
		Values(rec.ID, rec.Date, rec.Message).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("exec error inserting tweet: %w", err)
	}
	return nil
}

func (s *TweetStorage) ListTweets(ctx context.Context) ([]storage.Record, error) {
	query, args, err := sq.
		Select(
			tableinfo.TweetIDColumn,
			tableinfo.TweetDateColumn,
			tableinfo.TweetMessageColumn,
		).
		From(tableinfo.TweetsTableName).
		OrderBy(tableinfo.TweetDateColumn + " DESC").
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec error selecting tweets: %w", err)
	}
	defer rows.Close()

	out := make([]storage.Record, 0)
	for rows.Next() {
		var (
			r       storage.Record
			date    sql.NullString
			message sql.NullString
		)
		if err := rows.Scan(&r.ID, &date, &message); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		r.Date, r.Message = date.String, message.String
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return out, nil
}

func (s *TweetStorage) DeleteTweet(ctx context.Context, id string) error {
	query, args, err := sq.
		Delete(tableinfo.TweetsTableName).
		Where(sq.Eq{tableinfo.TweetIDColumn: id}).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("exec delete tweet: %w", err)
	}
	return nil
}
