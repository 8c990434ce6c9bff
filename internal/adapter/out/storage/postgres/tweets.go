package postgres

import (
	"context"
	"errors"
	"fmt"
	"tweetfeed/internal/adapter/out/storage"
	"tweetfeed/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
)

var ErrBuildingQuery = errors.New("error building sql-query")

type TweetStorage struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

// NewTweetStorage accepts a *pgxpool.Pool or anything else that looks like one.
func NewTweetStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *TweetStorage {
	return &TweetStorage{
		db:     db,
		getter: getter,
	}
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
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if _, err := tr.Exec(ctx, query, args...); err != nil {
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
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)

	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec error selecting tweets: %w", err)
	}
	defer rows.Close()

	out := make([]storage.Record, 0)
	for rows.Next() {
		var r storage.Record
		if err := rows.Scan(&r.ID, &r.Date, &r.Message); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
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
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	if _, err := tr.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("exec delete tweet: %w", err)
	}
	return nil
}
