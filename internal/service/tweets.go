package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"tweetfeed/internal/adapter/out/storage"
	"tweetfeed/internal/model"
	"tweetfeed/pkg/logger"

	"github.com/google/uuid"
)

//go:generate mockgen -source=tweets.go -destination=./tweet_storage_mock.go -package=service tweetfeed/internal/service TweetStorage
type TweetStorage interface {
	InsertTweet(ctx context.Context, rec storage.Record) error
	ListTweets(ctx context.Context) ([]storage.Record, error)
	DeleteTweet(ctx context.Context, id string) error
}

type TweetService struct {
	tweetStorage TweetStorage

	now   func() time.Time
	newID func() string
}

func NewTweetService(tweetStorage TweetStorage) *TweetService {
	return &TweetService{
		tweetStorage: tweetStorage,
		now:          time.Now,
		newID:        func() string { return uuid.NewString() },
	}
}

// ListTweets returns every tweet, newest first. A single undecodable row
// fails the whole call with ErrCorruptRecord.
func (s *TweetService) ListTweets(ctx context.Context) (model.Envelope[model.Tweet], error) {
	recs, err := s.tweetStorage.ListTweets(ctx)
	if err != nil {
		return model.Envelope[model.Tweet]{}, fmt.Errorf("%w: list tweets: %w", ErrUnavailable, err)
	}

	tweets := make([]model.Tweet, 0, len(recs))
	for _, rec := range recs {
		t, err := storage.DecodeRecord(rec)
		if err != nil {
			logger.FromContext(ctx).Error("undecodable tweet row", "id", rec.ID, "date", rec.Date, "error", err)
			return model.Envelope[model.Tweet]{}, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
		}
		tweets = append(tweets, t)
	}

	// date is a text column: rows written with millisecond precision
	// do not sort lexically against nanosecond ones.
	slices.SortStableFunc(tweets, func(a, b model.Tweet) int {
		return b.Date.Compare(a.Date)
	})

	return model.NewEnvelope(tweets), nil
}

func (s *TweetService) CreateTweet(ctx context.Context, req CreateTweetRequest) (model.Tweet, error) {
	if err := validate.Struct(req); err != nil {
		return model.Tweet{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	rec := storage.EncodeTweet(model.Tweet{
		ID:      s.newID(),
		Date:    s.now().UTC(),
		Message: req.Message,
	})

	if err := s.tweetStorage.InsertTweet(ctx, rec); err != nil {
		return model.Tweet{}, fmt.Errorf("%w: insert tweet: %w", ErrUnavailable, err)
	}

	out, err := storage.DecodeRecord(rec)
	if err != nil {
		return model.Tweet{}, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	return out, nil
}

// DeleteTweet removes the tweet with the given id. Unknown ids are not an error.
func (s *TweetService) DeleteTweet(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("tweet id is required: %w", ErrInvalidRequest)
	}
	if err := s.tweetStorage.DeleteTweet(ctx, id); err != nil {
		return fmt.Errorf("%w: delete tweet %s: %w", ErrUnavailable, id, err)
	}
	return nil
}
