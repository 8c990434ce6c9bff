package inmemory

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"tweetfeed/internal/adapter/out/storage"
)

var ErrDuplicateID = errors.New("duplicate tweet id")

type TweetStorage struct {
	mu   sync.RWMutex
	byID map[string]storage.Record
}

func NewTweetStorage() *TweetStorage {
	return &TweetStorage{
		byID: make(map[string]storage.Record),
	}
}

func (s *TweetStorage) InsertTweet(_ context.Context, rec storage.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[rec.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
	}
	s.byID[rec.ID] = rec
	return nil
}

// ListTweets orders by the date column text, descending, like the SQL backends.
func (s *TweetStorage) ListTweets(_ context.Context) ([]storage.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]storage.Record, 0, len(s.byID))
	for _, rec := range s.byID {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b storage.Record) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return out, nil
}

func (s *TweetStorage) DeleteTweet(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byID, id)
	return nil
}
