package storage

import (
	"errors"
	"fmt"
	"tweetfeed/internal/model"
	"tweetfeed/pkg/sanitize"
	"tweetfeed/pkg/timefmt"
)

var ErrMalformedRecord = errors.New("malformed record")

// Record is a tweets row as stored: every column is text.
type Record struct {
	ID      string
	Date    string
	Message string
}

// EncodeTweet prepares a tweet for persistence. The message is escaped
// here and only here; stored messages are never escaped a second time.
func EncodeTweet(t model.Tweet) Record {
	return Record{
		ID:      t.ID,
		Date:    timefmt.Format(t.Date),
		Message: sanitize.HTML(t.Message),
	}
}

func DecodeRecord(r Record) (model.Tweet, error) {
	if r.ID == "" {
		return model.Tweet{}, fmt.Errorf("%w: empty id", ErrMalformedRecord)
	}
	date, err := timefmt.Parse(r.Date)
	if err != nil {
		return model.Tweet{}, fmt.Errorf("%w: tweet %s: %w", ErrMalformedRecord, r.ID, err)
	}
	return model.Tweet{
		ID:      r.ID,
		Date:    date,
		Message: r.Message,
	}, nil
}
