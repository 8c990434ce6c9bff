package timefmt

import (
	"errors"
	"fmt"
	"time"
)

// Layout is what every new record is written with.
const Layout = "2006-01-02T15:04:05.000000000Z"

var ErrUnknownFormat = errors.New("unknown timestamp format")

// layouts are tried in order. Older rows were written with millisecond
// precision and some were inserted by hand through the sqlite shell.
var layouts = []string{
	Layout,
	"2006-01-02T15:04:05.000Z",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Parse decodes a stored timestamp. The result is always in UTC.
func Parse(s string) (time.Time, error) {
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
