package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
	"tweetfeed/internal/adapter/out/storage"
	"tweetfeed/internal/adapter/out/storage/inmemory"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

func newTestService(m TweetStorage, now time.Time, id string) *TweetService {
	svc := NewTweetService(m)
	svc.now = func() time.Time { return now }
	svc.newID = func() string { return id }
	return svc
}

func TestTweetService_CreateTweet(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 6, 7, 8, 9, 123456789, time.UTC)

	tests := []struct {
		name    string
		req     CreateTweetRequest
		setup   func(m *MockTweetStorage)
		wantErr error
		wantMsg string
	}{
		{
			name:    "empty message",
			req:     CreateTweetRequest{},
			setup:   func(_ *MockTweetStorage) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "whitespace only message",
			req:     CreateTweetRequest{Message: " \t\n "},
			setup:   func(_ *MockTweetStorage) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "storage error",
			req:  CreateTweetRequest{Message: "hello"},
			setup: func(m *MockTweetStorage) {
				m.EXPECT().
					InsertTweet(gomock.Any(), gomock.Any()).
					Return(errors.New("db fail"))
			},
			wantErr: ErrUnavailable,
		},
		{
			name: "success",
			req:  CreateTweetRequest{Message: "hello"},
			setup: func(m *MockTweetStorage) {
				m.EXPECT().
					InsertTweet(gomock.Any(), storage.Record{
						ID:      "id-1",
						Date:    "2024-05-06T07:08:09.123456789Z",
						Message: "hello",
					}).
					Return(nil)
			},
			wantMsg: "hello",
		},
		{
			name: "markup is escaped before insert",
			req:  CreateTweetRequest{Message: "<script>x</script>"},
			setup: func(m *MockTweetStorage) {
				m.EXPECT().
					InsertTweet(gomock.Any(), storage.Record{
						ID:      "id-1",
						Date:    "2024-05-06T07:08:09.123456789Z",
						Message: "&lt;script&gt;x&lt;&#x2f;script&gt;",
					}).
					Return(nil)
			},
			wantMsg: "&lt;script&gt;x&lt;&#x2f;script&gt;",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			m := NewMockTweetStorage(ctrl)
			tt.setup(m)

			svc := newTestService(m, now, "id-1")
			got, err := svc.CreateTweet(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "id-1", got.ID)
			require.Equal(t, tt.wantMsg, got.Message)
			require.True(t, now.Equal(got.Date))
		})
	}
}

func TestTweetService_CreateTweet_UsesUTC(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	m := NewMockTweetStorage(ctrl)

	local := time.Date(2024, 5, 6, 10, 0, 0, 0, time.FixedZone("MSK", 3*60*60))
	m.EXPECT().
		InsertTweet(gomock.Any(), gomock.Cond(func(rec storage.Record) bool {
			return rec.Date == "2024-05-06T07:00:00.000000000Z"
		})).
		Return(nil)

	got, err := newTestService(m, local, "x").CreateTweet(context.Background(), CreateTweetRequest{Message: "m"})
	require.NoError(t, err)
	require.Equal(t, time.UTC, got.Date.Location())
}

func TestTweetService_ListTweets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(m *MockTweetStorage)
		wantErr error
		wantIDs []string
	}{
		{
			name: "storage error",
			setup: func(m *MockTweetStorage) {
				m.EXPECT().ListTweets(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: ErrUnavailable,
		},
		{
			name: "empty",
			setup: func(m *MockTweetStorage) {
				m.EXPECT().ListTweets(gomock.Any()).Return(nil, nil)
			},
			wantIDs: []string{},
		},
		{
			name: "newest first across legacy and current formats",
			setup: func(m *MockTweetStorage) {
				// lexical order of the text column, as the database returns it
				m.EXPECT().ListTweets(gomock.Any()).Return([]storage.Record{
					{ID: "c", Date: "2024-01-01T00:00:02.000000000Z"},
					{ID: "b", Date: "2024-01-01T00:00:01.500000000Z"},
					{ID: "a2", Date: "2024-01-01T00:00:01.000000001Z"},
					{ID: "a1", Date: "2024-01-01T00:00:01.000Z"},
					{ID: "z", Date: "2023-12-31T23:59:59.999Z"},
				}, nil)
			},
			wantIDs: []string{"c", "b", "a2", "a1", "z"},
		},
		{
			name: "resorts rows the text column misordered",
			setup: func(m *MockTweetStorage) {
				m.EXPECT().ListTweets(gomock.Any()).Return([]storage.Record{
					{ID: "ms", Date: "2024-01-01T00:00:01.500Z"},
					{ID: "ns", Date: "2024-01-01T00:00:01.500000001Z"},
				}, nil)
			},
			wantIDs: []string{"ns", "ms"},
		},
		{
			name: "dates beyond the nanosecond epoch range",
			setup: func(m *MockTweetStorage) {
				m.EXPECT().ListTweets(gomock.Any()).Return([]storage.Record{
					{ID: "now", Date: "2024-01-01T00:00:00.000000000Z"},
					{ID: "far", Date: "2300-01-01T00:00:00.000000000Z"},
					{ID: "old", Date: "1600-01-01T00:00:00.000Z"},
				}, nil)
			},
			wantIDs: []string{"far", "now", "old"},
		},
		{
			name: "corrupt row fails the whole list",
			setup: func(m *MockTweetStorage) {
				m.EXPECT().ListTweets(gomock.Any()).Return([]storage.Record{
					{ID: "ok", Date: "2024-01-01T00:00:01.000Z"},
					{ID: "bad", Date: "yesterday"},
				}, nil)
			},
			wantErr: ErrCorruptRecord,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			m := NewMockTweetStorage(ctrl)
			tt.setup(m)

			got, err := NewTweetService(m).ListTweets(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got.Results)

			ids := make([]string, 0, len(got.Results))
			for _, tw := range got.Results {
				ids = append(ids, tw.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestTweetService_DeleteTweet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		setup   func(m *MockTweetStorage)
		wantErr error
	}{
		{
			name:    "empty id",
			id:      "",
			setup:   func(_ *MockTweetStorage) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "storage error",
			id:   "abc",
			setup: func(m *MockTweetStorage) {
				m.EXPECT().DeleteTweet(gomock.Any(), "abc").Return(errors.New("db down"))
			},
			wantErr: ErrUnavailable,
		},
		{
			name: "success",
			id:   "abc",
			setup: func(m *MockTweetStorage) {
				m.EXPECT().DeleteTweet(gomock.Any(), "abc").Return(nil)
			},
		},
		{
			name: "id passed verbatim",
			id:   "'); DROP TABLE tweets; --",
			setup: func(m *MockTweetStorage) {
				m.EXPECT().DeleteTweet(gomock.Any(), "'); DROP TABLE tweets; --").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			m := NewMockTweetStorage(ctrl)
			tt.setup(m)

			err := NewTweetService(m).DeleteTweet(context.Background(), tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTweetService_DeleteTweet_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewTweetService(inmemory.NewTweetStorage())

	require.NoError(t, svc.DeleteTweet(ctx, "missing"))

	tw, err := svc.CreateTweet(ctx, CreateTweetRequest{Message: "bye"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTweet(ctx, tw.ID))
	require.NoError(t, svc.DeleteTweet(ctx, tw.ID))

	got, err := svc.ListTweets(ctx)
	require.NoError(t, err)
	require.Empty(t, got.Results)
}

func TestTweetService_ConcurrentCreateUniqueIDs(t *testing.T) {
	t.Parallel()

	const n = 200

	ctx := context.Background()
	svc := NewTweetService(inmemory.NewTweetStorage())

	var (
		mu  sync.Mutex
		ids = make(map[string]struct{}, n)
	)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			tw, err := svc.CreateTweet(gctx, CreateTweetRequest{Message: fmt.Sprintf("m%d", i)})
			if err != nil {
				return err
			}
			mu.Lock()
			ids[tw.ID] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Len(t, ids, n)

	got, err := svc.ListTweets(ctx)
	require.NoError(t, err)
	require.Len(t, got.Results, n)
}
