package replay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookpublisherv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/book-publisher/v1"
	bookpublisherv1_mock "github.com/muhammadchandra19/nasdaq-itch/internal/domain/book-publisher/v1/mock"
	enginev1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/engine/v1"
	ordereventv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/order-event/v1"
	ordereventv1_mock "github.com/muhammadchandra19/nasdaq-itch/internal/domain/order-event/v1/mock"
	snapshotv1_mock "github.com/muhammadchandra19/nasdaq-itch/internal/domain/snapshot/v1/mock"
	"github.com/muhammadchandra19/nasdaq-itch/pkg/logger"
)

var (
	dayStart = time.Date(2019, 1, 30, 0, 0, 0, 0, time.UTC)
	at       = time.Date(2019, 1, 30, 14, 40, 0, 0, time.UTC)
)

func clock(hour, minute int) time.Time {
	return time.Date(2019, 1, 30, hour, minute, 0, 0, time.UTC)
}

func addEvent(ts time.Time, seq, ref uint64) ordereventv1.Event {
	return ordereventv1.NewEvent(ts, seq, enginev1.OrderRecord{OrderType: enginev1.TypeAdd, Reference: ref, Shares: 100, Price: 10.5, IsBuy: true})
}

func deleteEvent(ts time.Time, seq, ref uint64) ordereventv1.Event {
	return ordereventv1.NewEvent(ts, seq, enginev1.OrderRecord{OrderType: enginev1.TypeDelete, Reference: ref})
}

func expectRange(repo *ordereventv1_mock.MockRepository, from time.Time, events []ordereventv1.Event) {
	repo.EXPECT().GetRange(gomock.Any(), "aapl", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, gotFrom, gotTo time.Time) ([]ordereventv1.Event, error) {
			if !gotFrom.Equal(from) || !gotTo.Equal(at) {
				return nil, errors.New("unexpected range " + gotFrom.String() + " " + gotTo.String())
			}
			return events, nil
		})
}

func snapshotWith(refs ...uint64) []byte {
	engine := enginev1.NewEngine()
	for _, ref := range refs {
		engine.Apply(enginev1.OrderRecord{OrderType: enginev1.TypeAdd, Reference: ref, Shares: 100, Price: 10.5, IsBuy: true})
	}
	return engine.SerializeState()
}

func hasRef(t *testing.T, blob []byte, ref uint64) bool {
	t.Helper()
	engine := enginev1.NewEngine()
	require.True(t, engine.DeserializeState(blob))
	_, _, ok := engine.Lookup(ref)
	return ok
}

func TestUsecase_Replay(t *testing.T) {
	prefix := "aapl_orders_snap_2019-01-30T"

	testCases := []struct {
		name     string
		req      Request
		mockFn   func(repo *ordereventv1_mock.MockRepository, store *snapshotv1_mock.MockStore, pub *bookpublisherv1_mock.MockPublisher)
		assertFn func(t *testing.T, res *Result, err error)
	}{
		{
			name: "no snapshot replays from day start and stores floor snapshot",
			req:  Request{Stock: "AAPL", At: at, PointInTime: true},
			mockFn: func(repo *ordereventv1_mock.MockRepository, store *snapshotv1_mock.MockStore, _ *bookpublisherv1_mock.MockPublisher) {
				store.EXPECT().Keys(gomock.Any(), prefix).Return(nil, nil)
				expectRange(repo, dayStart, []ordereventv1.Event{
					addEvent(clock(14, 0), 1, 1),
					addEvent(clock(14, 35), 2, 2),
					deleteEvent(clock(14, 36), 3, 999),
				})
				store.EXPECT().Put(gomock.Any(), "aapl_orders_snap_2019-01-30T14:30:00", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, blob []byte) error {
						assert.True(t, hasRef(t, blob, 1))
						assert.False(t, hasRef(t, blob, 2))
						return nil
					})
			},
			assertFn: func(t *testing.T, res *Result, err error) {
				require.NoError(t, err)
				assert.Empty(t, res.SnapshotKey)
				assert.Equal(t, 3, res.Fetched)
				assert.Equal(t, uint64(3), res.Processed)
				assert.Equal(t, uint64(1), res.Missed)
				assert.True(t, res.Stored)
				buy, sell := res.Engine.Len()
				assert.Equal(t, 2, buy)
				assert.Equal(t, 0, sell)
			},
		},
		{
			name: "restores latest snapshot not after floor",
			req:  Request{Stock: "aapl", At: at, PointInTime: true},
			mockFn: func(repo *ordereventv1_mock.MockRepository, store *snapshotv1_mock.MockStore, _ *bookpublisherv1_mock.MockPublisher) {
				store.EXPECT().Keys(gomock.Any(), prefix).Return([]string{
					"aapl_orders_snap_2019-01-30T14:00:00",
					"aapl_orders_snap_2019-01-30T14:15:00",
					"aapl_orders_snap_2019-01-30T14:45:00",
				}, nil)
				store.EXPECT().Get(gomock.Any(), "aapl_orders_snap_2019-01-30T14:15:00").Return(snapshotWith(1), nil)
				expectRange(repo, clock(14, 15), []ordereventv1.Event{addEvent(clock(14, 20), 5, 2)})
				store.EXPECT().Put(gomock.Any(), "aapl_orders_snap_2019-01-30T14:30:00", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, blob []byte) error {
						assert.True(t, hasRef(t, blob, 1))
						assert.True(t, hasRef(t, blob, 2))
						return nil
					})
			},
			assertFn: func(t *testing.T, res *Result, err error) {
				require.NoError(t, err)
				assert.Equal(t, "aapl_orders_snap_2019-01-30T14:15:00", res.SnapshotKey)
				assert.True(t, res.From.Equal(clock(14, 15)))
				assert.Zero(t, res.Missed)
				buy, _ := res.Engine.Len()
				assert.Equal(t, 2, buy)
			},
		},
		{
			name: "snapshot at floor is not stored again",
			req:  Request{Stock: "aapl", At: at, PointInTime: true},
			mockFn: func(repo *ordereventv1_mock.MockRepository, store *snapshotv1_mock.MockStore, _ *bookpublisherv1_mock.MockPublisher) {
				store.EXPECT().Keys(gomock.Any(), prefix).Return([]string{"aapl_orders_snap_2019-01-30T14:30:00"}, nil)
				store.EXPECT().Get(gomock.Any(), "aapl_orders_snap_2019-01-30T14:30:00").Return(snapshotWith(1), nil)
				expectRange(repo, clock(14, 30), []ordereventv1.Event{deleteEvent(clock(14, 31), 9, 1)})
			},
			assertFn: func(t *testing.T, res *Result, err error) {
				require.NoError(t, err)
				assert.False(t, res.Stored)
				buy, _ := res.Engine.Len()
				assert.Zero(t, buy)
			},
		},
		{
			name: "corrupt snapshot falls back to day start",
			req:  Request{Stock: "aapl", At: at, PointInTime: true},
			mockFn: func(repo *ordereventv1_mock.MockRepository, store *snapshotv1_mock.MockStore, _ *bookpublisherv1_mock.MockPublisher) {
				store.EXPECT().Keys(gomock.Any(), prefix).Return([]string{"aapl_orders_snap_2019-01-30T14:15:00"}, nil)
				store.EXPECT().Get(gomock.Any(), "aapl_orders_snap_2019-01-30T14:15:00").Return([]byte{1, 0, 0}, nil)
				expectRange(repo, dayStart, []ordereventv1.Event{addEvent(clock(10, 0), 1, 7)})
				store.EXPECT().Put(gomock.Any(), "aapl_orders_snap_2019-01-30T14:30:00", gomock.Any()).Return(nil)
			},
			assertFn: func(t *testing.T, res *Result, err error) {
				require.NoError(t, err)
				assert.Empty(t, res.SnapshotKey)
				assert.True(t, res.Stored)
				_, side, ok := res.Engine.Lookup(7)
				assert.True(t, ok)
				assert.Equal(t, enginev1.SideBuy, side)
			},
		},
		{
			name: "full replay from day open ignores snapshots",
			req:  Request{Stock: "aapl", At: at},
			mockFn: func(repo *ordereventv1_mock.MockRepository, store *snapshotv1_mock.MockStore, _ *bookpublisherv1_mock.MockPublisher) {
				store.EXPECT().Keys(gomock.Any(), gomock.Any()).Times(0)
				store.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
				store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				expectRange(repo, dayStart, []ordereventv1.Event{
					addEvent(clock(9, 0), 1, 1),
					addEvent(clock(14, 35), 2, 2),
				})
			},
			assertFn: func(t *testing.T, res *Result, err error) {
				require.NoError(t, err)
				assert.Empty(t, res.SnapshotKey)
				assert.True(t, res.From.Equal(dayStart))
				assert.False(t, res.Stored)
				_, _, ok := res.Engine.Lookup(1)
				assert.True(t, ok)
				_, _, ok = res.Engine.Lookup(77)
				assert.False(t, ok)
			},
		},
		{
			name: "store unavailable",
			req:  Request{Stock: "aapl", At: at, PointInTime: true},
			mockFn: func(_ *ordereventv1_mock.MockRepository, store *snapshotv1_mock.MockStore, _ *bookpublisherv1_mock.MockPublisher) {
				store.EXPECT().Keys(gomock.Any(), prefix).Return(nil, errors.New("connection refused"))
			},
			assertFn: func(t *testing.T, res *Result, err error) {
				assert.ErrorContains(t, err, "connection refused")
				assert.Nil(t, res)
			},
		},
		{
			name: "publishes the resulting book",
			req:  Request{Stock: "aapl", At: at, Publish: true, Collapsed: true},
			mockFn: func(repo *ordereventv1_mock.MockRepository, _ *snapshotv1_mock.MockStore, pub *bookpublisherv1_mock.MockPublisher) {
				expectRange(repo, dayStart, []ordereventv1.Event{addEvent(clock(10, 0), 1, 7), addEvent(clock(10, 1), 2, 8)})
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, ev *bookpublisherv1.BookEvent) error {
						assert.Equal(t, "aapl", ev.Stock)
						assert.True(t, ev.Collapsed)
						require.Len(t, ev.Bids, 1)
						assert.Equal(t, uint64(200), ev.Bids[0].Shares)
						assert.Equal(t, uint64(2), ev.Processed)
						return nil
					})
			},
			assertFn: func(t *testing.T, res *Result, err error) {
				require.NoError(t, err)
				assert.Equal(t, uint64(2), res.Processed)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ordereventv1_mock.NewMockRepository(ctrl)
			store := snapshotv1_mock.NewMockStore(ctrl)
			pub := bookpublisherv1_mock.NewMockPublisher(ctrl)
			tc.mockFn(repo, store, pub)

			u := NewUsecase(repo, store, logger.NewNop(), WithPublisher(pub), WithInterval(15*time.Minute))
			res, err := u.Replay(context.Background(), tc.req)
			tc.assertFn(t, res, err)
		})
	}
}

func TestUsecase_ReplaySkipsPreviousSession(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ordereventv1_mock.NewMockRepository(ctrl)
	store := snapshotv1_mock.NewMockStore(ctrl)

	// 09:40 New York is 14:40 UTC; the session opened at 05:00 UTC.
	store.EXPECT().Keys(gomock.Any(), "aapl_orders_snap_2019-01-30T").Return([]string{
		"aapl_orders_snap_2019-01-30T00:30:00",
	}, nil)
	repo.EXPECT().GetRange(gomock.Any(), "aapl", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, from, _ time.Time) ([]ordereventv1.Event, error) {
			assert.True(t, from.Equal(time.Date(2019, 1, 30, 5, 0, 0, 0, time.UTC)))
			return nil, nil
		})

	u := NewUsecase(repo, store, logger.NewNop(), WithLocation(ny))
	res, err := u.Replay(context.Background(), Request{Stock: "aapl", At: at, PointInTime: true})
	require.NoError(t, err)
	assert.Empty(t, res.SnapshotKey)
}
