package orderevent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enginev1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/engine/v1"
	ordereventv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/order-event/v1"
	pkgerrors "github.com/muhammadchandra19/nasdaq-itch/pkg/errors"
	mock "github.com/muhammadchandra19/nasdaq-itch/pkg/questdb/mock"
)

func TestOrderEventRepository_EnsureTable(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, created bool, err error)
	}{
		{
			name: "creates missing table",
			mockFn: func(mock *mock.MockQuestDBClient) {
				mock.EXPECT().TableExists(gomock.Any(), "aapl_orders").Return(false, nil)
				mock.EXPECT().Exec(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sql string, _ ...any) error {
					assert.Contains(t, sql, `CREATE TABLE IF NOT EXISTS "aapl_orders"`)
					assert.Contains(t, sql, "PARTITION BY DAY")
					return nil
				})
			},
			assertFn: func(t *testing.T, created bool, err error) {
				assert.NoError(t, err)
				assert.True(t, created)
			},
		},
		{
			name: "table already present",
			mockFn: func(mock *mock.MockQuestDBClient) {
				mock.EXPECT().TableExists(gomock.Any(), "aapl_orders").Return(true, nil)
			},
			assertFn: func(t *testing.T, created bool, err error) {
				assert.NoError(t, err)
				assert.False(t, created)
			},
		},
		{
			name: "create fails",
			mockFn: func(mock *mock.MockQuestDBClient) {
				mock.EXPECT().TableExists(gomock.Any(), "aapl_orders").Return(false, nil)
				mock.EXPECT().Exec(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
			},
			assertFn: func(t *testing.T, created bool, err error) {
				assert.False(t, created)
				assert.True(t, pkgerrors.ErrorCodeEquals(err, string(pkgerrors.EventLogTableError)))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock := mock.NewMockQuestDBClient(ctrl)
			tc.mockFn(mock)

			repo := NewRepository(mock)
			created, err := repo.EnsureTable(context.Background(), "aapl")
			tc.assertFn(t, created, err)
		})
	}
}

func TestOrderEventRepository_EnsureTableCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockQuestDBClient(ctrl)
	client.EXPECT().TableExists(gomock.Any(), "msft_orders").Return(true, nil).Times(1)

	repo := NewRepository(client)
	for i := 0; i < 3; i++ {
		created, err := repo.EnsureTable(context.Background(), "msft")
		require.NoError(t, err)
		assert.False(t, created)
	}
}

func TestOrderEventRepository_StoreBatch(t *testing.T) {
	ts := time.Date(2019, 1, 30, 14, 30, 0, 0, time.UTC)
	events := []ordereventv1.Event{
		ordereventv1.NewEvent(ts, 1, enginev1.OrderRecord{OrderType: enginev1.TypeAdd, Reference: 7, Shares: 100, Price: 10.5, IsBuy: true}),
		ordereventv1.NewEvent(ts, 2, enginev1.OrderRecord{OrderType: enginev1.TypeReplace, Reference: 7, NewReference: 8, Shares: 50, Price: 10.6}),
		ordereventv1.NewEvent(ts, 3, enginev1.OrderRecord{OrderType: enginev1.TypeDelete, Reference: 8}),
	}

	testCases := []struct {
		name     string
		chunk    int
		mockFn   func(mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, written int64, err error)
	}{
		{
			name:  "single statement",
			chunk: DefaultInsertChunk,
			mockFn: func(mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sql string, args ...any) error {
					assert.True(t, strings.HasPrefix(sql, `INSERT INTO "aapl_orders"`))
					assert.Contains(t, sql, "$27)")
					require.Len(t, args, 27)

					// the replace row carries no reference
					assert.Nil(t, args[9+3])
					assert.Equal(t, int64(7), *args[9+4].(*int64))
					assert.Equal(t, int64(8), *args[9+5].(*int64))
					assert.Equal(t, int64(7), *args[3].(*int64))
					return nil
				})
			},
			assertFn: func(t *testing.T, written int64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(3), written)
			},
		},
		{
			name:  "chunked",
			chunk: 2,
			mockFn: func(mock *mock.MockQuestDBClient) {
				first := mock.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, args ...any) error {
					assert.Len(t, args, 18)
					return nil
				})
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, args ...any) error {
					assert.Len(t, args, 9)
					return nil
				}).After(first)
			},
			assertFn: func(t *testing.T, written int64, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(3), written)
			},
		},
		{
			name:  "second chunk fails",
			chunk: 2,
			mockFn: func(mock *mock.MockQuestDBClient) {
				first := mock.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("boom")).After(first)
			},
			assertFn: func(t *testing.T, written int64, err error) {
				assert.True(t, pkgerrors.ErrorCodeEquals(err, string(pkgerrors.EventLogWriteError)))
				assert.Equal(t, int64(2), written)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock := mock.NewMockQuestDBClient(ctrl)
			tc.mockFn(mock)

			repo := NewRepository(mock)
			repo.chunk = tc.chunk
			written, err := repo.StoreBatch(context.Background(), "aapl", events)
			tc.assertFn(t, written, err)
		})
	}
}

func TestOrderEventRepository_GetRange(t *testing.T) {
	from := time.Date(2019, 1, 30, 14, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)
	query := `SELECT ts, seq, type, reference, original_reference, new_reference, is_buy, shares, price FROM "aapl_orders" WHERE ts >= $1 AND ts <= $2 ORDER BY ts, seq`

	testCases := []struct {
		name     string
		mockFn   func(ctrl *gomock.Controller, mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, events []ordereventv1.Event, err error)
	}{
		{
			name: "success",
			mockFn: func(ctrl *gomock.Controller, client *mock.MockQuestDBClient) {
				rows := mock.NewMockRowsInterface(ctrl)
				client.EXPECT().TableExists(gomock.Any(), "aapl_orders").Return(true, nil)
				client.EXPECT().Query(gomock.Any(), query, from, to).Return(rows, nil)

				gomock.InOrder(
					rows.EXPECT().Next().Return(true),
					rows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
						*dest[0].(*time.Time) = from
						*dest[1].(*int64) = 4
						*dest[2].(*int32) = int32(enginev1.TypeReplace)
						*dest[4].(**int64) = ptr(int64(7))
						*dest[5].(**int64) = ptr(int64(8))
						*dest[7].(*int64) = 50
						*dest[8].(*float64) = 10.6
						return nil
					}),
					rows.EXPECT().Next().Return(false),
				)
				rows.EXPECT().Err().Return(nil)
				rows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, events []ordereventv1.Event, err error) {
				require.NoError(t, err)
				require.Len(t, events, 1)

				ev := events[0]
				assert.True(t, ev.IsReplace())
				assert.Equal(t, uint64(4), ev.Seq)
				assert.Equal(t, uint64(0), ev.Reference)
				assert.Equal(t, uint64(7), ev.OriginalReference)
				assert.Equal(t, uint64(8), ev.NewReference)
				assert.Equal(t, uint32(50), ev.Shares)
			},
		},
		{
			name: "missing table",
			mockFn: func(_ *gomock.Controller, client *mock.MockQuestDBClient) {
				client.EXPECT().TableExists(gomock.Any(), "aapl_orders").Return(false, nil)
			},
			assertFn: func(t *testing.T, events []ordereventv1.Event, err error) {
				assert.Nil(t, events)
				assert.True(t, pkgerrors.ErrorCodeEquals(err, string(pkgerrors.EventLogReadError)))
			},
		},
		{
			name: "query error",
			mockFn: func(_ *gomock.Controller, client *mock.MockQuestDBClient) {
				client.EXPECT().TableExists(gomock.Any(), "aapl_orders").Return(true, nil)
				client.EXPECT().Query(gomock.Any(), query, from, to).Return(nil, errors.New("boom"))
			},
			assertFn: func(t *testing.T, events []ordereventv1.Event, err error) {
				assert.Error(t, err)
				assert.Nil(t, events)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockQuestDBClient(ctrl)
			tc.mockFn(ctrl, client)

			repo := NewRepository(client)
			events, err := repo.GetRange(context.Background(), "aapl", from, to)
			tc.assertFn(t, events, err)
		})
	}
}
