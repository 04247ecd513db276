package loadrun

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	mock "github.com/muhammadchandra19/nasdaq-itch/pkg/questdb/mock"
	"github.com/stretchr/testify/assert"
)

func TestLoadRunRepository_Record(t *testing.T) {
	recordedAt := time.Date(2019, 1, 31, 9, 0, 0, 0, time.UTC)
	started := time.Date(2019, 1, 31, 8, 0, 0, 0, time.UTC)
	day := time.Date(2019, 1, 30, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		run      func() *LoadRun
		mockFn   func(mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "running",
			run: func() *LoadRun {
				return &LoadRun{ID: "run-1", File: "01302019.NASDAQ_ITCH50", TradingDay: day, Status: StatusRunning, StartedAt: started}
			},
			mockFn: func(mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(),
					"run-1", "01302019.NASDAQ_ITCH50", day, "running",
					int64(0), int64(0), int64(0), int64(0), int64(0), int64(0), int64(0),
					started, (*time.Time)(nil), recordedAt,
				).Return(nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "finished",
			run: func() *LoadRun {
				run := &LoadRun{ID: "run-1", TradingDay: day, StartedAt: started, Messages: 10, RowsWritten: 7}
				run.Finish(started.Add(time.Minute), nil)
				return run
			},
			mockFn: func(mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, args ...any) error {
					assert.Equal(t, "completed", args[3])
					assert.Equal(t, int64(10), args[4])
					assert.Equal(t, int64(7), args[9])
					assert.Equal(t, started.Add(time.Minute), *args[12].(*time.Time))
					return nil
				})
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			run: func() *LoadRun {
				return &LoadRun{ID: "run-1"}
			},
			mockFn: func(mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("error"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
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
			repo.now = func() time.Time { return recordedAt }
			err := repo.Record(context.Background(), tc.run())
			tc.assertFn(t, err)
		})
	}
}

func TestLoadRunRepository_GetByID(t *testing.T) {
	started := time.Date(2019, 1, 31, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		mockFn   func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface)
		assertFn func(t *testing.T, run *LoadRun, err error)
	}{
		{
			name: "success",
			mockFn: func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mock.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "run-1").Return(mockRows)
				mockRows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*string) = "run-1"
					*dest[3].(*string) = "failed"
					*dest[4].(*int64) = 42
					*dest[11].(*time.Time) = started
					return nil
				})
			},
			assertFn: func(t *testing.T, run *LoadRun, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "run-1", run.ID)
				assert.Equal(t, StatusFailed, run.Status)
				assert.Equal(t, uint64(42), run.Messages)
				assert.True(t, run.FinishedAt.IsZero())
			},
		},
		{
			name: "no rows",
			mockFn: func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mock.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "run-1").Return(mockRows)
				mockRows.EXPECT().Scan(gomock.Any()).Return(pgx.ErrNoRows)
			},
			assertFn: func(t *testing.T, run *LoadRun, err error) {
				assert.NoError(t, err)
				assert.Nil(t, run)
			},
		},
		{
			name: "query fails",
			mockFn: func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mock.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "run-1").Return(mockRows)
				mockRows.EXPECT().Scan(gomock.Any()).Return(errors.New("query failed"))
			},
			assertFn: func(t *testing.T, run *LoadRun, err error) {
				assert.Error(t, err)
				assert.Nil(t, run)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mock.NewMockQuestDBClient(ctrl)
			mockRows := mock.NewMockRowsInterface(ctrl)
			tc.mockFn(mockClient, mockRows)

			repo := NewRepository(mockClient)
			run, err := repo.GetByID(context.Background(), "run-1")
			tc.assertFn(t, run, err)
		})
	}
}

func TestLoadRun_Finish(t *testing.T) {
	started := time.Date(2019, 1, 31, 8, 0, 0, 0, time.UTC)

	run := NewLoadRun("feed", started, started)
	assert.Len(t, run.ID, 26)
	assert.Equal(t, StatusRunning, run.Status)
	assert.Equal(t, 5*time.Second, run.Elapsed(started.Add(5*time.Second)))

	run.Finish(started.Add(time.Minute), errors.New("boom"))
	assert.Equal(t, StatusFailed, run.Status)
	assert.Equal(t, time.Minute, run.Elapsed(started.Add(time.Hour)))
}
