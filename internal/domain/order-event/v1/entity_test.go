package ordereventv1

import (
	"testing"
	"time"

	enginev1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/engine/v1"
	"github.com/stretchr/testify/assert"
)

func TestEvent_Record(t *testing.T) {
	ts := time.Date(2019, 1, 30, 14, 30, 0, 0, time.UTC)

	replace := enginev1.OrderRecord{OrderType: enginev1.TypeReplace, Reference: 1, NewReference: 2, Shares: 30, Price: 9.25}
	ev := NewEvent(ts, 7, replace)
	assert.True(t, ev.IsReplace())
	assert.Zero(t, ev.Reference)
	assert.Equal(t, uint64(1), ev.OriginalReference)
	assert.Equal(t, uint64(2), ev.NewReference)
	assert.Equal(t, replace, ev.Record())

	addRec := enginev1.OrderRecord{OrderType: enginev1.TypeAdd, Reference: 5, Shares: 10, Price: 1.5, IsBuy: true}
	ev = NewEvent(ts, 8, addRec)
	assert.False(t, ev.IsReplace())
	assert.Equal(t, uint64(8), ev.Seq)
	assert.Equal(t, addRec, ev.Record())
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "aapl_orders", TableName("aapl"))
}
