package enginev1

import (
	"testing"

	itchv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/itch/v1"
	"github.com/stretchr/testify/assert"
)

func TestFromMessage(t *testing.T) {
	testCases := []struct {
		name   string
		msg    itchv1.Message
		want   OrderRecord
		wantOK bool
	}{
		{
			name:   "add order",
			msg:    &itchv1.AddOrder{Reference: 1, Side: itchv1.SideBuy, Shares: 100, Price: 10.5},
			want:   OrderRecord{OrderType: TypeAdd, Reference: 1, Shares: 100, Price: 10.5, IsBuy: true},
			wantOK: true,
		},
		{
			name:   "add order with attribution",
			msg:    &itchv1.AddOrderWithAttribution{AddOrder: itchv1.AddOrder{Reference: 2, Side: itchv1.SideSell, Shares: 5, Price: 1}},
			want:   OrderRecord{OrderType: TypeAddWithAttribution, Reference: 2, Shares: 5, Price: 1},
			wantOK: true,
		},
		{
			name:   "executed",
			msg:    &itchv1.OrderExecuted{Reference: 1, Executed: 40},
			want:   OrderRecord{OrderType: TypeExecuted, Reference: 1, Shares: 40},
			wantOK: true,
		},
		{
			name:   "executed with price",
			msg:    &itchv1.OrderExecutedWithPrice{OrderExecuted: itchv1.OrderExecuted{Reference: 1, Executed: 4}, ExecutionPrice: 2},
			want:   OrderRecord{OrderType: TypeExecutedWithPrice, Reference: 1, Shares: 4, Price: 2},
			wantOK: true,
		},
		{
			name:   "cancel",
			msg:    &itchv1.OrderCancel{Reference: 1, Cancelled: 3},
			want:   OrderRecord{OrderType: TypeCancel, Reference: 1, Shares: 3},
			wantOK: true,
		},
		{
			name:   "delete",
			msg:    &itchv1.OrderDelete{Reference: 1},
			want:   OrderRecord{OrderType: TypeDelete, Reference: 1},
			wantOK: true,
		},
		{
			name:   "replace",
			msg:    &itchv1.OrderReplace{OriginalReference: 1, NewReference: 2, Shares: 30, Price: 9.25},
			want:   OrderRecord{OrderType: TypeReplace, Reference: 1, NewReference: 2, Shares: 30, Price: 9.25},
			wantOK: true,
		},
		{
			name: "trade is not a book event",
			msg:  &itchv1.TradeNonCross{Reference: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FromMessage(tc.msg)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
