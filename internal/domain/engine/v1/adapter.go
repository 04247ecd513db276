package enginev1

import itchv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/itch/v1"

// FromMessage converts a decoded order lifecycle message into an engine
// event. It reports false for messages that do not change a book.
func FromMessage(msg itchv1.Message) (OrderRecord, bool) {
	switch m := msg.(type) {
	case *itchv1.AddOrder:
		return OrderRecord{OrderType: TypeAdd, Reference: m.Reference, Shares: m.Shares, Price: m.Price, IsBuy: m.IsBuy()}, true
	case *itchv1.AddOrderWithAttribution:
		return OrderRecord{OrderType: TypeAddWithAttribution, Reference: m.Reference, Shares: m.Shares, Price: m.Price, IsBuy: m.IsBuy()}, true
	case *itchv1.OrderExecuted:
		return OrderRecord{OrderType: TypeExecuted, Reference: m.Reference, Shares: m.Executed}, true
	case *itchv1.OrderExecutedWithPrice:
		return OrderRecord{OrderType: TypeExecutedWithPrice, Reference: m.Reference, Shares: m.Executed, Price: m.ExecutionPrice}, true
	case *itchv1.OrderCancel:
		return OrderRecord{OrderType: TypeCancel, Reference: m.Reference, Shares: m.Cancelled}, true
	case *itchv1.OrderDelete:
		return OrderRecord{OrderType: TypeDelete, Reference: m.Reference}, true
	case *itchv1.OrderReplace:
		return OrderRecord{OrderType: TypeReplace, Reference: m.OriginalReference, NewReference: m.NewReference, Shares: m.Shares, Price: m.Price}, true
	default:
		return OrderRecord{}, false
	}
}
