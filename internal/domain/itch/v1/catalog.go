package itchv1

// Entry describes one catalogued message type.
type Entry struct {
	Code byte
	Name string
	// Size is the fixed record size including the type byte; zero for codes
	// that are catalogued but never decoded.
	Size int
	// New returns an empty message ready for Decode; nil for skip-only codes.
	New func() Message
}

// Decodable reports whether the entry can be decoded into a Message.
func (e Entry) Decodable() bool {
	return e.New != nil
}

var catalog [256]Entry

func register(code byte, name string, size int, newFn func() Message) {
	catalog[code] = Entry{Code: code, Name: name, Size: size, New: newFn}
}

func init() {
	register(CodeSystemEvent, "system_event", SizeSystemEvent, func() Message { return &SystemEvent{} })
	register(CodeStockDirectory, "stock_directory", SizeStockDirectory, func() Message { return &StockDirectory{} })
	register(CodeStockTradingAction, "stock_trading_action", SizeStockTradingAction, func() Message { return &StockTradingAction{} })
	register(CodeRegSHORestriction, "reg_sho_restriction", SizeRegSHORestriction, func() Message { return &RegSHORestriction{} })
	register(CodeMarketParticipantPosition, "market_participant_position", SizeMarketParticipantPosition, func() Message { return &MarketParticipantPosition{} })
	register(CodeMWCBDeclineLevel, "mwcb_decline_level", SizeMWCBDeclineLevel, func() Message { return &MWCBDeclineLevel{} })
	register(CodeMWCBStatus, "mwcb_status", SizeMWCBStatus, func() Message { return &MWCBStatus{} })
	register(CodeIPOQuotingPeriodUpdate, "ipo_quoting_period_update", SizeIPOQuotingPeriodUpdate, func() Message { return &IPOQuotingPeriodUpdate{} })
	register(CodeLULDAuctionCollar, "luld_auction_collar", SizeLULDAuctionCollar, func() Message { return &LULDAuctionCollar{} })
	register(CodeOperationalHalt, "operational_halt", SizeOperationalHalt, func() Message { return &OperationalHalt{} })
	register(CodeAddOrder, "add_order", SizeAddOrder, func() Message { return &AddOrder{} })
	register(CodeAddOrderWithAttribution, "add_order_with_attribution", SizeAddOrderWithAttribution, func() Message { return &AddOrderWithAttribution{} })
	register(CodeOrderExecuted, "order_executed", SizeOrderExecuted, func() Message { return &OrderExecuted{} })
	register(CodeOrderExecutedWithPrice, "order_executed_with_price", SizeOrderExecutedWithPrice, func() Message { return &OrderExecutedWithPrice{} })
	register(CodeOrderCancel, "order_cancel", SizeOrderCancel, func() Message { return &OrderCancel{} })
	register(CodeOrderDelete, "order_delete", SizeOrderDelete, func() Message { return &OrderDelete{} })
	register(CodeOrderReplace, "order_replace", SizeOrderReplace, func() Message { return &OrderReplace{} })
	register(CodeTradeNonCross, "trade_non_cross", SizeTradeNonCross, func() Message { return &TradeNonCross{} })
	register(CodeTradeCross, "trade_cross", SizeTradeCross, func() Message { return &TradeCross{} })
	register(CodeBrokenTrade, "broken_trade", SizeBrokenTrade, func() Message { return &BrokenTrade{} })
	register(CodeNOII, "noii", SizeNOII, func() Message { return &NOII{} })
	register(CodeRPII, "rpii", SizeRPII, func() Message { return &RPII{} })
	register(CodeEndOfTransmission, "end_of_transmission", 0, nil)
}

// Lookup returns the catalog entry for code.
func Lookup(code byte) (Entry, bool) {
	e := catalog[code]
	return e, e.Name != ""
}

// BookCodes are the codes needed to rebuild order books and resolve symbols.
var BookCodes = []byte{
	CodeStockDirectory,
	CodeAddOrder,
	CodeAddOrderWithAttribution,
	CodeOrderExecuted,
	CodeOrderExecutedWithPrice,
	CodeOrderCancel,
	CodeOrderDelete,
	CodeOrderReplace,
	CodeTradeNonCross,
	CodeTradeCross,
	CodeBrokenTrade,
}
