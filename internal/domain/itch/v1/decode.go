package itchv1

// Fixed record sizes, type byte included.
const (
	SizeSystemEvent               = 12
	SizeStockDirectory            = 39
	SizeStockTradingAction        = 25
	SizeRegSHORestriction         = 20
	SizeMarketParticipantPosition = 26
	SizeMWCBDeclineLevel          = 35
	SizeMWCBStatus                = 12
	SizeIPOQuotingPeriodUpdate    = 28
	SizeLULDAuctionCollar         = 35
	SizeOperationalHalt           = 21
	SizeAddOrder                  = 36
	SizeAddOrderWithAttribution   = 40
	SizeOrderExecuted             = 31
	SizeOrderExecutedWithPrice    = 36
	SizeOrderCancel               = 23
	SizeOrderDelete               = 19
	SizeOrderReplace              = 35
	SizeTradeNonCross             = 44
	SizeTradeCross                = 40
	SizeBrokenTrade               = 19
	SizeNOII                      = 50
	SizeRPII                      = 20
)

func (m *SystemEvent) Code() byte     { return CodeSystemEvent }
func (m *SystemEvent) Header() Header { return m.Meta }
func (m *SystemEvent) Decode(b []byte) bool {
	if len(b) < SizeSystemEvent {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.EventCode = w.u8()
	return true
}

func (m *StockDirectory) Code() byte     { return CodeStockDirectory }
func (m *StockDirectory) Header() Header { return m.Meta }
func (m *StockDirectory) Decode(b []byte) bool {
	if len(b) < SizeStockDirectory {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.Stock = w.stock()
	m.MarketCategory = w.u8()
	m.FinancialStatusIndicator = w.u8()
	m.RoundLotSize = w.u32()
	m.RoundLotsOnly = w.u8()
	m.IssueClassification = w.u8()
	m.IssueSubType = [2]byte{w.u8(), w.u8()}
	m.Authenticity = w.u8()
	m.ShortSaleThresholdIndicator = w.u8()
	m.IPOFlag = w.u8()
	m.LULDReferencePriceTier = w.u8()
	m.ETPFlag = w.u8()
	m.ETPLeverageFactor = w.u32()
	m.InverseIndicator = w.u8()
	return true
}

func (m *StockTradingAction) Code() byte     { return CodeStockTradingAction }
func (m *StockTradingAction) Header() Header { return m.Meta }
func (m *StockTradingAction) Decode(b []byte) bool {
	if len(b) < SizeStockTradingAction {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.Stock = w.stock()
	m.TradingState = w.u8()
	m.Reserved = w.u8()
	m.Reason = [4]byte{w.u8(), w.u8(), w.u8(), w.u8()}
	return true
}

func (m *RegSHORestriction) Code() byte     { return CodeRegSHORestriction }
func (m *RegSHORestriction) Header() Header { return m.Meta }
func (m *RegSHORestriction) Decode(b []byte) bool {
	if len(b) < SizeRegSHORestriction {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.Stock = w.stock()
	m.RegSHOAction = w.u8()
	return true
}

func (m *MarketParticipantPosition) Code() byte     { return CodeMarketParticipantPosition }
func (m *MarketParticipantPosition) Header() Header { return m.Meta }
func (m *MarketParticipantPosition) Decode(b []byte) bool {
	if len(b) < SizeMarketParticipantPosition {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.MPID = w.mpid()
	m.Stock = w.stock()
	m.PrimaryMarketMaker = w.u8()
	m.MarketMakerMode = w.u8()
	m.MarketParticipantState = w.u8()
	return true
}

func (m *MWCBDeclineLevel) Code() byte     { return CodeMWCBDeclineLevel }
func (m *MWCBDeclineLevel) Header() Header { return m.Meta }
func (m *MWCBDeclineLevel) Decode(b []byte) bool {
	if len(b) < SizeMWCBDeclineLevel {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.Level1 = w.price8()
	m.Level2 = w.price8()
	m.Level3 = w.price8()
	return true
}

func (m *MWCBStatus) Code() byte     { return CodeMWCBStatus }
func (m *MWCBStatus) Header() Header { return m.Meta }
func (m *MWCBStatus) Decode(b []byte) bool {
	if len(b) < SizeMWCBStatus {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.BreachedLevel = w.u8()
	return true
}

func (m *IPOQuotingPeriodUpdate) Code() byte     { return CodeIPOQuotingPeriodUpdate }
func (m *IPOQuotingPeriodUpdate) Header() Header { return m.Meta }
func (m *IPOQuotingPeriodUpdate) Decode(b []byte) bool {
	if len(b) < SizeIPOQuotingPeriodUpdate {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.Stock = w.stock()
	m.IPOQuotationReleaseTime = w.u32()
	m.IPOQuotationReleaseQualif = w.u8()
	m.IPOPrice = w.price4()
	return true
}

func (m *LULDAuctionCollar) Code() byte     { return CodeLULDAuctionCollar }
func (m *LULDAuctionCollar) Header() Header { return m.Meta }
func (m *LULDAuctionCollar) Decode(b []byte) bool {
	if len(b) < SizeLULDAuctionCollar {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.Stock = w.stock()
	m.AuctionCollarReferencePrice = w.price4()
	m.UpperAuctionCollarPrice = w.price4()
	m.LowerAuctionCollarPrice = w.price4()
	m.AuctionCollarExtension = w.u32()
	return true
}

func (m *OperationalHalt) Code() byte     { return CodeOperationalHalt }
func (m *OperationalHalt) Header() Header { return m.Meta }
func (m *OperationalHalt) Decode(b []byte) bool {
	if len(b) < SizeOperationalHalt {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.Stock = w.stock()
	m.MarketCode = w.u8()
	m.OperationalHaltAction = w.u8()
	return true
}

func (m *AddOrder) Code() byte     { return CodeAddOrder }
func (m *AddOrder) Header() Header { return m.Meta }
func (m *AddOrder) Decode(b []byte) bool {
	if len(b) < SizeAddOrder {
		return false
	}
	m.decode(&wire{b: b})
	return true
}

func (m *AddOrder) decode(w *wire) {
	m.Meta = w.header()
	m.Reference = w.u64()
	m.Side = w.u8()
	m.Shares = w.u32()
	m.Stock = w.stock()
	m.Price = w.price4()
}

func (m *AddOrderWithAttribution) Code() byte { return CodeAddOrderWithAttribution }
func (m *AddOrderWithAttribution) Decode(b []byte) bool {
	if len(b) < SizeAddOrderWithAttribution {
		return false
	}
	w := wire{b: b}
	m.AddOrder.decode(&w)
	m.Attribution = w.mpid()
	return true
}

func (m *OrderExecuted) Code() byte     { return CodeOrderExecuted }
func (m *OrderExecuted) Header() Header { return m.Meta }
func (m *OrderExecuted) Decode(b []byte) bool {
	if len(b) < SizeOrderExecuted {
		return false
	}
	m.decode(&wire{b: b})
	return true
}

func (m *OrderExecuted) decode(w *wire) {
	m.Meta = w.header()
	m.Reference = w.u64()
	m.Executed = w.u32()
	m.MatchNumber = w.u64()
}

func (m *OrderExecutedWithPrice) Code() byte { return CodeOrderExecutedWithPrice }
func (m *OrderExecutedWithPrice) Decode(b []byte) bool {
	if len(b) < SizeOrderExecutedWithPrice {
		return false
	}
	w := wire{b: b}
	m.OrderExecuted.decode(&w)
	m.Printable = w.u8()
	m.ExecutionPrice = w.price4()
	return true
}

func (m *OrderCancel) Code() byte     { return CodeOrderCancel }
func (m *OrderCancel) Header() Header { return m.Meta }
func (m *OrderCancel) Decode(b []byte) bool {
	if len(b) < SizeOrderCancel {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.Reference = w.u64()
	m.Cancelled = w.u32()
	return true
}

func (m *OrderDelete) Code() byte     { return CodeOrderDelete }
func (m *OrderDelete) Header() Header { return m.Meta }
func (m *OrderDelete) Decode(b []byte) bool {
	if len(b) < SizeOrderDelete {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.Reference = w.u64()
	return true
}

func (m *OrderReplace) Code() byte     { return CodeOrderReplace }
func (m *OrderReplace) Header() Header { return m.Meta }
func (m *OrderReplace) Decode(b []byte) bool {
	if len(b) < SizeOrderReplace {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.OriginalReference = w.u64()
	m.NewReference = w.u64()
	m.Shares = w.u32()
	m.Price = w.price4()
	return true
}

func (m *TradeNonCross) Code() byte     { return CodeTradeNonCross }
func (m *TradeNonCross) Header() Header { return m.Meta }
func (m *TradeNonCross) Decode(b []byte) bool {
	if len(b) < SizeTradeNonCross {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.Reference = w.u64()
	m.Side = w.u8()
	m.Shares = w.u32()
	m.Stock = w.stock()
	m.Price = w.price4()
	m.MatchNumber = w.u64()
	return true
}

func (m *TradeCross) Code() byte     { return CodeTradeCross }
func (m *TradeCross) Header() Header { return m.Meta }
func (m *TradeCross) Decode(b []byte) bool {
	if len(b) < SizeTradeCross {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.Shares = w.u64()
	m.Stock = w.stock()
	m.CrossPrice = w.price4()
	m.MatchNumber = w.u64()
	m.CrossType = w.u8()
	return true
}

func (m *BrokenTrade) Code() byte     { return CodeBrokenTrade }
func (m *BrokenTrade) Header() Header { return m.Meta }
func (m *BrokenTrade) Decode(b []byte) bool {
	if len(b) < SizeBrokenTrade {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.MatchNumber = w.u64()
	return true
}

func (m *NOII) Code() byte     { return CodeNOII }
func (m *NOII) Header() Header { return m.Meta }
func (m *NOII) Decode(b []byte) bool {
	if len(b) < SizeNOII {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.PairedShares = w.u64()
	m.ImbalanceShares = w.u64()
	m.ImbalanceDirection = w.u8()
	m.Stock = w.stock()
	m.FarPrice = w.price4()
	m.NearPrice = w.price4()
	m.CurrentReferencePrice = w.price4()
	m.CrossType = w.u8()
	m.PriceVariationIndicator = w.u8()
	return true
}

func (m *RPII) Code() byte     { return CodeRPII }
func (m *RPII) Header() Header { return m.Meta }
func (m *RPII) Decode(b []byte) bool {
	if len(b) < SizeRPII {
		return false
	}
	w := wire{b: b}
	m.Meta = w.header()
	m.Stock = w.stock()
	m.InterestFlag = w.u8()
	return true
}
