package itchv1

// Header is the prefix shared by every ITCH 5.0 message after the type byte.
type Header struct {
	StockLocate    uint16
	TrackingNumber uint16
	Timestamp      Timestamp
}

// Message is one decoded ITCH record.
type Message interface {
	// Code is the message type byte.
	Code() byte
	Header() Header
	// Decode populates the message from b, which starts at the type byte.
	// It reports false when b is shorter than the message's fixed size.
	Decode(b []byte) bool
}

// Message type codes.
const (
	CodeSystemEvent               byte = 'S'
	CodeStockDirectory            byte = 'R'
	CodeStockTradingAction        byte = 'H'
	CodeRegSHORestriction         byte = 'Y'
	CodeMarketParticipantPosition byte = 'L'
	CodeMWCBDeclineLevel          byte = 'V'
	CodeMWCBStatus                byte = 'W'
	CodeIPOQuotingPeriodUpdate    byte = 'K'
	CodeLULDAuctionCollar         byte = 'J'
	CodeOperationalHalt           byte = 'h'
	CodeAddOrder                  byte = 'A'
	CodeAddOrderWithAttribution   byte = 'F'
	CodeOrderExecuted             byte = 'E'
	CodeOrderExecutedWithPrice    byte = 'C'
	CodeOrderCancel               byte = 'X'
	CodeOrderDelete               byte = 'D'
	CodeOrderReplace              byte = 'U'
	CodeTradeNonCross             byte = 'P'
	CodeTradeCross                byte = 'Q'
	CodeBrokenTrade               byte = 'B'
	CodeNOII                      byte = 'I'
	CodeRPII                      byte = 'N'
	CodeEndOfTransmission         byte = '_'
)

// Side indicators.
const (
	SideBuy  byte = 'B'
	SideSell byte = 'S'
)

// SystemEvent 'S'.
type SystemEvent struct {
	Meta      Header
	EventCode byte
}

// StockDirectory 'R' maps a stock locate to its symbol for the day.
type StockDirectory struct {
	Meta                        Header
	Stock                       Stock
	MarketCategory              byte
	FinancialStatusIndicator    byte
	RoundLotSize                uint32
	RoundLotsOnly               byte
	IssueClassification         byte
	IssueSubType                [2]byte
	Authenticity                byte
	ShortSaleThresholdIndicator byte
	IPOFlag                     byte
	LULDReferencePriceTier      byte
	ETPFlag                     byte
	ETPLeverageFactor           uint32
	InverseIndicator            byte
}

// StockTradingAction 'H'.
type StockTradingAction struct {
	Meta         Header
	Stock        Stock
	TradingState byte
	Reserved     byte
	Reason       [4]byte
}

// RegSHORestriction 'Y'.
type RegSHORestriction struct {
	Meta         Header
	Stock        Stock
	RegSHOAction byte
}

// MarketParticipantPosition 'L'.
type MarketParticipantPosition struct {
	Meta                   Header
	MPID                   MPID
	Stock                  Stock
	PrimaryMarketMaker     byte
	MarketMakerMode        byte
	MarketParticipantState byte
}

// MWCBDeclineLevel 'V'. Levels carry 8 implied decimals.
type MWCBDeclineLevel struct {
	Meta   Header
	Level1 float64
	Level2 float64
	Level3 float64
}

// MWCBStatus 'W'.
type MWCBStatus struct {
	Meta          Header
	BreachedLevel byte
}

// IPOQuotingPeriodUpdate 'K'.
type IPOQuotingPeriodUpdate struct {
	Meta                      Header
	Stock                     Stock
	IPOQuotationReleaseTime   uint32
	IPOQuotationReleaseQualif byte
	IPOPrice                  float64
}

// LULDAuctionCollar 'J'.
type LULDAuctionCollar struct {
	Meta                        Header
	Stock                       Stock
	AuctionCollarReferencePrice float64
	UpperAuctionCollarPrice     float64
	LowerAuctionCollarPrice     float64
	AuctionCollarExtension      uint32
}

// OperationalHalt 'h'.
type OperationalHalt struct {
	Meta                  Header
	Stock                 Stock
	MarketCode            byte
	OperationalHaltAction byte
}

// AddOrder 'A'.
type AddOrder struct {
	Meta      Header
	Reference uint64
	Side      byte
	Shares    uint32
	Stock     Stock
	Price     float64
}

// AddOrderWithAttribution 'F'.
type AddOrderWithAttribution struct {
	AddOrder
	Attribution MPID
}

// OrderExecuted 'E'.
type OrderExecuted struct {
	Meta        Header
	Reference   uint64
	Executed    uint32
	MatchNumber uint64
}

// OrderExecutedWithPrice 'C'.
type OrderExecutedWithPrice struct {
	OrderExecuted
	Printable      byte
	ExecutionPrice float64
}

// OrderCancel 'X'.
type OrderCancel struct {
	Meta      Header
	Reference uint64
	Cancelled uint32
}

// OrderDelete 'D'.
type OrderDelete struct {
	Meta      Header
	Reference uint64
}

// OrderReplace 'U'. The replacement keeps the side of the original order.
type OrderReplace struct {
	Meta              Header
	OriginalReference uint64
	NewReference      uint64
	Shares            uint32
	Price             float64
}

// TradeNonCross 'P'.
type TradeNonCross struct {
	Meta        Header
	Reference   uint64
	Side        byte
	Shares      uint32
	Stock       Stock
	Price       float64
	MatchNumber uint64
}

// TradeCross 'Q'.
type TradeCross struct {
	Meta        Header
	Shares      uint64
	Stock       Stock
	CrossPrice  float64
	MatchNumber uint64
	CrossType   byte
}

// BrokenTrade 'B'.
type BrokenTrade struct {
	Meta        Header
	MatchNumber uint64
}

// NOII 'I' net order imbalance indicator.
type NOII struct {
	Meta                    Header
	PairedShares            uint64
	ImbalanceShares         uint64
	ImbalanceDirection      byte
	Stock                   Stock
	FarPrice                float64
	NearPrice               float64
	CurrentReferencePrice   float64
	CrossType               byte
	PriceVariationIndicator byte
}

// RPII 'N' retail price improvement indicator.
type RPII struct {
	Meta         Header
	Stock        Stock
	InterestFlag byte
}

// IsBuy reports whether the order rests on the bid side.
func (m *AddOrder) IsBuy() bool { return m.Side == SideBuy }
