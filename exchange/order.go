package exchange

import "strings"

// Side is the side of the book that an order sits on.
type Side string

const (
	Bid Side = "bid"
	Ask Side = "ask"

	Buy  = Bid
	Sell = Ask
)

// OrderType is the execution type of an order.
type OrderType string

const (
	Market    OrderType = "market"
	Limit     OrderType = "limit"
	Stop      OrderType = "stop"
	StopLimit OrderType = "stop_limit"
)

// RequiresPrice returns whether or not an order of this type can only be placed with a price. Only
// market orders can do without one.
func (o OrderType) RequiresPrice() bool {
	return o != Market
}

// Order represents an order as reported by the exchange.
type Order struct {
	ID          string    `json:"id"`
	TradingPair string    `json:"trading_pair"`
	State       string    `json:"state"`
	Side        Side      `json:"side"`
	Type        OrderType `json:"type"`
	Price       Amount    `json:"price"`
	Size        Amount    `json:"size"`
	Filled      Amount    `json:"filled"`
	Timestamp   int64     `json:"timestamp"`
}

// Trade represents a single match, either a public market trade or one of the account's own fills.
type Trade struct {
	ID            string `json:"id"`
	TradingPairID string `json:"trading_pair_id,omitempty"`
	MakerSide     Side   `json:"maker_side"`
	Price         Amount `json:"price"`
	Size          Amount `json:"size"`
	Timestamp     int64  `json:"timestamp"`
}

// ParseSide accepts either the exchange's names for the sides of the book (bid, ask) or their
// everyday aliases (buy, sell).
func ParseSide(s string) (Side, bool) {
	switch strings.ToLower(s) {
	case "bid", "buy":
		return Bid, true
	case "ask", "sell":
		return Ask, true
	}

	return "", false
}

func ParseOrderType(s string) (OrderType, bool) {
	switch t := OrderType(strings.ToLower(s)); t {
	case Market, Limit, Stop, StopLimit:
		return t, true
	}

	return "", false
}
