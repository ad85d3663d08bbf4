package exchange

// Candle represents a candlestick provided in a response from a call to an exchange's chart
// endpoint. The timestamp is the opening instant of the candle in Unix milliseconds.
type Candle struct {
	TradingPairID string `json:"trading_pair_id"`
	Timeframe     string `json:"timeframe"`
	Timestamp     int64  `json:"timestamp"`
	Open          Amount `json:"open"`
	High          Amount `json:"high"`
	Low           Amount `json:"low"`
	Close         Amount `json:"close"`
	Volume        Amount `json:"volume"`
}
