package exchange

type SystemInfo struct {
	Phase    string `json:"phase"`
	Revision string `json:"revision"`
}

// SystemTime is the exchange's clock, in Unix milliseconds.
type SystemTime struct {
	Time int64 `json:"time"`
}

type Currency struct {
	Currency      string `json:"currency"`
	Name          string `json:"name"`
	MinUnit       Amount `json:"min_unit"`
	DepositFee    Amount `json:"deposit_fee"`
	WithdrawalFee Amount `json:"withdrawal_fee"`
}

type TradingPair struct {
	ID              string `json:"id"`
	BaseCurrencyID  string `json:"base_currency_id"`
	QuoteCurrencyID string `json:"quote_currency_id"`
	BaseMaxSize     Amount `json:"base_max_size"`
	BaseMinSize     Amount `json:"base_min_size"`
	QuoteIncrement  Amount `json:"quote_increment"`
}

// MarketStat is a 24 hour summary of a single trading pair.
type MarketStat struct {
	ID                 string `json:"id"`
	LastPrice          Amount `json:"last_price"`
	LowestAsk          Amount `json:"lowest_ask"`
	HighestBid         Amount `json:"highest_bid"`
	BaseVolume         Amount `json:"base_volume"`
	QuoteVolume        Amount `json:"quote_volume"`
	IsFrozen           bool   `json:"is_frozen"`
	High24Hr           Amount `json:"high_24hr"`
	Low24Hr            Amount `json:"low_24hr"`
	PercentChanged24Hr Amount `json:"percent_changed_24hr"`
}

// MarketStats maps each trading pair to its 24 hour summary.
type MarketStats map[string]MarketStat

type Ticker struct {
	TradingPairID  string `json:"trading_pair_id"`
	Timestamp      int64  `json:"timestamp"`
	High24h        Amount `json:"24h_high"`
	Low24h         Amount `json:"24h_low"`
	Open24h        Amount `json:"24h_open"`
	Volume24h      Amount `json:"24h_volume"`
	LastTradePrice Amount `json:"last_trade_price"`
	HighestBid     Amount `json:"highest_bid"`
	LowestAsk      Amount `json:"lowest_ask"`
}

// OrderBookEntry is a single price level of an order book. Count is the number of orders resting at
// the level and Size is their combined size.
type OrderBookEntry struct {
	Price float64 `json:"price"`
	Size  float64 `json:"size"`
	Count int     `json:"count"`
}

type OrderBook struct {
	Asks []OrderBookEntry `json:"asks"`
	Bids []OrderBookEntry `json:"bids"`
}
