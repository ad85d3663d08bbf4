package exchange

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Client generically provides an interface to an object that can be used to interact with a
// cryptocurrency exchange's regular REST API. Normally, this is the client used to do things
// like place orders, check balances, and retrieve historical trade data.
//
// Whenever an endpoint fails – whether due to a transport failure, an unparseable response, or an API
// error – the error component of the response will be non-nil. Optional filters are omitted by
// passing their zero value.
type Client interface {
	GetSystemInfo(ctx context.Context) (*SystemInfo, error)
	GetSystemTime(ctx context.Context) (*SystemTime, error)

	GetCurrencies(ctx context.Context) ([]Currency, error)
	GetTradingPairs(ctx context.Context) ([]TradingPair, error)
	GetOrderBook(ctx context.Context, tradingPair string, limit int) (*OrderBook, error)
	GetMarketStats(ctx context.Context) (MarketStats, error)
	GetAllLastPrices(ctx context.Context) (map[string]float64, error)
	GetTicker(ctx context.Context, tradingPair string) (*Ticker, error)
	GetRecentTrades(ctx context.Context, tradingPair string) ([]Trade, error)

	// GetCandles retrieves candles of the specified timeframe for the specified trading pair. The
	// start and end of the range are only sent when they are non-zero.
	GetCandles(ctx context.Context, tradingPair string, timeframe Timeframe, start time.Time, end time.Time) ([]Candle, error)

	GetOrders(ctx context.Context, tradingPair string) ([]Order, error)
	GetOrderHistory(ctx context.Context, tradingPair string) ([]Order, error)
	GetOrder(ctx context.Context, orderID string) (*Order, error)
	GetOrderTrades(ctx context.Context, orderID string) ([]Trade, error)
	GetTrade(ctx context.Context, tradeID string) (*Trade, error)
	GetTradeHistory(ctx context.Context, tradingPair string) ([]Trade, error)

	// PlaceOrder places a new order. A price must be provided (i.e. be valid) for every order type
	// except market orders. If it is not, ErrPriceRequired is returned and nothing is sent.
	PlaceOrder(ctx context.Context, tradingPair string, side Side, orderType OrderType, size decimal.Decimal, price decimal.NullDecimal) (*Order, error)

	// ModifyOrder and CancelOrder report the exchange's success flag. A rejected request is reported
	// as false with a nil error.
	ModifyOrder(ctx context.Context, orderID string, size decimal.Decimal, price decimal.Decimal) (bool, error)
	CancelOrder(ctx context.Context, orderID string) (bool, error)

	GetLedger(ctx context.Context, currency string) ([]LedgerEntry, error)
	GetDepositAddresses(ctx context.Context, currency string) ([]Address, error)
	GetWithdrawalAddresses(ctx context.Context, currency string) ([]Address, error)
	GetDeposits(ctx context.Context, currency string) ([]Deposit, error)
	GetWithdrawals(ctx context.Context, currency string) ([]Withdrawal, error)
	GetDeposit(ctx context.Context, depositID string) (*Deposit, error)
	GetWithdrawal(ctx context.Context, withdrawalID string) (*Withdrawal, error)
}
