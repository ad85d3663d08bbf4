package cobinhood

import "net/http"

const (
	APIKeyHeader = "authorization"
	NonceHeader  = "nonce"

	BaseURL = "https://api.cobinhood.com"

	DefaultOrderBookLimit = 50
)

// NOTE ~> Placeholders are written as {name}. Optional filters are never part of a template; they
//  are appended per call by Endpoint.WithFilter.

var (
	SystemInfo = Endpoint{http.MethodGet, "/v1/system/info", false}
	SystemTime = Endpoint{http.MethodGet, "/v1/system/time", false}

	MarketCurrencies   = Endpoint{http.MethodGet, "/v1/market/currencies", false}
	MarketTradingPairs = Endpoint{http.MethodGet, "/v1/market/trading_pairs", false}
	MarketOrderBook    = Endpoint{http.MethodGet, "/v1/market/orderbooks/{trading_pair}?limit={limit}", false}
	MarketStats        = Endpoint{http.MethodGet, "/v1/market/stats", false}
	MarketTicker       = Endpoint{http.MethodGet, "/v1/market/tickers/{trading_pair}", false}
	MarketRecentTrades = Endpoint{http.MethodGet, "/v1/market/trades/{trading_pair}", false}

	ChartCandles = Endpoint{http.MethodGet, "/v1/chart/candles/{trading_pair}?timeframe={timeframe}", false}

	TradingOrders       = Endpoint{http.MethodGet, "/v1/trading/orders", true}
	TradingPlaceOrder   = Endpoint{http.MethodPost, "/v1/trading/orders", true}
	TradingOrder        = Endpoint{http.MethodGet, "/v1/trading/orders/{order_id}", true}
	TradingModifyOrder  = Endpoint{http.MethodPut, "/v1/trading/orders/{order_id}", true}
	TradingCancelOrder  = Endpoint{http.MethodDelete, "/v1/trading/orders/{order_id}", true}
	TradingOrderHistory = Endpoint{http.MethodGet, "/v1/trading/order_history", true}
	TradingOrderTrades  = Endpoint{http.MethodGet, "/v1/trading/orders/{order_id}/trades", true}
	TradingTrade        = Endpoint{http.MethodGet, "/v1/trading/trades/{trade_id}", true}
	TradingTradeHistory = Endpoint{http.MethodGet, "/v1/trading/trades", true}

	WalletDepositAddresses    = Endpoint{http.MethodGet, "/v1/wallet/deposit_addresses", true}
	WalletWithdrawalAddresses = Endpoint{http.MethodGet, "/v1/wallet/withdrawal_addresses", true}
	WalletLedger              = Endpoint{http.MethodGet, "/v1/wallet/ledger", true}
	WalletDeposits            = Endpoint{http.MethodGet, "/v1/wallet/deposits", true}
	WalletDeposit             = Endpoint{http.MethodGet, "/v1/wallet/deposits/{deposit_id}", true}
	WalletWithdrawals         = Endpoint{http.MethodGet, "/v1/wallet/withdrawals", true}
	WalletWithdrawal          = Endpoint{http.MethodGet, "/v1/wallet/withdrawals/{withdrawal_id}", true}
)
