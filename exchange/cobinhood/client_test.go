package cobinhood

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lukehollenback/cobinhood/exchange"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Unix(1504459805, 0)

// recorded is what the fake exchange saw of a single request.
type recorded struct {
	method        string
	uri           string
	authorization string
	nonce         string
	hasNonce      bool
	body          string
}

// newTestClient spins up a fake exchange that answers every request with the provided body and
// returns a client pointed at it, along with the requests the fake exchange has received.
func newTestClient(t *testing.T, response string, opts ...Option) (*Client, *[]recorded) {
	t.Helper()

	var seen []recorded

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, hasNonce := r.Header[http.CanonicalHeaderKey(NonceHeader)]

		seen = append(seen, recorded{
			method:        r.Method,
			uri:           r.URL.RequestURI(),
			authorization: r.Header.Get(APIKeyHeader),
			nonce:         r.Header.Get(NonceHeader),
			hasNonce:      hasNonce,
			body:          string(body),
		})

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(server.Close)

	base := []Option{
		WithBaseURL(server.URL),
		WithoutLogFile(),
		WithClock(func() time.Time { return fixedNow }),
	}

	client, err := New(append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, &seen
}

func TestNewDefaults(t *testing.T) {
	client, err := New(WithoutLogFile())
	require.NoError(t, err)

	assert.Equal(t, BaseURL, client.baseURL)
	assert.False(t, client.Authenticated())
	assert.Nil(t, client.logHandle)
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(WithoutLogFile(), WithHTTPClient(nil))
	assert.Error(t, err)

	_, err = New(WithLogFile(""))
	assert.Error(t, err)
}

func TestAnonymousRequestHasNoAuthHeaders(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"info":{"phase":"production","revision":"480bbd"}}}`, WithAPIKey("secret"))

	info, err := client.GetSystemInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "production", info.Phase)
	assert.Equal(t, "480bbd", info.Revision)

	require.Len(t, *seen, 1)
	assert.Equal(t, http.MethodGet, (*seen)[0].method)
	assert.Equal(t, "/v1/system/info", (*seen)[0].uri)
	assert.Empty(t, (*seen)[0].authorization)
	assert.False(t, (*seen)[0].hasNonce)
}

func TestAuthenticatedGetHasNoNonce(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"orders":[{"id":"o1","trading_pair":"BTC-USDT","side":"bid","type":"limit","price":"100.5","size":"1","filled":"0","state":"open","timestamp":1}]}}`, WithAPIKey("secret"))

	orders, err := client.GetOrders(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
	assert.True(t, decimal.RequireFromString("100.5").Equal(orders[0].Price.Decimal))

	require.Len(t, *seen, 1)
	assert.Equal(t, "/v1/trading/orders", (*seen)[0].uri)
	assert.Equal(t, "secret", (*seen)[0].authorization)
	assert.False(t, (*seen)[0].hasNonce)
}

func TestAuthenticatedCallWithoutKey(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"orders":[]}}`)

	_, err := client.GetOrders(context.Background(), "BTC-USDT")
	assert.ErrorIs(t, err, exchange.ErrNoCredential)
	assert.Empty(t, *seen)
}

func TestPlaceOrderLimitWithoutPriceSendsNothing(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"order":{"id":"o1"}}}`, WithAPIKey("secret"))

	order, err := client.PlaceOrder(context.Background(), "BTC-USDT", exchange.Bid, exchange.Limit, decimal.NewFromInt(1), decimal.NullDecimal{})
	assert.ErrorIs(t, err, exchange.ErrPriceRequired)
	assert.Nil(t, order)
	assert.Empty(t, *seen)
}

func TestPlaceOrderMarketWithoutPrice(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"order":{"id":"o1","type":"market"}}}`, WithAPIKey("secret"))

	order, err := client.PlaceOrder(context.Background(), "BTC-USDT", exchange.Sell, exchange.Market, decimal.RequireFromString("0.5"), decimal.NullDecimal{})
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/v1/trading/orders", req.uri)
	assert.Equal(t, "secret", req.authorization)
	assert.Equal(t, "1504459805", req.nonce)
	assert.Equal(t, `{"trading_pair_id":"BTC-USDT","side":"ask","type":"market","size":"0.5","price":""}`, req.body)
}

func TestPlaceOrderMarketEchoesEmptyPrice(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"order":{"id":"o1","type":"market","price":"","size":"0.5"}}}`, WithAPIKey("secret"))

	order, err := client.PlaceOrder(context.Background(), "BTC-USDT", exchange.Sell, exchange.Market, decimal.RequireFromString("0.5"), decimal.NullDecimal{})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, exchange.Market, order.Type)
	assert.True(t, order.Price.IsZero())
	assert.True(t, decimal.RequireFromString("0.5").Equal(order.Size.Decimal))
	assert.Len(t, *seen, 1)
}

func TestPlaceOrderAcceptedWithUndecodablePayload(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"order":{"id":"o1","type":"market","timestamp":"soon"}}}`, WithAPIKey("secret"))

	order, err := client.PlaceOrder(context.Background(), "BTC-USDT", exchange.Buy, exchange.Market, decimal.NewFromInt(1), decimal.NullDecimal{})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "o1", order.ID)
	assert.Len(t, *seen, 1)
}

func TestUndecodableReadPayloadFails(t *testing.T) {
	client, _ := newTestClient(t, `{"success":true,"result":{"order":{"id":"o1","timestamp":"soon"}}}`, WithAPIKey("secret"))

	_, err := client.GetOrder(context.Background(), "o1")

	var payloadErr *exchange.PayloadError
	require.True(t, errors.As(err, &payloadErr))
	assert.Equal(t, "/v1/trading/orders/{order_id}", payloadErr.Path)
	assert.JSONEq(t, `{"id":"o1","timestamp":"soon"}`, string(payloadErr.Payload))
}

func TestPlaceOrderLimitSendsDecimalStrings(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"order":{"id":"o2"}}}`, WithAPIKey("secret"))

	price := decimal.NullDecimal{Decimal: decimal.RequireFromString("9000.10"), Valid: true}

	_, err := client.PlaceOrder(context.Background(), "BTC-USDT", exchange.Buy, exchange.Limit, decimal.RequireFromString("0.0001"), price)
	require.NoError(t, err)

	require.Len(t, *seen, 1)

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte((*seen)[0].body), &body))
	assert.Equal(t, "bid", body["side"])
	assert.Equal(t, "0.0001", body["size"])
	assert.Equal(t, "9000.1", body["price"])
}

func TestModifyOrder(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{}}`, WithAPIKey("secret"))

	ok, err := client.ModifyOrder(context.Background(), "o1", decimal.NewFromInt(2), decimal.RequireFromString("101.25"))
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, *seen, 1)
	assert.Equal(t, http.MethodPut, (*seen)[0].method)
	assert.Equal(t, "/v1/trading/orders/o1", (*seen)[0].uri)
	assert.Equal(t, "1504459805", (*seen)[0].nonce)
	assert.Equal(t, `{"size":"2","price":"101.25"}`, (*seen)[0].body)
}

func TestCancelOrderRejected(t *testing.T) {
	client, seen := newTestClient(t, `{"success":false,"result":null,"error":{"error_code":"order_not_found"}}`, WithAPIKey("secret"))

	ok, err := client.CancelOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.Len(t, *seen, 1)
	assert.Equal(t, http.MethodDelete, (*seen)[0].method)
	assert.Empty(t, (*seen)[0].body)
	assert.True(t, (*seen)[0].hasNonce)
}

func TestCancelOrderMalformed(t *testing.T) {
	client, _ := newTestClient(t, `{"success":false,"error":{"error_code":"invalid_nonce"}}`, WithAPIKey("secret"))

	ok, err := client.CancelOrder(context.Background(), "o1")
	assert.ErrorIs(t, err, exchange.ErrMalformedEnvelope)
	assert.False(t, ok)
}

func TestApplicationFailureCarriesEnvelope(t *testing.T) {
	body := `{"success":false,"result":null,"error":{"error_code":"invalid_trading_pair"}}`
	client, _ := newTestClient(t, body)

	_, err := client.GetTicker(context.Background(), "NOPE-NOPE")

	var apiErr *exchange.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid_trading_pair", apiErr.Code)
	assert.Equal(t, body, string(apiErr.Envelope))
}

func TestMalformedEnvelope(t *testing.T) {
	client, _ := newTestClient(t, `{"result":{"ticker":{}}}`)

	_, err := client.GetTicker(context.Background(), "BTC-USDT")
	assert.ErrorIs(t, err, exchange.ErrMalformedEnvelope)
}

func TestProtocolError(t *testing.T) {
	client, _ := newTestClient(t, `<html>502 Bad Gateway</html>`)

	_, err := client.GetSystemTime(context.Background())

	var protoErr *exchange.ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, http.StatusOK, protoErr.StatusCode)
	assert.Contains(t, string(protoErr.Body), "Bad Gateway")
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client, err := New(WithBaseURL(server.URL), WithoutLogFile())
	require.NoError(t, err)

	_, err = client.GetSystemTime(context.Background())
	require.Error(t, err)

	var protoErr *exchange.ProtocolError
	assert.False(t, errors.As(err, &protoErr))
	assert.NotErrorIs(t, err, exchange.ErrMalformedEnvelope)
}

func TestGetSystemTime(t *testing.T) {
	client, _ := newTestClient(t, `{"success":true,"result":{"time":1505226565231}}`)

	now, err := client.GetSystemTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1505226565231), now.Time)
}

func TestGetOrderBook(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"orderbook":{"sequence":0,"asks":[["100.0","3","2.5"]],"bids":[]}}}`)

	book, err := client.GetOrderBook(context.Background(), "BTC-USDT", 0)
	require.NoError(t, err)
	assert.Equal(t, []exchange.OrderBookEntry{{Price: 100.0, Size: 2.5, Count: 3}}, book.Asks)
	assert.Empty(t, book.Bids)

	require.Len(t, *seen, 1)
	assert.Equal(t, "/v1/market/orderbooks/BTC-USDT?limit=50", (*seen)[0].uri)
}

func TestGetAllLastPrices(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"BTC-USDT":{"id":"BTC-USDT","last_price":"9000.5"},"ETH-BTC":{"last_price":"0.07"}}}`)

	prices, err := client.GetAllLastPrices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"BTC-USDT": 9000.5, "ETH-BTC": 0.07}, prices)

	require.Len(t, *seen, 1)
	assert.Equal(t, "/v1/market/stats", (*seen)[0].uri)
}

func TestGetAllLastPricesEmptyRow(t *testing.T) {
	client, _ := newTestClient(t, `{"success":true,"result":{"BTC-USDT":{"last_price":"9000.5"},"NEW-USDT":{"last_price":""}}}`)

	prices, err := client.GetAllLastPrices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"BTC-USDT": 9000.5, "NEW-USDT": 0}, prices)
}

func TestGetAllLastPricesFailure(t *testing.T) {
	client, _ := newTestClient(t, `{"success":false,"result":null}`)

	prices, err := client.GetAllLastPrices(context.Background())
	assert.Error(t, err)
	assert.Nil(t, prices)
}

func TestGetCandlesFilters(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"candles":[{"trading_pair_id":"BTC-USDT","timeframe":"1h","timestamp":1000,"open":"1","high":"2","low":"0.5","close":"1.5","volume":"10"}]}}`)

	candles, err := client.GetCandles(context.Background(), "BTC-USDT", DefaultTimeframe, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, candles, 1)
	assert.True(t, decimal.RequireFromString("1.5").Equal(candles[0].Close.Decimal))

	start := time.UnixMilli(1504459805123)

	_, err = client.GetCandles(context.Background(), "BTC-USDT", exchange.OneDay, start, time.Time{})
	require.NoError(t, err)

	require.Len(t, *seen, 2)
	assert.Equal(t, "/v1/chart/candles/BTC-USDT?timeframe=1h", (*seen)[0].uri)
	assert.Equal(t, "/v1/chart/candles/BTC-USDT?timeframe=1D&start_time=1504459805123", (*seen)[1].uri)
}

func TestGetCandlesUnknownTimeframe(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"candles":[]}}`)

	_, err := client.GetCandles(context.Background(), "BTC-USDT", exchange.Timeframe(99), time.Time{}, time.Time{})
	assert.Error(t, err)
	assert.Empty(t, *seen)
}

func TestListingFilters(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"orders":[],"trades":[],"ledger":[],"deposits":[],"withdrawals":[],"deposit_addresses":[],"withdrawal_addresses":[]}}`, WithAPIKey("secret"))
	ctx := context.Background()

	_, err := client.GetOrderHistory(ctx, "ETH-BTC")
	require.NoError(t, err)
	_, err = client.GetTradeHistory(ctx, "")
	require.NoError(t, err)
	_, err = client.GetLedger(ctx, "BTC")
	require.NoError(t, err)
	_, err = client.GetDeposits(ctx, "")
	require.NoError(t, err)
	_, err = client.GetWithdrawals(ctx, "ETH")
	require.NoError(t, err)
	_, err = client.GetDepositAddresses(ctx, "BTC")
	require.NoError(t, err)
	_, err = client.GetWithdrawalAddresses(ctx, "")
	require.NoError(t, err)

	uris := make([]string, 0, len(*seen))
	for _, r := range *seen {
		uris = append(uris, r.uri)
	}

	assert.Equal(t, []string{
		"/v1/trading/order_history?trading_pair_id=ETH-BTC",
		"/v1/trading/trades",
		"/v1/wallet/ledger?currency=BTC",
		"/v1/wallet/deposits",
		"/v1/wallet/withdrawals?currency=ETH",
		"/v1/wallet/deposit_addresses?currency=BTC",
		"/v1/wallet/withdrawal_addresses",
	}, uris)
}

func TestLookupsByID(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"order":{"id":"o1"},"trade":{"id":"t1"},"trades":[{"id":"t1"}],"deposit":{"deposit_id":"d1"},"withdrawal":{"withdrawal_id":"w1"}}}`, WithAPIKey("secret"))
	ctx := context.Background()

	order, err := client.GetOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)

	trades, err := client.GetOrderTrades(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, trades, 1)

	trade, err := client.GetTrade(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", trade.ID)

	deposit, err := client.GetDeposit(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "d1", deposit.DepositID)

	withdrawal, err := client.GetWithdrawal(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "w1", withdrawal.WithdrawalID)

	uris := make([]string, 0, len(*seen))
	for _, r := range *seen {
		uris = append(uris, r.uri)
	}

	assert.Equal(t, []string{
		"/v1/trading/orders/o1",
		"/v1/trading/orders/o1/trades",
		"/v1/trading/trades/t1",
		"/v1/wallet/deposits/d1",
		"/v1/wallet/withdrawals/w1",
	}, uris)
}

func TestMarketListings(t *testing.T) {
	client, seen := newTestClient(t, `{"success":true,"result":{"currencies":[{"currency":"BTC","name":"Bitcoin","min_unit":"0.00000001"}],"trading_pairs":[{"id":"BTC-USDT","base_currency_id":"BTC","quote_currency_id":"USDT"}],"ticker":{"trading_pair_id":"BTC-USDT","last_trade_price":"9000"},"trades":[{"id":"t1","maker_side":"ask","price":"1","size":"2"}]}}`)
	ctx := context.Background()

	currencies, err := client.GetCurrencies(ctx)
	require.NoError(t, err)
	require.Len(t, currencies, 1)
	assert.Equal(t, "Bitcoin", currencies[0].Name)

	pairs, err := client.GetTradingPairs(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "USDT", pairs[0].QuoteCurrencyID)

	ticker, err := client.GetTicker(ctx, "BTC-USDT")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(9000).Equal(ticker.LastTradePrice.Decimal))

	trades, err := client.GetRecentTrades(ctx, "BTC-USDT")
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, exchange.Ask, trades[0].MakerSide)

	require.Len(t, *seen, 4)
	assert.Equal(t, "/v1/market/tickers/BTC-USDT", (*seen)[2].uri)
	assert.Equal(t, "/v1/market/trades/BTC-USDT", (*seen)[3].uri)
}
