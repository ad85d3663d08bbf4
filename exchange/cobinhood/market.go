package cobinhood

import (
	"context"
	"strconv"

	"github.com/lukehollenback/cobinhood/exchange"
)

func (o *Client) GetCurrencies(ctx context.Context) ([]exchange.Currency, error) {
	var currencies []exchange.Currency

	if err := o.call(ctx, MarketCurrencies, nil, nil, "currencies", &currencies); err != nil {
		return nil, err
	}

	return currencies, nil
}

func (o *Client) GetTradingPairs(ctx context.Context) ([]exchange.TradingPair, error) {
	var pairs []exchange.TradingPair

	if err := o.call(ctx, MarketTradingPairs, nil, nil, "trading_pairs", &pairs); err != nil {
		return nil, err
	}

	return pairs, nil
}

// GetOrderBook retrieves up to limit price levels of each side of the trading pair's order book. A
// non-positive limit falls back to DefaultOrderBookLimit.
func (o *Client) GetOrderBook(ctx context.Context, tradingPair string, limit int) (*exchange.OrderBook, error) {
	if limit <= 0 {
		limit = DefaultOrderBookLimit
	}

	params := Params{
		"trading_pair": tradingPair,
		"limit":        strconv.Itoa(limit),
	}

	var raw rawOrderBook

	if err := o.call(ctx, MarketOrderBook, params, nil, "orderbook", &raw); err != nil {
		return nil, err
	}

	return raw.reshape()
}

func (o *Client) GetMarketStats(ctx context.Context) (exchange.MarketStats, error) {
	var stats exchange.MarketStats

	if err := o.call(ctx, MarketStats, nil, nil, "", &stats); err != nil {
		return nil, err
	}

	return stats, nil
}

// GetAllLastPrices maps every trading pair to its last traded price.
func (o *Client) GetAllLastPrices(ctx context.Context) (map[string]float64, error) {
	stats, err := o.GetMarketStats(ctx)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(stats))

	for pair, stat := range stats {
		prices[pair] = stat.LastPrice.InexactFloat64()
	}

	return prices, nil
}

func (o *Client) GetTicker(ctx context.Context, tradingPair string) (*exchange.Ticker, error) {
	var ticker exchange.Ticker

	if err := o.call(ctx, MarketTicker, Params{"trading_pair": tradingPair}, nil, "ticker", &ticker); err != nil {
		return nil, err
	}

	return &ticker, nil
}

func (o *Client) GetRecentTrades(ctx context.Context, tradingPair string) ([]exchange.Trade, error) {
	var trades []exchange.Trade

	if err := o.call(ctx, MarketRecentTrades, Params{"trading_pair": tradingPair}, nil, "trades", &trades); err != nil {
		return nil, err
	}

	return trades, nil
}
