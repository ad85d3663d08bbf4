package cobinhood

import (
	"context"
	"errors"

	"github.com/lukehollenback/cobinhood/exchange"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// NOTE ~> Sizes and prices always travel as decimal strings. A missing price is sent as an empty
//  string, exactly as the exchange has always received it for market orders.

type placeOrderRequest struct {
	TradingPairID string             `json:"trading_pair_id"`
	Side          exchange.Side      `json:"side"`
	Type          exchange.OrderType `json:"type"`
	Size          string             `json:"size"`
	Price         string             `json:"price"`
}

type modifyOrderRequest struct {
	Size  string `json:"size"`
	Price string `json:"price"`
}

func (o *Client) GetOrders(ctx context.Context, tradingPair string) ([]exchange.Order, error) {
	params := Params{}
	endpoint := TradingOrders.WithFilter("trading_pair_id", tradingPair, params)

	var orders []exchange.Order

	if err := o.call(ctx, endpoint, params, nil, "orders", &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (o *Client) GetOrderHistory(ctx context.Context, tradingPair string) ([]exchange.Order, error) {
	params := Params{}
	endpoint := TradingOrderHistory.WithFilter("trading_pair_id", tradingPair, params)

	var orders []exchange.Order

	if err := o.call(ctx, endpoint, params, nil, "orders", &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (o *Client) GetOrder(ctx context.Context, orderID string) (*exchange.Order, error) {
	var order exchange.Order

	if err := o.call(ctx, TradingOrder, Params{"order_id": orderID}, nil, "order", &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (o *Client) GetOrderTrades(ctx context.Context, orderID string) ([]exchange.Trade, error) {
	var trades []exchange.Trade

	if err := o.call(ctx, TradingOrderTrades, Params{"order_id": orderID}, nil, "trades", &trades); err != nil {
		return nil, err
	}

	return trades, nil
}

func (o *Client) GetTrade(ctx context.Context, tradeID string) (*exchange.Trade, error) {
	var trade exchange.Trade

	if err := o.call(ctx, TradingTrade, Params{"trade_id": tradeID}, nil, "trade", &trade); err != nil {
		return nil, err
	}

	return &trade, nil
}

func (o *Client) GetTradeHistory(ctx context.Context, tradingPair string) ([]exchange.Trade, error) {
	params := Params{}
	endpoint := TradingTradeHistory.WithFilter("trading_pair_id", tradingPair, params)

	var trades []exchange.Trade

	if err := o.call(ctx, endpoint, params, nil, "trades", &trades); err != nil {
		return nil, err
	}

	return trades, nil
}

// PlaceOrder places a new order. Every order type except market requires a valid price; without one,
// exchange.ErrPriceRequired is returned and nothing is sent.
func (o *Client) PlaceOrder(
	ctx context.Context,
	tradingPair string,
	side exchange.Side,
	orderType exchange.OrderType,
	size decimal.Decimal,
	price decimal.NullDecimal,
) (*exchange.Order, error) {
	if orderType.RequiresPrice() && !price.Valid {
		return nil, exchange.ErrPriceRequired
	}

	data := placeOrderRequest{
		TradingPairID: tradingPair,
		Side:          side,
		Type:          orderType,
		Size:          size.String(),
		Price:         priceString(price),
	}

	var order exchange.Order

	// NOTE ~> Once the exchange has accepted the order, failing here would invite the caller to place
	//  it again. Whatever could be decoded is returned instead.
	if err := o.call(ctx, TradingPlaceOrder, nil, data, "order", &order); err != nil {
		var payloadErr *exchange.PayloadError
		if !errors.As(err, &payloadErr) {
			return nil, err
		}

		o.logger.Warn("accepted order has an undecodable payload",
			zap.String("payload", string(payloadErr.Payload)),
			zap.Error(payloadErr.Err),
		)
	}

	return &order, nil
}

func (o *Client) ModifyOrder(ctx context.Context, orderID string, size decimal.Decimal, price decimal.Decimal) (bool, error) {
	data := modifyOrderRequest{
		Size:  size.String(),
		Price: price.String(),
	}

	return o.confirm(ctx, TradingModifyOrder, Params{"order_id": orderID}, data)
}

func (o *Client) CancelOrder(ctx context.Context, orderID string) (bool, error) {
	return o.confirm(ctx, TradingCancelOrder, Params{"order_id": orderID}, nil)
}

func priceString(price decimal.NullDecimal) string {
	if !price.Valid {
		return ""
	}

	return price.Decimal.String()
}
