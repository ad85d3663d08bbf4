package cobinhood

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/lukehollenback/cobinhood/exchange"
)

// DefaultTimeframe is the candle timeframe used when the caller has no preference.
const DefaultTimeframe = exchange.OneHour

// GetCandles retrieves candles of the specified timeframe for the specified trading pair. The range
// bounds are sent as Unix milliseconds, and only when they are non-zero.
func (o *Client) GetCandles(
	ctx context.Context,
	tradingPair string,
	timeframe exchange.Timeframe,
	start time.Time,
	end time.Time,
) ([]exchange.Candle, error) {
	tf := timeframe.String()
	if tf == "" {
		return nil, fmt.Errorf("unknown candle timeframe (%d)", timeframe)
	}

	params := Params{
		"trading_pair": tradingPair,
		"timeframe":    tf,
	}

	endpoint := ChartCandles
	endpoint = endpoint.WithFilter("start_time", unixMillis(start), params)
	endpoint = endpoint.WithFilter("end_time", unixMillis(end), params)

	var candles []exchange.Candle

	if err := o.call(ctx, endpoint, params, nil, "candles", &candles); err != nil {
		return nil, err
	}

	return candles, nil
}

func unixMillis(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return strconv.FormatInt(t.UnixMilli(), 10)
}
