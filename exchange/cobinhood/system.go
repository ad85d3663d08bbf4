package cobinhood

import (
	"context"

	"github.com/lukehollenback/cobinhood/exchange"
)

func (o *Client) GetSystemInfo(ctx context.Context) (*exchange.SystemInfo, error) {
	var info exchange.SystemInfo

	if err := o.call(ctx, SystemInfo, nil, nil, "info", &info); err != nil {
		return nil, err
	}

	return &info, nil
}

func (o *Client) GetSystemTime(ctx context.Context) (*exchange.SystemTime, error) {
	var t exchange.SystemTime

	if err := o.call(ctx, SystemTime, nil, nil, "", &t); err != nil {
		return nil, err
	}

	return &t, nil
}
