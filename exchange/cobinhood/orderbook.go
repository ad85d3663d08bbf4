package cobinhood

import (
	"fmt"

	"github.com/lukehollenback/cobinhood/exchange"
)

// NOTE ~> Each side of the order book endpoint's payload is an array of arrays structured as
//  follows:
//
//  [0] "100.0", // Price
//  [1] "3",     // Number of orders at the price
//  [2] "2.5"    // Combined size of the orders

const (
	PriceIndex = 0
	CountIndex = 1
	SizeIndex  = 2
)

type rawOrderBook struct {
	Asks [][]exchange.Amount `json:"asks"`
	Bids [][]exchange.Amount `json:"bids"`
}

// reshape converts the raw rows of both sides into named entries.
func (o *rawOrderBook) reshape() (*exchange.OrderBook, error) {
	asks, err := reshapeSide("asks", o.Asks)
	if err != nil {
		return nil, err
	}

	bids, err := reshapeSide("bids", o.Bids)
	if err != nil {
		return nil, err
	}

	return &exchange.OrderBook{Asks: asks, Bids: bids}, nil
}

func reshapeSide(side string, rows [][]exchange.Amount) ([]exchange.OrderBookEntry, error) {
	entries := make([]exchange.OrderBookEntry, 0, len(rows))

	for i, row := range rows {
		if len(row) <= SizeIndex {
			return nil, fmt.Errorf("order book %s row %d has %d fields (%+v)", side, i, len(row), row)
		}

		entries = append(entries, exchange.OrderBookEntry{
			Price: row[PriceIndex].InexactFloat64(),
			Size:  row[SizeIndex].InexactFloat64(),
			Count: int(row[CountIndex].IntPart()),
		})
	}

	return entries, nil
}
