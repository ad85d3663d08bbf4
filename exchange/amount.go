package exchange

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Amount is a decimal quantity as it appears in a payload. The exchange reports most numbers as
// strings and leaves some of them empty (e.g. the price of a market order), so an empty, null or
// otherwise unparseable value decodes to zero rather than failing the whole payload.
type Amount struct {
	decimal.Decimal
}

func NewAmount(s string) Amount {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}

	return Amount{Decimal: d}
}

func (o *Amount) UnmarshalJSON(data []byte) error {
	o.Decimal = decimal.Zero

	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return nil
	}

	o.Decimal = d

	return nil
}
