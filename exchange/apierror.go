package exchange

import "fmt"

// APIError represents a first-class error provided in the response of a request against a
// cryptocurrency exchange's API (i.e. the request made it to the exchange, but the exchange said no).
// The complete response envelope is retained so that callers can inspect whatever else the exchange
// had to say.
type APIError struct {
	Code     string
	Envelope []byte
}

func (o *APIError) Error() string {
	if o.Code == "" {
		return fmt.Sprintf("the exchange rejected the request (envelope: %s)", o.Envelope)
	}

	return fmt.Sprintf("the exchange rejected the request (code: %s)", o.Code)
}
