package exchange

import "fmt"

// ProtocolError represents a response that could not be understood at all (e.g. an HTML error page
// from a proxy in front of the API). It is distinct from a transport failure, where no response was
// received, and from an APIError, where the exchange understood and rejected the request.
type ProtocolError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (o *ProtocolError) Error() string {
	return fmt.Sprintf("server responded with an unparseable body (status code: %d): %s", o.StatusCode, o.Err)
}

func (o *ProtocolError) Unwrap() error {
	return o.Err
}
