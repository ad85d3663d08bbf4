package exchange

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedEnvelope is returned when a response parses as JSON but lacks the success/result
	// envelope.
	ErrMalformedEnvelope = errors.New("response is not a valid envelope")

	// ErrPriceRequired is returned, without contacting the exchange, when a non-market order is placed
	// without a price.
	ErrPriceRequired = errors.New("a price is required for every order type except market")

	// ErrNoCredential is returned, without contacting the exchange, when an authenticated endpoint is
	// called on a client that was built without an API key.
	ErrNoCredential = errors.New("no api key configured")

	// ErrMissingParam is matched by every *MissingParamError.
	ErrMissingParam = errors.New("missing parameter")
)

// MissingParamError is returned when an endpoint template contains a placeholder for which no value
// was supplied.
type MissingParamError struct {
	Name     string
	Template string
}

func (o *MissingParamError) Error() string {
	return fmt.Sprintf("missing parameter %q for %s", o.Name, o.Template)
}

func (o *MissingParamError) Is(target error) bool {
	return target == ErrMissingParam
}

// PayloadError is returned when the exchange reported success but the payload could not be decoded
// into the expected type. The request itself went through.
type PayloadError struct {
	Path    string
	Payload []byte
	Err     error
}

func (o *PayloadError) Error() string {
	return fmt.Sprintf("failed to decode %s payload: %v", o.Path, o.Err)
}

func (o *PayloadError) Unwrap() error {
	return o.Err
}
