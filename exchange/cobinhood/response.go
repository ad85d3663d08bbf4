package cobinhood

import (
	"encoding/json"
)

// Envelope is a parsed response from the Cobinhood API. Every response is expected to be shaped like
// {"success": bool, "result": any}. A response that is valid JSON but does not have that shape is
// still an Envelope; it is simply not a valid one, and nothing can be extracted from it.
type Envelope struct {
	raw    json.RawMessage
	fields map[string]json.RawMessage
}

// ParseEnvelope parses a response body. An error is only returned if the body is not JSON at all.
func ParseEnvelope(body []byte) (*Envelope, error) {
	var v interface{}

	err := json.Unmarshal(body, &v)
	if err != nil {
		return nil, err
	}

	env := &Envelope{raw: json.RawMessage(body)}

	// NOTE ~> A non-object body (e.g. a bare array) is tolerated here and simply leaves the envelope
	//  invalid.
	_ = json.Unmarshal(body, &env.fields)

	return env, nil
}

// Raw returns the complete response body.
func (o *Envelope) Raw() []byte {
	if o == nil {
		return nil
	}

	return o.raw
}

// Valid returns whether or not both the success flag (as a boolean) and the result are present.
func (o *Envelope) Valid() bool {
	if o == nil || o.fields == nil {
		return false
	}

	if _, ok := o.fields["result"]; !ok {
		return false
	}

	_, ok := o.success()

	return ok
}

func (o *Envelope) success() (bool, bool) {
	raw, ok := o.fields["success"]
	if !ok {
		return false, false
	}

	var success bool

	if err := json.Unmarshal(raw, &success); err != nil {
		return false, false
	}

	return success, true
}

// Payload extracts the useful part of the envelope. It returns nil if the envelope is absent or
// malformed and the complete raw envelope if the exchange reported a failure (so that the caller can
// inspect it). Otherwise the result is returned, or only its named entry if one is provided.
func (o *Envelope) Payload(entry string) json.RawMessage {
	if !o.Valid() {
		return nil
	}

	if success, _ := o.success(); !success {
		return o.raw
	}

	result := o.fields["result"]
	if entry == "" {
		return result
	}

	var sub map[string]json.RawMessage

	if err := json.Unmarshal(result, &sub); err != nil {
		return nil
	}

	return sub[entry]
}

// Outcome returns the success flag of the envelope and a true sentinel, or a false sentinel if the
// envelope is absent or malformed.
func (o *Envelope) Outcome() (bool, bool) {
	if !o.Valid() {
		return false, false
	}

	return o.success()
}

// errorCode digs the exchange's error code out of a failure envelope, if there is one.
func (o *Envelope) errorCode() string {
	var body struct {
		Error struct {
			Code string `json:"error_code"`
		} `json:"error"`
	}

	_ = json.Unmarshal(o.raw, &body)

	return body.Error.Code
}
