package cobinhood

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lukehollenback/cobinhood/constants"
	"github.com/lukehollenback/cobinhood/exchange"
	"go.uber.org/zap"
)

var _ exchange.Client = (*Client)(nil)

// Client implements the exchange.Client interface for the Cobinhood API. It is meant to be built once
// and reused for every call. Apart from the shared HTTP connection and the log sinks, it holds no
// state between calls.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time

	consoleLog bool
	logFile    string
	logger     *zap.Logger
	logHandle  *os.File

	metrics *metrics
}

// New instantiates a new client. Without any options the client can only call public endpoints and
// appends its request log to constants.DefaultLogFile.
func New(opts ...Option) (*Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 1

	o := &Client{
		baseURL:    BaseURL,
		httpClient: &http.Client{Transport: transport},
		now:        time.Now,
		logFile:    constants.DefaultLogFile,
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if o.logger == nil {
		logger, handle, err := newLogger(o.consoleLog, o.logFile)
		if err != nil {
			return nil, err
		}

		o.logger = logger
		o.logHandle = handle
	}

	return o, nil
}

// Authenticated returns whether or not the client holds an API key and can therefore call private
// endpoints.
func (o *Client) Authenticated() bool {
	return o.apiKey != ""
}

// Close flushes the request log and releases the log file (if the client opened one).
func (o *Client) Close() error {
	_ = o.logger.Sync()

	if o.logHandle == nil {
		return nil
	}

	err := o.logHandle.Close()
	o.logHandle = nil

	return err
}

// call makes a request and decodes the named entry of its payload (or the whole result if entry is
// empty) into v.
func (o *Client) call(ctx context.Context, endpoint Endpoint, params Params, data interface{}, entry string, v interface{}) error {
	env, err := o.request(ctx, endpoint, params, data)
	if err != nil {
		return err
	}

	payload := env.Payload(entry)
	if payload == nil {
		return exchange.ErrMalformedEnvelope
	}

	if success, _ := env.Outcome(); !success {
		return &exchange.APIError{Code: env.errorCode(), Envelope: payload}
	}

	if err := json.Unmarshal(payload, v); err != nil {
		return &exchange.PayloadError{Path: endpoint.Path, Payload: payload, Err: err}
	}

	return nil
}

// confirm makes a request that only needs to be acknowledged and returns the exchange's success flag.
func (o *Client) confirm(ctx context.Context, endpoint Endpoint, params Params, data interface{}) (bool, error) {
	env, err := o.request(ctx, endpoint, params, data)
	if err != nil {
		return false, err
	}

	success, ok := env.Outcome()
	if !ok {
		return false, exchange.ErrMalformedEnvelope
	}

	return success, nil
}

// request makes the specified request to the Cobinhood API and returns the parsed envelope and/or an
// error if something went wrong along the way. Authenticated requests carry the API key and, unless
// they are GETs, a nonce.
func (o *Client) request(ctx context.Context, endpoint Endpoint, params Params, data interface{}) (*Envelope, error) {
	// Validate preconditions and build the request URL before anything is sent.
	if endpoint.Auth && !o.Authenticated() {
		return nil, exchange.ErrNoCredential
	}

	path, err := endpoint.Expand(params)
	if err != nil {
		return nil, err
	}

	url := o.baseURL + path

	var body []byte

	if data != nil {
		body, err = json.Marshal(data)
		if err != nil {
			return nil, err
		}
	}

	o.logger.Info(
		"request",
		zap.String("request_id", uuid.NewString()),
		zap.String("method", endpoint.Method),
		zap.String("url", url),
		zap.ByteString("data", body),
	)

	// Build the HTTP request.
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, endpoint.Method, url, reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if endpoint.Auth {
		req.Header.Set(APIKeyHeader, o.apiKey)

		if endpoint.Method != http.MethodGet {
			req.Header.Set(NonceHeader, strconv.FormatInt(o.now().Unix(), 10))
		}
	}

	// Make the request and read the response.
	started := time.Now()

	resp, err := o.httpClient.Do(req)
	if err != nil {
		o.metrics.observe(endpoint, outcomeTransportError, time.Since(started))

		return nil, fmt.Errorf("%s %s: %w", endpoint.Method, url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		o.metrics.observe(endpoint, outcomeTransportError, time.Since(started))

		return nil, fmt.Errorf("%s %s: %w", endpoint.Method, url, err)
	}

	// Parse the envelope.
	env, err := ParseEnvelope(respBody)
	if err != nil {
		o.metrics.observe(endpoint, outcomeProtocolError, time.Since(started))

		return nil, &exchange.ProtocolError{StatusCode: resp.StatusCode, Body: respBody, Err: err}
	}

	o.metrics.observe(endpoint, outcomeOf(env), time.Since(started))

	return env, nil
}
