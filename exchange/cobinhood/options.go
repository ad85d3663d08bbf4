package cobinhood

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option mutates the Client during New().
type Option func(*Client) error

// WithAPIKey enables the authenticated endpoints.
func WithAPIKey(key string) Option {
	return func(o *Client) error {
		o.apiKey = key
		return nil
	}
}

// WithConsoleLog toggles logging of every request to standard output.
func WithConsoleLog(enabled bool) Option {
	return func(o *Client) error {
		o.consoleLog = enabled
		return nil
	}
}

// WithLogFile changes the file that requests are logged to.
func WithLogFile(path string) Option {
	return func(o *Client) error {
		if path == "" {
			return errors.New("empty log file path")
		}
		o.logFile = path
		return nil
	}
}

// WithoutLogFile disables the log file sink.
func WithoutLogFile() Option {
	return func(o *Client) error {
		o.logFile = ""
		return nil
	}
}

// WithLogger replaces the built-in sinks with an existing logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Client) error {
		if logger == nil {
			return errors.New("nil logger")
		}
		o.logger = logger
		return nil
	}
}

// WithBaseURL points the client at a different host (e.g. a sandbox or a test server).
func WithBaseURL(base string) Option {
	return func(o *Client) error {
		if base == "" {
			return errors.New("empty base url")
		}
		o.baseURL = strings.TrimRight(base, "/")
		return nil
	}
}

// WithHTTPClient injects a custom *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Client) error {
		if hc == nil {
			return errors.New("nil http client")
		}
		o.httpClient = hc
		return nil
	}
}

// WithMetrics registers request counters and latencies with the provided registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *Client) error {
		m, err := newMetrics(reg)
		if err != nil {
			return err
		}
		o.metrics = m
		return nil
	}
}

// WithClock overrides the source of nonces.
func WithClock(now func() time.Time) Option {
	return func(o *Client) error {
		if now == nil {
			return errors.New("nil clock")
		}
		o.now = now
		return nil
	}
}
