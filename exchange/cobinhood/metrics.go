package cobinhood

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK             = "ok"
	outcomeAPIError       = "api_error"
	outcomeMalformed      = "malformed"
	outcomeProtocolError  = "protocol_error"
	outcomeTransportError = "transport_error"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cobinhood_client",
			Name:      "requests_total",
			Help:      "Requests sent to the Cobinhood API by outcome.",
		},
		[]string{"method", "endpoint", "outcome"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cobinhood_client",
			Name:      "request_duration_seconds",
			Help:      "Round trip time of requests sent to the Cobinhood API.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	var err error

	if requests, err = registerOrReuse(reg, requests); err != nil {
		return nil, err
	}

	if duration, err = registerOrReuse(reg, duration); err != nil {
		return nil, err
	}

	return &metrics{requests: requests, duration: duration}, nil
}

// registerOrReuse lets several clients share one registry.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}

		return c, err
	}

	return c, nil
}

// observe is a no-op on a client built without metrics. The endpoint label is the unexpanded
// template so that its cardinality stays fixed.
func (o *metrics) observe(endpoint Endpoint, outcome string, elapsed time.Duration) {
	if o == nil {
		return
	}

	o.requests.WithLabelValues(endpoint.Method, endpoint.Path, outcome).Inc()
	o.duration.WithLabelValues(endpoint.Method, endpoint.Path).Observe(elapsed.Seconds())
}

func outcomeOf(env *Envelope) string {
	success, ok := env.Outcome()

	switch {
	case !ok:
		return outcomeMalformed
	case !success:
		return outcomeAPIError
	default:
		return outcomeOK
	}
}
