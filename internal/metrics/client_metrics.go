package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ClientMetrics counts and times calls made to the remote API.
type ClientMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewClientMetrics registers the collectors in the default registry.
func NewClientMetrics() *ClientMetrics {
	return NewClientMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewClientMetricsWithRegisterer registers the collectors in registerer,
// reusing collectors that are already registered under the same name.
func NewClientMetricsWithRegisterer(registerer prometheus.Registerer) *ClientMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &ClientMetrics{
		requests: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "ordrin_client_requests_total",
			Help: "Total number of requests sent to the Ordrin API",
		}, []string{"method", "status"}),
		duration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "ordrin_client_request_duration_seconds",
			Help:    "Duration of requests sent to the Ordrin API in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}, []string{"method"}),
	}
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// ObserveRequest records one finished request. Status 0 stands for
// a request that never got a response.
func (m *ClientMetrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(method, label).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
