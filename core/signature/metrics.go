package signature

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK      = "ok"
	resultInvalid = "invalid"
)

// Metrics records validation outcomes per function.
type Metrics struct {
	// Validated calls by function and result ("ok" or "invalid")
	Calls *prometheus.CounterVec

	// Validation latency by function
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the validation metrics and registers them with reg.
// A nil reg registers with the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Calls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "carta_validation_calls_total",
			Help: "Total validated calls by function and result",
		}, []string{"function", "result"}),

		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "carta_validation_duration_seconds",
			Help:    "Duration of argument validation by function",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"function"}),
	}
}

func (m *Metrics) observe(function, result string, d time.Duration) {
	if m != nil {
		m.Calls.WithLabelValues(function, result).Inc()
		m.Duration.WithLabelValues(function).Observe(d.Seconds())
	}
}
