package satismeter

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts calls forwarded to the vendor global.
type Metrics struct {
	calls *prometheus.CounterVec
	ready prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "satismeter",
			Name:      "calls_total",
			Help:      "Calls forwarded to the vendor global, by method and outcome.",
		}, []string{"method", "outcome"}),
		ready: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "satismeter",
			Name:      "ready",
			Help:      "1 once the vendor global has been detected.",
		}),
	}

	if reg == nil {
		return m, nil
	}

	var err error
	if m.calls, err = register(reg, m.calls); err != nil {
		return nil, err
	}
	if m.ready, err = register(reg, m.ready); err != nil {
		return nil, err
	}
	return m, nil
}

// register reuses an identical collector already registered with reg, so
// several integrations can share one registry.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, err
	}
	return c, nil
}

func (m *Metrics) observe(method string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.calls.WithLabelValues(method, outcome).Inc()
}

func (m *Metrics) setReady() {
	if m == nil {
		return
	}
	m.ready.Set(1)
}
