package observability

import (
	"context"
	"net/http"

	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the pipeline collectors.
type Metrics struct {
	registry    *prometheus.Registry
	validations *prometheus.CounterVec
	findings    *prometheus.CounterVec
	syntheses   *prometheus.CounterVec
	duration    prometheus.Histogram
	length      prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsa_validations_total",
				Help: "Validations by result (valid, error)",
			},
			[]string{"result"},
		),
		findings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsa_findings_total",
				Help: "Reported error and warning codes",
			},
			[]string{"code"},
		),
		syntheses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsa_syntheses_total",
				Help: "Regex synthesis attempts by result (ok, refused, failed, cached)",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fsa_synthesis_duration_seconds",
			Help:    "Duration of regex synthesis",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		length: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fsa_regex_length_bytes",
			Help:    "Length of synthesized expressions",
			Buckets: prometheus.ExponentialBuckets(16, 4, 10),
		}),
	}
	m.registry.MustRegister(m.validations, m.findings, m.syntheses, m.duration, m.length)
	return m
}

// Registry exposes the underlying registry, e.g. for tests or extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks recording into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnValidated: func(_ context.Context, e *domain.ValidationEvent) {
			if e.Outcome.Err != nil {
				m.validations.WithLabelValues("error").Inc()
				m.findings.WithLabelValues(string(e.Outcome.Err.Code)).Inc()
				return
			}
			m.validations.WithLabelValues("valid").Inc()
			for _, w := range e.Outcome.Warnings {
				m.findings.WithLabelValues(string(w)).Inc()
			}
		},
		OnSynthesized: func(_ context.Context, e *domain.SynthesisEvent) {
			switch {
			case e.Code != "":
				m.syntheses.WithLabelValues("refused").Inc()
				// Validation errors were already counted by OnValidated.
				if e.Code == domain.CodeNondeterministic {
					m.findings.WithLabelValues(string(e.Code)).Inc()
				}
			case e.Err != nil:
				m.syntheses.WithLabelValues("failed").Inc()
			case e.Cached:
				m.syntheses.WithLabelValues("cached").Inc()
			default:
				m.syntheses.WithLabelValues("ok").Inc()
				m.duration.Observe(e.Duration.Seconds())
				m.length.Observe(float64(e.Length))
			}
		},
	}
}
