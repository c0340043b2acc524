package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tsdice/emojisummary/internal/glyph"
)

// Metrics counts selections on a private registry so several servers (and
// tests) can coexist in one process.
type Metrics struct {
	registry   *prometheus.Registry
	selections *prometheus.CounterVec
	glyphs     *prometheus.CounterVec
}

func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selections_total",
			Help:      "Emoji selections served, by config source.",
		}, []string{"source"}),
		glyphs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "glyphs_total",
			Help:      "Selected glyphs, by the cascade stage that produced them.",
		}, []string{"stage"}),
	}
	m.registry.MustRegister(
		m.selections,
		m.glyphs,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveSelection records one served selection.
func (m *Metrics) ObserveSelection(source string, sel glyph.Selection) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(source).Inc()
	for _, p := range sel.Picks {
		m.glyphs.WithLabelValues(string(p.Stage)).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
