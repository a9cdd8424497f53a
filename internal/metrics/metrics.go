// SPDX-License-Identifier: MIT
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sectioncss"

// Metrics holds the Prometheus collectors for rendering and saving.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	renders        prometheus.Counter
	renderDuration prometheus.Histogram
	renderBytes    prometheus.Gauge
	saves          *prometheus.CounterVec
	reloads        *prometheus.CounterVec
}

// New creates the collectors on a private registry
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		renders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Total number of stylesheet renders",
		}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering the stylesheet",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05},
		}),
		renderBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stylesheet_bytes",
			Help:      "Size of the last rendered stylesheet",
		}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settings_saved_total",
			Help:      "Setting saves by outcome",
		}, []string{"outcome"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_reloads_total",
			Help:      "Theme file reloads by result",
		}, []string{"result"}),
	}

	registry.MustRegister(m.renders, m.renderDuration, m.renderBytes, m.saves, m.reloads)
	return m
}

// RecordRender records one stylesheet render
func (m *Metrics) RecordRender(d time.Duration, size int) {
	if m == nil {
		return
	}
	m.renders.Inc()
	m.renderDuration.Observe(d.Seconds())
	m.renderBytes.Set(float64(size))
}

// RecordSave records whether a setting value was accepted or rejected
func (m *Metrics) RecordSave(accepted bool) {
	if m == nil {
		return
	}
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	m.saves.WithLabelValues(outcome).Inc()
}

// RecordReload records a theme reload attempt
func (m *Metrics) RecordReload(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.reloads.WithLabelValues(result).Inc()
}

// Handler serves the metrics in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
