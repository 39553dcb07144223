package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/moodnote-ai/moodnote/pkg/metrics"
)

type Metrics struct {
	apiResponseTime *prometheus.HistogramVec
	apiErrorCounter *prometheus.CounterVec
	entryCounter    *prometheus.CounterVec
	distressCounter *prometheus.CounterVec
	aiRequestTime   *prometheus.HistogramVec
	aiFallback      *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	// setup metric
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime: metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter: metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		entryCounter:    metrics.NewCounterVec("journal_entry_created", []string{"kind"}),
		distressCounter: metrics.NewCounterVec("distress_detected", []string{"source"}),
		aiRequestTime:   metrics.NewHistogramVec("ai_request_time", []string{"target"}),
		aiFallback:      metrics.NewCounterVec("ai_fallback", []string{"target"}),
	}

	return m
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) EntryCreatedInc(kind string) {
	m.entryCounter.WithLabelValues(kind).Inc()
}

func (m *Metrics) DistressDetectedInc(source string) {
	m.distressCounter.WithLabelValues(source).Inc()
}

func (m *Metrics) AIRequestTimer(target string) *prometheus.Timer {
	return prometheus.NewTimer(m.aiRequestTime.WithLabelValues(target))
}

func (m *Metrics) AIFallbackInc(target string) {
	m.aiFallback.WithLabelValues(target).Inc()
}
