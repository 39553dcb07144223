package metrics

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type manager struct {
	namespace string
	system    string
	registry  *prometheus.Registry
}

var defaultManager = &manager{
	namespace: "default",
	system:    "default",
	registry:  prometheus.NewRegistry(),
}

func SetupMetricsManager(ns, system string, registry *prometheus.Registry) {
	defaultManager = &manager{
		namespace: ns,
		system:    system,
		registry:  registry,
	}
	registry.Register(collectors.NewGoCollector())
}

func NewCounterVec(name string, labels []string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: fmtFixer(defaultManager.namespace),
			Subsystem: fmtFixer(defaultManager.system),
			Name:      fmtFixer(name),
			Help:      fmt.Sprintf("%s count of /%s/%s", name, defaultManager.namespace, defaultManager.system),
		},
		labels,
	)
	defaultManager.registry.Register(vec)
	return vec
}

func NewHistogramVec(name string, labels []string) *prometheus.HistogramVec {
	vec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: fmtFixer(defaultManager.namespace),
			Subsystem: fmtFixer(defaultManager.system),
			Name:      fmtFixer(name),
			Help:      fmt.Sprintf("%s duration of /%s/%s", name, defaultManager.namespace, defaultManager.system),
		},
		labels,
	)
	defaultManager.registry.Register(vec)
	return vec
}

// DefaultExportHandler serves the registry on a gin route.
func DefaultExportHandler() gin.HandlerFunc {
	h := promhttp.InstrumentMetricHandler(
		defaultManager.registry, promhttp.HandlerFor(defaultManager.registry, promhttp.HandlerOpts{}),
	)
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func fmtFixer(in string) string {
	return strings.Replace(strings.Replace(in, ".", "_", -1), "-", "_", -1)
}
