package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "gasbill_"

	ResultSuccess = "success"
	ResultError   = "error"

	FormatTable = "table"
	FormatXLSX  = "xlsx"
)

var (
	registerOnce sync.Once

	comparisonTotal   *prometheus.CounterVec
	comparisonLatency *prometheus.HistogramVec
	missingFields     *prometheus.CounterVec
)

// Init registers the comparison metrics with the default registry.
func Init() {
	registerOnce.Do(func() {
		comparisonTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "comparisons_total",
				Help: "Total bill comparisons by output format and result",
			},
			[]string{"format", "result"},
		)
		comparisonLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "comparison_latency_seconds",
				Help:    "Bill comparison latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)
		missingFields = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "missing_fields_total",
				Help: "Bill fields that could not be found in uploaded PDFs",
			},
			[]string{"field"},
		)

		prometheus.MustRegister(comparisonTotal, comparisonLatency, missingFields)
	})
}

// ObserveComparison records one comparison request.
func ObserveComparison(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = ResultSuccess
	}
	if comparisonTotal != nil {
		comparisonTotal.WithLabelValues(format, result).Inc()
	}
	if comparisonLatency != nil {
		comparisonLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

// IncMissingField counts a field the parser could not locate.
func IncMissingField(field string) {
	if missingFields != nil {
		missingFields.WithLabelValues(field).Inc()
	}
}
