package rs63

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for rs63_decode_results_total.
const (
	RESULT_CLEAN         = "clean"
	RESULT_CORRECTED     = "corrected"
	RESULT_UNCORRECTABLE = "uncorrectable"
	RESULT_INVALID       = "invalid"
)

var metricsRegistry = prometheus.NewRegistry()

var decodeResults = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "rs63_decode_results_total",
	Help: "Decode calls by outcome.",
}, []string{"result"})

var symbolsCorrected = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "rs63_symbols_corrected_total",
	Help: "Symbols corrected, erasures included.",
})

func init() {
	metricsRegistry.MustRegister(decodeResults, symbolsCorrected)

	// Make all the series visible before the first decode.
	for _, r := range []string{RESULT_CLEAN, RESULT_CORRECTED, RESULT_UNCORRECTABLE, RESULT_INVALID} {
		decodeResults.WithLabelValues(r)
	}
}

func observeDecode(count int, err error) {
	switch {
	case err != nil:
		decodeResults.WithLabelValues(RESULT_INVALID).Inc()
	case count < 0:
		decodeResults.WithLabelValues(RESULT_UNCORRECTABLE).Inc()
	case count == 0:
		decodeResults.WithLabelValues(RESULT_CLEAN).Inc()
	default:
		decodeResults.WithLabelValues(RESULT_CORRECTED).Inc()
		symbolsCorrected.Add(float64(count))
	}
}

// MetricsHandler serves the decoder counters in the Prometheus text format.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{})
}
