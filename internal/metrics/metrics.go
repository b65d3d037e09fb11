package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// QuoteComputations counts engine runs by outcome: ok, invalid, misconfigured.
	QuoteComputations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "quote_computations_total", Help: "Quote computations by outcome."},
		[]string{"outcome"},
	)
	// QuoteGrandTotal records tax-inclusive grand totals of successful computations.
	QuoteGrandTotal = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "quote_grand_total", Help: "Tax-inclusive quote grand totals.", Buckets: []float64{500, 1000, 2500, 5000, 10000, 25000, 50000}},
	)
	QuoteTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "quote_status_transitions_total", Help: "Quote status transitions by target status."},
		[]string{"status"},
	)
	Payments = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "quote_payments_total", Help: "Quote payments by outcome."},
		[]string{"outcome"},
	)
)

var regOnce sync.Once

// RegisterDefault registers the collectors on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests, HTTPDuration, QuoteComputations, QuoteGrandTotal, QuoteTransitions, Payments)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Middleware records request count and latency, labelled by route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		HTTPRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		HTTPDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

// Handler serves Registry in the Prometheus exposition format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}
