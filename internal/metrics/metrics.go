package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flydreamair_bookings_created_total",
		Help: "Total number of bookings committed",
	})
	BookingsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flydreamair_bookings_failed_total",
		Help: "Total number of rejected or failed booking submissions",
	}, []string{"reason"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flydreamair_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Middleware records request durations labelled by the matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
