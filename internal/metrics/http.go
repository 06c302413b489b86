package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMetricsMiddleware counts requests and records their latency, labelled by
// method, route pattern and status code. When the instruments cannot be created the
// middleware is a pass-through.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string) gin.HandlerFunc {
	meter := meterProvider.Meter(namespace)

	requestCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_total", namespace),
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return passThrough
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_http_request_duration_seconds", namespace),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return passThrough
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Route pattern, not the raw path, to keep label cardinality bounded.
		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}

		opt := metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("path", route),
			attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
		)

		requestCounter.Add(c.Request.Context(), 1, opt)
		durationHisto.Record(c.Request.Context(), time.Since(start).Seconds(), opt)
	}
}

func passThrough(c *gin.Context) {
	c.Next()
}
