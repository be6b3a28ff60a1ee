package server

import (
	"net/http"
	"strconv"
	"time"

	"shareit/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shareit",
		Name:      "http_requests_total",
		Help:      "HTTP requests handled, by service, route and status.",
	}, []string{"service", "method", "route", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "shareit",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency, by service and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "method", "route"})

	rateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shareit",
		Name:      "http_requests_rate_limited_total",
		Help:      "Requests rejected by the rate limiter.",
	}, []string{"service"})
)

// RequestIDMiddleware reuses a valid incoming X-Request-Id or assigns a new one
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(utils.RequestIDHeader)
	if !utils.IsRequestID(id) {
		id = utils.NewRequestID()
	}
	c.Set(utils.RequestIDKey, id)
	c.Header(utils.RequestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString(utils.RequestIDKey),
	})
}

// MetricsMiddleware records request counts and latencies for the named service
func MetricsMiddleware(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(service, c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpLatency.WithLabelValues(service, c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// TracingMiddleware continues the caller's trace, if any, and opens a server span per request
func TracingMiddleware(service string) gin.HandlerFunc {
	tracer := otel.Tracer("shareit/" + service)

	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		ctx, span := tracer.Start(ctx, c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", route),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.String("request.id", c.GetString(utils.RequestIDKey)),
		)
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}

// RateLimitMiddleware rejects requests beyond the limiter's rate with 429
func RateLimitMiddleware(service string, limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			rateLimited.WithLabelValues(service).Inc()
			utils.JSONError(c, http.StatusTooManyRequests, errTooManyRequests, "too many requests")
			utils.Warn("rate limit exceeded", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": c.GetString(utils.RequestIDKey),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
