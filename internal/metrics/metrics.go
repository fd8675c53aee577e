// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	providerCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dataplatform_provider_calls_total",
		Help: "Provider calls by provider and outcome",
	}, []string{"provider", "outcome"})

	providerLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dataplatform_provider_call_duration_seconds",
		Help:    "Provider call latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})

	purchases = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dataplatform_purchases_total",
		Help: "Purchases by network and outcome",
	}, []string{"network", "outcome"})

	refunds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dataplatform_refunds_total",
		Help: "Compensations by target status",
	}, []string{"status"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dataplatform_http_requests_total",
		Help: "HTTP requests by route, method and status",
	}, []string{"route", "method", "code"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dataplatform_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// ObserveProviderCall records one provider call
func ObserveProviderCall(provider, outcome string, d time.Duration) {
	providerCalls.WithLabelValues(provider, outcome).Inc()
	providerLatency.WithLabelValues(provider).Observe(d.Seconds())
}

// ObservePurchase records the outcome of a purchase
func ObservePurchase(network, outcome string) {
	purchases.WithLabelValues(network, outcome).Inc()
}

// ObserveRefund records a compensation
func ObserveRefund(status string) {
	refunds.WithLabelValues(status).Inc()
}

// Middleware records request count and latency per route pattern
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		httpLatency.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
