package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.DefaultRegisterer

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route/method/code.",
		},
		[]string{"route", "method", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route/method/code.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "code"},
	)

	tradeEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trades_total",
			Help: "Trade attempts by result.",
		},
		[]string{"result"},
	)

	teamCreations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "teams_created_total",
			Help: "Teams created successfully.",
		},
	)

	waiverDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waiver_decisions_total",
			Help: "Waiver decisions by final status.",
		},
		[]string{"status"},
	)
)

// Middleware records request counts and latency per chi route pattern,
// so /player/123 and /player/456 land in the same series.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		if route == "/metrics" {
			return
		}

		code := strconv.Itoa(ww.Status())
		httpRequests.WithLabelValues(route, r.Method, code).Inc()
		httpDuration.WithLabelValues(route, r.Method, code).Observe(time.Since(start).Seconds())
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveTrade(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	tradeEvents.WithLabelValues(result).Inc()
}

func ObserveTeamCreated() {
	teamCreations.Inc()
}

func ObserveWaiverDecision(status string) {
	waiverDecisions.WithLabelValues(status).Inc()
}

func init() {
	collectors := []prometheus.Collector{
		httpRequests,
		httpDuration,
		tradeEvents,
		teamCreations,
		waiverDecisions,
	}

	for _, c := range collectors {
		_ = registry.Register(c)
	}
}
