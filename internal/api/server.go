// Package api implements the dashboard-facing HTTP surface: routing, proxy
// handlers, the error envelope, and service metrics.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/yourorg/vault-analytics-api/internal/config"
	"github.com/yourorg/vault-analytics-api/internal/indexer"
)

// Server owns the router and everything the handlers need. Handlers are
// stateless with respect to requests; nothing here mutates across calls
// except the metrics counters.
type Server struct {
	cfg       config.Config
	indexer   *indexer.Client
	metrics   *serverMetrics
	limiter   *rate.Limiter
	registry  *prometheus.Registry
	startTime time.Time
}

// serverMetrics holds Prometheus metrics for the server
type serverMetrics struct {
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	upstreamErrors  *prometheus.CounterVec
}

// registerMetrics sets up Prometheus metrics collection on a per-server
// registry so tests can construct servers freely.
func registerMetrics(registry *prometheus.Registry) *serverMetrics {
	m := &serverMetrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vault_api_requests_total",
				Help: "Total number of requests processed",
			},
			[]string{"route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vault_api_request_duration_seconds",
				Help:    "Request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		upstreamErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vault_api_upstream_errors_total",
				Help: "Total number of indexer-reported failures",
			},
			[]string{"route"},
		),
	}

	registry.MustRegister(m.requestCounter, m.requestDuration, m.upstreamErrors)
	return m
}

// NewServer creates the API server from configuration and an indexer client.
func NewServer(cfg config.Config, client *indexer.Client) *Server {
	registry := prometheus.NewRegistry()

	s := &Server{
		cfg:       cfg,
		indexer:   client,
		metrics:   registerMetrics(registry),
		registry:  registry,
		startTime: time.Now(),
	}
	if cfg.RateLimitRPS > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}
	return s
}

// Router builds the service router.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(withCORS)
	r.Use(s.withRateLimit)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// OPTIONS is matched so the CORS middleware can answer preflights;
	// it never reaches the handlers.
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/vaults", s.instrument("vault_list", s.handleVaultList)).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/vaults/{chainId}/{vaultAddress}/fees", s.instrument("fees", s.handleFeeHistory)).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/vaults/{chainId}/{vaultAddress}/price-impact", s.instrument("price_impact", s.handlePriceImpact)).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/vaults/{chainId}/{vaultAddress}/inventory", s.instrument("inventory", s.handleInventory)).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/vaults/{chainId}/{vaultAddress}/balance", s.instrument("balance", s.handleVaultBalance)).Methods(http.MethodGet, http.MethodOptions)

	return r
}

// withCORS adds CORS headers so dashboard browsers can call the API
// cross-origin, and fast-paths preflight requests.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", http.MethodGet+", "+http.MethodOptions)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRateLimit applies the optional token-bucket limiter.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			s.writeError(w, http.StatusTooManyRequests, ErrorEnvelope{
				Error:   "Rate limit exceeded",
				Message: http.StatusText(http.StatusTooManyRequests),
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the handler's status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler with request counting and timing.
func (s *Server) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)
		s.metrics.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		s.metrics.requestCounter.WithLabelValues(route, fmt.Sprintf("%d", rec.status)).Inc()
	}
}

// writeJSON sends a success payload with an advisory revalidation hint.
// Revalidation is the caller's job; the service holds no cache.
func (s *Server) writeJSON(w http.ResponseWriter, revalidateSeconds int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if revalidateSeconds > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate", revalidateSeconds))
	}
	json.NewEncoder(w).Encode(payload)
}
