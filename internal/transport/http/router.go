package httptransport

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"carelog/internal/platform/metrics"
	"carelog/internal/platform/middleware"
	"carelog/internal/transport/http/shared"
)

const requestTimeout = 30 * time.Second

// Registrant is a domain handler that mounts its routes on the router.
type Registrant interface {
	Register(r chi.Router)
}

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Options carries the cross-cutting pieces the router wires around every
// handler.
type Options struct {
	Middleware []func(http.Handler) http.Handler
	Metrics    *metrics.Metrics
	Health     map[string]HealthCheck
}

// NewRouter assembles the HTTP surface: operational endpoints plus every
// registered domain handler behind the shared middleware chain.
func NewRouter(opts Options, handlers ...Registrant) http.Handler {
	r := chi.NewRouter()
	for _, mw := range opts.Middleware {
		r.Use(mw)
	}
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Latency(opts.Metrics))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", healthHandler(opts.Health))

	for _, handler := range handlers {
		handler.Register(r)
	}
	return r
}

func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		report := make(map[string]string, len(checks)+1)
		report["status"] = "ok"
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				status = http.StatusServiceUnavailable
				report[name] = err.Error()
				report["status"] = "degraded"
				continue
			}
			report[name] = "ok"
		}
		shared.WriteJSON(w, status, report)
	}
}
