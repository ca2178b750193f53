package middleware

import (
	"net/http"
	"time"

	"github.com/crucial707/folio-api/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// Prometheus records duration and count per request. The path label is the
// matched chi pattern (/projects/{id}) so ids never become label values;
// unmatched paths fall back to metrics.NormalizePath. Scrapes of /metrics are
// not counted.
func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrap := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrap, r)
		if r.URL.Path == "/metrics" {
			return
		}
		metrics.RecordRequest(r.Method, routeLabel(r), wrap.status, time.Since(start).Seconds())
	})
}

func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	if r.URL.Path == "" {
		return "/"
	}
	return r.URL.Path
}
