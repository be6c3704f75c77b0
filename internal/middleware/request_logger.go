package middleware

import (
	"net/http"
	"time"

	"health-companion/internal/observability/metrics"
	"health-companion/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// unmatchedRoute agrupa en una sola serie los requests que no matchean ninguna ruta.
const unmatchedRoute = "unmatched"

// RequestLogger loguea inicio/fin de cada request y registra la latencia por ruta.
// Debe ir después de chimw.RequestID; si no hay request id, genera uno.
func RequestLogger(log logger.Logger, m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := chimw.GetReqID(r.Context())
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", reqID)

			rl := log.With(map[string]any{
				"request_id": reqID,
				"method":     r.Method,
				"path":       r.URL.Path,
			})
			rl.Debug("request started", map[string]any{"remote_ip": r.RemoteAddr})

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}

			elapsed := time.Since(start)
			m.ObserveRequest(route, r.Method, status, elapsed.Seconds())

			rl.Info("request completed", map[string]any{
				"route":       route,
				"status":      status,
				"duration_ms": elapsed.Milliseconds(),
			})
		})
	}
}
