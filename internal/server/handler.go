package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/http/middleware"

	"vivopizza/internal/config"
	"vivopizza/internal/metrics"
)

// NewHandler mounts s on a goa muxer and wraps it with the middleware chain:
// Security -> CORS -> Logging -> Prometheus -> request ID -> mux.
// "/metrics" is served by Prometheus.
func NewHandler(cfg *config.Config, s *Server) http.Handler {
	mux := goahttp.NewMuxer()
	s.Mount(mux)
	if r, ok := mux.(fallbackRouter); ok {
		r.NotFound(notFound)
		r.MethodNotAllowed(methodNotAllowed)
	}

	var api http.Handler = mux
	api = middleware.PopulateRequestContext()(api)
	api = middleware.RequestID()(api)

	metricsHandler := promhttp.Handler()
	rootHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			metricsHandler.ServeHTTP(w, r)
			return
		}
		api.ServeHTTP(w, r)
	})

	return SecurityHeaders(CORS(RequestLogging(metrics.PrometheusMiddleware(rootHandler)), cfg), cfg)
}
