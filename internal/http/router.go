package http

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"intakedesk/internal/http/handlers"
	"intakedesk/internal/http/metrics"
	httpmw "intakedesk/internal/http/middleware"
)

type RouterDependencies struct {
	ApplicationHandler *handlers.ApplicationHandler
	MetricsHandler     http.Handler
	Metrics            *metrics.Collector
	Logger             *zap.Logger
	RequestTimeout     time.Duration
	CORSAllowedOrigin  string
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.CORS(r.deps.CORSAllowedOrigin),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Metrics(r.deps.Metrics),
		httpmw.Recover(r.deps.Logger),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/applications":
			r.deps.ApplicationHandler.Create(w, req)
			return
		case req.Method == http.MethodGet && path == "/applications":
			r.deps.ApplicationHandler.List(w, req)
			return
		case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/status"):
			r.deps.ApplicationHandler.UpdateStatus(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/applications/") && strings.Count(path, "/") == 2:
			r.deps.ApplicationHandler.Get(w, req)
			return
		}

		http.NotFound(w, req)
	})
}
