// filepath: internal/api/router.go
package api

import (
	"io/fs"
	"net/http"
	"strings"

	// Import docs for Swagger
	_ "devops-webapp/docs"

	"devops-webapp/internal/api/handlers"
	"devops-webapp/internal/config"
	"devops-webapp/internal/metrics"
	"devops-webapp/internal/web"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the router and wraps it in the middleware chain.
// API routes are registered first; the static handler is the catch-all and
// falls through to the 404 handler.
func SetupRouter(h *handlers.Handlers, cfg *config.Config, content fs.FS, m *metrics.Metrics) http.Handler {
	// Unclean paths reach the static handler, which cleans them itself, so
	// they end in the 404 JSON response instead of a redirect.
	r := mux.NewRouter().SkipClean(true)
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	// A known path with the wrong method is just another unmatched route.
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.NotFound)

	// Public Endpoints
	r.MatcherFunc(apiPath("/api/health")).HandlerFunc(h.HealthCheck).Methods(http.MethodGet, http.MethodHead)
	r.MatcherFunc(apiPath("/api/time")).HandlerFunc(h.GetTime).Methods(http.MethodGet, http.MethodHead)
	r.MatcherFunc(apiPath("/api/info")).HandlerFunc(h.GetInfo).Methods(http.MethodGet, http.MethodHead)

	if !cfg.Server.DisableSwagger {
		r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler).Methods(http.MethodGet, http.MethodHead)
	}

	// Landing page and static assets (public)
	web.AddRoutes(r, content, handlers.NotFound, handlers.InternalError)

	return chain(r,
		RequestID,
		AccessLog,
		Instrument(m),
		Recovery,
	)
}

// apiPath matches p case-insensitively with an optional trailing slash.
func apiPath(p string) mux.MatcherFunc {
	return func(r *http.Request, _ *mux.RouteMatch) bool {
		got := r.URL.Path
		if len(got) > 1 {
			got = strings.TrimSuffix(got, "/")
		}
		return strings.EqualFold(got, p)
	}
}

// chain applies middlewares so that the first one is the outermost.
func chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
