package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stocklens/stocklens-mobile/internal/observability"
	"github.com/stocklens/stocklens-mobile/internal/stub"
)

// RouterParams groups dependencies for building the stub API router.
type RouterParams struct {
	Logger   *slog.Logger
	Config   *Config
	Products *stub.Handler
	Metrics  *observability.Metrics
}

// NewRouter constructs the chi.Router serving the stub product API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		params.Products.Register(r)
	})

	return r
}
