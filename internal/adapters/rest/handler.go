package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ewilliams-labs/moodmate/internal/core/services"
	"github.com/ewilliams-labs/moodmate/internal/logging"
)

// Options carries facts the handler reports but does not own.
type Options struct {
	// CatalogConfigured reports whether catalog credentials are present.
	CatalogConfigured bool
	// DefaultModel is the model used when a request names none.
	DefaultModel string
}

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc    *services.Orchestrator
	opts   Options
	router chi.Router
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Orchestrator, opts Options) *Handler {
	h := &Handler{
		svc:    svc,
		opts:   opts,
		router: chi.NewRouter(),
	}

	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.Use(chimiddleware.RequestID)
	h.router.Use(correlationID)
	h.router.Use(chimiddleware.Recoverer)

	h.router.Get("/health", h.HealthCheck)
	h.router.Handle("/metrics", promhttp.Handler())

	h.router.Post("/classify", h.Classify)
	h.router.Post("/recommendations", h.Recommend)
	h.router.Post("/quote", h.Quote)
	h.router.Post("/suggest", h.Suggest)
}

// correlationID reuses chi's request id as the log correlation id.
func correlationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := chimiddleware.GetReqID(ctx); id != "" {
			ctx = logging.ContextWithCorrelationID(ctx, id)
		} else {
			ctx = logging.ContextWithNewCorrelationID(ctx)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type healthResponse struct {
	Status            string `json:"status"`
	CatalogConfigured bool   `json:"catalog_configured"`
	Model             string `json:"model"`
}

// HealthCheck reports liveness and whether catalog credentials are configured.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:            "ok",
		CatalogConfigured: h.opts.CatalogConfigured,
		Model:             h.opts.DefaultModel,
	})
}
