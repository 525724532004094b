package httpapi

import (
	"net/http"

	"github.com/QuangTung97/promo-pricing/pkg/metrics"
	"github.com/QuangTung97/promo-pricing/service/admin"
	"github.com/QuangTung97/promo-pricing/service/pricing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Handler exposes pricing queries and catalog / campaign administration over HTTP
type Handler struct {
	engine    pricing.IEngine
	admin     admin.IService
	clock     pricing.Clock
	precision int32

	logger  *zap.Logger
	metrics *metrics.Metrics
	router  chi.Router
}

// NewHandler registers every route, metrics can be nil
func NewHandler(
	engine pricing.IEngine, adminService admin.IService, clock pricing.Clock,
	precision int32, logger *zap.Logger, m *metrics.Metrics,
) *Handler {
	h := &Handler{
		engine:    engine,
		admin:     adminService,
		clock:     clock,
		precision: precision,
		logger:    logger,
		metrics:   m,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.requestMiddleware)

	r.Get("/healthz", h.handleHealth)
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.handleListProducts)
			r.Post("/", h.handleCreateProduct)
			r.Get("/{id}/price", h.handleGetPrice)
			r.Get("/{id}/eligibility", h.handleExplainEligibility)
		})

		r.Route("/product-categories", func(r chi.Router) {
			r.Get("/", h.handleListProductCategories)
			r.Post("/", h.handleCreateProductCategory)
			r.Delete("/{id}", h.handleDeleteProductCategory)
		})

		r.Route("/campaign-categories", func(r chi.Router) {
			r.Get("/", h.handleListCampaignCategories)
			r.Post("/", h.handleCreateCampaignCategory)
			r.Delete("/{id}", h.handleDeleteCampaignCategory)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Post("/{id}/activate", h.handleActivateCampaign)
			r.Post("/{id}/deactivate", h.handleDeactivateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
