package stub

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stocklens/stocklens-mobile/internal/catalog"
	"github.com/stocklens/stocklens-mobile/internal/httpx"
)

// Handler exposes the repository over the routes the API client expects.
type Handler struct {
	logger *slog.Logger
	repo   *Repository
}

// NewHandler builds a Handler.
func NewHandler(logger *slog.Logger, repo *Repository) *Handler {
	return &Handler{logger: logger, repo: repo}
}

// Register mounts the product routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/barcode/{code}", h.lookupBarcode)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Delete("/", h.delete)
			r.Get("/batches/summary", h.batchSummary)
		})
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	product, err := h.repo.GetProduct(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) lookupBarcode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if !catalog.ValidBarcode(code) {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "barcode must be 8 to 14 digits")
		return
	}
	product, err := h.repo.FindByBarcode(code)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) batchSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.repo.BatchSummary(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input catalog.ProductInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	product, err := h.repo.CreateProduct(input)
	if err != nil {
		h.logger.Warn("create product rejected", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.repo.DeleteProduct(id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("product deleted", slog.String("product_id", id))
	w.WriteHeader(http.StatusNoContent)
}
