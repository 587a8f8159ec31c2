package stub

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/stocklens/stocklens-mobile/internal/catalog"
	"github.com/stocklens/stocklens-mobile/internal/httpx"
)

func newTestRouter(t *testing.T) (*Repository, http.Handler, []string) {
	t.Helper()
	repo := NewRepository()
	seeded, err := Seed(repo)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		NewHandler(slog.Default(), repo).Register(r)
	})
	return repo, r, seeded
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGetProduct(t *testing.T) {
	_, router, seeded := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products/"+seeded[0], "")
	require.Equal(t, http.StatusOK, rec.Code)

	var product catalog.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	require.Equal(t, "Basmati Rice 5kg", product.Name)
	require.Equal(t, "RICE-5KG", product.SKU)
}

func TestGetProductNotFoundIsProblem(t *testing.T) {
	_, router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var problem httpx.ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	require.Equal(t, http.StatusNotFound, problem.Status)
	require.Contains(t, problem.Detail, "product not found")
}

func TestBatchSummaryAggregates(t *testing.T) {
	_, router, seeded := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products/"+seeded[0]+"/batches/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary catalog.BatchSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Equal(t, 2, summary.TotalBatches)
	require.InDelta(t, 42, summary.TotalQuantity, 0.0001)
	require.Len(t, summary.Batches, 2)
}

func TestBatchSummaryEmptyForBatchlessProduct(t *testing.T) {
	_, router, seeded := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products/"+seeded[1]+"/batches/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary catalog.BatchSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Zero(t, summary.TotalBatches)
}

func TestLookupBarcode(t *testing.T) {
	_, router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products/barcode/8901030875190", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var product catalog.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	require.Equal(t, "RICE-5KG", product.SKU)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/products/barcode/12AB", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProductValidation(t *testing.T) {
	_, router, _ := newTestRouter(t)

	// Selling price above MRP must be rejected.
	body := `{"name":"Ghee 1L","sku":"GHEE-1L","category":"Dairy","unit":"jar","mrp":500,"selling_price":600,"cost_price":400}`
	rec := doRequest(t, router, http.MethodPost, "/api/v1/products", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body = `{"name":"Ghee 1L","sku":"GHEE-1L","category":"Dairy","unit":"jar","mrp":650,"selling_price":600,"cost_price":400,"current_stock":5}`
	rec = doRequest(t, router, http.MethodPost, "/api/v1/products", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Same SKU again conflicts.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/products", body)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	_, router, seeded := newTestRouter(t)

	rec := doRequest(t, router, http.MethodDelete, "/api/v1/products/"+seeded[1], "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/products/"+seeded[1], "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
