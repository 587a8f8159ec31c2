// Package stub is an in-memory implementation of the product API, used by
// the demo binary and the integration tests in place of the real backend.
package stub

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stocklens/stocklens-mobile/internal/catalog"
)

// Repository stores products and batches in memory.
type Repository struct {
	mu       sync.RWMutex
	products map[string]catalog.Product
	batches  map[string][]catalog.Batch
}

// NewRepository builds an empty Repository.
func NewRepository() *Repository {
	return &Repository{
		products: make(map[string]catalog.Product),
		batches:  make(map[string][]catalog.Batch),
	}
}

// GetProduct returns one product by identifier.
func (r *Repository) GetProduct(id string) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return catalog.Product{}, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, id)
	}
	return product, nil
}

// FindByBarcode resolves a barcode to a product.
func (r *Repository) FindByBarcode(code string) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, product := range r.products {
		if product.Barcode != nil && *product.Barcode == code {
			return product, nil
		}
	}
	return catalog.Product{}, fmt.Errorf("%w: barcode %s", catalog.ErrProductNotFound, code)
}

// BatchSummary aggregates the batches of one product. A product with no
// batches yields an empty summary, not an error.
func (r *Repository) BatchSummary(productID string) (catalog.BatchSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.products[productID]; !ok {
		return catalog.BatchSummary{}, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, productID)
	}
	batches := make([]catalog.Batch, len(r.batches[productID]))
	copy(batches, r.batches[productID])
	sort.Slice(batches, func(i, j int) bool { return batches[i].BatchNumber < batches[j].BatchNumber })
	summary := catalog.BatchSummary{
		ProductID:    productID,
		TotalBatches: len(batches),
		Batches:      batches,
	}
	for _, b := range batches {
		summary.TotalQuantity += b.Quantity
	}
	return summary, nil
}

// CreateProduct validates the input and stores a new product.
func (r *Repository) CreateProduct(in catalog.ProductInput) (catalog.Product, error) {
	if err := in.Validate(); err != nil {
		return catalog.Product{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.products {
		if existing.SKU == in.SKU {
			return catalog.Product{}, fmt.Errorf("%w: %s", catalog.ErrDuplicateSKU, in.SKU)
		}
	}
	product := catalog.Product{
		ID:           uuid.NewString(),
		Name:         in.Name,
		SKU:          in.SKU,
		Barcode:      in.Barcode,
		Category:     in.Category,
		Brand:        in.Brand,
		CurrentStock: in.CurrentStock,
		Unit:         in.Unit,
		MRP:          in.MRP,
		SellingPrice: in.SellingPrice,
		CostPrice:    in.CostPrice,
		ProfitMargin: in.ProfitMargin,
		UpdatedAt:    time.Now().UTC(),
	}
	r.products[product.ID] = product
	return product, nil
}

// DeleteProduct removes a product and its batches.
func (r *Repository) DeleteProduct(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("%w: %s", catalog.ErrProductNotFound, id)
	}
	delete(r.products, id)
	delete(r.batches, id)
	return nil
}

// AddBatch attaches a batch to an existing product.
func (r *Repository) AddBatch(productID string, batch catalog.Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[productID]; !ok {
		return fmt.Errorf("%w: %s", catalog.ErrProductNotFound, productID)
	}
	if batch.ID == "" {
		batch.ID = uuid.NewString()
	}
	batch.ProductID = productID
	r.batches[productID] = append(r.batches[productID], batch)
	return nil
}
