// Package catalog defines the product and batch domain shared by the API
// client, the screen sessions and the development stub.
package catalog

import (
	"errors"
	"time"
)

// Sentinel errors for the catalog domain.
var (
	// ErrProductNotFound indicates the product does not exist upstream.
	ErrProductNotFound = errors.New("product not found")
	// ErrBatchesNotFound indicates no batch summary exists for the product.
	ErrBatchesNotFound = errors.New("batch summary not found")
	// ErrDuplicateSKU indicates another product already uses the SKU.
	ErrDuplicateSKU = errors.New("duplicate sku")
	// ErrValidation indicates the input failed validation.
	ErrValidation = errors.New("validation failed")
)

// Product is an immutable snapshot of one catalog record. Screens never
// mutate it; reloads replace it wholesale.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Barcode      *string   `json:"barcode,omitempty"`
	Category     string    `json:"category"`
	Brand        *string   `json:"brand,omitempty"`
	CurrentStock float64   `json:"current_stock"`
	Unit         string    `json:"unit"`
	MRP          float64   `json:"mrp"`
	SellingPrice float64   `json:"selling_price"`
	CostPrice    float64   `json:"cost_price"`
	ProfitMargin *float64  `json:"profit_margin,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Batch is one tracked inventory lot of a product.
type Batch struct {
	ID           string     `json:"id"`
	ProductID    string     `json:"product_id"`
	BatchNumber  string     `json:"batch_number"`
	Quantity     float64    `json:"quantity"`
	MRP          float64    `json:"mrp"`
	SellingPrice float64    `json:"selling_price"`
	CostPrice    float64    `json:"cost_price"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
}

// BatchSummary aggregates the batches of one product. Only TotalBatches
// gates whether the batch section of the detail screen renders.
type BatchSummary struct {
	ProductID     string  `json:"product_id"`
	TotalBatches  int     `json:"total_batches"`
	TotalQuantity float64 `json:"total_quantity"`
	Batches       []Batch `json:"batches"`
}
