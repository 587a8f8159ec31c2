package stub

import (
	"time"

	"github.com/stocklens/stocklens-mobile/internal/catalog"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// Seed loads a small sample catalog and returns the seeded product IDs in
// insertion order. The first product carries batches, the second does not.
func Seed(r *Repository) ([]string, error) {
	expiry := time.Now().AddDate(0, 6, 0).UTC()

	rice, err := r.CreateProduct(catalog.ProductInput{
		Name:         "Basmati Rice 5kg",
		SKU:          "RICE-5KG",
		Barcode:      strPtr("8901030875190"),
		Category:     "Grains",
		Brand:        strPtr("Daawat"),
		CurrentStock: 42,
		Unit:         "bag",
		MRP:          650,
		SellingPrice: 599,
		CostPrice:    480,
		ProfitMargin: floatPtr(19.9),
	})
	if err != nil {
		return nil, err
	}
	if err := r.AddBatch(rice.ID, catalog.Batch{
		BatchNumber:  "B-2403",
		Quantity:     30,
		MRP:          650,
		SellingPrice: 599,
		CostPrice:    480,
		ExpiryDate:   &expiry,
	}); err != nil {
		return nil, err
	}
	if err := r.AddBatch(rice.ID, catalog.Batch{
		BatchNumber:  "B-2404",
		Quantity:     12,
		MRP:          650,
		SellingPrice: 605,
		CostPrice:    490,
	}); err != nil {
		return nil, err
	}

	salt, err := r.CreateProduct(catalog.ProductInput{
		Name:         "Iodised Salt 1kg",
		SKU:          "SALT-1KG",
		Barcode:      strPtr("8901058000290"),
		Category:     "Essentials",
		CurrentStock: 120,
		Unit:         "pack",
		MRP:          28,
		SellingPrice: 25,
		CostPrice:    18,
	})
	if err != nil {
		return nil, err
	}

	return []string{rice.ID, salt.ID}, nil
}
