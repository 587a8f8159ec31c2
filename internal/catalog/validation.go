package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ProductInput is the payload accepted when creating a product.
type ProductInput struct {
	Name         string   `json:"name" validate:"required,min=2,max=120"`
	SKU          string   `json:"sku" validate:"required,min=1,max=64"`
	Barcode      *string  `json:"barcode,omitempty" validate:"omitempty,numeric,min=8,max=14"`
	Category     string   `json:"category" validate:"required"`
	Brand        *string  `json:"brand,omitempty" validate:"omitempty,max=120"`
	CurrentStock float64  `json:"current_stock" validate:"gte=0"`
	Unit         string   `json:"unit" validate:"required"`
	MRP          float64  `json:"mrp" validate:"gt=0"`
	SellingPrice float64  `json:"selling_price" validate:"gt=0,ltefield=MRP"`
	CostPrice    float64  `json:"cost_price" validate:"gte=0"`
	ProfitMargin *float64 `json:"profit_margin,omitempty"`
}

// Validate checks the input and wraps field failures in ErrValidation.
func (in ProductInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// ValidBarcode reports whether code looks like a scannable barcode
// (EAN-8 through EAN-14 digit strings).
func ValidBarcode(code string) bool {
	if len(code) < 8 || len(code) > 14 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
