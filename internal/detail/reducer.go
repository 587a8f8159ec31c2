package detail

import "github.com/stocklens/stocklens-mobile/internal/catalog"

// Outcome is the render decision for the whole screen.
type Outcome int

const (
	// OutcomeLoading blocks everything behind a loading indicator.
	OutcomeLoading Outcome = iota
	// OutcomeError shows the failure message plus a go-back action.
	OutcomeError
	// OutcomePopulated renders the product, with or without batches.
	OutcomePopulated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoading:
		return "loading"
	case OutcomeError:
		return "error"
	case OutcomePopulated:
		return "populated"
	}
	return "unknown"
}

// Fallback copy used when a failure carries no message of its own.
const (
	msgNotFound  = "Product not found"
	msgLoadError = "Failed to load product details"
)

// View is what the UI layer renders. It is a pure projection of a Snapshot.
type View struct {
	Outcome      Outcome
	ErrorMessage string
	Product      *catalog.Product

	// Batch section, meaningful only when Outcome is OutcomePopulated.
	// HasBatchSection false means the informational note renders instead.
	HasBatchSection bool
	TotalBatches    int
	Batches         []catalog.Batch
	BatchesExpanded bool
	LoadingBatches  bool
}

// Reduce derives the render decision from a Snapshot. Same input, same
// output: the function reads nothing but its argument.
func Reduce(s Snapshot) View {
	if s.ProductLoad == LoadInFlight {
		return View{Outcome: OutcomeLoading}
	}
	if s.ErrMsg != "" || s.Product == nil {
		msg := s.ErrMsg
		if msg == "" {
			msg = msgNotFound
		}
		return View{Outcome: OutcomeError, ErrorMessage: msg}
	}
	v := View{
		Outcome:         OutcomePopulated,
		Product:         s.Product,
		BatchesExpanded: s.ShowBatches,
		LoadingBatches:  s.BatchLoad == LoadInFlight,
	}
	if s.Batches != nil && s.Batches.TotalBatches > 0 {
		v.HasBatchSection = true
		v.TotalBatches = s.Batches.TotalBatches
		v.Batches = s.Batches.Batches
	}
	return v
}
