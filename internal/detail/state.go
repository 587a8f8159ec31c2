// Package detail implements the product detail screen session: two
// concurrent loaders feeding one derived render decision.
package detail

import "github.com/stocklens/stocklens-mobile/internal/catalog"

// LoadState tracks one loader. Modelling it as a tagged enum keeps invalid
// combinations (in-flight with an error set) unrepresentable.
type LoadState int

const (
	// LoadIdle means the loader has not run for the current identifier.
	LoadIdle LoadState = iota
	// LoadInFlight means a fetch is outstanding.
	LoadInFlight
	// LoadDone means the last fetch succeeded.
	LoadDone
	// LoadFailed means the last fetch failed.
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadInFlight:
		return "in_flight"
	case LoadDone:
		return "done"
	case LoadFailed:
		return "failed"
	}
	return "unknown"
}

// Snapshot is the raw per-screen state owned by a Session. The product
// loader writes Product, ProductLoad and ErrMsg; the batch loader writes
// Batches and BatchLoad; ShowBatches belongs to the user.
type Snapshot struct {
	ProductID   string
	Product     *catalog.Product
	Batches     *catalog.BatchSummary
	ProductLoad LoadState
	BatchLoad   LoadState
	ErrMsg      string
	ShowBatches bool
}
