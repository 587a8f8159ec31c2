package detail

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stocklens/stocklens-mobile/internal/catalog"
)

func sampleProduct() *catalog.Product {
	return &catalog.Product{
		ID: "P1", Name: "Rice", SKU: "R1",
		CurrentStock: 10, Unit: "bag",
		MRP: 100, SellingPrice: 90, CostPrice: 70,
	}
}

func TestReduceLoadingBlocksEverything(t *testing.T) {
	v := Reduce(Snapshot{ProductLoad: LoadInFlight, ShowBatches: true})
	require.Equal(t, OutcomeLoading, v.Outcome)
	require.Nil(t, v.Product)
	require.Empty(t, v.ErrorMessage)
}

func TestReduceErrorWithMessage(t *testing.T) {
	v := Reduce(Snapshot{ProductLoad: LoadFailed, ErrMsg: "network unreachable"})
	require.Equal(t, OutcomeError, v.Outcome)
	require.Equal(t, "network unreachable", v.ErrorMessage)
}

func TestReduceMissingProductFallsBackToNotFound(t *testing.T) {
	v := Reduce(Snapshot{ProductLoad: LoadDone})
	require.Equal(t, OutcomeError, v.Outcome)
	require.Equal(t, msgNotFound, v.ErrorMessage)
}

func TestReducePopulatedWithoutBatchesShowsNote(t *testing.T) {
	v := Reduce(Snapshot{
		ProductLoad: LoadDone,
		Product:     sampleProduct(),
		BatchLoad:   LoadFailed,
		ShowBatches: true,
	})
	require.Equal(t, OutcomePopulated, v.Outcome)
	require.False(t, v.HasBatchSection)
	require.Empty(t, v.ErrorMessage)
}

func TestReducePopulatedWithBatches(t *testing.T) {
	s := Snapshot{
		ProductLoad: LoadDone,
		Product:     sampleProduct(),
		BatchLoad:   LoadDone,
		Batches: &catalog.BatchSummary{
			ProductID:    "P1",
			TotalBatches: 2,
			Batches:      []catalog.Batch{{BatchNumber: "B1"}, {BatchNumber: "B2"}},
		},
		ShowBatches: true,
	}
	v := Reduce(s)
	require.Equal(t, OutcomePopulated, v.Outcome)
	require.True(t, v.HasBatchSection)
	require.Equal(t, 2, v.TotalBatches)
	require.True(t, v.BatchesExpanded)

	s.ShowBatches = false
	collapsed := Reduce(s)
	require.Equal(t, OutcomePopulated, collapsed.Outcome)
	require.True(t, collapsed.HasBatchSection)
	require.False(t, collapsed.BatchesExpanded)
}

func TestReduceEmptySummaryShowsNote(t *testing.T) {
	v := Reduce(Snapshot{
		ProductLoad: LoadDone,
		Product:     sampleProduct(),
		BatchLoad:   LoadDone,
		Batches:     &catalog.BatchSummary{ProductID: "P1"},
		ShowBatches: true,
	})
	require.Equal(t, OutcomePopulated, v.Outcome)
	require.False(t, v.HasBatchSection)
}

func TestReduceIsDeterministic(t *testing.T) {
	s := Snapshot{
		ProductLoad: LoadDone,
		Product:     sampleProduct(),
		BatchLoad:   LoadDone,
		Batches:     &catalog.BatchSummary{ProductID: "P1", TotalBatches: 1, Batches: []catalog.Batch{{BatchNumber: "B1"}}},
		ShowBatches: true,
	}
	require.Equal(t, Reduce(s), Reduce(s))
}
