package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPushBack(t *testing.T) {
	s := NewStack(Route{Name: "product_list"})
	require.Equal(t, 1, s.Depth())

	s.Push(Route{Name: ScreenProductDetail, Params: Params{ProductID: "P1"}})
	require.Equal(t, 2, s.Depth())
	require.Equal(t, ScreenProductDetail, s.Current().Name)
	require.Equal(t, "P1", s.Current().Params.ProductID)

	s.Back()
	require.Equal(t, 1, s.Depth())
	require.Equal(t, "product_list", s.Current().Name)
}

func TestBackNeverPopsRoot(t *testing.T) {
	s := NewStack(Route{Name: "product_list"})
	s.Back()
	s.Back()
	require.Equal(t, 1, s.Depth())
	require.Equal(t, "product_list", s.Current().Name)
}

func TestParamsCarryScanCallback(t *testing.T) {
	var got string
	s := NewStack(Route{Name: "product_list"})
	s.Push(Route{Name: ScreenBarcodeScanner, Params: Params{OnScan: func(p string) { got = p }}})

	s.Current().Params.OnScan("8901030875190")
	require.Equal(t, "8901030875190", got)
}
