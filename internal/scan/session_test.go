package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stocklens/stocklens-mobile/internal/nav"
)

func scannerStack() *nav.Stack {
	s := nav.NewStack(nav.Route{Name: "product_list"})
	s.Push(nav.Route{Name: nav.ScreenBarcodeScanner})
	return s
}

func TestScanRelaysPayloadThenNavigatesBackOnce(t *testing.T) {
	stack := scannerStack()
	var payloads []string
	gate := NewGate("ios", nil, nil)
	session := NewSession(gate, stack, func(p string) { payloads = append(payloads, p) }, nil)
	session.Mount(context.Background())
	require.True(t, session.CameraActive())

	session.HandleScan("8901030875190")
	session.HandleScan("0000000000000")

	require.Equal(t, []string{"8901030875190"}, payloads)
	require.Equal(t, 1, stack.Depth())
	require.Equal(t, "product_list", stack.Current().Name)
	require.False(t, session.CameraActive())
}

func TestScanWithoutCallbackStillNavigatesBack(t *testing.T) {
	stack := scannerStack()
	gate := NewGate("ios", nil, nil)
	session := NewSession(gate, stack, nil, nil)
	session.Mount(context.Background())

	session.HandleScan("8901030875190")
	require.Equal(t, 1, stack.Depth())
}

func TestCloseNavigatesBackWithoutCallback(t *testing.T) {
	stack := scannerStack()
	called := false
	gate := NewGate("ios", nil, nil)
	session := NewSession(gate, stack, func(string) { called = true }, nil)
	session.Mount(context.Background())

	session.HandleClose()
	require.False(t, called)
	require.Equal(t, 1, stack.Depth())

	// A stray scan after close must not fire the callback or pop again.
	session.HandleScan("8901030875190")
	require.False(t, called)
	require.Equal(t, 1, stack.Depth())
}

func TestCameraNeverActivatesWhenDenied(t *testing.T) {
	stack := scannerStack()
	gate := NewGate(PlatformAndroid, &scriptedRequester{granted: false}, nil)
	session := NewSession(gate, stack, nil, nil)

	require.False(t, session.CameraActive())
	require.Equal(t, PermissionDenied, session.Mount(context.Background()))
	require.False(t, session.CameraActive())
}
