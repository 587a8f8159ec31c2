// Package scan implements the barcode scanner screen: the camera
// permission gate and the one-shot scan result relay.
package scan

import (
	"context"
	"log/slog"
	"sync"
)

// PlatformAndroid is the only platform requiring an explicit runtime grant
// before the camera may render. Every other platform value resolves the
// gate to granted without prompting.
const PlatformAndroid = "android"

// PermissionState is the camera permission machine: unknown until resolved,
// then granted or denied for the lifetime of the screen. There is no
// automatic retry and no way back to unknown.
type PermissionState int

const (
	PermissionUnknown PermissionState = iota
	PermissionGranted
	PermissionDenied
)

func (s PermissionState) String() string {
	switch s {
	case PermissionUnknown:
		return "unknown"
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	}
	return "invalid"
}

// Requester is the platform port that performs the runtime permission
// prompt. Implemented by the host binding layer.
type Requester interface {
	RequestCameraPermission(ctx context.Context) (bool, error)
}

// Gate guards camera activation behind the permission state.
type Gate struct {
	platform  string
	requester Requester
	logger    *slog.Logger

	mu    sync.Mutex
	state PermissionState
}

// NewGate builds a Gate for the given platform.
func NewGate(platform string, requester Requester, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{platform: platform, requester: requester, logger: logger}
}

// Resolve performs the one-time transition out of unknown and returns the
// resulting state. Subsequent calls return the settled state untouched.
// A failing permission request degrades to denied.
func (g *Gate) Resolve(ctx context.Context) PermissionState {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != PermissionUnknown {
		return g.state
	}
	if g.platform != PlatformAndroid {
		g.state = PermissionGranted
		return g.state
	}
	if g.requester == nil {
		g.logger.Warn("camera permission requester missing, denying")
		g.state = PermissionDenied
		return g.state
	}
	granted, err := g.requester.RequestCameraPermission(ctx)
	if err != nil {
		g.logger.Warn("camera permission request failed", slog.Any("error", err))
		g.state = PermissionDenied
		return g.state
	}
	if granted {
		g.state = PermissionGranted
	} else {
		g.state = PermissionDenied
	}
	return g.state
}

// State returns the current permission state without resolving.
func (g *Gate) State() PermissionState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}
