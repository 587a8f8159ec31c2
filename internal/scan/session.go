package scan

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/stocklens/stocklens-mobile/internal/nav"
)

// Session hosts one mounted scanner screen. The scanning surface drives it
// through HandleScan and HandleClose; both leave the screen exactly once.
type Session struct {
	gate     *Gate
	nav      nav.Navigator
	onResult func(payload string)
	logger   *slog.Logger
	done     atomic.Bool
}

// NewSession builds a scanner session. onResult is the optional caller
// supplied callback carried in the navigation params.
func NewSession(gate *Gate, navigator nav.Navigator, onResult func(string), logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{gate: gate, nav: navigator, onResult: onResult, logger: logger}
}

// Mount resolves the permission gate, mirroring the screen-mount prompt.
func (s *Session) Mount(ctx context.Context) PermissionState {
	return s.gate.Resolve(ctx)
}

// CameraActive reports whether the capture surface may run.
func (s *Session) CameraActive() bool {
	return !s.done.Load() && s.gate.State() == PermissionGranted
}

// HandleScan relays the decoded payload to the caller-supplied callback (if
// any) and then navigates back, regardless of whether a callback was set.
// Only the first scan wins.
func (s *Session) HandleScan(payload string) {
	if !s.done.CompareAndSwap(false, true) {
		return
	}
	s.logger.Debug("barcode scanned", slog.String("payload", payload))
	if s.onResult != nil {
		s.onResult(payload)
	}
	s.nav.Back()
}

// HandleClose leaves the screen without reporting a result.
func (s *Session) HandleClose() {
	if !s.done.CompareAndSwap(false, true) {
		return
	}
	s.nav.Back()
}
