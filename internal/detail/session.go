package detail

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/stocklens/stocklens-mobile/internal/catalog"
	"github.com/stocklens/stocklens-mobile/internal/nav"
)

// ProductAPI is the slice of the product API the session consumes.
type ProductAPI interface {
	FetchProduct(ctx context.Context, id string) (catalog.Product, error)
	FetchBatchSummary(ctx context.Context, productID string) (catalog.BatchSummary, error)
	DeleteProduct(ctx context.Context, id string) error
}

// userMessenger is implemented by errors that carry user-facing text.
type userMessenger interface {
	UserMessage() string
}

// Session owns the state of one mounted product detail screen. Created on
// mount, closed on unmount; state never survives across mounts.
type Session struct {
	api      ProductAPI
	nav      nav.Navigator
	logger   *slog.Logger
	onUpdate func(View)

	mu     sync.Mutex
	state  Snapshot
	gen    uint64
	closed bool
	cancel context.CancelFunc

	loaders sync.WaitGroup
}

// NewSession builds a Session. navigator may be nil when the host handles
// navigation itself; onUpdate may be nil when the host polls View instead.
func NewSession(api ProductAPI, navigator nav.Navigator, logger *slog.Logger, onUpdate func(View)) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		api:      api,
		nav:      navigator,
		logger:   logger,
		onUpdate: onUpdate,
		state:    Snapshot{ShowBatches: true},
	}
}

// Start kicks off the product fetch and the batch fetch concurrently for
// the given identifier. Calling Start again (identifier change) supersedes
// any loads still in flight: their results are dropped on arrival.
func (s *Session) Start(ctx context.Context, productID string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.state = Snapshot{
		ProductID:   productID,
		ProductLoad: LoadInFlight,
		BatchLoad:   LoadInFlight,
		ShowBatches: s.state.ShowBatches,
	}
	view := Reduce(s.state)
	s.mu.Unlock()
	s.publish(view)

	s.loaders.Add(2)
	go s.loadProduct(loadCtx, gen, productID)
	go s.loadBatches(loadCtx, gen, productID)
}

// loadProduct is the only writer of Product, ProductLoad and ErrMsg.
func (s *Session) loadProduct(ctx context.Context, gen uint64, id string) {
	defer s.loaders.Done()
	product, err := s.api.FetchProduct(ctx, id)

	s.mu.Lock()
	if !s.live(gen) {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.state.ProductLoad = LoadFailed
		s.state.Product = nil
		s.state.ErrMsg = userMessage(err)
		s.logger.Error("product load failed",
			slog.String("product_id", id), slog.Any("error", err))
	} else {
		s.state.ProductLoad = LoadDone
		s.state.Product = &product
		s.state.ErrMsg = ""
	}
	view := Reduce(s.state)
	s.mu.Unlock()
	s.publish(view)
}

// loadBatches is the only writer of Batches and BatchLoad. Its failures
// are logged and swallowed: a missing batch summary must never error out
// the product view.
func (s *Session) loadBatches(ctx context.Context, gen uint64, productID string) {
	defer s.loaders.Done()
	summary, err := s.api.FetchBatchSummary(ctx, productID)

	s.mu.Lock()
	if !s.live(gen) {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.state.BatchLoad = LoadFailed
		s.state.Batches = nil
		s.logger.Warn("batch summary load failed",
			slog.String("product_id", productID), slog.Any("error", err))
	} else {
		s.state.BatchLoad = LoadDone
		s.state.Batches = &summary
	}
	view := Reduce(s.state)
	s.mu.Unlock()
	s.publish(view)
}

// live reports whether a loader completion may still apply. Callers hold mu.
func (s *Session) live(gen uint64) bool {
	return !s.closed && gen == s.gen
}

// ToggleBatches flips the batch section disclosure.
func (s *Session) ToggleBatches() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.state.ShowBatches = !s.state.ShowBatches
	view := Reduce(s.state)
	s.mu.Unlock()
	s.publish(view)
}

// Delete removes the product. A failure is returned for alert display and
// mutates nothing; a success pops navigation since the screen's product is
// gone.
func (s *Session) Delete(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.New("detail: session closed")
	}
	id := s.state.ProductID
	s.mu.Unlock()

	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return err
	}
	if s.nav != nil {
		s.nav.Back()
	}
	return nil
}

// View returns the current render decision.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Reduce(s.state)
}

// Close marks the screen unmounted. In-flight requests are cancelled and
// any completion that still arrives is dropped without touching state.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
}

func (s *Session) publish(view View) {
	if s.onUpdate != nil {
		s.onUpdate(view)
	}
}

// Wait blocks until all launched loaders have returned. Intended for the
// demo binary and tests; UI hosts rely on onUpdate instead.
func (s *Session) Wait() {
	s.loaders.Wait()
}

// userMessage converts a fetch failure into the text the error view shows.
func userMessage(err error) string {
	if errors.Is(err, catalog.ErrProductNotFound) {
		return msgNotFound
	}
	var um userMessenger
	if errors.As(err, &um) && um.UserMessage() != "" {
		return um.UserMessage()
	}
	return msgLoadError
}
