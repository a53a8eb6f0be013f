package service

import (
	"context"
	"sync"
	"time"

	"vastburgers/internal/domain"
)

// StatusTracker drives the simulated fulfillment progression shown on the
// order history view. The progression is strictly monotonic:
// Received -> Processing -> Shipped -> Delivered -> Completed, one step
// per tick, never skipped or reordered. It is purely cosmetic and holds
// no relation to the Order records kept by the remote service.
type StatusTracker struct {
	mu       sync.Mutex
	current  domain.OrderStatus
	interval time.Duration
	cancel   context.CancelFunc
}

// NewStatusTracker returns a tracker at Received. interval is the delay
// between transitions; any positive value preserves the contract.
func NewStatusTracker(interval time.Duration) *StatusTracker {
	return &StatusTracker{
		current:  domain.StatusReceived,
		interval: interval,
	}
}

func (t *StatusTracker) Current() domain.OrderStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Tick advances to the successor status. It reports whether a further
// tick can still advance: false means the terminal status is reached and
// the caller should stop scheduling.
func (t *StatusTracker) Tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, ok := t.current.Next()
	if !ok {
		return false
	}
	t.current = next

	_, more := next.Next()
	return more
}

// Run ticks on a fixed interval until the progression completes or ctx is
// cancelled. The ticker is released on every exit path.
func (t *StatusTracker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !t.Tick() {
				return
			}
		}
	}
}

// Restart begins a fresh simulation from Received, cancelling any run
// still in progress. Called after a confirmed checkout.
func (t *StatusTracker) Restart() {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	t.current = domain.StatusReceived
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.mu.Unlock()

	go t.Run(ctx)
}

// Stop cancels a running simulation. The current status is kept.
func (t *StatusTracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
