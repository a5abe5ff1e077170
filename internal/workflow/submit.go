package workflow

import (
	"context"
	"time"
)

// Submitter executes a validated money-movement request. A nil error means
// the movement completed. Implementations must respect ctx cancellation.
type Submitter interface {
	Submit(ctx context.Context, req Request) error
}

// SimulatedSubmitter stands in for the payment rail. It waits for the
// configured latency and then reports success unconditionally; no ledger of
// record is debited or credited.
type SimulatedSubmitter struct {
	Latency time.Duration
}

// Submit waits out the latency, honoring ctx cancellation.
func (s *SimulatedSubmitter) Submit(ctx context.Context, req Request) error {
	timer := time.NewTimer(s.Latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
