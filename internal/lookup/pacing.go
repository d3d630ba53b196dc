package lookup

import (
	"context"
	"time"
)

// DefaultInterval is the pause between rows, about three requests a second.
const DefaultInterval = 340 * time.Millisecond

// SleepWithContext blocks for d, returning early with the context error if ctx
// is cancelled first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
