package pipeline

import (
	"context"
	"time"
)

// idleDuration computes the terminal wait: the time still needed to reach
// the target, clamped at zero. Never negative, so a run that already
// overran its target skips the wait entirely.
func idleDuration(target, elapsed time.Duration) time.Duration {
	remaining := target - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// sleepCtx blocks for d or until ctx is cancelled, whichever comes first.
// Returns the time actually slept.
func sleepCtx(ctx context.Context, d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	start := time.Now()
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
	return time.Since(start)
}
