// Package clock provides time helpers for the feed reconnect loop.
package clock

import (
	"context"
	"time"
)

// Sleep waits for the duration or returns early if the context is canceled.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
