package application

import (
	"context"
	"time"

	"github.com/juju/clock"
)

// Delay blocks for d on clk. It returns ctx.Err() as soon as ctx is done,
// stopping the timer so nothing fires after the caller has gone away.
func Delay(ctx context.Context, clk clock.Clock, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := clk.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}
