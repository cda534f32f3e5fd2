// pkg/engine/loop.go
package engine

import (
	"context"
	"time"

	"github.com/arcade-forge/go-skystrike/pkg/logging"
)

// Run drives the simulation at the configured tick rate until the
// context is cancelled or the drivers halt, which happens on Stop and
// on the game-over transition. One loop serves all three periodic
// cadences; the spawn and auto-fire drivers ride the tick through
// their phase accumulators, so halting the loop halts everything
// atomically. Restarting a session means calling Start and then Run
// again.
func (g *Game) Run(ctx context.Context) {
	logger := logging.NewLogger()
	logger.Info(ctx, "game loop starting",
		"tick_interval", g.tickInterval.String())

	// done belongs to the session this call serves. Start swaps in a
	// fresh channel on restart; a halted loop must exit on its own
	// session's channel, not the replacement's.
	done := g.doneChan()

	ticker := time.NewTicker(g.tickInterval)
	defer ticker.Stop()

	for {
		// A pending halt wins over a pending tick.
		select {
		case <-done:
			logger.Info(ctx, "game loop stopped",
				"reason", "drivers halted",
				"final_score", g.Score(),
				"state", g.State().String())
			return
		default:
		}

		select {
		case <-ctx.Done():
			logger.Info(ctx, "game loop stopped", "reason", "context cancelled")
			return
		case <-done:
			logger.Info(ctx, "game loop stopped",
				"reason", "drivers halted",
				"final_score", g.Score(),
				"state", g.State().String())
			return
		case <-ticker.C:
			g.Tick()
		}
	}
}

// doneChan reads the current done channel under the lock; Start
// replaces the channel on restart.
func (g *Game) doneChan() <-chan struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.done
}
