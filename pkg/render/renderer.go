// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/arcade-forge/go-skystrike/pkg/engine"
	"github.com/arcade-forge/go-skystrike/pkg/logging"
)

// Renderer draws one world snapshot per frame. Implementations own
// their output medium; the engine never calls them directly, a
// frontend loop pulls snapshots and pushes them here.
type Renderer interface {
	// Render draws the given snapshot.
	Render(snap *engine.Snapshot)
	// Close releases any output resources.
	Close() error
}

// NullRenderer discards frames, logging them at debug level. Useful
// for headless runs and bot harnesses.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Render implements Renderer.
func (r *NullRenderer) Render(snap *engine.Snapshot) {
	ctx := context.Background()
	if snap == nil {
		r.logger.Debug(ctx, "Render called with nil snapshot")
		return
	}
	r.logger.Debug(ctx, "Render called",
		"tick", snap.Tick,
		"state", snap.State.String(),
		"score", snap.Score,
		"enemies", len(snap.Enemies),
	)
}

// Close implements Renderer.
func (r *NullRenderer) Close() error { return nil }
