// pkg/render/engo/hud.go
package engo

import (
	"fmt"

	"github.com/EngoEngine/ecs"
	engoengine "github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/arcade-forge/go-skystrike/pkg/engine"
)

// HUDSystem surfaces the score and lifecycle state in the window
// title. Sprite generation covers the playfield; text rendering would
// need a bundled font asset, which the game deliberately avoids.
type HUDSystem struct {
	game *engine.Game

	lastTitle string
}

// NewHUDSystem creates a new HUD system
func NewHUDSystem(game *engine.Game) *HUDSystem {
	return &HUDSystem{game: game}
}

// Add satisfies the ecs.System interface
func (hud *HUDSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}

// Update refreshes the title when the score or state changes.
func (hud *HUDSystem) Update(dt float32) {
	title := hud.titleFor(hud.game.Snapshot())
	if title != hud.lastTitle {
		engoengine.SetTitle(title)
		hud.lastTitle = title
	}
}

// titleFor formats the window title for one snapshot.
func (hud *HUDSystem) titleFor(snap *engine.Snapshot) string {
	switch snap.State {
	case engine.StateMenu:
		return "SkyStrike - press Enter to start"
	case engine.StatePaused:
		return fmt.Sprintf("SkyStrike - paused - score %d", snap.Score)
	case engine.StateGameOver:
		return fmt.Sprintf("SkyStrike - game over - final score %d - Enter restarts", snap.Score)
	default:
		return fmt.Sprintf("SkyStrike - score %d", snap.Score)
	}
}
