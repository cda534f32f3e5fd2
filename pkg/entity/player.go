// pkg/entity/player.go
package entity

import (
	"github.com/arcade-forge/go-skystrike/pkg/physics"
)

// Player geometry. The ship sits on a fixed horizontal track near the
// left edge and only its vertical position is under external control.
const (
	PlayerX      = 40.0
	PlayerWidth  = 30.0
	PlayerHeight = 30.0
)

// Player represents the player's ship. Health starts at 1 and is
// never decremented during updates: every lethal collision ends the
// game outright, the field only exists as the instant-death trigger.
type Player struct {
	Position physics.Vector2D
	Size     physics.Vector2D
	Health   int
}

// NewPlayer creates a player ship on the left edge, vertically
// centered on the given screen.
func NewPlayer(screenHeight float64) *Player {
	return &Player{
		Position: physics.Vector2D{X: PlayerX, Y: screenHeight / 2},
		Size:     physics.Vector2D{X: PlayerWidth, Y: PlayerHeight},
		Health:   1,
	}
}

// SetVerticalPosition moves the ship to the given vertical position,
// clamped so the ship stays fully within the screen.
func (p *Player) SetVerticalPosition(y, screenHeight float64) {
	half := p.Size.Y / 2
	if y < half {
		y = half
	}
	if y > screenHeight-half {
		y = screenHeight - half
	}
	p.Position.Y = y
}

// MoveVertical shifts the ship vertically by delta with the same
// clamping as SetVerticalPosition.
func (p *Player) MoveVertical(delta, screenHeight float64) {
	p.SetVerticalPosition(p.Position.Y+delta, screenHeight)
}

// Bounds returns the ship's collision box
func (p *Player) Bounds() physics.Rect {
	return physics.BoxAround(p.Position, p.Size)
}

// MuzzlePosition returns where player bullets spawn: the ship's right
// edge at its vertical center.
func (p *Player) MuzzlePosition() physics.Vector2D {
	return physics.Vector2D{X: p.Position.X + p.Size.X/2, Y: p.Position.Y}
}
