// pkg/entity/enemy.go
package entity

import (
	"time"

	"github.com/arcade-forge/go-skystrike/pkg/physics"
)

// Enemy represents one hostile ship. Speed is rolled once at spawn
// time and never recalculated; all archetype-specific motion state
// lives inside the Behavior variant.
type Enemy struct {
	ID        ID
	Position  physics.Vector2D
	Size      physics.Vector2D
	Speed     float64
	Health    int
	LastFired time.Duration
	Behavior  Behavior
}

// NewEnemy creates an enemy of the given archetype at the given
// position with the given fixed speed. The caller is expected to roll
// the speed from the archetype's range.
func NewEnemy(archetype Archetype, pos physics.Vector2D, speed float64) *Enemy {
	stats := archetype.GetStats()
	return &Enemy{
		ID:       GenerateID(),
		Position: pos,
		Size:     stats.Size,
		Speed:    speed,
		Health:   stats.Health,
		Behavior: newBehavior(archetype, pos),
	}
}

// Archetype returns the enemy's behavioral class
func (e *Enemy) Archetype() Archetype {
	return e.Behavior.Archetype()
}

// Bounds returns the enemy's collision box
func (e *Enemy) Bounds() physics.Rect {
	return physics.BoxAround(e.Position, e.Size)
}

// MuzzlePosition returns where this enemy's bullets spawn: its left
// edge at its current vertical center.
func (e *Enemy) MuzzlePosition() physics.Vector2D {
	return physics.Vector2D{X: e.Position.X - e.Size.X/2, Y: e.Position.Y}
}

// TakeDamage applies one point of damage and reports whether the
// enemy was destroyed by it.
func (e *Enemy) TakeDamage() bool {
	e.Health--
	return e.Health <= 0
}
