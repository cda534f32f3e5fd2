// pkg/engine/spawn.go
package engine

import (
	"github.com/arcade-forge/go-skystrike/pkg/entity"
	"github.com/arcade-forge/go-skystrike/pkg/event"
	"github.com/arcade-forge/go-skystrike/pkg/physics"
)

// SpawnEdgeMargin pads the spawn position: enemies appear this far
// past the right edge, and the spawn row keeps this margin from the
// top and bottom.
const SpawnEdgeMargin = 20.0

// spawnEnemy rolls the spawn policy and registers one new enemy just
// off the right edge.
// Note: Called from within locked context.
func (g *Game) spawnEnemy() {
	archetype := g.pickArchetype(g.rng.IntN(101))
	stats := archetype.GetStats()

	pos := physics.Vector2D{
		X: g.screenWidth + SpawnEdgeMargin,
		Y: SpawnEdgeMargin + g.rng.Float64()*(g.screenHeight-2*SpawnEdgeMargin),
	}
	speed := stats.MinSpeed + g.rng.Float64()*(stats.MaxSpeed-stats.MinSpeed)

	e := entity.NewEnemy(archetype, pos, speed)
	// Fresh spawns start their fire cooldown from the spawn instant.
	e.LastFired = g.now

	g.enemies = append(g.enemies, e)
	g.events.Publish(event.NewEnemyEvent(event.EnemySpawned, g, uint64(e.ID), archetype.String()))
}

// pickArchetype maps one percentile roll to an archetype. Gates are
// checked hardest-first so a high score widens the dangerous end of
// the table; the pentagon archetype is deliberately absent.
// Note: Called from within locked context.
func (g *Game) pickArchetype(roll int) entity.Archetype {
	switch {
	case g.score > 200 && roll < 10:
		return entity.Boss
	case g.score > 150 && roll < 20:
		return entity.Homing
	case g.score > 100 && roll < 25:
		return entity.Large
	case g.score > 50 && roll < 50:
		return entity.Medium
	case roll < 30:
		return entity.Circle
	default:
		return entity.Small
	}
}
