// pkg/engine/snapshot.go
package engine

import (
	"github.com/arcade-forge/go-skystrike/pkg/entity"
	"github.com/arcade-forge/go-skystrike/pkg/physics"
)

// Snapshot is a render- and test-friendly copy of the world at one
// tick. Everything in it is a value copy; mutating a snapshot never
// touches the live simulation.
type Snapshot struct {
	Tick         uint64
	State        State
	Score        int
	ScreenWidth  float64
	ScreenHeight float64

	Player        PlayerState
	Enemies       []EnemyState
	PlayerBullets []BulletState
	EnemyBullets  []BulletState
}

// PlayerState is the player ship's visible state
type PlayerState struct {
	Position physics.Vector2D
	Size     physics.Vector2D
	Health   int
}

// EnemyState is one enemy's visible state
type EnemyState struct {
	ID        entity.ID
	Archetype entity.Archetype
	Position  physics.Vector2D
	Size      physics.Vector2D
	Health    int
}

// BulletState is one bullet's visible state
type BulletState struct {
	ID         entity.ID
	Position   physics.Vector2D
	Size       physics.Vector2D
	FromPlayer bool
}

// Snapshot copies the current world state under the read lock.
func (g *Game) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := &Snapshot{
		Tick:         g.tick,
		State:        g.state,
		Score:        g.score,
		ScreenWidth:  g.screenWidth,
		ScreenHeight: g.screenHeight,
		Player: PlayerState{
			Position: g.player.Position,
			Size:     g.player.Size,
			Health:   g.player.Health,
		},
		Enemies:       make([]EnemyState, 0, len(g.enemies)),
		PlayerBullets: make([]BulletState, 0, len(g.playerBullets)),
		EnemyBullets:  make([]BulletState, 0, len(g.enemyBullets)),
	}

	for _, e := range g.enemies {
		snap.Enemies = append(snap.Enemies, EnemyState{
			ID:        e.ID,
			Archetype: e.Archetype(),
			Position:  e.Position,
			Size:      e.Size,
			Health:    e.Health,
		})
	}
	for _, b := range g.playerBullets {
		snap.PlayerBullets = append(snap.PlayerBullets, bulletState(b))
	}
	for _, b := range g.enemyBullets {
		snap.EnemyBullets = append(snap.EnemyBullets, bulletState(b))
	}
	return snap
}

func bulletState(b *entity.Bullet) BulletState {
	return BulletState{
		ID:         b.ID,
		Position:   b.Position,
		Size:       b.Size,
		FromPlayer: b.FromPlayer,
	}
}
