// pkg/engine/collision.go
package engine

import (
	"sort"

	"github.com/arcade-forge/go-skystrike/pkg/entity"
	"github.com/arcade-forge/go-skystrike/pkg/event"
)

// resolveCollisions runs the three collision phases in order: player
// bullets against enemies, enemy bodies against the player, enemy
// bullets against the player. The player phases short-circuit on the
// first lethal contact.
// Note: Called from within locked context.
func (g *Game) resolveCollisions() {
	g.resolvePlayerBulletHits()

	if g.resolveEnemyContact() {
		return
	}
	g.resolveEnemyBulletContact()
}

// resolvePlayerBulletHits scans each enemy against the player bullets
// in order. The first intersecting bullet deals one damage and is
// marked spent, then the scan moves to the next enemy; a bullet
// already marked still blocks for later enemies until the batched
// removal at the end of the phase. Removals run in descending index
// order so earlier indexes stay valid.
// Note: Called from within locked context.
func (g *Game) resolvePlayerBulletHits() {
	var deadEnemies []int
	spentBullets := make(map[int]bool)

	for ei, e := range g.enemies {
		enemyBox := e.Bounds()
		for bi, b := range g.playerBullets {
			if !enemyBox.Intersects(b.Bounds()) {
				continue
			}
			spentBullets[bi] = true
			if e.TakeDamage() {
				deadEnemies = append(deadEnemies, ei)
				g.awardKill(e)
			}
			break
		}
	}

	for i := len(deadEnemies) - 1; i >= 0; i-- {
		g.enemies = removeEnemyAt(g.enemies, deadEnemies[i])
	}

	if len(spentBullets) > 0 {
		indexes := make([]int, 0, len(spentBullets))
		for bi := range spentBullets {
			indexes = append(indexes, bi)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(indexes)))
		for _, bi := range indexes {
			g.playerBullets = removeBulletAt(g.playerBullets, bi)
		}
	}
}

// awardKill credits a destroyed enemy's score and publishes the
// destruction and score events.
// Note: Called from within locked context.
func (g *Game) awardKill(e *entity.Enemy) {
	delta := e.Archetype().GetStats().Score
	g.score += delta
	g.events.Publish(event.NewEnemyEvent(event.EnemyDestroyed, g, uint64(e.ID), e.Archetype().String()))
	g.events.Publish(event.NewScoreEvent(g, g.score, delta))
}

// resolveEnemyContact checks enemy bodies against the player ship.
// Any overlap is instantly lethal. Returns true if the game ended.
// Note: Called from within locked context.
func (g *Game) resolveEnemyContact() bool {
	playerBox := g.player.Bounds()
	for _, e := range g.enemies {
		if playerBox.Intersects(e.Bounds()) {
			g.endGame()
			return true
		}
	}
	return false
}

// resolveEnemyBulletContact checks enemy bullets against the player
// ship. Any overlap is instantly lethal; the bullet is consumed.
// Note: Called from within locked context.
func (g *Game) resolveEnemyBulletContact() bool {
	playerBox := g.player.Bounds()
	for bi, b := range g.enemyBullets {
		if playerBox.Intersects(b.Bounds()) {
			g.enemyBullets = removeBulletAt(g.enemyBullets, bi)
			g.endGame()
			return true
		}
	}
	return false
}

func removeEnemyAt(s []*entity.Enemy, i int) []*entity.Enemy {
	return append(s[:i], s[i+1:]...)
}

func removeBulletAt(s []*entity.Bullet, i int) []*entity.Bullet {
	return append(s[:i], s[i+1:]...)
}
