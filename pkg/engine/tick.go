// pkg/engine/tick.go
package engine

// Tick advances the simulation by exactly one fixed timestep. The
// phase order within a tick is fixed: drivers, player bullets, enemy
// motion and fire, enemy culling, enemy bullets, then collision
// resolution. Outside the playing state Tick is a no-op, which is how
// pause and game-over freeze the world without racing the loop.
func (g *Game) Tick() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return
	}

	g.now += g.tickInterval
	g.tick++

	g.runSpawnDriver()
	g.runAutoFireDriver()

	g.advancePlayerBullets()
	g.advanceEnemies()
	g.cullEnemies()
	g.advanceEnemyBullets()

	g.resolveCollisions()
}

// runSpawnDriver accumulates tick time against the spawn period and
// emits one enemy per elapsed period.
// Note: Called from within locked context.
func (g *Game) runSpawnDriver() {
	g.spawnAcc += g.tickInterval
	for g.spawnAcc >= SpawnInterval {
		g.spawnAcc -= SpawnInterval
		g.spawnEnemy()
	}
}

// runAutoFireDriver accumulates tick time against the auto-fire
// period and emits one player bullet per elapsed period.
// Note: Called from within locked context.
func (g *Game) runAutoFireDriver() {
	g.autoFireAcc += g.tickInterval
	for g.autoFireAcc >= AutoFireInterval {
		g.autoFireAcc -= AutoFireInterval
		g.firePlayerBullet()
	}
}

// advancePlayerBullets integrates player bullets and drops the ones
// past the right edge.
// Note: Called from within locked context.
func (g *Game) advancePlayerBullets() {
	kept := g.playerBullets[:0]
	for _, b := range g.playerBullets {
		b.Advance()
		if !b.Expired(g.screenWidth, g.screenHeight) {
			kept = append(kept, b)
		}
	}
	g.playerBullets = kept
}

// advanceEnemies runs each enemy's behavior resolver for motion and
// firing, collecting any bullets it emits.
// Note: Called from within locked context.
func (g *Game) advanceEnemies() {
	view := g.worldView()
	for _, e := range g.enemies {
		e.Behavior.Advance(e, view)
		if fired := e.Behavior.Fire(e, view); len(fired) > 0 {
			g.enemyBullets = append(g.enemyBullets, fired...)
		}
	}
}

// cullEnemies drops enemies whose behavior reports them off screen.
// Note: Called from within locked context.
func (g *Game) cullEnemies() {
	view := g.worldView()
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if !e.Behavior.OffScreen(e, view) {
			kept = append(kept, e)
		}
	}
	g.enemies = kept
}

// advanceEnemyBullets integrates enemy bullets and drops the ones
// outside the expanded screen bounds.
// Note: Called from within locked context.
func (g *Game) advanceEnemyBullets() {
	kept := g.enemyBullets[:0]
	for _, b := range g.enemyBullets {
		b.Advance()
		if !b.Expired(g.screenWidth, g.screenHeight) {
			kept = append(kept, b)
		}
	}
	g.enemyBullets = kept
}
