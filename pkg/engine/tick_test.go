// pkg/engine/tick_test.go
package engine

import (
	"testing"
	"time"

	"github.com/arcade-forge/go-skystrike/pkg/entity"
	"github.com/arcade-forge/go-skystrike/pkg/physics"
)

// ticksUntil returns the smallest tick count at which an accumulator
// fed one tickInterval per tick reaches period. Computed from the
// constants so the tests stay correct if the tick rate changes.
func ticksUntil(tickInterval, period time.Duration) int {
	n := 0
	var acc time.Duration
	for acc < period {
		acc += tickInterval
		n++
	}
	return n
}

// expectedFires simulates the driver accumulator over totalTicks and
// counts how many periods elapse.
func expectedFires(tickInterval, period time.Duration, totalTicks int) int {
	fires := 0
	var acc time.Duration
	for i := 0; i < totalTicks; i++ {
		acc += tickInterval
		for acc >= period {
			acc -= period
			fires++
		}
	}
	return fires
}

func TestTick_NoopOutsidePlaying(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
	}{
		{name: "menu", setup: func(g *Game) {}},
		{name: "paused", setup: func(g *Game) { g.Start(); g.Pause() }},
		{name: "game_over", setup: func(g *Game) { g.Start(); g.endGameForTest() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame()
			tt.setup(g)
			before := g.Snapshot().Tick
			g.Tick()
			if got := g.Snapshot().Tick; got != before {
				t.Errorf("tick advanced from %d to %d", before, got)
			}
		})
	}
}

func TestTick_AutoFireCadence(t *testing.T) {
	g := newTestGame()
	g.Start()

	first := ticksUntil(g.tickInterval, AutoFireInterval)
	for i := 0; i < first-1; i++ {
		g.Tick()
	}
	if n := len(g.Snapshot().PlayerBullets); n != 0 {
		t.Fatalf("bullets = %d before the first period elapsed, expected 0", n)
	}

	g.Tick()
	if n := len(g.Snapshot().PlayerBullets); n != 1 {
		t.Fatalf("bullets = %d at the first period, expected 1", n)
	}

	// Keep the run short of the first spawn so the board stays empty
	// and no bullet can collide or expire.
	total := ticksUntil(g.tickInterval, SpawnInterval) - 1
	for i := first; i < total; i++ {
		g.Tick()
	}
	want := expectedFires(g.tickInterval, AutoFireInterval, total)
	if n := len(g.Snapshot().PlayerBullets); n != want {
		t.Errorf("bullets = %d after %d ticks, expected %d", n, total, want)
	}
}

func TestTick_SpawnCadence(t *testing.T) {
	g := newTestGame()
	g.Start()

	first := ticksUntil(g.tickInterval, SpawnInterval)
	for i := 0; i < first-1; i++ {
		g.Tick()
	}
	if n := len(g.Snapshot().Enemies); n != 0 {
		t.Fatalf("enemies = %d before the first period elapsed, expected 0", n)
	}

	g.Tick()
	if n := len(g.Snapshot().Enemies); n != 1 {
		t.Fatalf("enemies = %d at the first period, expected 1", n)
	}
}

func TestTick_ResumeResetsDriverPhase(t *testing.T) {
	g := newTestGame()
	g.Start()

	// Accumulate partial auto-fire phase, then pause and resume.
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	g.Pause()
	g.Resume()

	// The driver restarts from a zero offset: a full period must
	// elapse again before the next bullet.
	first := ticksUntil(g.tickInterval, AutoFireInterval)
	for i := 0; i < first-1; i++ {
		g.Tick()
	}
	if n := len(g.Snapshot().PlayerBullets); n != 0 {
		t.Fatalf("bullets = %d before a full post-resume period, expected 0", n)
	}
	g.Tick()
	if n := len(g.Snapshot().PlayerBullets); n != 1 {
		t.Errorf("bullets = %d at the post-resume period, expected 1", n)
	}
}

func TestTick_EnemiesAdvanceAndCull(t *testing.T) {
	g := newTestGame()
	g.Start()
	e := addEnemy(g, entity.Small, 300, 100, 2)

	g.Tick()
	if e.Position.X != 298 {
		t.Errorf("enemy x = %v, expected 298", e.Position.X)
	}

	// Park an enemy past the despawn margin; the next tick drops it.
	addEnemy(g, entity.Small, -entity.DespawnMargin-0.5, 100, 2)
	g.Tick()
	snap := g.Snapshot()
	if len(snap.Enemies) != 1 {
		t.Fatalf("enemies = %d after cull, expected 1", len(snap.Enemies))
	}
	if snap.Enemies[0].ID != e.ID {
		t.Error("wrong enemy culled")
	}
}

func TestTick_AlignedAutoFireDestroysEnemy(t *testing.T) {
	g := newTestGame()
	g.Start()

	// A small enemy parked on the player's row: auto-fire alone must
	// destroy it well before the first random spawn.
	row := g.Snapshot().Player.Position.Y
	addEnemy(g, entity.Small, 200, row, 1)

	var destroyed bool
	limit := ticksUntil(g.tickInterval, SpawnInterval) - 1
	for i := 0; i < limit; i++ {
		g.Tick()
		if len(g.Snapshot().Enemies) == 0 {
			destroyed = true
			break
		}
	}

	if !destroyed {
		t.Fatal("aligned enemy survived the full pre-spawn window")
	}
	if got := g.Score(); got != entity.Small.GetStats().Score {
		t.Errorf("score = %d, expected %d", got, entity.Small.GetStats().Score)
	}
	if g.State() != StatePlaying {
		t.Errorf("state = %v, expected playing", g.State())
	}
}

func TestTick_EnemyContactEndsGame(t *testing.T) {
	g := newTestGame()
	g.Start()
	addEnemy(g, entity.Small, entity.PlayerX+1, g.Snapshot().Player.Position.Y, 1)

	g.Tick()
	if g.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over", g.State())
	}

	// Drivers are halted: further ticks are no-ops.
	before := g.Snapshot().Tick
	g.Tick()
	if g.Snapshot().Tick != before {
		t.Error("tick advanced after game over")
	}
}

func TestTick_EnemyBulletContactEndsGame(t *testing.T) {
	g := newTestGame()
	g.Start()

	row := g.Snapshot().Player.Position.Y
	g.enemyBullets = append(g.enemyBullets,
		entity.NewEnemyBullet(physics.Vector2D{X: entity.PlayerX + 5, Y: row}, 0))

	g.Tick()
	if g.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over", g.State())
	}
	if n := len(g.Snapshot().EnemyBullets); n != 0 {
		t.Errorf("enemy bullets = %d, expected the lethal bullet consumed", n)
	}
}
