// pkg/entity/behavior_test.go
package entity

import (
	"math"
	"testing"
	"time"

	"github.com/arcade-forge/go-skystrike/pkg/physics"
)

// testView returns a WorldView for a 480x320 screen.
func testView(now time.Duration) WorldView {
	return WorldView{
		ScreenWidth:    480,
		ScreenHeight:   320,
		PlayerPosition: physics.Vector2D{X: PlayerX, Y: 160},
		Now:            now,
	}
}

func TestSmallBehavior_LinearMotion(t *testing.T) {
	e := NewEnemy(Small, physics.Vector2D{X: 100, Y: 150}, 2.0)
	e.Behavior.Advance(e, testView(0))
	if e.Position.X != 98 {
		t.Errorf("x = %v, expected 98", e.Position.X)
	}
	if e.Position.Y != 150 {
		t.Errorf("y = %v, expected unchanged 150", e.Position.Y)
	}
}

func TestSmallBehavior_NeverFires(t *testing.T) {
	e := NewEnemy(Small, physics.Vector2D{X: 100, Y: 150}, 2.0)
	view := testView(time.Hour)
	if bullets := e.Behavior.Fire(e, view); bullets != nil {
		t.Errorf("expected no bullets, got %d", len(bullets))
	}
}

func TestBehavior_OffScreen(t *testing.T) {
	view := testView(0)
	tests := []struct {
		name      string
		archetype Archetype
		pos       physics.Vector2D
		expected  bool
	}{
		{name: "small_on_screen", archetype: Small, pos: physics.Vector2D{X: 100, Y: 100}, expected: false},
		{name: "small_at_margin_kept", archetype: Small, pos: physics.Vector2D{X: -DespawnMargin, Y: 100}, expected: false},
		{name: "small_past_margin", archetype: Small, pos: physics.Vector2D{X: -DespawnMargin - 1, Y: 100}, expected: true},
		{name: "homing_past_left", archetype: Homing, pos: physics.Vector2D{X: -21, Y: 100}, expected: true},
		{name: "homing_above_screen", archetype: Homing, pos: physics.Vector2D{X: 100, Y: -21}, expected: true},
		{name: "homing_below_screen", archetype: Homing, pos: physics.Vector2D{X: 100, Y: 341}, expected: true},
		{name: "homing_on_screen", archetype: Homing, pos: physics.Vector2D{X: 100, Y: 100}, expected: false},
		{name: "boss_past_left", archetype: Boss, pos: physics.Vector2D{X: -25, Y: 100}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnemy(tt.archetype, tt.pos, 1.0)
			if got := e.Behavior.OffScreen(e, view); got != tt.expected {
				t.Errorf("OffScreen() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMediumBehavior_FreezeCycle(t *testing.T) {
	const tick = time.Second / 60
	view := testView(0)
	center := view.ScreenWidth / 2

	// Start just outside the stop range, moving 1pt per tick.
	e := NewEnemy(Medium, physics.Vector2D{X: center + MediumStopRange + 0.5, Y: 100}, 1.0)
	behavior := e.Behavior.(*MediumBehavior)

	// First tick: still outside the range, moves left into it.
	e.Behavior.Advance(e, view)
	if behavior.Stopped {
		t.Fatal("froze before reaching the stop range")
	}

	// Second tick: inside the range, freezes without moving.
	view.Now += tick
	xBefore := e.Position.X
	e.Behavior.Advance(e, view)
	if !behavior.Stopped {
		t.Fatal("expected freeze at horizontal center")
	}
	if e.Position.X != xBefore {
		t.Errorf("moved while freezing: %v -> %v", xBefore, e.Position.X)
	}
	freezeStart := view.Now

	// Stays frozen for the full second of simulated time.
	for view.Now-freezeStart < MediumFreezeDuration {
		view.Now += tick
		e.Behavior.Advance(e, view)
	}
	if behavior.Stopped {
		t.Error("still frozen after the freeze duration elapsed")
	}
	if e.Position.X != xBefore {
		t.Errorf("position changed during freeze: %v -> %v", xBefore, e.Position.X)
	}

	// Resumes leftward motion and never re-freezes, even while still
	// inside the stop range.
	view.Now += tick
	e.Behavior.Advance(e, view)
	if e.Position.X != xBefore-1 {
		t.Errorf("x = %v, expected %v after resuming", e.Position.X, xBefore-1)
	}
	if behavior.Stopped {
		t.Error("re-froze after resuming")
	}
}

func TestMediumBehavior_FiresTwoDiagonalsWhileFrozen(t *testing.T) {
	view := testView(10 * time.Second)
	e := NewEnemy(Medium, physics.Vector2D{X: view.ScreenWidth / 2, Y: 100}, 1.0)
	behavior := e.Behavior.(*MediumBehavior)

	// Not frozen: no shots regardless of the interval.
	if bullets := e.Behavior.Fire(e, view); bullets != nil {
		t.Fatalf("fired %d bullets while moving", len(bullets))
	}

	behavior.Stopped = true
	bullets := e.Behavior.Fire(e, view)
	if len(bullets) != 2 {
		t.Fatalf("expected 2 bullets, got %d", len(bullets))
	}
	want := MediumSpreadFactor * EnemyBulletSpeed
	if bullets[0].Velocity.Y != -want || bullets[1].Velocity.Y != want {
		t.Errorf("vertical components = %v, %v, expected ±%v",
			bullets[0].Velocity.Y, bullets[1].Velocity.Y, want)
	}
	for _, b := range bullets {
		if b.Velocity.X != -EnemyBulletSpeed {
			t.Errorf("horizontal component = %v, expected %v", b.Velocity.X, -EnemyBulletSpeed)
		}
		if b.FromPlayer {
			t.Error("enemy bullet marked as player-owned")
		}
	}
	if e.LastFired != view.Now {
		t.Errorf("LastFired = %v, expected %v", e.LastFired, view.Now)
	}

	// Interval not yet elapsed: quiet.
	view.Now += time.Second
	if bullets := e.Behavior.Fire(e, view); bullets != nil {
		t.Errorf("fired again after only 1s, interval is %v", Medium.GetStats().FireInterval)
	}
}

func TestLargeBehavior_ThreeWaySpread(t *testing.T) {
	view := testView(10 * time.Second)
	e := NewEnemy(Large, physics.Vector2D{X: 200, Y: 100}, 1.0)

	bullets := e.Behavior.Fire(e, view)
	if len(bullets) != 3 {
		t.Fatalf("expected 3 bullets, got %d", len(bullets))
	}

	// One straight shot (zero velocity vector, scalar speed), two
	// diagonals.
	straight := bullets[0]
	if straight.Velocity != (physics.Vector2D{}) {
		t.Errorf("straight shot velocity = %v, expected zero vector", straight.Velocity)
	}
	if straight.Speed != EnemyBulletSpeed {
		t.Errorf("straight shot speed = %v, expected %v", straight.Speed, EnemyBulletSpeed)
	}
	want := LargeSpreadFactor * EnemyBulletSpeed
	if bullets[1].Velocity.Y != -want || bullets[2].Velocity.Y != want {
		t.Errorf("diagonal components = %v, %v, expected ±%v",
			bullets[1].Velocity.Y, bullets[2].Velocity.Y, want)
	}

	// All spawn at the enemy's left edge at its vertical center.
	muzzle := e.MuzzlePosition()
	for i, b := range bullets {
		if b.Position != muzzle {
			t.Errorf("bullet %d spawned at %v, expected %v", i, b.Position, muzzle)
		}
	}
}

func TestBehavior_FireGate(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Duration
		x        float64
		expected int
	}{
		{name: "interval_not_elapsed", now: 500 * time.Millisecond, x: 200, expected: 0},
		{name: "interval_exactly_elapsed", now: time.Second, x: 200, expected: 3},
		{name: "too_close_to_right_edge", now: 10 * time.Second, x: 430, expected: 0},
		{name: "just_inside_firing_range", now: 10 * time.Second, x: 429.9, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := testView(tt.now)
			e := NewEnemy(Large, physics.Vector2D{X: tt.x, Y: 100}, 1.0)
			if got := len(e.Behavior.Fire(e, view)); got != tt.expected {
				t.Errorf("fired %d bullets, expected %d", got, tt.expected)
			}
		})
	}
}

func TestBossBehavior_Oscillation(t *testing.T) {
	view := testView(0)
	e := NewEnemy(Boss, physics.Vector2D{X: 400, Y: 100}, 0.5)

	e.Behavior.Advance(e, view)
	if e.Position.X != 399.5 {
		t.Errorf("x = %v, expected 399.5", e.Position.X)
	}
	if e.Position.Y != 100+BossVerticalStep {
		t.Errorf("y = %v, expected %v", e.Position.Y, 100+BossVerticalStep)
	}
}

func TestBossBehavior_ReversesAtEdges(t *testing.T) {
	view := testView(0)

	// Near the bottom edge: direction flips upward.
	e := NewEnemy(Boss, physics.Vector2D{X: 400, Y: view.ScreenHeight - BossEdgeMargin + 1}, 0.5)
	behavior := e.Behavior.(*BossBehavior)
	e.Behavior.Advance(e, view)
	if behavior.Direction != -1 {
		t.Errorf("direction = %v, expected -1 near bottom edge", behavior.Direction)
	}

	// Near the top edge: direction flips downward.
	e2 := NewEnemy(Boss, physics.Vector2D{X: 400, Y: BossEdgeMargin - 1}, 0.5)
	behavior2 := e2.Behavior.(*BossBehavior)
	behavior2.Direction = -1
	e2.Behavior.Advance(e2, view)
	if behavior2.Direction != 1 {
		t.Errorf("direction = %v, expected 1 near top edge", behavior2.Direction)
	}
}

func TestBossBehavior_StaysWithinBand(t *testing.T) {
	view := testView(0)
	e := NewEnemy(Boss, physics.Vector2D{X: 10000, Y: 160}, 0) // zero speed isolates the vertical motion
	for i := 0; i < 5000; i++ {
		e.Behavior.Advance(e, view)
		if e.Position.Y < BossEdgeMargin-BossVerticalStep || e.Position.Y > view.ScreenHeight-BossEdgeMargin+BossVerticalStep {
			t.Fatalf("escaped the oscillation band at tick %d: y=%v", i, e.Position.Y)
		}
	}
}

func TestHomingBehavior_MovesTowardPlayer(t *testing.T) {
	view := testView(0)
	view.PlayerPosition = physics.Vector2D{X: 40, Y: 160}
	e := NewEnemy(Homing, physics.Vector2D{X: 400, Y: 40}, 2.0)

	before := e.Position
	e.Behavior.Advance(e, view)
	step := e.Position.Sub(before)

	// The step is exactly speed long and points at the player.
	if math.Abs(step.Length()-2.0) > 1e-9 {
		t.Errorf("step length = %v, expected 2.0", step.Length())
	}
	wantDir := view.PlayerPosition.Sub(before).Normalize()
	gotDir := step.Normalize()
	if math.Abs(gotDir.X-wantDir.X) > 1e-9 || math.Abs(gotDir.Y-wantDir.Y) > 1e-9 {
		t.Errorf("direction = %v, expected %v", gotDir, wantDir)
	}
}

func TestHomingBehavior_ZeroDistanceGuard(t *testing.T) {
	view := testView(0)
	view.PlayerPosition = physics.Vector2D{X: 200, Y: 100}
	e := NewEnemy(Homing, view.PlayerPosition, 2.0)

	e.Behavior.Advance(e, view)
	if e.Position != view.PlayerPosition {
		t.Errorf("moved from coincident position to %v", e.Position)
	}
}

func TestCircleBehavior_SineMotion(t *testing.T) {
	view := testView(0)
	spawn := physics.Vector2D{X: 400, Y: 150}
	e := NewEnemy(Circle, spawn, 1.5)

	e.Behavior.Advance(e, view)
	wantY := spawn.Y + CircleRadius*math.Sin(CircleAngularStep)
	if math.Abs(e.Position.Y-wantY) > 1e-9 {
		t.Errorf("y = %v, expected %v", e.Position.Y, wantY)
	}
	if e.Position.X != 398.5 {
		t.Errorf("x = %v, expected 398.5", e.Position.X)
	}

	e.Behavior.Advance(e, view)
	wantY = spawn.Y + CircleRadius*math.Sin(2*CircleAngularStep)
	if math.Abs(e.Position.Y-wantY) > 1e-9 {
		t.Errorf("y after 2 ticks = %v, expected %v", e.Position.Y, wantY)
	}
}

func TestCircleBehavior_FiresSingleStraightShot(t *testing.T) {
	view := testView(10 * time.Second)
	e := NewEnemy(Circle, physics.Vector2D{X: 200, Y: 100}, 1.0)

	bullets := e.Behavior.Fire(e, view)
	if len(bullets) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(bullets))
	}
	if bullets[0].Velocity != (physics.Vector2D{}) {
		t.Errorf("velocity = %v, expected zero vector straight shot", bullets[0].Velocity)
	}
}

func TestPentagonBehavior_IsInert(t *testing.T) {
	view := testView(10 * time.Second)
	pos := physics.Vector2D{X: 200, Y: 100}
	e := NewEnemy(Pentagon, pos, 1.5)

	e.Behavior.Advance(e, view)
	if e.Position != pos {
		t.Errorf("pentagon moved to %v; no motion rule is defined for it", e.Position)
	}
	if bullets := e.Behavior.Fire(e, view); bullets != nil {
		t.Errorf("pentagon fired %d bullets; no firing rule is defined for it", len(bullets))
	}
}

func TestEnemy_TakeDamage(t *testing.T) {
	e := NewEnemy(Boss, physics.Vector2D{X: 200, Y: 100}, 0.5)
	if e.Health != 3 {
		t.Fatalf("boss health = %d, expected 3", e.Health)
	}
	if e.TakeDamage() {
		t.Error("destroyed after 1 hit")
	}
	if e.TakeDamage() {
		t.Error("destroyed after 2 hits")
	}
	if !e.TakeDamage() {
		t.Error("not destroyed after 3 hits")
	}
}

func TestEnemy_MuzzlePosition(t *testing.T) {
	e := NewEnemy(Large, physics.Vector2D{X: 200, Y: 100}, 1.0)
	muzzle := e.MuzzlePosition()
	if muzzle.X != 200-e.Size.X/2 {
		t.Errorf("muzzle x = %v, expected left edge %v", muzzle.X, 200-e.Size.X/2)
	}
	if muzzle.Y != 100 {
		t.Errorf("muzzle y = %v, expected 100", muzzle.Y)
	}
}
