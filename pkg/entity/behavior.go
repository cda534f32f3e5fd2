// pkg/entity/behavior.go
package entity

import (
	"math"
	"time"

	"github.com/arcade-forge/go-skystrike/pkg/physics"
)

// Motion and firing tuning shared by the behavior variants.
const (
	// Enemies despawn once they pass this far beyond the left edge;
	// homing enemies additionally despawn past the vertical margins.
	DespawnMargin = 20.0

	// Enemies hold fire until they are at least this far left of the
	// right screen edge.
	FireRangeMargin = 50.0

	MediumStopRange      = 5.0
	MediumFreezeDuration = time.Second

	BossVerticalStep = 0.5
	BossEdgeMargin   = 10.0

	CircleRadius      = 20.0
	CircleAngularStep = 0.1

	// Vertical velocity factors for diagonal shots, applied to the
	// enemy bullet speed.
	MediumSpreadFactor = 0.7
	LargeSpreadFactor  = 0.5
	BossSpreadFactor   = 0.7
)

// WorldView is the read-only slice of world state a behavior may
// consult while resolving one tick.
type WorldView struct {
	ScreenWidth    float64
	ScreenHeight   float64
	PlayerPosition physics.Vector2D
	Now            time.Duration
}

// Behavior is the per-archetype motion and firing resolver. Exactly
// one variant type exists per archetype, each owning its own motion
// state, so an archetype without a resolver is visible as a stub
// variant rather than a silently skipped branch.
type Behavior interface {
	// Archetype identifies the variant.
	Archetype() Archetype
	// Advance applies one tick of motion to the enemy.
	Advance(e *Enemy, view WorldView)
	// Fire returns the bullets the enemy emits this tick, or nil.
	// Implementations must update e.LastFired when they fire.
	Fire(e *Enemy, view WorldView) []*Bullet
	// OffScreen reports whether the enemy has left the play area and
	// should despawn.
	OffScreen(e *Enemy, view WorldView) bool
}

// newBehavior builds the variant for the given archetype. Circle
// motion orbits around the spawn row, so it captures the spawn
// position's y as its center.
func newBehavior(archetype Archetype, spawn physics.Vector2D) Behavior {
	switch archetype {
	case Small:
		return &SmallBehavior{}
	case Medium:
		return &MediumBehavior{}
	case Large:
		return &LargeBehavior{}
	case Boss:
		return &BossBehavior{Direction: 1}
	case Homing:
		return &HomingBehavior{}
	case Circle:
		return &CircleBehavior{Radius: CircleRadius, CenterY: spawn.Y}
	case Pentagon:
		return &PentagonBehavior{DiagonalDir: 1}
	default:
		return &SmallBehavior{}
	}
}

// readyToFire checks the shared firing gate: the archetype's interval
// has elapsed and the enemy is far enough onto the screen.
func readyToFire(e *Enemy, view WorldView, interval time.Duration) bool {
	if interval <= 0 {
		return false
	}
	return view.Now-e.LastFired >= interval &&
		e.Position.X < view.ScreenWidth-FireRangeMargin
}

// pastLeftEdge is the default despawn rule.
func pastLeftEdge(e *Enemy) bool {
	return e.Position.X < -DespawnMargin
}

// SmallBehavior glides straight left and never fires.
type SmallBehavior struct{}

func (b *SmallBehavior) Archetype() Archetype { return Small }

func (b *SmallBehavior) Advance(e *Enemy, view WorldView) {
	e.Position.X -= e.Speed
}

func (b *SmallBehavior) Fire(e *Enemy, view WorldView) []*Bullet { return nil }

func (b *SmallBehavior) OffScreen(e *Enemy, view WorldView) bool {
	return pastLeftEdge(e)
}

// MediumBehavior glides left until it reaches the horizontal center,
// freezes there once for MediumFreezeDuration, then resumes and never
// freezes again. It only fires while frozen.
type MediumBehavior struct {
	Stopped  bool
	Resumed  bool
	StopTime time.Duration
}

func (b *MediumBehavior) Archetype() Archetype { return Medium }

func (b *MediumBehavior) Advance(e *Enemy, view WorldView) {
	if b.Stopped {
		if view.Now-b.StopTime >= MediumFreezeDuration {
			b.Stopped = false
			b.Resumed = true
		}
		return
	}
	if !b.Resumed && math.Abs(e.Position.X-view.ScreenWidth/2) < MediumStopRange {
		b.Stopped = true
		b.StopTime = view.Now
		return
	}
	e.Position.X -= e.Speed
}

func (b *MediumBehavior) Fire(e *Enemy, view WorldView) []*Bullet {
	if !b.Stopped {
		return nil
	}
	if !readyToFire(e, view, Medium.GetStats().FireInterval) {
		return nil
	}
	e.LastFired = view.Now
	muzzle := e.MuzzlePosition()
	return []*Bullet{
		NewEnemyBullet(muzzle, -MediumSpreadFactor*EnemyBulletSpeed),
		NewEnemyBullet(muzzle, MediumSpreadFactor*EnemyBulletSpeed),
	}
}

func (b *MediumBehavior) OffScreen(e *Enemy, view WorldView) bool {
	return pastLeftEdge(e)
}

// LargeBehavior glides straight left and fires a three-way spread.
type LargeBehavior struct{}

func (b *LargeBehavior) Archetype() Archetype { return Large }

func (b *LargeBehavior) Advance(e *Enemy, view WorldView) {
	e.Position.X -= e.Speed
}

func (b *LargeBehavior) Fire(e *Enemy, view WorldView) []*Bullet {
	if !readyToFire(e, view, Large.GetStats().FireInterval) {
		return nil
	}
	e.LastFired = view.Now
	muzzle := e.MuzzlePosition()
	return []*Bullet{
		NewEnemyBullet(muzzle, 0),
		NewEnemyBullet(muzzle, -LargeSpreadFactor*EnemyBulletSpeed),
		NewEnemyBullet(muzzle, LargeSpreadFactor*EnemyBulletSpeed),
	}
}

func (b *LargeBehavior) OffScreen(e *Enemy, view WorldView) bool {
	return pastLeftEdge(e)
}

// BossBehavior glides left while bouncing vertically between the
// screen edges, firing a wide three-way spread on a short interval.
type BossBehavior struct {
	// Direction is +1 moving down, -1 moving up.
	Direction float64
}

func (b *BossBehavior) Archetype() Archetype { return Boss }

func (b *BossBehavior) Advance(e *Enemy, view WorldView) {
	e.Position.X -= e.Speed
	if e.Position.Y < BossEdgeMargin {
		b.Direction = 1
	} else if e.Position.Y > view.ScreenHeight-BossEdgeMargin {
		b.Direction = -1
	}
	e.Position.Y += BossVerticalStep * b.Direction
}

func (b *BossBehavior) Fire(e *Enemy, view WorldView) []*Bullet {
	if !readyToFire(e, view, Boss.GetStats().FireInterval) {
		return nil
	}
	e.LastFired = view.Now
	muzzle := e.MuzzlePosition()
	return []*Bullet{
		NewEnemyBullet(muzzle, 0),
		NewEnemyBullet(muzzle, -BossSpreadFactor*EnemyBulletSpeed),
		NewEnemyBullet(muzzle, BossSpreadFactor*EnemyBulletSpeed),
	}
}

func (b *BossBehavior) OffScreen(e *Enemy, view WorldView) bool {
	return pastLeftEdge(e)
}

// HomingBehavior steers toward the player's current position at its
// fixed speed. It never fires; the ship itself is the threat.
type HomingBehavior struct{}

func (b *HomingBehavior) Archetype() Archetype { return Homing }

func (b *HomingBehavior) Advance(e *Enemy, view WorldView) {
	dir := view.PlayerPosition.Sub(e.Position)
	if dir.Length() == 0 {
		return
	}
	e.Position = e.Position.Add(dir.Normalize().Scale(e.Speed))
}

func (b *HomingBehavior) Fire(e *Enemy, view WorldView) []*Bullet { return nil }

func (b *HomingBehavior) OffScreen(e *Enemy, view WorldView) bool {
	return pastLeftEdge(e) ||
		e.Position.Y < -DespawnMargin ||
		e.Position.Y > view.ScreenHeight+DespawnMargin
}

// CircleBehavior glides left while its vertical position traces a
// sine wave around the spawn row.
type CircleBehavior struct {
	Angle   float64
	Radius  float64
	CenterY float64
}

func (b *CircleBehavior) Archetype() Archetype { return Circle }

func (b *CircleBehavior) Advance(e *Enemy, view WorldView) {
	e.Position.X -= e.Speed
	b.Angle += CircleAngularStep
	e.Position.Y = b.CenterY + b.Radius*math.Sin(b.Angle)
}

func (b *CircleBehavior) Fire(e *Enemy, view WorldView) []*Bullet {
	if !readyToFire(e, view, Circle.GetStats().FireInterval) {
		return nil
	}
	e.LastFired = view.Now
	return []*Bullet{NewEnemyBullet(e.MuzzlePosition(), 0)}
}

func (b *CircleBehavior) OffScreen(e *Enemy, view WorldView) bool {
	return pastLeftEdge(e)
}

// PentagonBehavior exists so the archetype enumeration stays
// exhaustive, but the balance data never gained a motion or firing
// rule and the spawn table never selects it. The diagonal direction
// field mirrors the declared-but-unused data.
type PentagonBehavior struct {
	DiagonalDir float64
}

func (b *PentagonBehavior) Archetype() Archetype { return Pentagon }

func (b *PentagonBehavior) Advance(e *Enemy, view WorldView) {}

func (b *PentagonBehavior) Fire(e *Enemy, view WorldView) []*Bullet { return nil }

func (b *PentagonBehavior) OffScreen(e *Enemy, view WorldView) bool {
	return pastLeftEdge(e)
}
