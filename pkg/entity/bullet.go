// pkg/entity/bullet.go
package entity

import (
	"github.com/arcade-forge/go-skystrike/pkg/physics"
)

// Projectile tuning.
const (
	PlayerBulletSpeed = 4.0
	EnemyBulletSpeed  = 2.5

	// Bullets are culled once they leave the screen by this margin.
	BulletMargin = 10.0
)

// Bullet sizes by owner.
var (
	playerBulletSize = physics.Vector2D{X: 12, Y: 6}
	enemyBulletSize  = physics.Vector2D{X: 8, Y: 8}
)

// Bullet represents a projectile fired by either side. Player bullets
// always carry velocity (+speed, 0). Enemy bullets either carry a
// fixed diagonal velocity set at creation, or a zero velocity vector,
// in which case they integrate purely by -Speed on the x axis.
type Bullet struct {
	ID         ID
	Position   physics.Vector2D
	Size       physics.Vector2D
	Speed      float64
	Velocity   physics.Vector2D
	FromPlayer bool
}

// NewPlayerBullet creates a player bullet travelling right.
func NewPlayerBullet(pos physics.Vector2D) *Bullet {
	return &Bullet{
		ID:         GenerateID(),
		Position:   pos,
		Size:       playerBulletSize,
		Speed:      PlayerBulletSpeed,
		Velocity:   physics.Vector2D{X: PlayerBulletSpeed},
		FromPlayer: true,
	}
}

// NewEnemyBullet creates an enemy bullet. A zero vertical component
// produces a straight shot with an empty velocity vector; a nonzero
// one produces a fixed diagonal of (-EnemyBulletSpeed, vertical).
func NewEnemyBullet(pos physics.Vector2D, vertical float64) *Bullet {
	b := &Bullet{
		ID:       GenerateID(),
		Position: pos,
		Size:     enemyBulletSize,
		Speed:    EnemyBulletSpeed,
	}
	if vertical != 0 {
		b.Velocity = physics.Vector2D{X: -EnemyBulletSpeed, Y: vertical}
	}
	return b
}

// Advance integrates the bullet by one tick: straight-line motion
// along the velocity vector when one is set, otherwise leftward by
// the scalar speed.
func (b *Bullet) Advance() {
	if b.Velocity.X != 0 || b.Velocity.Y != 0 {
		b.Position = b.Position.Add(b.Velocity)
		return
	}
	b.Position.X -= b.Speed
}

// Expired reports whether the bullet has left the expanded screen
// bounds and should be removed. Player bullets only ever exit on the
// right.
func (b *Bullet) Expired(screenWidth, screenHeight float64) bool {
	if b.FromPlayer {
		return b.Position.X > screenWidth+BulletMargin
	}
	return b.Position.X < -BulletMargin ||
		b.Position.X > screenWidth+BulletMargin ||
		b.Position.Y < -BulletMargin ||
		b.Position.Y > screenHeight+BulletMargin
}

// Bounds returns the bullet's collision box
func (b *Bullet) Bounds() physics.Rect {
	return physics.BoxAround(b.Position, b.Size)
}
