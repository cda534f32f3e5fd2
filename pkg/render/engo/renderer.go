// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	engoengine "github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/arcade-forge/go-skystrike/pkg/engine"
	"github.com/arcade-forge/go-skystrike/pkg/entity"
)

// spriteEntity bundles an ECS entity with its components so position
// updates reach the render system in place.
type spriteEntity struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// SpriteSystem mirrors the engine's snapshot into Engo render
// entities every frame: new world entities get sprites, moved ones
// are repositioned, vanished ones are removed.
type SpriteSystem struct {
	game         *engine.Game
	renderSystem *common.RenderSystem
	assets       *AssetManager

	enemySprites  map[entity.ID]*spriteEntity
	bulletSprites map[entity.ID]*spriteEntity
	player        *spriteEntity

	// Scale from logical playfield units to window pixels, refreshed
	// each frame from the snapshot.
	scaleX, scaleY float32
}

// NewSpriteSystem creates the snapshot-mirroring sprite system.
func NewSpriteSystem(game *engine.Game, renderSystem *common.RenderSystem, assets *AssetManager) *SpriteSystem {
	return &SpriteSystem{
		game:          game,
		renderSystem:  renderSystem,
		assets:        assets,
		enemySprites:  make(map[entity.ID]*spriteEntity),
		bulletSprites: make(map[entity.ID]*spriteEntity),
	}
}

// Add satisfies the ecs.System interface
func (s *SpriteSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface
func (s *SpriteSystem) Remove(basic ecs.BasicEntity) {}

// Update pulls one snapshot and syncs every sprite to it.
func (s *SpriteSystem) Update(dt float32) {
	snap := s.game.Snapshot()

	s.scaleX = engoengine.GameWidth() / float32(snap.ScreenWidth)
	s.scaleY = engoengine.GameHeight() / float32(snap.ScreenHeight)

	s.syncPlayer(snap)
	s.syncEnemies(snap)
	s.syncBullets(snap)
}

// syncPlayer shows the ship while a session is live and hides it
// otherwise.
func (s *SpriteSystem) syncPlayer(snap *engine.Snapshot) {
	alive := snap.State == engine.StatePlaying || snap.State == engine.StatePaused
	if !alive {
		if s.player != nil {
			s.renderSystem.Remove(s.player.basic)
			s.player = nil
		}
		return
	}

	if s.player == nil {
		s.player = s.newSprite(
			s.assets.GetPlayerSprite(),
			color.RGBA{230, 230, 230, 255},
			snap.Player.Size.X, snap.Player.Size.Y,
		)
	}
	s.place(s.player, snap.Player.Position.X, snap.Player.Position.Y,
		snap.Player.Size.X, snap.Player.Size.Y)
}

// syncEnemies diffs the snapshot's enemies against the sprite map.
func (s *SpriteSystem) syncEnemies(snap *engine.Snapshot) {
	seen := make(map[entity.ID]bool, len(snap.Enemies))
	for _, e := range snap.Enemies {
		seen[e.ID] = true
		sprite, exists := s.enemySprites[e.ID]
		if !exists {
			sprite = s.newSprite(
				s.assets.GetEnemySprite(e.Archetype),
				ArchetypeColor(e.Archetype),
				e.Size.X, e.Size.Y,
			)
			s.enemySprites[e.ID] = sprite
		}
		s.place(sprite, e.Position.X, e.Position.Y, e.Size.X, e.Size.Y)
	}
	for id, sprite := range s.enemySprites {
		if !seen[id] {
			s.renderSystem.Remove(sprite.basic)
			delete(s.enemySprites, id)
		}
	}
}

// syncBullets diffs both bullet lists against the sprite map.
func (s *SpriteSystem) syncBullets(snap *engine.Snapshot) {
	seen := make(map[entity.ID]bool, len(snap.PlayerBullets)+len(snap.EnemyBullets))
	for _, list := range [][]engine.BulletState{snap.PlayerBullets, snap.EnemyBullets} {
		for _, b := range list {
			seen[b.ID] = true
			sprite, exists := s.bulletSprites[b.ID]
			if !exists {
				tint := color.Color(color.RGBA{255, 240, 150, 255})
				if !b.FromPlayer {
					tint = color.RGBA{255, 110, 110, 255}
				}
				sprite = s.newSprite(s.assets.GetBulletSprite(b.FromPlayer), tint, b.Size.X, b.Size.Y)
				s.bulletSprites[b.ID] = sprite
			}
			s.place(sprite, b.Position.X, b.Position.Y, b.Size.X, b.Size.Y)
		}
	}
	for id, sprite := range s.bulletSprites {
		if !seen[id] {
			s.renderSystem.Remove(sprite.basic)
			delete(s.bulletSprites, id)
		}
	}
}

// newSprite allocates a sprite entity and registers it with the
// render system.
func (s *SpriteSystem) newSprite(drawable common.Drawable, tint color.Color, w, h float64) *spriteEntity {
	sprite := &spriteEntity{basic: ecs.NewBasic()}
	sprite.render = common.RenderComponent{
		Drawable: drawable,
		Color:    tint,
	}
	sprite.space = common.SpaceComponent{
		Width:  float32(w) * s.scaleX,
		Height: float32(h) * s.scaleY,
	}
	s.renderSystem.Add(&sprite.basic, &sprite.render, &sprite.space)
	return sprite
}

// place positions a sprite from a center-based playfield position.
func (s *SpriteSystem) place(sprite *spriteEntity, x, y, w, h float64) {
	sprite.space.Width = float32(w) * s.scaleX
	sprite.space.Height = float32(h) * s.scaleY
	sprite.space.Position = engoengine.Point{
		X: float32(x-w/2) * s.scaleX,
		Y: float32(y-h/2) * s.scaleY,
	}
}
