// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	engoengine "github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/arcade-forge/go-skystrike/pkg/config"
	"github.com/arcade-forge/go-skystrike/pkg/engine"
	"github.com/arcade-forge/go-skystrike/pkg/logging"
)

// GameScene is the single Engo scene: playfield sprites, HUD and
// input, all fed from the engine's snapshots.
type GameScene struct {
	ctx  context.Context
	game *engine.Game

	world   *ecs.World
	sprites *SpriteSystem
	input   *InputSystem
	hud     *HUDSystem

	logger *logging.Logger
}

// NewGameScene creates the scene around an existing game.
func NewGameScene(ctx context.Context, game *engine.Game) *GameScene {
	return &GameScene{
		ctx:    ctx,
		game:   game,
		logger: logging.NewLogger(),
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {}

// Setup wires the ECS systems (required by Engo).
func (scene *GameScene) Setup(u engoengine.Updater) {
	scene.world, _ = u.(*ecs.World)
	if scene.world == nil {
		scene.world = &ecs.World{}
	}

	renderSystem := &common.RenderSystem{}
	scene.world.AddSystem(renderSystem)

	assets := NewAssetManager()
	if err := scene.assetsReady(assets); err != nil {
		panic("failed to load assets: " + err.Error())
	}

	scene.sprites = NewSpriteSystem(scene.game, renderSystem, assets)
	scene.world.AddSystem(scene.sprites)

	SetupInputBindings()
	scene.input = NewInputSystem(scene.ctx, scene.game)
	scene.world.AddSystem(scene.input)

	scene.hud = NewHUDSystem(scene.game)
	scene.world.AddSystem(scene.hud)

	// The simulation keeps its logical playfield; the window scale is
	// applied per sprite, so only aspect-relevant resizes are fed back.
	scene.logger.Info(scene.ctx, "engo scene ready")
}

// assetsReady loads the generated sprites.
func (scene *GameScene) assetsReady(assets *AssetManager) error {
	return assets.LoadAssets()
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	scene.game.Stop()
}

// Run opens the window and hands control to Engo. It blocks until the
// window closes.
func Run(ctx context.Context, cfg *config.GameConfig, game *engine.Game) {
	opts := engoengine.RunOptions{
		Title:      "SkyStrike",
		Width:      cfg.Render.WindowWidth,
		Height:     cfg.Render.WindowHeight,
		Fullscreen: cfg.Render.Fullscreen,
		VSync:      true,
	}
	engoengine.Run(opts, NewGameScene(ctx, game))
}
