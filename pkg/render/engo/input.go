// pkg/render/engo/input.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	engoengine "github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/arcade-forge/go-skystrike/pkg/engine"
)

// MoveSpeed is the player's vertical speed in playfield units per
// second while a movement key is held.
const MoveSpeed = 220.0

// InputSystem translates keyboard input into engine commands.
type InputSystem struct {
	game *engine.Game

	// ctx is handed to the game loop goroutine spawned on session
	// start and restart.
	ctx context.Context
}

// NewInputSystem creates a new input system
func NewInputSystem(ctx context.Context, game *engine.Game) *InputSystem {
	return &InputSystem{game: game, ctx: ctx}
}

// Add satisfies the ecs.System interface
func (is *InputSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update polls the key bindings once per frame and drives the engine
// state machine.
func (is *InputSystem) Update(dt float32) {
	switch is.game.State() {
	case engine.StateMenu, engine.StateGameOver:
		if engoengine.Input.Button("start").JustPressed() {
			is.game.Start()
			go is.game.Run(is.ctx)
		}
	case engine.StatePlaying:
		is.handlePlayingInput(dt)
	case engine.StatePaused:
		if engoengine.Input.Button("pause").JustPressed() {
			is.game.Resume()
		}
	}
}

// handlePlayingInput processes movement, firing and pausing.
func (is *InputSystem) handlePlayingInput(dt float32) {
	if engoengine.Input.Button("pause").JustPressed() {
		is.game.Pause()
		return
	}

	delta := 0.0
	if engoengine.Input.Button("moveUp").Down() {
		delta -= MoveSpeed * float64(dt)
	}
	if engoengine.Input.Button("moveDown").Down() {
		delta += MoveSpeed * float64(dt)
	}
	if delta != 0 {
		is.game.MoveVertical(delta)
	}

	if engoengine.Input.Button("fire").JustPressed() {
		is.game.FireBullet()
	}
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engoengine.Input.RegisterButton("moveUp", engoengine.KeyW, engoengine.KeyArrowUp)
	engoengine.Input.RegisterButton("moveDown", engoengine.KeyS, engoengine.KeyArrowDown)
	engoengine.Input.RegisterButton("fire", engoengine.KeySpace)
	engoengine.Input.RegisterButton("pause", engoengine.KeyP)
	engoengine.Input.RegisterButton("start", engoengine.KeyEnter)
}
