// pkg/engine/game.go
package engine

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/arcade-forge/go-skystrike/pkg/config"
	"github.com/arcade-forge/go-skystrike/pkg/entity"
	"github.com/arcade-forge/go-skystrike/pkg/event"
)

// State is the game's lifecycle state
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the state's name
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Periodic driver cadences. The tick interval comes from config; the
// spawn and auto-fire periods are fixed gameplay rules.
const (
	SpawnInterval    = 1500 * time.Millisecond
	AutoFireInterval = 300 * time.Millisecond
)

// Game owns the full world state: the player ship, every live enemy
// and bullet, the score, and the lifecycle state machine. The entity
// collections are exclusively owned by the engine; Snapshot hands out
// value copies only.
type Game struct {
	mu sync.RWMutex

	state State
	score int

	screenWidth  float64
	screenHeight float64

	player        *entity.Player
	enemies       []*entity.Enemy
	playerBullets []*entity.Bullet
	enemyBullets  []*entity.Bullet

	// Simulated clock: advances by exactly one tick interval per
	// tick. Every fire-interval and freeze comparison uses this,
	// never wall time.
	now  time.Duration
	tick uint64

	// Phase accumulators for the spawn and auto-fire drivers.
	spawnAcc    time.Duration
	autoFireAcc time.Duration

	tickInterval time.Duration
	rng          *rand.Rand
	events       *event.Bus

	// done is closed when the periodic drivers must halt; Start
	// replaces it so a session can be restarted.
	done chan struct{}
}

// NewGame creates a game in the menu state. A nil config gets the
// defaults; a nil bus gets a private one.
//
// The engine publishes its events while holding the engine lock.
// Subscribers must only read the event payload; calling any Game
// method from a handler deadlocks.
func NewGame(cfg *config.GameConfig, bus *event.Bus) *Game {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.Normalize()
	if bus == nil {
		bus = event.NewEventBus()
	}

	g := &Game{
		state:        StateMenu,
		screenWidth:  cfg.Screen.Width,
		screenHeight: cfg.Screen.Height,
		tickInterval: cfg.Timing.TickInterval(),
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		events:       bus,
		done:         make(chan struct{}),
	}
	g.player = entity.NewPlayer(g.screenHeight)
	return g
}

// Start begins a fresh session from any state: score, clock and all
// entity lists are reset, the player ship is recentered, and the
// periodic drivers are rearmed.
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.score = 0
	g.now = 0
	g.tick = 0
	g.spawnAcc = 0
	g.autoFireAcc = 0
	g.player = entity.NewPlayer(g.screenHeight)
	g.enemies = nil
	g.playerBullets = nil
	g.enemyBullets = nil
	g.state = StatePlaying

	// Rearm the drivers in case a previous session halted them.
	select {
	case <-g.done:
		g.done = make(chan struct{})
	default:
	}

	g.events.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: g})
}

// Pause suspends the periodic drivers without resetting any state.
// No-op unless playing.
func (g *Game) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return
	}
	g.state = StatePaused
	g.events.Publish(&event.BaseEvent{EventType: event.GamePaused, Source: g})
}

// Resume restarts the periodic drivers from a zero phase offset; no
// phase continuity is promised across a pause. No-op unless paused.
func (g *Game) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePaused {
		return
	}
	g.state = StatePlaying
	g.spawnAcc = 0
	g.autoFireAcc = 0
	g.events.Publish(&event.BaseEvent{EventType: event.GameResumed, Source: g})
}

// Stop halts the periodic drivers, ending the Run loop. It does not
// touch world state; Start rearms everything for the next session.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.haltDrivers()
}

// haltDrivers closes the done channel exactly once. Callers must hold
// the write lock.
func (g *Game) haltDrivers() {
	select {
	case <-g.done:
	default:
		close(g.done)
	}
}

// endGame performs the terminal transition after a lethal collision.
// Callers must hold the write lock.
func (g *Game) endGame() {
	g.state = StateGameOver
	g.haltDrivers()
	g.events.Publish(event.NewGameOverEvent(g, g.score))
}

// SetVerticalPosition moves the player ship to the given vertical
// position, clamped to the screen. No-op unless playing.
func (g *Game) SetVerticalPosition(y float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return
	}
	g.player.SetVerticalPosition(y, g.screenHeight)
}

// MoveVertical shifts the player ship vertically by delta, clamped to
// the screen. No-op unless playing.
func (g *Game) MoveVertical(delta float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return
	}
	g.player.MoveVertical(delta, g.screenHeight)
}

// FireBullet spawns a player bullet at the ship's muzzle. No-op
// unless playing.
func (g *Game) FireBullet() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StatePlaying {
		return
	}
	g.firePlayerBullet()
}

// firePlayerBullet creates and registers one player bullet.
// Note: Called from within locked context.
func (g *Game) firePlayerBullet() {
	b := entity.NewPlayerBullet(g.player.MuzzlePosition())
	g.playerBullets = append(g.playerBullets, b)
	g.events.Publish(event.NewBulletEvent(g, uint64(b.ID), true))
}

// UpdateScreenSize updates the logical playfield dimensions, clamping
// degenerate values to the configured floor. Existing entities stay
// where they are; the next tick's despawn rules pick them up.
func (g *Game) UpdateScreenSize(width, height float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if width < config.MinScreenWidth {
		width = config.MinScreenWidth
	}
	if height < config.MinScreenHeight {
		height = config.MinScreenHeight
	}
	g.screenWidth = width
	g.screenHeight = height

	// Keep the ship fully on the resized screen.
	g.player.SetVerticalPosition(g.player.Position.Y, g.screenHeight)
}

// State returns the current lifecycle state
func (g *Game) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Score returns the current session score
func (g *Game) Score() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.score
}

// worldView builds the read-only view the behavior resolvers consume.
// Note: Called from within locked context.
func (g *Game) worldView() entity.WorldView {
	return entity.WorldView{
		ScreenWidth:    g.screenWidth,
		ScreenHeight:   g.screenHeight,
		PlayerPosition: g.player.Position,
		Now:            g.now,
	}
}
