// cmd/game/main.go
package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/arcade-forge/go-skystrike/pkg/config"
	"github.com/arcade-forge/go-skystrike/pkg/engine"
	"github.com/arcade-forge/go-skystrike/pkg/event"
	"github.com/arcade-forge/go-skystrike/pkg/logging"
	"github.com/arcade-forge/go-skystrike/pkg/render"
	engorender "github.com/arcade-forge/go-skystrike/pkg/render/engo"
)

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithSessionID(context.Background(), "")

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderMode := flag.String("renderer", "", "Renderer: engo, terminal or null (overrides config)")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		defaultConfig := config.DefaultConfig()
		if err := config.SaveConfig(defaultConfig, *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	gameConfig := loadConfiguration(ctx, logger, *configPath)
	if *renderMode != "" {
		gameConfig.Render.Mode = *renderMode
	}

	bus := event.NewEventBus()
	subscribeLogging(ctx, logger, bus)

	game := engine.NewGame(gameConfig, bus)

	logger.Info(ctx, "Starting game",
		"renderer", gameConfig.Render.Mode,
		"screen_width", gameConfig.Screen.Width,
		"screen_height", gameConfig.Screen.Height,
		"tick_rate", gameConfig.Timing.TickRate,
	)

	switch gameConfig.Render.Mode {
	case "engo":
		runEngo(ctx, gameConfig, game)
	case "null":
		runHeadless(ctx, logger, game)
	default:
		runTerminal(ctx, logger, gameConfig, game)
	}
}

// loadConfiguration loads the config file, falling back to defaults
// when it does not exist, then applies environment overrides.
func loadConfiguration(ctx context.Context, logger *logging.Logger, path string) *config.GameConfig {
	var gameConfig *config.GameConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", path,
			)
			os.Exit(1)
		}
	}

	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}
	return gameConfig
}

// subscribeLogging logs the session-level events.
func subscribeLogging(ctx context.Context, logger *logging.Logger, bus *event.Bus) {
	bus.Subscribe(event.GameStarted, func(e event.Event) {
		logger.Info(ctx, "Session started")
	})
	bus.Subscribe(event.ScoreChanged, func(e event.Event) {
		se := e.(*event.ScoreEvent)
		logger.Debug(ctx, "Score changed", "score", se.Score, "delta", se.Delta)
	})
	bus.Subscribe(event.GameEnded, func(e event.Event) {
		ge := e.(*event.GameOverEvent)
		logger.Info(ctx, "Session ended", "final_score", ge.FinalScore)
	})
}

// runEngo runs the windowed frontend. Engo owns the main goroutine;
// the simulation loop is started by the input system on Enter.
func runEngo(ctx context.Context, cfg *config.GameConfig, game *engine.Game) {
	engorender.Run(ctx, cfg, game)
}

// runTerminal runs the ASCII frontend: the simulation in one
// goroutine, a frame pump in the main one, and stdin lines as the
// control channel (w/s move, f fires, p pauses, q quits).
func runTerminal(ctx context.Context, logger *logging.Logger, cfg *config.GameConfig, game *engine.Game) {
	renderer := render.NewTerminalRenderer(96, 24, os.Stdout)
	defer renderer.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	game.Start()
	go game.Run(ctx)
	go readTerminalCommands(ctx, game, cancel)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	frames := time.NewTicker(50 * time.Millisecond)
	defer frames.Stop()

	for {
		select {
		case <-sigChan:
			logger.Info(ctx, "Shutting down")
			game.Stop()
			return
		case <-ctx.Done():
			renderer.Render(game.Snapshot())
			game.Stop()
			return
		case <-frames.C:
			renderer.Render(game.Snapshot())
		}
	}
}

// readTerminalCommands consumes stdin line commands.
func readTerminalCommands(ctx context.Context, game *engine.Game, quit func()) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if !handleTerminalCommand(ctx, game, strings.TrimSpace(scanner.Text()), quit) {
			return
		}
	}
}

// handleTerminalCommand applies one command to the game. It returns
// false when the command ends the session.
func handleTerminalCommand(ctx context.Context, game *engine.Game, cmd string, quit func()) bool {
	switch cmd {
	case "w":
		game.MoveVertical(-20)
	case "s":
		game.MoveVertical(20)
	case "f":
		game.FireBullet()
	case "p":
		if game.State() == engine.StatePaused {
			game.Resume()
		} else {
			game.Pause()
		}
	case "r":
		// The run loop exits when a session ends, so restarting from a
		// halted session needs a fresh loop goroutine next to Start.
		relaunch := game.State() == engine.StateMenu || game.State() == engine.StateGameOver
		game.Start()
		if relaunch {
			go game.Run(ctx)
		}
	case "q":
		quit()
		return false
	}
	return true
}

// runHeadless runs the simulation without any presentation until the
// session ends or a signal arrives.
func runHeadless(ctx context.Context, logger *logging.Logger, game *engine.Game) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	game.Start()
	done := make(chan struct{})
	go func() {
		game.Run(ctx)
		close(done)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info(ctx, "Shutting down")
		game.Stop()
		<-done
	case <-done:
	}
	logger.Info(ctx, "Final score", "score", game.Score())
}
