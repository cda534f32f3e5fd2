// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Minimum playfield dimensions. Smaller values would put the spawn
// band and the player clamp range outside the screen, so anything
// below is raised to the floor.
const (
	MinScreenWidth  = 160
	MinScreenHeight = 120
)

// GameConfig contains configuration for a skystrike session
type GameConfig struct {
	Screen ScreenConfig `json:"screen"`
	Timing TimingConfig `json:"timing"`
	Render RenderConfig `json:"render"`
}

// ScreenConfig describes the logical playfield the simulation runs in.
// The presentation layer feeds real viewport geometry back through
// Game.UpdateScreenSize at runtime; these are only the initial values.
type ScreenConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TimingConfig contains the simulation tick rate.
type TimingConfig struct {
	TickRate int `json:"tickRate"` // Ticks per second
}

// RenderConfig contains presentation-layer configuration.
type RenderConfig struct {
	Mode         string `json:"mode"` // "engo", "terminal" or "null"
	WindowWidth  int    `json:"windowWidth"`
	WindowHeight int    `json:"windowHeight"`
	Fullscreen   bool   `json:"fullscreen"`
}

// TickInterval returns the duration of one simulation tick.
func (t TimingConfig) TickInterval() time.Duration {
	rate := t.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.Normalize()
	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:  480,
			Height: 320,
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
		Render: RenderConfig{
			Mode:         "terminal",
			WindowWidth:  960,
			WindowHeight: 640,
			Fullscreen:   false,
		},
	}
}

// Normalize clamps degenerate values to safe defaults in place.
func (c *GameConfig) Normalize() {
	if c.Screen.Width < MinScreenWidth {
		c.Screen.Width = MinScreenWidth
	}
	if c.Screen.Height < MinScreenHeight {
		c.Screen.Height = MinScreenHeight
	}
	if c.Timing.TickRate <= 0 {
		c.Timing.TickRate = 60
	}
	if c.Render.Mode == "" {
		c.Render.Mode = "terminal"
	}
	if c.Render.WindowWidth <= 0 {
		c.Render.WindowWidth = 960
	}
	if c.Render.WindowHeight <= 0 {
		c.Render.WindowHeight = 640
	}
}
