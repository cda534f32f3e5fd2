// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names recognized by ApplyEnvironmentOverrides.
const (
	EnvScreenWidth  = "SKYSTRIKE_SCREEN_WIDTH"
	EnvScreenHeight = "SKYSTRIKE_SCREEN_HEIGHT"
	EnvTickRate     = "SKYSTRIKE_TICK_RATE"
	EnvRenderMode   = "SKYSTRIKE_RENDERER"
	EnvWindowWidth  = "SKYSTRIKE_WINDOW_WIDTH"
	EnvWindowHeight = "SKYSTRIKE_WINDOW_HEIGHT"
	EnvFullscreen   = "SKYSTRIKE_FULLSCREEN"
)

// ApplyEnvironmentOverrides overwrites config fields from SKYSTRIKE_*
// environment variables where set, then re-normalizes the result. An
// unparsable value is an error rather than a silent fallback.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	if err := overrideFloat(EnvScreenWidth, &config.Screen.Width); err != nil {
		return err
	}
	if err := overrideFloat(EnvScreenHeight, &config.Screen.Height); err != nil {
		return err
	}
	if err := overrideInt(EnvTickRate, &config.Timing.TickRate); err != nil {
		return err
	}
	if v := os.Getenv(EnvRenderMode); v != "" {
		config.Render.Mode = v
	}
	if err := overrideInt(EnvWindowWidth, &config.Render.WindowWidth); err != nil {
		return err
	}
	if err := overrideInt(EnvWindowHeight, &config.Render.WindowHeight); err != nil {
		return err
	}
	if err := overrideBool(EnvFullscreen, &config.Render.Fullscreen); err != nil {
		return err
	}

	config.Normalize()
	return nil
}

// overrideFloat replaces *dst with the parsed value of the named
// environment variable when it is set.
func overrideFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dst = parsed
	return nil
}

// overrideInt replaces *dst with the parsed value of the named
// environment variable when it is set.
func overrideInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dst = parsed
	return nil
}

// overrideBool replaces *dst with the parsed value of the named
// environment variable when it is set.
func overrideBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dst = parsed
	return nil
}
