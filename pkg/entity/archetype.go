// pkg/entity/archetype.go
package entity

import (
	"time"

	"github.com/arcade-forge/go-skystrike/pkg/physics"
)

// Archetype defines an enemy's behavioral class and its capabilities
type Archetype int

const (
	Small Archetype = iota
	Medium
	Large
	Boss
	Homing
	Circle
	Pentagon
)

// Stats contains the base statistics for an enemy archetype. Speed is
// drawn uniformly from [MinSpeed, MaxSpeed] once at spawn time and
// stays fixed for the enemy's lifetime.
type Stats struct {
	Size         physics.Vector2D
	MinSpeed     float64
	MaxSpeed     float64
	Health       int
	Score        int
	FireInterval time.Duration
	Color        string
}

// archetypeStats is the per-archetype balance table. Pentagon carries
// a full entry even though the spawn table never produces one.
var archetypeStats = map[Archetype]Stats{
	Small: {
		Size:     physics.Vector2D{X: 20, Y: 20},
		MinSpeed: 1.0,
		MaxSpeed: 2.5,
		Health:   1,
		Score:    10,
		Color:    "#9e9e9e",
	},
	Medium: {
		Size:         physics.Vector2D{X: 30, Y: 30},
		MinSpeed:     0.8,
		MaxSpeed:     1.8,
		Health:       2,
		Score:        20,
		FireInterval: 2 * time.Second,
		Color:        "#42a5f5",
	},
	Large: {
		Size:         physics.Vector2D{X: 40, Y: 40},
		MinSpeed:     0.6,
		MaxSpeed:     1.2,
		Health:       3,
		Score:        30,
		FireInterval: time.Second,
		Color:        "#7e57c2",
	},
	Boss: {
		Size:         physics.Vector2D{X: 60, Y: 60},
		MinSpeed:     0.4,
		MaxSpeed:     0.8,
		Health:       3,
		Score:        50,
		FireInterval: 500 * time.Millisecond,
		Color:        "#ef5350",
	},
	Homing: {
		Size:     physics.Vector2D{X: 25, Y: 25},
		MinSpeed: 1.0,
		MaxSpeed: 2.0,
		Health:   1,
		Score:    25,
		Color:    "#ffa726",
	},
	Circle: {
		Size:         physics.Vector2D{X: 25, Y: 25},
		MinSpeed:     0.8,
		MaxSpeed:     1.6,
		Health:       1,
		Score:        15,
		FireInterval: 1500 * time.Millisecond,
		Color:        "#66bb6a",
	},
	Pentagon: {
		Size:         physics.Vector2D{X: 30, Y: 30},
		MinSpeed:     1.0,
		MaxSpeed:     2.0,
		Health:       1,
		Score:        20,
		FireInterval: 1500 * time.Millisecond,
		Color:        "#ffee58",
	},
}

// GetStats returns the archetype's balance entry
func (a Archetype) GetStats() Stats {
	return archetypeStats[a]
}

// String returns the archetype's name
func (a Archetype) String() string {
	switch a {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	case Boss:
		return "boss"
	case Homing:
		return "homing"
	case Circle:
		return "circle"
	case Pentagon:
		return "pentagon"
	default:
		return "unknown"
	}
}
