// Package config provides YAML-based tuning for the runner simulation.
// All physics values are expressed in screen cells and seconds so the
// simulation stays frame-rate independent.
package config

// Config contains all tuning for the runner game.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
	Scoring   Scoring   `yaml:"scoring"`
	Ground    Ground    `yaml:"ground"`
}

// Physics defines the vertical motion and scroll speed parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration, cells/s²
	JumpVelocity float64 `yaml:"jump_velocity"`  // Initial jump velocity, cells/s (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity, cells/s
	BaseSpeed    float64 `yaml:"base_speed"`     // Initial scroll speed, cells/s
	MaxSpeed     float64 `yaml:"max_speed"`      // Scroll speed cap, cells/s
	MaxStepMS    int     `yaml:"max_step_ms"`    // Frame time clamp, milliseconds
}

// Obstacles defines the randomized obstacle generation ranges.
type Obstacles struct {
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
	MinGap    int `yaml:"min_gap"` // Smallest spawn gap between obstacles, cells
	MaxGap    int `yaml:"max_gap"` // Largest spawn gap between obstacles, cells
}

// Player defines the player sprite placement and hitbox.
type Player struct {
	X            int `yaml:"x"`             // Fixed horizontal position
	Width        int `yaml:"width"`         // Sprite width in cells
	Height       int `yaml:"height"`        // Sprite height in cells
	GroundOffset int `yaml:"ground_offset"` // Rows between the ground line and the screen bottom
	HitInset     int `yaml:"hit_inset"`     // Horizontal hitbox inset from the sprite bounds
}

// Scoring defines score accrual and the difficulty ramp.
type Scoring struct {
	MillisPerPoint int     `yaml:"millis_per_point"` // Elapsed milliseconds per score point
	RampEvery      int     `yaml:"ramp_every"`       // Score milestone between speed increases
	SpeedIncrement float64 `yaml:"speed_increment"`  // Speed added per milestone, cells/s
}

// Ground defines the scrolling ground mark pattern.
type Ground struct {
	DashPeriod int `yaml:"dash_period"` // Repeat distance of the ground marks, cells
	DashWidth  int `yaml:"dash_width"`  // Filled cells per period
}

// Default returns the built-in tuning, used when no YAML is found.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:      60.0,
			JumpVelocity: -22.0,
			MaxFallSpeed: 30.0,
			BaseSpeed:    12.0,
			MaxSpeed:     26.0,
			MaxStepMS:    50,
		},
		Obstacles: Obstacles{
			MinWidth:  1,
			MaxWidth:  3,
			MinHeight: 1,
			MaxHeight: 3,
			MinGap:    20,
			MaxGap:    44,
		},
		Player: Player{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
			HitInset:     1,
		},
		Scoring: Scoring{
			MillisPerPoint: 16,
			RampEvery:      300,
			SpeedIncrement: 2.0,
		},
		Ground: Ground{
			DashPeriod: 6,
			DashWidth:  4,
		},
	}
}
