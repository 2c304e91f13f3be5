package config

import (
	"fmt"
	"math"
)

// AirTime returns the seconds a jump keeps the player off the ground,
// from launch to landing under constant gravity.
func (p Physics) AirTime() float64 {
	if p.Gravity <= 0 {
		return 0
	}
	return 2 * -p.JumpVelocity / p.Gravity
}

// Validate checks that the tuning can never produce a zero-size obstacle
// or an unjumpable gap. The gap floor is derived from the jump arc: the
// player travels airTime × maxSpeed cells per jump, so spawn gaps below
// that leave no room to land and jump again.
func (c Config) Validate() error {
	p := c.Physics
	if p.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %v", p.Gravity)
	}
	if p.JumpVelocity >= 0 {
		return fmt.Errorf("config: jump_velocity must be negative (upward), got %v", p.JumpVelocity)
	}
	if p.MaxFallSpeed <= 0 {
		return fmt.Errorf("config: max_fall_speed must be positive, got %v", p.MaxFallSpeed)
	}
	if p.BaseSpeed <= 0 {
		return fmt.Errorf("config: base_speed must be positive, got %v", p.BaseSpeed)
	}
	if p.MaxSpeed < p.BaseSpeed {
		return fmt.Errorf("config: max_speed %v below base_speed %v", p.MaxSpeed, p.BaseSpeed)
	}
	if p.MaxStepMS <= 0 {
		return fmt.Errorf("config: max_step_ms must be positive, got %d", p.MaxStepMS)
	}

	o := c.Obstacles
	if o.MinWidth < 1 || o.MinHeight < 1 {
		return fmt.Errorf("config: obstacle minimum size must be at least 1x1, got %dx%d", o.MinWidth, o.MinHeight)
	}
	if o.MaxWidth < o.MinWidth {
		return fmt.Errorf("config: max_width %d below min_width %d", o.MaxWidth, o.MinWidth)
	}
	if o.MaxHeight < o.MinHeight {
		return fmt.Errorf("config: max_height %d below min_height %d", o.MaxHeight, o.MinHeight)
	}
	if o.MaxGap < o.MinGap {
		return fmt.Errorf("config: max_gap %d below min_gap %d", o.MaxGap, o.MinGap)
	}

	gapFloor := int(math.Ceil(p.AirTime() * p.MaxSpeed))
	if o.MinGap < gapFloor {
		return fmt.Errorf("config: min_gap %d is unjumpable at max speed, need at least %d", o.MinGap, gapFloor)
	}

	pl := c.Player
	if pl.Width < 1 || pl.Height < 1 {
		return fmt.Errorf("config: player size must be at least 1x1, got %dx%d", pl.Width, pl.Height)
	}
	if pl.HitInset < 0 || 2*pl.HitInset >= pl.Width {
		return fmt.Errorf("config: hit_inset %d leaves no hitbox for width %d", pl.HitInset, pl.Width)
	}
	if pl.X < 0 {
		return fmt.Errorf("config: player x must be non-negative, got %d", pl.X)
	}

	s := c.Scoring
	if s.MillisPerPoint <= 0 {
		return fmt.Errorf("config: millis_per_point must be positive, got %d", s.MillisPerPoint)
	}
	if s.RampEvery < 0 {
		return fmt.Errorf("config: ramp_every must be non-negative, got %d", s.RampEvery)
	}
	if s.SpeedIncrement < 0 {
		return fmt.Errorf("config: speed_increment must be non-negative, got %v", s.SpeedIncrement)
	}

	g := c.Ground
	if g.DashPeriod < 2 {
		return fmt.Errorf("config: dash_period must be at least 2, got %d", g.DashPeriod)
	}
	if g.DashWidth < 1 || g.DashWidth >= g.DashPeriod {
		return fmt.Errorf("config: dash_width %d must be within (0, dash_period %d)", g.DashWidth, g.DashPeriod)
	}

	return nil
}
