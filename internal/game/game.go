// Package game implements the dashrun endless runner simulation: a
// character jumping over scrolling ground obstacles, with time-based
// scoring and a capped difficulty ramp. The core is pure and
// deterministic per RNG seed; the platform layer owns frame scheduling,
// input mapping, and persistence.
package game

import (
	"math"
	"time"

	"github.com/tverd/dashrun/internal/config"
	"github.com/tverd/dashrun/internal/core"
)

// Visual characters for rendering
const (
	RunnerHead   = '◆'
	RunnerBody   = '█'
	RunnerLegL   = '╱'
	RunnerLegR   = '╲'
	ObstacleChar = '▓'
	GroundDash   = '═'
	GroundFiller = '·'
)

// Game is the per-frame simulation loop. It owns all mutable run state
// exclusively; external reads go through State() and never mutate.
type Game struct {
	phase        core.Phase
	playerY      float64 // Vertical offset from the ground line, negative = up
	playerVel    float64 // Vertical velocity in cells/s, negative = up
	grounded     bool
	spawner      *Spawner
	score        int
	scoreCarryMS float64 // Elapsed milliseconds not yet converted to points
	speed        float64 // Current scroll speed, cells/s
	rampLevel    int     // Last score milestone the speed ramp applied
	groundOffset float64 // Scroll offset of the ground marks, [0, dash period)
	distance     float64 // Total cells scrolled this run, drives leg animation
	best         int     // Persisted high score, set by the platform
	runtime      core.RuntimeConfig
	cfg          config.Config
	groundY      int // Screen row of the ground line
}

// configPath stores the custom tuning path set via CLI.
var configPath string

// SetConfigPath sets the custom tuning path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dash"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dash Runner"
}

// Reset initializes the game into the idle phase. The persisted high
// score set via SetBest survives resets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = cfg

	g.groundY = runtime.ScreenH - cfg.Player.GroundOffset

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, runtime.ScreenW, cfg.Obstacles)
	} else {
		g.spawner.SetScreenWidth(runtime.ScreenW)
		g.spawner.Reset(runtime.Seed)
	}

	g.phase = core.PhaseIdle
	g.resetRun()
}

// resetRun clears all transient run state without touching the phase.
func (g *Game) resetRun() {
	g.playerY = 0
	g.playerVel = 0
	g.grounded = true
	g.score = 0
	g.scoreCarryMS = 0
	g.speed = g.cfg.Physics.BaseSpeed
	g.rampLevel = 0
	g.groundOffset = 0
	g.distance = 0
	g.spawner.Reset(g.runtime.Seed)
}

// startRun transitions into the running phase with fresh transient state.
func (g *Game) startRun() {
	g.resetRun()
	g.phase = core.PhaseRunning
}

// SetBest installs the persisted high score for HUD display. The shown
// best is always max(current score, persisted value).
func (g *Game) SetBest(best int) {
	if best > g.best {
		g.best = best
	}
}

// Step consumes the frame's intents and advances the simulation by dt.
// Idle and game-over are non-animating: no physics runs, only the start
// and restart intents are honored. The jump key doubles as start so a
// single button drives the whole state machine.
func (g *Game) Step(in core.IntentFrame, dt time.Duration) core.StepResult {
	if g.phase != core.PhaseRunning {
		if in.Has(core.IntentStart) || in.Has(core.IntentRestart) || in.Has(core.IntentJump) {
			g.startRun()
		}
		return core.StepResult{State: g.State()}
	}

	// Clamp the frame step so a scheduling stall cannot tunnel the
	// player through obstacles or launch the physics.
	maxStep := time.Duration(g.cfg.Physics.MaxStepMS) * time.Millisecond
	if dt < 0 {
		dt = 0
	}
	if dt > maxStep {
		dt = maxStep
	}
	sec := dt.Seconds()

	// Jump only from the ground; an airborne jump intent is silently
	// ignored rather than treated as an error.
	if in.Has(core.IntentJump) && g.grounded {
		g.playerVel = g.cfg.Physics.JumpVelocity
		g.grounded = false
	}

	// Ground scroll, wrapped to the dash repeat period.
	scroll := g.speed * sec
	g.distance += scroll
	g.groundOffset = math.Mod(g.groundOffset+scroll, float64(g.cfg.Ground.DashPeriod))

	// Vertical physics. The player never goes below the ground line.
	if !g.grounded {
		g.playerVel += g.cfg.Physics.Gravity * sec
		if g.playerVel > g.cfg.Physics.MaxFallSpeed {
			g.playerVel = g.cfg.Physics.MaxFallSpeed
		}
		g.playerY += g.playerVel * sec
		if g.playerY >= 0 {
			g.playerY = 0
			g.playerVel = 0
			g.grounded = true
		}
	}

	g.spawner.Advance(scroll)

	// First collision ends the run on this frame; the score keeps the
	// value it had when the frame began.
	if g.spawner.Collides(g.playerRect(), g.groundY) {
		g.phase = core.PhaseGameOver
		return core.StepResult{State: g.State()}
	}

	// Score accrues from elapsed wall time, one point per fixed quantum,
	// with the remainder carried so frame-rate variance cannot bias it.
	g.scoreCarryMS += sec * 1000
	quantum := float64(g.cfg.Scoring.MillisPerPoint)
	if gained := int(g.scoreCarryMS / quantum); gained > 0 {
		g.score += gained
		g.scoreCarryMS -= float64(gained) * quantum
	}

	// Speed ramp on milestone crossings. A frame can grant several
	// points at once and skip past an exact multiple, so this checks the
	// milestone count rather than score % milestone.
	if g.cfg.Scoring.RampEvery > 0 {
		level := g.score / g.cfg.Scoring.RampEvery
		if level > g.rampLevel {
			g.speed += float64(level-g.rampLevel) * g.cfg.Scoring.SpeedIncrement
			if g.speed > g.cfg.Physics.MaxSpeed {
				g.speed = g.cfg.Physics.MaxSpeed
			}
			g.rampLevel = level
		}
	}

	return core.StepResult{State: g.State()}
}

// playerRect returns the player's collision box in screen coordinates,
// inset horizontally from the sprite bounds so near misses stay misses.
func (g *Game) playerRect() core.Rect {
	inset := g.cfg.Player.HitInset
	top := g.groundY - g.cfg.Player.Height - int(math.Round(-g.playerY))
	return core.NewRect(
		g.cfg.Player.X+inset,
		top,
		g.cfg.Player.Width-2*inset,
		g.cfg.Player.Height,
	)
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase: g.phase,
		Score: g.score,
		Best:  core.Max(g.best, g.score),
	}
}
