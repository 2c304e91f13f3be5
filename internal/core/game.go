package core

import "time"

// Phase is the single explicit run state. Exactly one phase holds at any
// time; representable-but-invalid flag combinations are not possible.
type Phase int

const (
	PhaseIdle     Phase = iota // Before the first start, static prompt
	PhaseRunning               // Simulation advancing every frame
	PhaseGameOver              // Run ended, static prompt until restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RuntimeConfig is passed to games at initialization. Games use it to
// adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Target simulation frames per second
	Seed     int64 // RNG seed; 0 means the platform picks a time-based one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the externally visible state of a game, returned by
// Game.State(). Reads must not mutate the simulation.
type GameState struct {
	Phase Phase // Current run phase
	Score int   // Current run score, monotonically non-decreasing
	Best  int   // Best of the current score and the persisted high score
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}

// Game is the contract between a simulation core and the platform.
// Implementations contain pure logic with no terminal dependencies; the
// platform owns input mapping, frame timing, and display.
type Game interface {
	// ID returns a unique identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game into the idle phase.
	Reset(cfg RuntimeConfig)

	// Step consumes the buffered intents and, while running, advances
	// the simulation by the elapsed wall time dt. Implementations clamp
	// dt to a maximum step so a long scheduling stall (suspended
	// terminal, resumed tab) cannot destabilize the physics.
	Step(in IntentFrame, dt time.Duration) StepResult

	// SetBest installs the persisted high score for HUD display.
	// It never lowers an already known best.
	SetBest(best int)

	// Render draws the current state into the screen buffer.
	Render(dst *Screen)

	// State returns the current externally visible state.
	State() GameState
}
