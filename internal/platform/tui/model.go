package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tverd/dashrun/internal/core"
	"github.com/tverd/dashrun/internal/storage"
)

// Model is the Bubble Tea model driving one game. It owns the frame
// loop: a tick is pending only while the game is running, and input
// events in the static phases advance the state machine directly, so a
// quit or teardown never leaves a leaked frame callback behind.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	keymap     *KeyMapper
	runtime    core.RuntimeConfig
	pinnedSeed bool // Seed was set explicitly; do not reseed between runs
	intents    core.IntentFrame
	state      core.GameState
	lastTick   time.Time
	ticking    bool
	scoreSaved bool
	quitting   bool
}

// NewModel creates a model for the given game, loading the persisted
// high score if a store is available.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	pinned := cfg.Seed != 0
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)
	if store != nil {
		// A missing or unreadable high score degrades to 0.
		if best, err := store.HighScore(); err == nil {
			game.SetBest(best)
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keymap:     NewKeyMapper(),
		runtime:    cfg,
		pinnedSeed: pinned,
		intents:    core.NewIntentFrame(),
		state:      game.State(),
	}
}

// Init implements tea.Model. The game starts idle, so no tick is
// scheduled until the player starts a run.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if intent := m.keymap.MapMouse(msg); intent != core.IntentNone {
			return m.dispatch(intent)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input to intents.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent, isQuit := m.keymap.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if intent == core.IntentNone {
		return m, nil
	}
	return m.dispatch(intent)
}

// dispatch routes an intent. While running, intents buffer into the
// frame consumed at the next tick (last intent wins). In the static
// phases the game advances only on input, so the intent is consumed
// immediately; if it starts a run, the frame loop is re-armed.
func (m Model) dispatch(intent core.Intent) (tea.Model, tea.Cmd) {
	if m.state.Phase == core.PhaseRunning {
		m.intents.Set(intent)
		return m, nil
	}

	// Fresh seed per run unless the player pinned one for reproducibility.
	if !m.pinnedSeed {
		m.runtime.Seed = time.Now().UnixNano()
		m.game.Reset(m.runtime)
	}

	frame := core.NewIntentFrame()
	frame.Set(intent)
	result := m.game.Step(frame, 0)
	m.state = result.State

	if m.state.Phase == core.PhaseRunning {
		m.scoreSaved = false
		m.ticking = true
		m.lastTick = time.Now()
		return m, tickCmd(m.runtime.TickRate)
	}
	return m, nil
}

// handleResize adapts the screen buffer to the new terminal size.
// A run in progress keeps going; static phases re-layout immediately.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.state.Phase != core.PhaseRunning {
		m.game.Reset(m.runtime)
		m.state = m.game.State()
	}

	return m, nil
}

// handleTick runs one simulation frame with the measured elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// A tick may still arrive after the loop stopped; drop it.
	if !m.ticking {
		return m, nil
	}

	dt := now.Sub(m.lastTick)
	if dt < 0 {
		dt = 0
	}
	m.lastTick = now

	result := m.game.Step(m.intents, dt)
	m.intents.Clear()
	m.state = result.State

	if m.state.Phase == core.PhaseGameOver {
		m.ticking = false
		m.commitScore()
		return m, nil
	}

	return m, tickCmd(m.runtime.TickRate)
}

// commitScore persists the finished run once and refreshes the best
// value shown in the HUD. Storage failures are tolerated; the game keeps
// its in-memory best.
func (m *Model) commitScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	m.game.SetBest(m.state.Score)

	if m.store == nil || m.state.Score <= 0 {
		return
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.state.Score)
	if best, err := m.store.HighScore(); err == nil {
		m.game.SetBest(best)
	}
	m.state = m.game.State()
}

// View renders the current state for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game and blocks until
// the player quits. Teardown cancels any pending tick.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Pointer press doubles as the jump button
	)

	_, err := p.Run()
	return err
}
