package core

// Intent is a discrete player action derived from raw input events
// (key presses, mouse presses). Games consume intents rather than keys,
// which keeps bindings in the platform layer and the core testable.
type Intent int

const (
	IntentNone    Intent = iota
	IntentStart           // Begin a run from the idle or game-over screen
	IntentJump            // Jump while running; doubles as start when not running
	IntentRestart         // Restart after game over
	IntentQuit            // Leave the game
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentStart:
		return "Start"
	case IntentJump:
		return "Jump"
	case IntentRestart:
		return "Restart"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IntentFrame holds the intents gathered between two simulation frames.
// Input events are asynchronous relative to the frame loop; the platform
// buffers them here and the game consumes the frame at the start of the
// next tick. Repeated intents collapse (last intent wins) since jump and
// start are idempotent.
type IntentFrame struct {
	intents map[Intent]bool
}

// NewIntentFrame creates an empty intent frame.
func NewIntentFrame() IntentFrame {
	return IntentFrame{
		intents: make(map[Intent]bool),
	}
}

// Set marks an intent as raised for this frame.
func (f *IntentFrame) Set(i Intent) {
	if f.intents == nil {
		f.intents = make(map[Intent]bool)
	}
	f.intents[i] = true
}

// Has reports whether the given intent was raised this frame.
func (f IntentFrame) Has(i Intent) bool {
	if f.intents == nil {
		return false
	}
	return f.intents[i]
}

// Clear resets all intents for the next frame.
func (f *IntentFrame) Clear() {
	for k := range f.intents {
		delete(f.intents, k)
	}
}
