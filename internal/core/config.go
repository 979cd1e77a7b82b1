package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Render frames per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// Event is a fire-and-forget signal emitted by a simulation tick.
type Event int

const (
	EventNone Event = iota
	EventEat        // snake head reached the food
	EventWall       // snake head left the board
)

func (e Event) String() string {
	switch e {
	case EventEat:
		return "eat"
	case EventWall:
		return "wall"
	default:
		return "none"
	}
}

// GameState is the externally visible state after a tick.
type GameState struct {
	Score   int  // Current score
	Running bool // False after a collision until the player resumes
}

// StepResult is returned after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether ev was emitted during the tick.
func (r StepResult) Has(ev Event) bool {
	for _, e := range r.Events {
		if e == ev {
			return true
		}
	}
	return false
}
