package snake

import "github.com/vovakirdan/retro-snake/internal/core"

// Unit movement directions in grid coordinates (y grows downward).
var (
	DirUp    = core.Vec{X: 0, Y: -1}
	DirDown  = core.Vec{X: 0, Y: 1}
	DirLeft  = core.Vec{X: -1, Y: 0}
	DirRight = core.Vec{X: 1, Y: 0}
)

// DirectionName returns a human-readable name for a unit direction.
func DirectionName(d core.Vec) string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// startBody is the canonical body, head first.
var startBody = []core.Vec{{X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}}

// Snake is an ordered run of cells plus a movement direction.
//
// The body is kept tail-first so that pushing a new head is an append and
// dropping the tail is a reslice, both O(1) amortized.
type Snake struct {
	body      []core.Vec // tail at index 0, head at the end
	direction core.Vec
	grow      bool // keep the tail on the next Step
}

// NewSnake creates a snake in the canonical start position.
func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Reset restores the canonical 3-cell body and the rightward direction.
func (s *Snake) Reset() {
	s.setBody(startBody)
	s.direction = DirRight
	s.grow = false
}

// setBody replaces the body with cells given head first.
func (s *Snake) setBody(headFirst []core.Vec) {
	s.body = make([]core.Vec, len(headFirst), len(headFirst)+8)
	for i, p := range headFirst {
		s.body[len(headFirst)-1-i] = p
	}
}

// Step advances the snake one cell. The new head is never bounds-checked.
func (s *Snake) Step() {
	s.body = append(s.body, s.Head().Add(s.direction))
	if s.grow {
		s.grow = false
		return
	}
	s.body = s.body[1:]
}

// Grow makes the next Step keep the tail, lengthening the snake by one.
func (s *Snake) Grow() {
	s.grow = true
}

// Growing reports whether a growth is pending for the next Step.
func (s *Snake) Growing() bool {
	return s.grow
}

// SetDirection turns the snake. A direction opposite to the current one is
// ignored. Returns whether d was accepted.
func (s *Snake) SetDirection(d core.Vec) bool {
	if d == s.direction.Neg() {
		return false
	}
	s.direction = d
	return true
}

// Direction returns the current movement direction.
func (s *Snake) Direction() core.Vec {
	return s.direction
}

// Head returns the head cell.
func (s *Snake) Head() core.Vec {
	return s.body[len(s.body)-1]
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Vec {
	out := make([]core.Vec, len(s.body))
	for i, p := range s.body {
		out[len(s.body)-1-i] = p
	}
	return out
}

// HitsItself reports whether the head shares a cell with any other segment.
func (s *Snake) HitsItself() bool {
	head := s.Head()
	return core.ContainsVec(s.body[:len(s.body)-1], head)
}
