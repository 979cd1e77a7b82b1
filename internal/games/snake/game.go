// Package snake implements the Retro Snake simulation: a snake moving on a
// fixed grid, food placement, collision rules and the game-over cycle.
// It has no terminal or audio dependencies; the platform drives it.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/retro-snake/internal/core"
)

// Fixed board and cadence. These are part of the game's feel and are not
// user-configurable.
const (
	CellCount    = 20
	TickInterval = 200 * time.Millisecond
)

// Cause records why the last game ended.
type Cause string

const (
	CauseNone Cause = ""
	CauseWall Cause = "wall"
	CauseSelf Cause = "self"
)

// Game owns the snake, the food, the score and the running flag.
type Game struct {
	grid    core.Grid
	rng     *rand.Rand
	snake   *Snake
	food    *Food
	score   int
	running bool
	tick    uint64
	cause   Cause
	events  []core.Event

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game. Call Reset before use.
func New() *Game {
	return &Game{grid: core.NewGrid(CellCount)}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Retro Snake"
}

// Reset starts a fresh session: seeds the RNG, resets the snake, places the
// food and sets the game running. The snake and food are reused if present.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	if g.snake == nil {
		g.snake = NewSnake()
	} else {
		g.snake.Reset()
	}
	if g.food == nil {
		g.food = NewFood(g.grid, g.rng, g.snake.Body())
	} else {
		g.food.rng = g.rng
		g.food.PlaceAvoiding(g.snake.Body())
	}
	g.score = 0
	g.running = true
	g.tick = 0
	g.cause = CauseNone
	g.events = g.events[:0]
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the screen size and whether the board fits in it.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < boardWidth() || h < boardHeight()
}

// Fits reports whether the board fits on the current screen.
func (g *Game) Fits() bool {
	return !g.tooSmall
}

// HandleInput applies directional input for one frame. Directions are
// polled in a fixed order (up, down, left, right); each accepted turn also
// sets the game running, which is how a stopped game resumes.
func (g *Game) HandleInput(in core.InputFrame) {
	for _, a := range core.DirectionalActions {
		if !in.Has(a) {
			continue
		}
		if g.snake.SetDirection(actionDirection(a)) {
			g.running = true
		}
	}
}

// actionDirection maps a movement action to its unit vector.
func actionDirection(a core.Action) core.Vec {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	default:
		return DirRight
	}
}

// Update runs one simulation tick: the snake moves, then the food, wall and
// self collision checks run in that order. Does nothing while stopped.
func (g *Game) Update() core.StepResult {
	g.events = g.events[:0]

	if g.running {
		g.tick++
		g.snake.Step()
		g.checkCollisionWithFood()
		g.checkCollisionWithWall()
		g.checkCollisionWithSelf()
	}

	events := make([]core.Event, len(g.events))
	copy(events, g.events)
	return core.StepResult{State: g.State(), Events: events}
}

// Step applies one frame of input and then runs one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.HandleInput(in)
	return g.Update()
}

func (g *Game) checkCollisionWithFood() {
	if g.snake.Head() != g.food.Position() {
		return
	}
	g.food.PlaceAvoiding(g.snake.Body())
	g.snake.Grow()
	g.score++
	g.events = append(g.events, core.EventEat)
}

func (g *Game) checkCollisionWithWall() {
	if g.grid.InBounds(g.snake.Head()) {
		return
	}
	g.gameOver(CauseWall)
	g.events = append(g.events, core.EventWall)
}

// checkCollisionWithSelf ends the game without emitting an event.
func (g *Game) checkCollisionWithSelf() {
	if !g.snake.HitsItself() {
		return
	}
	g.gameOver(CauseSelf)
}

// gameOver resets the board and stops the game until the next accepted turn.
func (g *Game) gameOver(cause Cause) {
	g.snake.Reset()
	g.food.PlaceAvoiding(g.snake.Body())
	g.score = 0
	g.running = false
	g.cause = cause
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Running: g.running,
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Running reports whether the simulation advances on ticks.
func (g *Game) Running() bool {
	return g.running
}

// Body returns a copy of the snake body, head first.
func (g *Game) Body() []core.Vec {
	return g.snake.Body()
}

// FoodPos returns the food cell.
func (g *Game) FoodPos() core.Vec {
	return g.food.Position()
}

// LastCause returns why the most recent game ended, or CauseNone.
func (g *Game) LastCause() Cause {
	return g.cause
}
