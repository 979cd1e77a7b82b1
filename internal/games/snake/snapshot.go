package snake

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick     uint64
	Score    int
	Running  bool
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      string
	FoodX    int
	FoodY    int
	Cause    Cause
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	food := g.food.Position()

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Running:  g.running,
		SnakeLen: g.snake.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      DirectionName(g.snake.Direction()),
		FoodX:    food.X,
		FoodY:    food.Y,
		Cause:    g.cause,
	}
}
