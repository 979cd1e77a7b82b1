package snake

import (
	"math/rand"

	"github.com/vovakirdan/retro-snake/internal/core"
)

// Food is the single item the snake chases.
type Food struct {
	grid     core.Grid
	rng      *rand.Rand
	position core.Vec
}

// NewFood creates food placed away from the occupied cells.
func NewFood(grid core.Grid, rng *rand.Rand, occupied []core.Vec) *Food {
	f := &Food{grid: grid, rng: rng}
	f.PlaceAvoiding(occupied)
	return f
}

// PlaceAvoiding moves the food to a random interior cell that is not in
// occupied and returns the new position.
//
// Sampling repeats until a free cell is found. A board with no free
// interior cell never terminates; the game cannot reach that state at the
// default size.
func (f *Food) PlaceAvoiding(occupied []core.Vec) core.Vec {
	p := f.grid.RandomInterior(f.rng)
	for core.ContainsVec(occupied, p) {
		p = f.grid.RandomInterior(f.rng)
	}
	f.position = p
	return p
}

// Position returns the current food cell.
func (f *Food) Position() core.Vec {
	return f.position
}
