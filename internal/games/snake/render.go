package snake

import (
	"fmt"

	"github.com/vovakirdan/retro-snake/internal/core"
)

// Each grid cell is drawn two columns wide so the board looks square in a
// terminal. The layout is: title row, bordered board, score row.
const (
	cellCols  = 2
	titleRows = 1
	scoreRows = 1
)

func boardWidth() int {
	return CellCount*cellCols + 2
}

func boardHeight() int {
	return titleRows + CellCount + 2 + scoreRows
}

// MinScreenSize is the smallest screen, in terminal cells, the board fits in.
func MinScreenSize() (w, h int) {
	return boardWidth(), boardHeight()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorOverlay)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", boardWidth(), boardHeight()), core.ColorOverlay)
		return
	}

	offX := (dst.Width() - boardWidth()) / 2
	offY := (dst.Height() - boardHeight()) / 2
	frame := core.NewRect(offX, offY+titleRows, boardWidth(), CellCount+2)

	dst.DrawText(frame.X, offY, g.Title(), core.ColorTitle)
	dst.DrawBox(frame, core.ColorBorder)

	// Food
	food := g.food.Position()
	g.drawCell(dst, frame, food, "()", core.ColorFood)

	// Snake, tail first so the head is drawn last
	body := g.snake.Body()
	for i := len(body) - 1; i >= 0; i-- {
		if i == 0 {
			g.drawCell(dst, frame, body[i], "██", core.ColorHead)
		} else {
			g.drawCell(dst, frame, body[i], "██", core.ColorSnake)
		}
	}

	dst.DrawText(frame.X, frame.Bottom(), fmt.Sprintf("Score: %d", g.score), core.ColorScore)

	if !g.running {
		g.renderOverlay(dst, frame)
	}
}

// drawCell draws a two-column glyph for a grid cell. Cells off the board
// are skipped so a head that just left the grid never overwrites the frame.
func (g *Game) drawCell(dst *core.Screen, frame core.Rect, p core.Vec, glyph string, c core.Color) {
	if !g.grid.InBounds(p) {
		return
	}
	dst.DrawText(frame.X+1+p.X*cellCols, frame.Y+1+p.Y, glyph, c)
}

// renderOverlay draws the stopped-game message in the middle of the board.
func (g *Game) renderOverlay(dst *core.Screen, frame core.Rect) {
	reason := "Ready"
	switch g.cause {
	case CauseWall:
		reason = "You hit the wall"
	case CauseSelf:
		reason = "You ran into yourself"
	}
	hint := "Press an arrow key to play"

	boxW := max(len(reason), len(hint)) + 4
	boxH := 5
	box := core.NewRect(frame.X+(frame.W-boxW)/2, frame.Y+(frame.H-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorOverlay)
	dst.DrawBox(box, core.ColorOverlay)
	dst.DrawText(box.X+(boxW-len(reason))/2, box.Y+1, reason, core.ColorOverlay)
	dst.DrawText(box.X+(boxW-len(hint))/2, box.Y+3, hint, core.ColorOverlay)
}
