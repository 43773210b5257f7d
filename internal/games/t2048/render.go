package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Board layout in screen cells.
const (
	tileWidth  = 6
	tileHeight = 3
	tileGap    = 1
	hudHeight  = 3

	boardWidth  = BoardSize*tileWidth + (BoardSize+1)*tileGap
	boardHeight = BoardSize*tileHeight + (BoardSize+1)*tileGap

	minScreenW = boardWidth
	minScreenH = hudHeight + boardHeight + 1 // +1 for controls line
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := core.NewRect((g.screenW-boardWidth)/2, hudHeight, boardWidth, boardHeight)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderOverlays(dst, board)

	controls := g.Controls()
	row := core.NewRect(0, board.Bottom(), g.screenW, 1)
	dst.DrawText(row.AlignCenter(len(controls)), row.Y, controls)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := "2048"
	dst.DrawStyledText(board.AlignCenter(len(title)), 0, title, TileColor(2048), core.ColorDefault)

	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", g.engine.Score()))

	best := fmt.Sprintf("Best: %d", g.Best())
	dst.DrawText(board.AlignRight(len(best)), 1, best)
}

// renderBoard paints the board background and every tile.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.Paint(board, BoardColor)

	grid := g.engine.Grid()
	for r := range BoardSize {
		for c := range BoardSize {
			tile := tileRect(board, r, c)
			val := grid[r][c]
			dst.Paint(tile, TileColor(val))
			if val == 0 {
				continue
			}

			text := strconv.Itoa(val)
			dst.DrawStyledText(tile.AlignCenter(len(text)), tile.Y+tileHeight/2, text, TileTextColor(val), TileColor(val))
		}
	}
}

// tileRect returns the screen area of the tile at row r, column c.
func tileRect(board core.Rect, r, c int) core.Rect {
	return core.NewRect(
		board.X+tileGap+c*(tileWidth+tileGap),
		board.Y+tileGap+r*(tileHeight+tileGap),
		tileWidth,
		tileHeight,
	)
}

// renderOverlays draws pause and game over boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX := board.X + board.W/2
	centerY := board.Y + board.H/2

	if g.engine.Status() == StatusOver {
		maxStr := fmt.Sprintf("Max tile: %d", MaxTile(g.engine.Grid()))
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
		return
	}

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.Centered(centerX, centerY, maxLen+4, len(lines)+2)

	blank := core.Cell{Rune: ' ', Fg: core.ColorDefault, Bg: core.ColorDefault}
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.SetCell(x, y, blank)
		}
	}

	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(box.AlignCenter(len(line)), box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | P: Pause | R: Restart | Q: Quit"
}
