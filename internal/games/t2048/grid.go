package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every move direction in a stable order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
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
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name such as "left" or "Up" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("t2048: unknown direction %q", s)
}

// BoardSize is the board dimension.
const BoardSize = 4

// Grid is the 4x4 board indexed [row][col]. Zero is an empty cell.
type Grid [BoardSize][BoardSize]int

// Pos addresses one cell of the grid.
type Pos struct {
	Row, Col int
}

// String renders the grid as four space-separated rows.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range BoardSize {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range BoardSize {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%4d", g[r][c])
		}
	}
	return sb.String()
}

// Line is one row or column read from the edge a move slides toward.
// Index 0 is the target edge.
type Line [BoardSize]int

// linePositions maps a line index to grid cells for the given direction,
// ordered from the target edge inward.
func linePositions(dir Direction, i int) [BoardSize]Pos {
	var ps [BoardSize]Pos
	for k := range BoardSize {
		switch dir {
		case DirLeft:
			ps[k] = Pos{Row: i, Col: k}
		case DirRight:
			ps[k] = Pos{Row: i, Col: BoardSize - 1 - k}
		case DirUp:
			ps[k] = Pos{Row: k, Col: i}
		case DirDown:
			ps[k] = Pos{Row: BoardSize - 1 - k, Col: i}
		}
	}
	return ps
}

// compactLine slides nonzero values toward index 0, keeping their order.
func compactLine(l Line) (out Line, moved bool) {
	n := 0
	for i, v := range l {
		if v == 0 {
			continue
		}
		out[n] = v
		if n != i {
			moved = true
		}
		n++
	}
	return out, moved
}

// mergeLine doubles equal neighbours scanning from index 0 inward.
// The merged-from cell is zeroed at once, so a merged tile never merges
// again in the same pass.
func mergeLine(l Line) (out Line, score int, merged bool) {
	out = l
	for i := 0; i < BoardSize-1; i++ {
		if out[i] != 0 && out[i] == out[i+1] {
			out[i] *= 2
			out[i+1] = 0
			score += out[i]
			merged = true
		}
	}
	return out, score, merged
}

// SlideLine runs compact, merge and compact on a single line.
// Returns the new line, the score gained and whether anything changed.
func SlideLine(l Line) (Line, int, bool) {
	compacted, shifted := compactLine(l)
	merged, score, didMerge := mergeLine(compacted)
	result, _ := compactLine(merged)
	return result, score, shifted || didMerge
}

// Slide performs a move in the given direction without spawning.
// Returns the new grid, score gained, and whether the grid changed.
func Slide(g Grid, dir Direction) (Grid, int, bool) {
	switch dir {
	case DirUp, DirDown, DirLeft, DirRight:
	default:
		return g, 0, false
	}

	out := g
	total := 0
	changed := false

	for i := range BoardSize {
		ps := linePositions(dir, i)

		var l Line
		for k, p := range ps {
			l[k] = g[p.Row][p.Col]
		}

		slid, score, moved := SlideLine(l)
		for k, p := range ps {
			out[p.Row][p.Col] = slid[k]
		}

		total += score
		changed = changed || moved
	}

	return out, total, changed
}

// EmptyCells returns positions of all empty cells in row-major order.
func EmptyCells(g Grid) []Pos {
	var cells []Pos
	for r := range BoardSize {
		for c := range BoardSize {
			if g[r][c] == 0 {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if g[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold equal values.
func HasPossibleMerge(g Grid) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			v := g[r][c]
			if c < BoardSize-1 && g[r][c+1] == v {
				return true
			}
			if r < BoardSize-1 && g[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// IsGameOver returns true when the grid is full and no neighbours match.
func IsGameOver(g Grid) bool {
	return !HasEmptyCell(g) && !HasPossibleMerge(g)
}

// MaxTile returns the maximum tile value on the grid.
func MaxTile(g Grid) int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			maxVal = max(maxVal, g[r][c])
		}
	}
	return maxVal
}

// IsValidTile reports whether v may appear on a grid: 0 or 2^k with k >= 1.
func IsValidTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Validate checks that every cell holds a valid tile.
func (g Grid) Validate() error {
	for r := range BoardSize {
		for c := range BoardSize {
			if !IsValidTile(g[r][c]) {
				return fmt.Errorf("t2048: invalid tile %d at row %d col %d", g[r][c], r, c)
			}
		}
	}
	return nil
}

// TileCount returns the number of nonzero cells.
func TileCount(g Grid) int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
