package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// colorPair is the style key of a run of cells.
type colorPair struct {
	fg, bg core.Color
}

// styleCache builds one lipgloss style per color pair per frame.
type styleCache struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

func newStyleCache(r *lipgloss.Renderer) *styleCache {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &styleCache{renderer: r, styles: make(map[colorPair]lipgloss.Style)}
}

func (c *styleCache) get(p colorPair) lipgloss.Style {
	if s, ok := c.styles[p]; ok {
		return s
	}
	s := c.renderer.NewStyle()
	if !p.fg.IsDefault() {
		s = s.Foreground(lipgloss.Color(strconv.Itoa(int(p.fg))))
	}
	if !p.bg.IsDefault() {
		s = s.Background(lipgloss.Color(strconv.Itoa(int(p.bg))))
	}
	c.styles[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// A nil renderer uses lipgloss's default one; SSH sessions pass their own.
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	styles := newStyleCache(r)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.Fg, cell.Bg}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Fg, cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.fg.IsDefault() && start.bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
