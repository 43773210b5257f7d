package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

// tileColors holds one background per tile value up to 2048.
var tileColors = map[int]core.Color{
	0:    224, // baby pink
	2:    225,
	4:    218,
	8:    217,
	16:   211,
	32:   212,
	64:   205,
	128:  206,
	256:  199,
	512:  198,
	1024: 162,
	2048: 161,
}

// BigTileColor is used for every value above 2048.
const BigTileColor core.Color = 125

// BoardColor fills the gaps between tiles.
const BoardColor core.Color = 238

// TileColor returns the background color for a tile value.
func TileColor(value int) core.Color {
	if c, ok := tileColors[value]; ok {
		return c
	}
	return BigTileColor
}

// TileTextColor returns a foreground that stays readable on TileColor(value).
func TileTextColor(value int) core.Color {
	if value <= 8 {
		return core.ColorInk
	}
	return core.ColorBrightWhite
}
