package core

// Color is an ANSI 256-color code for a screen cell.
// ColorDefault leaves the terminal's own color in place.
type Color int16

// Named colors used by the HUD and overlays.
const (
	ColorDefault Color = -1

	ColorBlack       Color = 0
	ColorRed         Color = 1
	ColorGreen       Color = 2
	ColorYellow      Color = 3
	ColorWhite       Color = 7
	ColorGray        Color = 245
	ColorDarkGray    Color = 238
	ColorBrightWhite Color = 231
	ColorInk         Color = 236 // dark text on light tiles
)

// IsDefault reports whether c means "use the terminal default".
func (c Color) IsDefault() bool {
	return c < 0
}
