package mino

// Color identifies what occupies a board cell. Empty marks a free cell.
type Color string

const (
	Empty Color = ""

	ColorCyan   Color = "cyan"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorOrange Color = "orange"
)

func (c Color) Rune() rune {
	if c == Empty {
		return '.'
	}

	return '#'
}
