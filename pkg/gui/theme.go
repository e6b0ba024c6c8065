package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/blockterm/pkg/mino"
)

var ErrUnknownTheme = errors.New("theme: no theme found")

// Theme is used for coloring the board and side panel.
type Theme struct {
	Name   string      `json:"name"`
	Cyan   tcell.Color `json:"cyan"`
	Yellow tcell.Color `json:"yellow"`
	Purple tcell.Color `json:"purple"`
	Green  tcell.Color `json:"green"`
	Red    tcell.Color `json:"red"`
	Blue   tcell.Color `json:"blue"`
	Orange tcell.Color `json:"orange"`
	Border tcell.Color `json:"border"`
	Label  tcell.Color `json:"label"`
	Msg    tcell.Color `json:"msg"`
}

// ThemeHex is a Theme with its colors written as hex strings, the form
// themes are stored in.
type ThemeHex struct {
	Name   string `json:"name"`
	Cyan   string `json:"cyan"`
	Yellow string `json:"yellow"`
	Purple string `json:"purple"`
	Green  string `json:"green"`
	Red    string `json:"red"`
	Blue   string `json:"blue"`
	Orange string `json:"orange"`
	Border string `json:"border"`
	Label  string `json:"label"`
	Msg    string `json:"msg"`
}

// fmtHex returns "#0" for ColorDefault so it survives a round trip through
// tcell.GetColor instead of turning black.
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Cyan.Hex()),
		fmtHex(t.Yellow.Hex()),
		fmtHex(t.Purple.Hex()),
		fmtHex(t.Green.Hex()),
		fmtHex(t.Red.Hex()),
		fmtHex(t.Blue.Hex()),
		fmtHex(t.Orange.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Msg.Hex()),
	}
}

func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Cyan),
		tcell.GetColor(t.Yellow),
		tcell.GetColor(t.Purple),
		tcell.GetColor(t.Green),
		tcell.GetColor(t.Red),
		tcell.GetColor(t.Blue),
		tcell.GetColor(t.Orange),
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.Msg),
	}
}

// Block returns the color used to draw a cell of color c.
func (t Theme) Block(c mino.Color) tcell.Color {
	switch c {
	case mino.ColorCyan:
		return t.Cyan
	case mino.ColorYellow:
		return t.Yellow
	case mino.ColorPurple:
		return t.Purple
	case mino.ColorGreen:
		return t.Green
	case mino.ColorRed:
		return t.Red
	case mino.ColorBlue:
		return t.Blue
	case mino.ColorOrange:
		return t.Orange
	default:
		return tcell.ColorDefault
	}
}

// ImportThemes returns the theme named want from themes.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, want)
}

// LookupTheme returns the built-in theme with the given name. An empty name
// selects ThemeBasic.
func LookupTheme(name string) (Theme, error) {
	if name == "" {
		return ThemeBasic, nil
	}

	themes := make([]ThemeHex, len(Themes))
	for i, t := range Themes {
		themes[i] = t.Hex()
	}

	return ImportThemes(name, themes)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",                     // Name
	tcell.NewHexColor(0x00eeee), // Cyan
	tcell.NewHexColor(0xdddd00), // Yellow
	tcell.NewHexColor(0xc000cc), // Purple
	tcell.NewHexColor(0x00e900), // Green
	tcell.NewHexColor(0xee0000), // Red
	tcell.NewHexColor(0x2864ff), // Blue
	tcell.NewHexColor(0xff7308), // Orange
	tcell.Color247,              // Border
	tcell.Color247,              // Label
	tcell.Color160,              // Msg
}

// ThemeMono draws every piece in the same gray.
var ThemeMono = Theme{
	"mono",             // Name
	tcell.Color250,     // Cyan
	tcell.Color250,     // Yellow
	tcell.Color250,     // Purple
	tcell.Color250,     // Green
	tcell.Color250,     // Red
	tcell.Color250,     // Blue
	tcell.Color250,     // Orange
	tcell.ColorDefault, // Border
	tcell.ColorDefault, // Label
	tcell.ColorDefault, // Msg
}

var Themes = []Theme{ThemeBasic, ThemeMono}
