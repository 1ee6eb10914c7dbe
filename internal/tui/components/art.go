package components

import (
	"strings"

	"github.com/plazaterm/plaza/internal/tui/styles"
)

// logoLines is the fallback artwork shown in the left panel. The blank runs
// get filled with texture characters before the gradient is applied.
var logoLines = []string{
	"                                                 ",
	"                                                 ",
	"       ╱$$                  ╱$$$$$$              ",
	"      │ $$                 ╱$$__  $$             ",
	"      │ $$       ╱$$   ╱$$│ $$  ╲__╱╱$$$$$$      ",
	"      │ $$      │ $$  │ $$│ $$$$   ╱$$__  $$     ",
	"      │ $$      │ $$  │ $$│ $$_╱  │ $$$$$$$$     ",
	"      │ $$      │ $$  │ $$│ $$    │ $$_____╱     ",
	"      │ $$$$$$$$│  $$$$$$╱│ $$    │  $$$$$$$     ",
	"      │________╱ ╲______╱ │__╱     ╲_______╱     ",
	"                                                 ",
	"                                                 ",
	"                                                 ",
	"                                                 ",
	"                                                 ",
	"                                                 ",
	"                                                 ",
	"                                                 ",
	"                                                 ",
}

const fillerChar = '¨'

// Art renders the artwork panel content
type Art struct{}

// NewArt creates a new Art component
func NewArt() *Art {
	return &Art{}
}

// Generate produces a textured, gradient-colored rendition of the logo.
func (a *Art) Generate() string {
	textured := make([]string, len(logoLines))
	for i, line := range logoLines {
		var b strings.Builder
		for _, c := range line {
			if c == ' ' {
				b.WriteRune(fillerChar)
			} else {
				b.WriteRune(c)
			}
		}
		textured[i] = b.String()
	}

	return strings.Join(styles.Gradient(textured), "\n")
}
