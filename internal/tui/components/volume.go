package components

import (
	"strings"

	"github.com/plazaterm/plaza/internal/tui/styles"
)

const volumeBarLength = 20

// VolumeBar renders a fixed-width gauge for the linear gain. The fill fades
// from solid to sparse toward the loud end, and a muted bar shows crosses.
func VolumeBar(volume float64) string {
	percent := int(volume * 100)
	filled := percent * volumeBarLength / 100
	if filled > volumeBarLength {
		filled = volumeBarLength
	}

	var b strings.Builder
	b.WriteString("│")
	for i := 0; i < volumeBarLength; i++ {
		switch {
		case i >= filled:
			b.WriteRune('·')
		case volume == 0:
			b.WriteRune('✗')
		case i < volumeBarLength*60/100:
			b.WriteRune('▓')
		case i < volumeBarLength*80/100:
			b.WriteRune('▒')
		default:
			b.WriteRune('░')
		}
	}
	b.WriteString("│ ")
	b.WriteString(styles.VolumeIcon(volume))

	return b.String()
}
