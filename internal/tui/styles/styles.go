package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Colors - a dawn-gradient palette
var (
	// Primary colors
	Primary   = lipgloss.Color("#FF8C00") // Orange
	Secondary = lipgloss.Color("#800080") // Purple
	Accent    = lipgloss.Color("#22D3EE") // Cyan

	// Status colors
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#EF4444") // Red

	// Neutral colors
	Border    = lipgloss.Color("#4B5563") // Light gray
	Text      = lipgloss.Color("#F9FAFB") // White
	TextMuted = lipgloss.Color("#9CA3AF") // Gray
	TextDim   = lipgloss.Color("#6B7280") // Darker gray
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextMuted)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Highlight = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Key = lipgloss.NewStyle().
		Bold(true).
		Foreground(Warning)

	Playing = lipgloss.NewStyle().
		Bold(true).
		Foreground(Success)

	Paused = lipgloss.NewStyle().
		Foreground(Warning)

	Wave = lipgloss.NewStyle().
		Foreground(Accent)
)

// Border styles
var (
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border)

	ArtBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary)

	FocusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent)
)

// Panel creates a styled panel
func Panel(focused bool) lipgloss.Style {
	if focused {
		return FocusedBorder.Padding(0, 1)
	}
	return BorderStyle.Padding(0, 1)
}

// PanelTitle creates a styled panel title
func PanelTitle(title string, focused bool) string {
	style := Label
	if focused {
		style = Highlight
	}
	return style.Render(" " + title + " ")
}

// StatusIcon returns an icon for playback status
func StatusIcon(playing bool) string {
	if playing {
		return Playing.Render("▶")
	}
	return Paused.Render("⏸")
}

// VolumeIcon returns an icon for the current volume level
func VolumeIcon(volume float64) string {
	percent := int(volume * 100)
	switch {
	case percent == 0:
		return "🔇"
	case percent < 30:
		return "🔈"
	case percent < 70:
		return "🔉"
	default:
		return "🔊"
	}
}

// Gradient colors a block of lines with a vertical RGB fade from Primary
// to Secondary, one color per line.
func Gradient(lines []string) []string {
	start := [3]float64{255, 140, 0}
	end := [3]float64{128, 0, 128}

	out := make([]string, len(lines))
	n := float64(len(lines))
	for i, line := range lines {
		t := 0.0
		if n > 1 {
			t = float64(i) / (n - 1)
		}
		r := uint8(start[0]*(1-t) + end[0]*t)
		g := uint8(start[1]*(1-t) + end[1]*t)
		b := uint8(start[2]*(1-t) + end[2]*t)
		color := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
		out[i] = lipgloss.NewStyle().Foreground(color).Render(line)
	}
	return out
}

// Repeat repeats a string n times
func Repeat(s string, n int) string {
	result := ""
	for i := 0; i < n; i++ {
		result += s
	}
	return result
}
