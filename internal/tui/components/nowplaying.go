package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/plazaterm/plaza/internal/core"
	"github.com/plazaterm/plaza/internal/tui/styles"
)

// NowPlaying displays the current track and playback controls
type NowPlaying struct{}

// NewNowPlaying creates a new NowPlaying component
func NewNowPlaying() *NowPlaying {
	return &NowPlaying{}
}

// State carries everything the panel needs for one frame.
type State struct {
	Track        core.NowPlaying
	Paused       bool
	Volume       float64
	VolumeRecent bool
	Wave         string
}

// Render renders the now playing panel
func (n *NowPlaying) Render(s State, width, height int) string {
	statusText := "Playing"
	statusStyle := styles.Playing
	if s.Paused {
		statusText = "Paused"
		statusStyle = styles.Paused
	}
	status := styles.StatusIcon(!s.Paused) + " " + statusStyle.Render(statusText)

	title := s.Track.Title
	if title == "" {
		title = "Unknown Title"
	}
	artist := s.Track.Artist
	if artist == "" {
		artist = "Unknown Artist"
	}

	volumeMark := ""
	if s.VolumeRecent {
		volumeMark = styles.Paused.Render("🔊 ")
	}

	divider := styles.Repeat("─", 3)

	lines := []string{
		"Status: " + status,
		"",
		styles.Wave.Render("Title:  ") + styles.Title.Render(title),
		styles.Wave.Render("Artist: ") + styles.Subtitle.Render(artist),
		"",
		volumeMark + styles.Highlight.Render("Volume: ") + styles.Title.Render(fmt.Sprintf("%.0f%%", s.Volume*100)),
		VolumeBar(s.Volume),
		"",
		styles.Wave.Bold(true).Render("♫ Waveform ♫"),
		styles.Wave.Render(s.Wave),
		"",
		styles.Dim.Render(divider + " Controls " + divider),
		styles.Key.Render("  Space") + " : pause/resume",
		styles.Key.Render("    +/-") + " : volume up/down",
		styles.Key.Render("      m") + " : mute/unmute",
		lipgloss.NewStyle().Bold(true).Foreground(styles.Error).Render("      q") + " : quit",
	}

	panel := styles.Panel(true).
		Width(width).
		Height(height)

	heading := lipgloss.NewStyle().
		Width(width - 2).
		Align(lipgloss.Center).
		Render(styles.PanelTitle("☆ Now Playing - Plaza Radio ☆", true))

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		append([]string{heading, ""}, lines...)...,
	))
}
