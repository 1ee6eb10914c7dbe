package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plazaterm/plaza/internal/config"
	"github.com/plazaterm/plaza/internal/core"
	"github.com/plazaterm/plaza/internal/metadata"
	"github.com/plazaterm/plaza/internal/player"
	"github.com/plazaterm/plaza/internal/tui/components"
	"github.com/plazaterm/plaza/internal/tui/styles"
)

const (
	volumeStep     = 0.1
	volumeFineStep = 0.05
	// volumeFlash is how long the volume readout stays highlighted after a change.
	volumeFlash = 2 * time.Second
	// artRefreshMin throttles artwork regeneration across track changes.
	artRefreshMin = 2 * time.Second
)

// keyMap defines the playback keybindings
type keyMap struct {
	PausePlay  key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	FineUp     key.Binding
	FineDown   key.Binding
	Mute       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	PausePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause/resume"),
	),
	VolumeUp: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "volume up"),
	),
	VolumeDown: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "volume down"),
	),
	FineUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "volume up (fine)"),
	),
	FineDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "volume down (fine)"),
	),
	Mute: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mute/unmute"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the main TUI model
type Model struct {
	control *player.Control
	cell    *metadata.Cell
	refresh time.Duration

	width  int
	height int

	// State
	track core.NowPlaying

	// Components
	nowPlaying *components.NowPlaying
	waveform   *components.Waveform
	art        *components.Art

	// Artwork cache; regenerated when the track's art URL changes.
	artRender   string
	lastArtURL  string
	lastArtTime time.Time

	lastVolumeChange time.Time

	quitting bool
}

// NewModel creates a new TUI model
func NewModel(cfg config.TUIConfig, control *player.Control, cell *metadata.Cell) Model {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return Model{
		control:    control,
		cell:       cell,
		refresh:    time.Duration(cfg.RefreshInterval) * time.Millisecond,
		nowPlaying: components.NewNowPlaying(),
		waveform:   components.NewWaveform(rng),
		art:        components.NewArt(),
	}
}

type tickMsg time.Time

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.track = m.cell.Load()
		m.refreshArt()
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) refreshArt() {
	if m.artRender != "" && m.track.ArtURL == m.lastArtURL {
		return
	}
	if m.artRender != "" && time.Since(m.lastArtTime) < artRefreshMin {
		return
	}
	m.artRender = m.art.Generate()
	m.lastArtURL = m.track.ArtURL
	m.lastArtTime = time.Now()
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		m.control.Stop()
		return m, tea.Quit

	case key.Matches(msg, keys.PausePlay):
		if m.control.IsPaused() {
			m.control.Play()
		} else {
			m.control.Pause()
		}

	case key.Matches(msg, keys.VolumeUp):
		m.control.SetVolume(m.control.Volume() + volumeStep)
		m.lastVolumeChange = time.Now()

	case key.Matches(msg, keys.VolumeDown):
		m.control.SetVolume(m.control.Volume() - volumeStep)
		m.lastVolumeChange = time.Now()

	case key.Matches(msg, keys.FineUp):
		m.control.SetVolume(m.control.Volume() + volumeFineStep)
		m.lastVolumeChange = time.Now()

	case key.Matches(msg, keys.FineDown):
		m.control.SetVolume(m.control.Volume() - volumeFineStep)
		m.lastVolumeChange = time.Now()

	case key.Matches(msg, keys.Mute):
		m.control.ToggleMute()
		m.lastVolumeChange = time.Now()
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	leftWidth := m.width * 40 / 100
	rightWidth := m.width - leftWidth - 2

	artRender := m.artRender
	if artRender == "" {
		artRender = "[loading artwork...]"
	}

	left := styles.ArtBorder.
		Padding(0, 1).
		Width(leftWidth).
		Height(m.height - 2).
		Render(artRender)

	paused := m.control.IsPaused()
	volume := m.control.Volume()

	right := m.nowPlaying.Render(components.State{
		Track:        m.track,
		Paused:       paused,
		Volume:       volume,
		VolumeRecent: time.Since(m.lastVolumeChange) < volumeFlash,
		Wave:         m.waveform.Render(!paused, volume),
	}, rightWidth, m.height-2)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// Run starts the TUI and blocks until the user quits. Playback is stopped
// before returning.
func Run(cfg config.TUIConfig, control *player.Control, cell *metadata.Cell) error {
	model := NewModel(cfg, control, cell)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	control.Stop()
	return err
}
