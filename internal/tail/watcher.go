package tail

import (
	"context"
	"time"

	"github.com/plazaterm/plaza/internal/core"
	"github.com/plazaterm/plaza/internal/metadata"
)

// EventType represents the type of station event.
type EventType int

const (
	EventTrackChange EventType = iota
	EventArtChange
)

// Event represents a change in the station's broadcast state.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Previous  core.NowPlaying
	Current   core.NowPlaying
}

// Watcher observes the metadata cell and emits events when the broadcast
// state changes between polls.
type Watcher struct {
	cell     *metadata.Cell
	interval time.Duration
	events   chan Event
	done     chan struct{}
}

// NewWatcher creates a new broadcast watcher.
func NewWatcher(cell *metadata.Cell, interval time.Duration) *Watcher {
	if interval == 0 {
		interval = time.Second
	}
	return &Watcher{
		cell:     cell,
		interval: interval,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}
}

// Events returns the channel of station events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins watching for changes. An event already in the cell at start
// time is reported as the first track change.
func (w *Watcher) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.events)

	prev, seq := w.cell.Get()
	if prev.Valid() {
		w.emit(Event{
			Type:      EventTrackChange,
			Timestamp: time.Now(),
			Current:   prev,
		})
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case <-ticker.C:
			curr, s := w.cell.Get()
			if s == seq {
				continue
			}

			for _, e := range diff(prev, curr) {
				w.emit(e)
			}

			prev, seq = curr, s
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
}

func (w *Watcher) emit(e Event) {
	select {
	case w.events <- e:
	default:
		// Drop event if channel is full
	}
}

// diff compares two broadcast states and returns detected events.
func diff(prev, curr core.NowPlaying) []Event {
	if !curr.Valid() {
		return nil
	}

	now := time.Now()
	var events []Event

	if prev.Artist != curr.Artist || prev.Title != curr.Title {
		events = append(events, Event{
			Type:      EventTrackChange,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	} else if prev.ArtURL != curr.ArtURL {
		events = append(events, Event{
			Type:      EventArtChange,
			Timestamp: now,
			Previous:  prev,
			Current:   curr,
		})
	}

	return events
}
