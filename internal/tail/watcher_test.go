package tail

import (
	"context"
	"testing"
	"time"

	"github.com/plazaterm/plaza/internal/core"
	"github.com/plazaterm/plaza/internal/metadata"
)

func TestDiffTrackChange(t *testing.T) {
	prev := core.NowPlaying{Artist: "Macroblank", Title: "痛みとともに歩む"}
	curr := core.NowPlaying{Artist: "Oblique Occasions", Title: "anathema"}

	events := diff(prev, curr)
	if len(events) != 1 {
		t.Fatalf("diff() returned %d events, want 1", len(events))
	}
	if events[0].Type != EventTrackChange {
		t.Errorf("event type = %v, want EventTrackChange", events[0].Type)
	}
	if events[0].Current != curr {
		t.Errorf("event current = %+v, want %+v", events[0].Current, curr)
	}
}

func TestDiffArtChangeOnly(t *testing.T) {
	prev := core.NowPlaying{Artist: "a", Title: "b", ArtURL: "https://api.plaza.one/one.png"}
	curr := core.NowPlaying{Artist: "a", Title: "b", ArtURL: "https://api.plaza.one/two.png"}

	events := diff(prev, curr)
	if len(events) != 1 || events[0].Type != EventArtChange {
		t.Fatalf("diff() = %+v, want one EventArtChange", events)
	}
}

func TestDiffIgnoresInvalidCurrent(t *testing.T) {
	prev := core.NowPlaying{Artist: "a", Title: "b"}
	if events := diff(prev, core.NowPlaying{}); events != nil {
		t.Errorf("diff() = %+v, want nil for invalid current", events)
	}
}

func TestDiffNoChange(t *testing.T) {
	np := core.NowPlaying{Artist: "a", Title: "b"}
	if events := diff(np, np); events != nil {
		t.Errorf("diff() = %+v, want nil for identical states", events)
	}
}

func TestWatcherEmitsOnCellUpdate(t *testing.T) {
	cell := metadata.NewCell()
	w := NewWatcher(cell, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = w.Start(ctx)
	}()

	cell.Set(core.NowPlaying{Artist: "desert sand feels warm at night", Title: "destination"})

	select {
	case e := <-w.Events():
		if e.Type != EventTrackChange {
			t.Errorf("event type = %v, want EventTrackChange", e.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for track change event")
	}
}

func TestWatcherReportsInitialState(t *testing.T) {
	cell := metadata.NewCell()
	cell.Set(core.NowPlaying{Artist: "a", Title: "b"})

	w := NewWatcher(cell, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = w.Start(ctx)
	}()

	select {
	case e := <-w.Events():
		if e.Type != EventTrackChange {
			t.Errorf("event type = %v, want EventTrackChange", e.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for initial event")
	}
}

func TestWatcherStop(t *testing.T) {
	w := NewWatcher(metadata.NewCell(), 5*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	w.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() = %v, want nil after Stop", err)
		}
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
