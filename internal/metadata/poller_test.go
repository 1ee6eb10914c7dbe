package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/plazaterm/plaza/internal/config"
	"github.com/plazaterm/plaza/internal/core"
)

func newTestPoller(primary string, fallbacks []string) (*Poller, *Cell) {
	cell := NewCell()
	p := NewPoller(config.MetadataConfig{
		PrimaryURL:   primary,
		FallbackURLs: fallbacks,
		Interval:     1,
		Timeout:      5,
		UserAgent:    "plaza-test",
	}, cell)
	return p, cell
}

func TestFetchOncePrimary(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "plaza-test" {
			t.Errorf("unexpected user agent: %s", ua)
		}
		w.Write([]byte(`{"now_playing": {"artist": "A", "title": "B"}}`))
	}))
	defer primary.Close()

	p, _ := newTestPoller(primary.URL, nil)

	np, ok := p.FetchOnce(context.Background())
	if !ok {
		t.Fatal("expected a record from the primary endpoint")
	}
	want := core.NowPlaying{Artist: "A", Title: "B"}
	if np != want {
		t.Errorf("FetchOnce() = %+v, want %+v", np, want)
	}
}

func TestFetchOnceFallbackOrder(t *testing.T) {
	var hits []string

	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, "primary")
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer primary.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, "bad")
		w.Write([]byte(`not json`))
	}))
	defer bad.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, "good")
		w.Write([]byte(`{"icestats": {"source": {"title": "Artist X - Song Y"}}}`))
	}))
	defer good.Close()

	skipped := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, "skipped")
		w.Write([]byte(`{"artist": "Z"}`))
	}))
	defer skipped.Close()

	p, _ := newTestPoller(primary.URL, []string{bad.URL, good.URL, skipped.URL})

	np, ok := p.FetchOnce(context.Background())
	if !ok {
		t.Fatal("expected a record from the fallback chain")
	}
	want := core.NowPlaying{Artist: "Artist X", Title: "Song Y"}
	if np != want {
		t.Errorf("FetchOnce() = %+v, want %+v", np, want)
	}

	wantHits := []string{"primary", "bad", "good"}
	if len(hits) != len(wantHits) {
		t.Fatalf("endpoints hit = %v, want %v", hits, wantHits)
	}
	for i := range wantHits {
		if hits[i] != wantHits[i] {
			t.Errorf("hit %d = %s, want %s", i, hits[i], wantHits[i])
		}
	}
}

func TestFetchOnceAllFail(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	p, _ := newTestPoller(down.URL, []string{down.URL})

	if _, ok := p.FetchOnce(context.Background()); ok {
		t.Error("expected no record when every endpoint fails")
	}
}

func TestPollKeepsStaleRecordOnFailure(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"now_playing": {"artist": "A", "title": "B"}}`))
	}))
	defer srv.Close()

	p, cell := newTestPoller(srv.URL, nil)

	p.poll(context.Background())
	want := core.NowPlaying{Artist: "A", Title: "B"}
	if got := cell.Load(); got != want {
		t.Fatalf("cell = %+v, want %+v", got, want)
	}

	// A failing cycle publishes nothing; the previous record stays current.
	healthy = false
	p.poll(context.Background())
	if got := cell.Load(); got != want {
		t.Errorf("cell after failed cycle = %+v, want stale %+v", got, want)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title": "T"}`))
	}))
	defer srv.Close()

	p, cell := newTestPoller(srv.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	// The first cycle fires immediately.
	deadline := time.After(2 * time.Second)
	for {
		if np := cell.Load(); np.Valid() {
			break
		}
		select {
		case <-deadline:
			t.Fatal("poller never published")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
