package metadata

import (
	"encoding/json"
	"testing"

	"github.com/plazaterm/plaza/internal/core"
)

func mustJSON(t *testing.T, s string) map[string]any {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return v
}

func TestParseBroadcast(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   core.NowPlaying
		wantOK bool
	}{
		{
			name:   "now_playing with relative artwork",
			body:   `{"now_playing": {"artist": "A", "title": "B", "artwork": "/img.png"}}`,
			want:   core.NowPlaying{Artist: "A", Title: "B", ArtURL: "https://api.plaza.one/img.png"},
			wantOK: true,
		},
		{
			name:   "nested broadcast.now_playing",
			body:   `{"broadcast": {"now_playing": {"artist": "A", "song": "B"}}}`,
			want:   core.NowPlaying{Artist: "A", Title: "B"},
			wantOK: true,
		},
		{
			name:   "current_song with track key",
			body:   `{"current_song": {"artist": "A", "track": "B"}}`,
			want:   core.NowPlaying{Artist: "A", Title: "B"},
			wantOK: true,
		},
		{
			name:   "now_playing wins over current_song",
			body:   `{"now_playing": {"title": "First"}, "current_song": {"title": "Second"}}`,
			want:   core.NowPlaying{Title: "First"},
			wantOK: true,
		},
		{
			name:   "absolute artwork passes through",
			body:   `{"now_playing": {"title": "B", "cover": "https://cdn.plaza.one/c.jpg"}}`,
			want:   core.NowPlaying{Title: "B", ArtURL: "https://cdn.plaza.one/c.jpg"},
			wantOK: true,
		},
		{
			name:   "protocol-relative artwork",
			body:   `{"now_playing": {"title": "B", "image": "//cdn.plaza.one/c.jpg"}}`,
			want:   core.NowPlaying{Title: "B", ArtURL: "https://cdn.plaza.one/c.jpg"},
			wantOK: true,
		},
		{
			name:   "bare relative artwork",
			body:   `{"now_playing": {"title": "B", "album_art": "covers/c.jpg"}}`,
			want:   core.NowPlaying{Title: "B", ArtURL: "https://api.plaza.one/covers/c.jpg"},
			wantOK: true,
		},
		{
			name:   "artwork alone is not a record",
			body:   `{"now_playing": {"artwork": "/img.png"}}`,
			wantOK: false,
		},
		{
			name:   "falls through to generic",
			body:   `{"artist": "A", "title": "B"}`,
			want:   core.NowPlaying{Artist: "A", Title: "B"},
			wantOK: true,
		},
		{
			name:   "nothing extractable",
			body:   `{"listeners": 42, "status": "ok"}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseBroadcast(mustJSON(t, tt.body))
			if ok != tt.wantOK {
				t.Fatalf("ParseBroadcast() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseBroadcast() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseGeneric(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   core.NowPlaying
		wantOK bool
	}{
		{
			name:   "flat keys",
			body:   `{"artist": "A", "title": "B", "image": "x.png"}`,
			want:   core.NowPlaying{Artist: "A", Title: "B", ArtURL: "x.png"},
			wantOK: true,
		},
		{
			name:   "nested current object",
			body:   `{"current": {"artist": "A", "title": "B"}}`,
			want:   core.NowPlaying{Artist: "A", Title: "B"},
			wantOK: true,
		},
		{
			name:   "icecast single source",
			body:   `{"icestats": {"source": {"title": "Artist X - Song Y"}}}`,
			want:   core.NowPlaying{Artist: "Artist X", Title: "Song Y"},
			wantOK: true,
		},
		{
			name:   "icecast source array uses first element",
			body:   `{"icestats": {"source": [{"title": "A - B"}, {"title": "C - D"}]}}`,
			want:   core.NowPlaying{Artist: "A", Title: "B"},
			wantOK: true,
		},
		{
			name:   "icecast title without separator",
			body:   `{"icestats": {"source": {"title": "Just A Title"}}}`,
			want:   core.NowPlaying{Title: "Just A Title"},
			wantOK: true,
		},
		{
			name:   "icecast splits on first separator only",
			body:   `{"icestats": {"source": {"title": "A - B - C"}}}`,
			want:   core.NowPlaying{Artist: "A", Title: "B - C"},
			wantOK: true,
		},
		{
			name:   "icecast empty source array",
			body:   `{"icestats": {"source": []}}`,
			wantOK: false,
		},
		{
			name:   "empty object",
			body:   `{}`,
			wantOK: false,
		},
		{
			name:   "non-string values ignored",
			body:   `{"artist": 7, "title": null}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseGeneric(mustJSON(t, tt.body))
			if ok != tt.wantOK {
				t.Fatalf("ParseGeneric() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseGeneric() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeArtURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://cdn.plaza.one/a.png", "https://cdn.plaza.one/a.png"},
		{"http://cdn.plaza.one/a.png", "http://cdn.plaza.one/a.png"},
		{"//cdn.plaza.one/a.png", "https://cdn.plaza.one/a.png"},
		{"/images/a.png", "https://api.plaza.one/images/a.png"},
		{"images/a.png", "https://api.plaza.one/images/a.png"},
	}

	for _, tt := range tests {
		if got := normalizeArtURL(tt.in); got != tt.want {
			t.Errorf("normalizeArtURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
