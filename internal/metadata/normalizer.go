package metadata

import (
	"strings"

	"github.com/plazaterm/plaza/internal/core"
)

// apiOrigin anchors relative artwork paths returned by the API.
const apiOrigin = "https://api.plaza.one"

// ParseBroadcast maps a response from the primary endpoint to a NowPlaying
// record. The API has changed shape over time, so several nestings are tried
// in priority order before falling back to generic extraction.
func ParseBroadcast(v map[string]any) (core.NowPlaying, bool) {
	if np, ok := asObject(v["now_playing"]); ok {
		return extractSong(np)
	}

	if broadcast, ok := asObject(v["broadcast"]); ok {
		if np, ok := asObject(broadcast["now_playing"]); ok {
			return extractSong(np)
		}
	}

	if current, ok := asObject(v["current_song"]); ok {
		return extractSong(current)
	}

	return ParseGeneric(v)
}

// ParseGeneric attempts to extract a NowPlaying record from an endpoint whose
// shape is unknown: flat keys first, then a nested current/now_playing object,
// then the Icecast status shape.
func ParseGeneric(v map[string]any) (core.NowPlaying, bool) {
	np := core.NowPlaying{
		Artist: getString(v, "artist"),
		Title:  getString(v, "title"),
		ArtURL: getString(v, "artwork", "image", "art"),
	}
	if np.Valid() {
		return np, true
	}

	if cur, ok := asObject(v["current"]); ok {
		return extractSong(cur)
	}
	if cur, ok := asObject(v["now_playing"]); ok {
		return extractSong(cur)
	}

	return parseIcecast(v)
}

// extractSong pulls artist/title/artwork out of a candidate song object.
// A record without artist or title is unusable; artwork alone does not count.
func extractSong(v map[string]any) (core.NowPlaying, bool) {
	np := core.NowPlaying{
		Artist: getString(v, "artist"),
		Title:  getString(v, "title", "song", "track"),
	}

	if art := getString(v, "artwork", "artwork_url", "art", "cover", "cover_url", "image", "album_art"); art != "" {
		np.ArtURL = normalizeArtURL(art)
	}

	if !np.Valid() {
		return core.NowPlaying{}, false
	}
	return np, true
}

// parseIcecast handles the icestats.source shape emitted by Icecast servers,
// where source may be a single object or an array and the title is a combined
// "Artist - Title" string.
func parseIcecast(v map[string]any) (core.NowPlaying, bool) {
	icestats, ok := asObject(v["icestats"])
	if !ok {
		return core.NowPlaying{}, false
	}

	source := icestats["source"]
	if arr, isArr := source.([]any); isArr {
		if len(arr) == 0 {
			return core.NowPlaying{}, false
		}
		source = arr[0]
	}

	obj, ok := asObject(source)
	if !ok {
		return core.NowPlaying{}, false
	}

	title := getString(obj, "title")
	if title == "" {
		return core.NowPlaying{}, false
	}

	if artist, track, found := strings.Cut(title, " - "); found {
		return core.NowPlaying{
			Artist: strings.TrimSpace(artist),
			Title:  strings.TrimSpace(track),
		}, true
	}
	return core.NowPlaying{Title: title}, true
}

// normalizeArtURL resolves the artwork reference to an absolute URL.
func normalizeArtURL(s string) string {
	switch {
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return s
	case strings.HasPrefix(s, "//"):
		return "https:" + s
	case strings.HasPrefix(s, "/"):
		return apiOrigin + s
	default:
		return apiOrigin + "/" + s
	}
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// getString returns the first of keys present in m with a string value.
func getString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			return s
		}
	}
	return ""
}
