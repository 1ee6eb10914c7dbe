package core

// NowPlaying is the canonical metadata record for the current broadcast track.
// Empty fields mean the upstream response did not carry that information.
// Values are immutable once constructed; a new record replaces the old one.
type NowPlaying struct {
	Artist string `json:"artist,omitempty"`
	Title  string `json:"title,omitempty"`
	ArtURL string `json:"art_url,omitempty"`
}

// Valid returns true if the record identifies a track. Artwork alone is not
// enough to consider the record usable.
func (n NowPlaying) Valid() bool {
	return n.Artist != "" || n.Title != ""
}

// IsZero returns true if no field is set.
func (n NowPlaying) IsZero() bool {
	return n == NowPlaying{}
}

// Display returns a human-readable "Artist - Title" string, degrading
// gracefully when either side is missing.
func (n NowPlaying) Display() string {
	switch {
	case n.Artist != "" && n.Title != "":
		return n.Artist + " - " + n.Title
	case n.Title != "":
		return n.Title
	case n.Artist != "":
		return n.Artist
	default:
		return "Unknown Track"
	}
}
