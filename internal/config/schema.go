package config

// Config is the root configuration structure.
type Config struct {
	Stream   StreamConfig   `toml:"stream"`
	Metadata MetadataConfig `toml:"metadata"`
	Player   PlayerConfig   `toml:"player"`
	TUI      TUIConfig      `toml:"tui"`
	Log      LogConfig      `toml:"log"`
}

// StreamConfig holds broadcast stream settings.
type StreamConfig struct {
	// Candidates are tried in order; the first one is used.
	Candidates []string `toml:"candidates"`
	// FallbackURL is used when the candidate list is empty.
	FallbackURL string `toml:"fallback_url"`
}

// MetadataConfig holds now-playing resolution settings.
type MetadataConfig struct {
	PrimaryURL   string   `toml:"primary_url"`
	FallbackURLs []string `toml:"fallback_urls"`
	// Interval is the poll cadence in seconds.
	Interval int `toml:"interval"`
	// Timeout is the per-request timeout in seconds.
	Timeout   int    `toml:"timeout"`
	UserAgent string `toml:"user_agent"`
}

// PlayerConfig holds audio playback settings.
type PlayerConfig struct {
	// Volume is the initial linear gain, 0.0-2.0.
	Volume float64 `toml:"volume"`
	// DecoderBinary is the external decoder executable.
	DecoderBinary string `toml:"decoder_binary"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	// RefreshInterval is the redraw cadence in milliseconds.
	RefreshInterval int `toml:"refresh_interval"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
