package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Stream: StreamConfig{
			Candidates: []string{
				"http://radio.plaza.one/mp3",
				"http://radio.plaza.one/ogg",
				"http://radio.plaza.one/opus",
			},
			FallbackURL: "http://radio.plaza.one/mp3",
		},
		Metadata: MetadataConfig{
			PrimaryURL: "https://api.plaza.one/radio/broadcast",
			FallbackURLs: []string{
				"https://api.plaza.one/status",
				"https://api.plaza.one/now_playing",
				"http://radio.plaza.one/status-json.xsl",
			},
			Interval:  5,
			Timeout:   30,
			UserAgent: "plaza-term/0.3.0",
		},
		Player: PlayerConfig{
			Volume:        0.5,
			DecoderBinary: "ffmpeg",
		},
		TUI: TUIConfig{
			RefreshInterval: 200,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Stream
	if len(c.Stream.Candidates) == 0 {
		c.Stream.Candidates = d.Stream.Candidates
	}
	if c.Stream.FallbackURL == "" {
		c.Stream.FallbackURL = d.Stream.FallbackURL
	}

	// Metadata
	if c.Metadata.PrimaryURL == "" {
		c.Metadata.PrimaryURL = d.Metadata.PrimaryURL
	}
	if len(c.Metadata.FallbackURLs) == 0 {
		c.Metadata.FallbackURLs = d.Metadata.FallbackURLs
	}
	if c.Metadata.Interval == 0 {
		c.Metadata.Interval = d.Metadata.Interval
	}
	if c.Metadata.Timeout == 0 {
		c.Metadata.Timeout = d.Metadata.Timeout
	}
	if c.Metadata.UserAgent == "" {
		c.Metadata.UserAgent = d.Metadata.UserAgent
	}

	// Player
	if c.Player.Volume == 0 {
		c.Player.Volume = d.Player.Volume
	}
	if c.Player.DecoderBinary == "" {
		c.Player.DecoderBinary = d.Player.DecoderBinary
	}

	// TUI
	if c.TUI.RefreshInterval == 0 {
		c.TUI.RefreshInterval = d.TUI.RefreshInterval
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
