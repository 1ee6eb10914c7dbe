package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Stream.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("stream: %w", err))
	}
	if err := c.Metadata.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("metadata: %w", err))
	}
	if err := c.Player.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if err := c.TUI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tui: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks StreamConfig for errors.
func (c *StreamConfig) Validate() error {
	for _, cand := range c.Candidates {
		if _, err := url.Parse(cand); err != nil {
			return fmt.Errorf("invalid candidate url %q: %w", cand, err)
		}
	}
	if c.FallbackURL != "" {
		if _, err := url.Parse(c.FallbackURL); err != nil {
			return fmt.Errorf("invalid fallback_url: %w", err)
		}
	}
	return nil
}

// Validate checks MetadataConfig for errors.
func (c *MetadataConfig) Validate() error {
	if c.PrimaryURL != "" {
		if _, err := url.Parse(c.PrimaryURL); err != nil {
			return fmt.Errorf("invalid primary_url: %w", err)
		}
	}
	for _, fb := range c.FallbackURLs {
		if _, err := url.Parse(fb); err != nil {
			return fmt.Errorf("invalid fallback url %q: %w", fb, err)
		}
	}
	if c.Interval < 0 {
		return errors.New("interval must be non-negative")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must be non-negative")
	}
	return nil
}

// Validate checks PlayerConfig for errors.
func (c *PlayerConfig) Validate() error {
	if c.Volume < 0 || c.Volume > 2.0 {
		return errors.New("volume must be between 0.0 and 2.0")
	}
	return nil
}

// Validate checks TUIConfig for errors.
func (c *TUIConfig) Validate() error {
	if c.RefreshInterval < 0 {
		return errors.New("refresh_interval must be non-negative")
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	return nil
}
