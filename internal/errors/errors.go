package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrDecoderNotFound = errors.New("decoder binary not found")
	ErrDecoderPipe     = errors.New("failed to capture decoder output")
	ErrAudioOutput     = errors.New("audio output unavailable")
	ErrNoMetadata      = errors.New("no metadata available")
	ErrNetworkError    = errors.New("network error")
	ErrTimeout         = errors.New("request timeout")
	ErrConfigNotFound  = errors.New("config file not found")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// PlazaError wraps an error with a user-friendly suggestion.
type PlazaError struct {
	Err        error
	Suggestion string
}

func (e *PlazaError) Error() string {
	return e.Err.Error()
}

func (e *PlazaError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &PlazaError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's already a PlazaError with suggestion
	var plazaErr *PlazaError
	if errors.As(err, &plazaErr) && plazaErr.Suggestion != "" {
		return plazaErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	// Decoder errors
	if errors.Is(err, ErrDecoderNotFound) || strings.Contains(errStr, "ffmpeg") ||
		strings.Contains(errStr, "executable file not found") {
		return "Install ffmpeg and make sure it is on your PATH"
	}

	// Audio device errors
	if errors.Is(err, ErrAudioOutput) || strings.Contains(errStr, "audio") ||
		strings.Contains(errStr, "alsa") || strings.Contains(errStr, "pulse") {
		return "Check that your audio drivers are installed and working"
	}

	// Network errors
	if errors.Is(err, ErrNetworkError) || errors.Is(err, ErrTimeout) ||
		strings.Contains(errStr, "network") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "connection refused") {
		return "Check your internet connection and try again"
	}

	// Config errors
	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) ||
		strings.Contains(errStr, "config") {
		return "Check ~/.plazarc or run with --config pointing at a valid file"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
