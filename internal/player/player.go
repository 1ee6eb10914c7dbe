// Package player bridges an external decoder process into a continuously
// pulled sample stream for the local speaker: decoder stdout → producer
// goroutine → bounded channel → Source → speaker. The channel depth is the
// only backpressure mechanism; underruns surface as silence, never as blocked
// audio callbacks.
package player

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog/log"

	"github.com/plazaterm/plaza/internal/config"
	"github.com/plazaterm/plaza/internal/errors"
)

const (
	// sampleRate and numChannels match the decoder's fixed output format, so
	// nothing downstream needs to introspect the original stream.
	sampleRate  = beep.SampleRate(44100)
	numChannels = 2

	speakerBuffer = 100 * time.Millisecond
)

// PickStream returns the first viable stream candidate. An empty candidate
// list falls back to the hardcoded default with a notice in the log.
func PickStream(cfg config.StreamConfig) string {
	if len(cfg.Candidates) > 0 {
		return cfg.Candidates[0]
	}
	log.Warn().Str("url", cfg.FallbackURL).Msg("no stream candidates configured, using fallback")
	return cfg.FallbackURL
}

// Start brings up the full audio pipeline against the stream URL and returns
// the control façade. Failures here are fatal to startup: a missing decoder
// binary or an unavailable audio device cannot be recovered from.
func Start(cfg config.PlayerConfig, streamURL string) (*Control, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return nil, errors.WithSuggestion(
			fmt.Errorf("initialize audio output: %w", err),
			"Check that your audio drivers are installed and working")
	}

	dec, err := StartDecoder(cfg.DecoderBinary, streamURL)
	if err != nil {
		return nil, err
	}

	ch := make(chan []int16, channelDepth)
	done := make(chan struct{})
	go produce(dec.Output(), ch, done)

	volume := clampVolume(cfg.Volume)
	vol := &effects.Volume{
		Streamer: NewSource(ch),
		Base:     2,
		Silent:   volume == 0,
	}
	if volume > 0 {
		vol.Volume = math.Log2(volume)
	}
	ctrl := &beep.Ctrl{Streamer: vol}

	speaker.Play(ctrl)

	log.Info().Str("url", streamURL).Msg("playback started")

	return newControl(dec, ctrl, vol, volume, done), nil
}
