package player

import (
	"math"
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog/log"
)

const (
	// MinVolume and MaxVolume bound the linear gain range.
	MinVolume = 0.0
	MaxVolume = 2.0
	// defaultVolume is also the level restored by unmute when no snapshot exists.
	defaultVolume = 0.5
)

// Control is the thread-safe control surface over the speaker and the decoder
// process. It is safe to call from the input-handling path while audio
// delivery runs on the speaker's own goroutine. Every operation is an O(1)
// state toggle; none blocks on the audio pipeline.
type Control struct {
	mu sync.Mutex

	ctrl *beep.Ctrl
	vol  *effects.Volume

	// dec is nullable: Stop takes and clears it, which makes double-stop a
	// no-op by construction.
	dec  *Decoder
	done chan struct{}

	volume float64
	saved  float64
}

func newControl(dec *Decoder, ctrl *beep.Ctrl, vol *effects.Volume, volume float64, done chan struct{}) *Control {
	return &Control{
		ctrl:   ctrl,
		vol:    vol,
		dec:    dec,
		done:   done,
		volume: volume,
	}
}

// Stop halts playback and terminates the decoder process. Idempotent.
func (c *Control) Stop() {
	c.mu.Lock()
	dec := c.dec
	c.dec = nil
	done := c.done
	c.done = nil
	c.mu.Unlock()

	speaker.Clear()

	if done != nil {
		close(done)
	}
	if dec != nil {
		dec.Stop()
		log.Debug().Msg("playback stopped")
	}
}

// Pause suspends the speaker's pulls without tearing anything down.
func (c *Control) Pause() {
	c.setPaused(true)
}

// Play resumes a paused stream.
func (c *Control) Play() {
	c.setPaused(false)
}

func (c *Control) setPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctrl == nil {
		return
	}
	speaker.Lock()
	c.ctrl.Paused = paused
	speaker.Unlock()
}

// IsPaused reports the paused state. Without a live sink it reads as paused.
func (c *Control) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctrl == nil {
		return true
	}
	speaker.Lock()
	paused := c.ctrl.Paused
	speaker.Unlock()
	return paused
}

// SetVolume sets the linear gain, clamped to [0, 2]. The gain is applied to
// the sink as a base-2 exponent so 1.0 is unity.
func (c *Control) SetVolume(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setVolumeLocked(clampVolume(v))
}

// setVolumeLocked applies the gain to the sink. Callers hold c.mu.
func (c *Control) setVolumeLocked(v float64) {
	c.volume = v
	if c.vol == nil {
		return
	}

	speaker.Lock()
	if v > 0 {
		c.vol.Volume = math.Log2(v)
	}
	c.vol.Silent = v == 0
	speaker.Unlock()
}

// Volume returns the current linear gain.
func (c *Control) Volume() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

// ToggleMute drops the volume to zero, remembering the previous level, or
// restores it. With no snapshot to restore, unmute falls back to the default.
// The whole read-check-write runs under one lock so a concurrent SetVolume
// cannot split the snapshot from the write.
func (c *Control) ToggleMute() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.volume > 0 {
		c.saved = c.volume
		c.setVolumeLocked(0)
		return
	}

	restore := c.saved
	if restore == 0 {
		restore = defaultVolume
	}
	c.setVolumeLocked(restore)
}

// IsMuted reports whether the volume is currently zero.
func (c *Control) IsMuted() bool {
	return c.Volume() == 0
}

func clampVolume(v float64) float64 {
	if v < MinVolume {
		return MinVolume
	}
	if v > MaxVolume {
		return MaxVolume
	}
	return v
}
