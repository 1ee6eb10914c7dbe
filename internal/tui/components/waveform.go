package components

import (
	"math"
	"math/rand"
	"strings"
)

const waveformBars = 40

var barChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Waveform is a purely cosmetic bar animation. It advances while playback
// runs and decays toward flat when paused.
type Waveform struct {
	phase float64
	rng   *rand.Rand
}

// NewWaveform creates a new Waveform component
func NewWaveform(rng *rand.Rand) *Waveform {
	return &Waveform{rng: rng}
}

// Render advances the animation one step and returns the bar row. Volume
// scales the amplitude so a quiet stream draws a quiet wave.
func (w *Waveform) Render(playing bool, volume float64) string {
	if playing {
		w.phase += 0.2
	} else {
		w.phase *= 0.95
	}

	var b strings.Builder
	for i := 0; i < waveformBars; i++ {
		x := float64(i) / waveformBars

		wave1 := math.Abs(math.Sin(w.phase+x*8)*0.3 + 0.5)
		wave2 := math.Abs(math.Sin(w.phase*1.3+x*12)*0.2 + 0.5)
		wave3 := math.Abs(math.Cos(w.phase*0.7+x*4)*0.3 + 0.5)

		noise := w.rng.Float64()*0.2 - 0.1
		combined := (wave1+wave2+wave3)/3 + noise

		level := int(math.Min(math.Max(combined*volume*20, 0), 8))
		if volume == 0 || !playing {
			level = int(float64(level) * 0.2)
		}
		if level >= len(barChars) {
			level = len(barChars) - 1
		}

		b.WriteRune(barChars[level])
	}

	return b.String()
}
