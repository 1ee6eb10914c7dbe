package components

import (
	"math/rand"
	"testing"
)

func TestWaveformWidth(t *testing.T) {
	w := NewWaveform(rand.New(rand.NewSource(1)))
	for i := 0; i < 5; i++ {
		row := w.Render(true, 1.0)
		if got := len([]rune(row)); got != waveformBars {
			t.Errorf("Render() width = %d runes, want %d", got, waveformBars)
		}
	}
}

func TestWaveformUsesBarChars(t *testing.T) {
	w := NewWaveform(rand.New(rand.NewSource(2)))
	valid := make(map[rune]bool, len(barChars))
	for _, c := range barChars {
		valid[c] = true
	}

	for _, c := range w.Render(true, 2.0) {
		if !valid[c] {
			t.Fatalf("Render() produced unexpected rune %q", c)
		}
	}
}

func TestWaveformFlatWhenMuted(t *testing.T) {
	w := NewWaveform(rand.New(rand.NewSource(3)))
	for _, c := range w.Render(true, 0) {
		if c != '▁' && c != '▂' {
			t.Fatalf("muted waveform should stay near flat, got rune %q", c)
		}
	}
}

func TestWaveformDecaysWhenPaused(t *testing.T) {
	w := NewWaveform(rand.New(rand.NewSource(4)))
	for i := 0; i < 10; i++ {
		w.Render(true, 1.0)
	}
	phase := w.phase

	w.Render(false, 1.0)
	if w.phase >= phase {
		t.Errorf("paused render should decay phase, got %v >= %v", w.phase, phase)
	}
}
