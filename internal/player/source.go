package player

import (
	"time"
)

const (
	// underrunWait bounds how long a pull blocks before synthesizing silence.
	underrunWait = 100 * time.Millisecond
	// ringCapacity is the initial sample buffer size; it grows as needed.
	ringCapacity = 8192
)

// Source presents the decoded broadcast as a pull-based sample stream for the
// speaker. It drains the producer channel through a local ring buffer,
// decoupling the speaker's pull cadence from the producer's push cadence.
// Underruns yield silence instead of blocking the audio callback; a closed
// channel ends the stream. This is a live source: it has no duration and
// never restarts.
type Source struct {
	ch      <-chan []int16
	ring    *ring
	wait    time.Duration
	drained bool
}

// NewSource wraps the producer channel in a pull-based stream.
func NewSource(ch <-chan []int16) *Source {
	return &Source{
		ch:   ch,
		ring: newRing(ringCapacity),
		wait: underrunWait,
	}
}

// Stream fills samples with the next decoded frames, in arrival order, scaled
// to [-1, 1]. It reports no more data only once the producer has gone away
// and the ring buffer is empty.
func (s *Source) Stream(samples [][2]float64) (int, bool) {
	if s.drained {
		return 0, false
	}

	for i := range samples {
		left, ok := s.next()
		if !ok {
			s.drained = true
			if i == 0 {
				return 0, false
			}
			return i, true
		}

		right, ok := s.next()
		if !ok {
			s.drained = true
			samples[i] = [2]float64{left, 0}
			return i + 1, true
		}

		samples[i] = [2]float64{left, right}
	}
	return len(samples), true
}

// Err reports no error: stream interruptions surface as silence or
// termination, never as a playback error.
func (s *Source) Err() error { return nil }

// next produces one sample. Order of preference: buffered sample, immediate
// channel refill, bounded wait for the producer. A timed-out wait yields one
// silence sample so the speaker keeps running through underruns.
func (s *Source) next() (float64, bool) {
	for {
		if v, ok := s.ring.Pop(); ok {
			return float64(v) / 32768.0, true
		}

		select {
		case chunk, ok := <-s.ch:
			if !ok {
				return 0, false
			}
			s.ring.Push(chunk)
			continue
		default:
		}

		select {
		case chunk, ok := <-s.ch:
			if !ok {
				return 0, false
			}
			s.ring.Push(chunk)
		case <-time.After(s.wait):
			return 0, true
		}
	}
}
