package player

// ring is an ordered FIFO of samples waiting to be handed to the speaker.
// It is owned exclusively by the Source, so no locking. Capacity is soft:
// the buffer grows on demand, since backpressure is applied at the channel
// feeding it, not here.
type ring struct {
	buf  []int16
	head int
	n    int
}

func newRing(capacity int) *ring {
	if capacity < 2 {
		capacity = 2
	}
	return &ring{buf: make([]int16, capacity)}
}

// Len returns the number of buffered samples.
func (r *ring) Len() int {
	return r.n
}

// Push appends samples, preserving order. Grows the buffer when full.
func (r *ring) Push(samples []int16) {
	if need := r.n + len(samples); need > len(r.buf) {
		r.grow(need)
	}

	for _, s := range samples {
		r.buf[(r.head+r.n)%len(r.buf)] = s
		r.n++
	}
}

// Pop removes and returns the oldest sample.
func (r *ring) Pop() (int16, bool) {
	if r.n == 0 {
		return 0, false
	}
	s := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.n--
	return s, true
}

func (r *ring) grow(need int) {
	size := len(r.buf) * 2
	for size < need {
		size *= 2
	}

	out := make([]int16, size)
	for i := 0; i < r.n; i++ {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	r.buf = out
	r.head = 0
}
