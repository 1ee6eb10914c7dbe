package player

import (
	"io"

	"github.com/rs/zerolog/log"
)

const (
	// readBlockSize is the raw read size from the decoder's output.
	readBlockSize = 8192
	// channelDepth bounds the producer→source channel. If the speaker cannot
	// keep up, the producer blocks here rather than growing memory.
	channelDepth = 10
)

// produce reads raw PCM bytes from r, converts them to samples and pushes
// chunks into ch until the stream ends or done is closed. Closing ch on return
// signals end-of-stream to the Source. EOF is a normal termination, not an
// error: the decoder process closed its output.
func produce(r io.Reader, ch chan<- []int16, done <-chan struct{}) {
	defer close(ch)

	buf := make([]byte, readBlockSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			select {
			case ch <- decodeSamples(buf[:n]):
			case <-done:
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				log.Debug().Err(err).Msg("decoder output read failed")
			}
			return
		}
		if n == 0 {
			// Zero-length read without an error: treat as end of stream.
			return
		}
	}
}

// decodeSamples converts little-endian byte pairs into signed 16-bit samples.
// An odd trailing byte is dropped.
func decodeSamples(b []byte) []int16 {
	samples := make([]int16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		lo := uint16(b[i])
		hi := uint16(b[i+1])
		samples = append(samples, int16(hi<<8|lo))
	}
	return samples
}
