package player

import (
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/plazaterm/plaza/internal/errors"
)

// Decoder owns an external decoder process that converts the remote compressed
// stream into raw interleaved 16-bit PCM on its standard output. The process
// reconnects internally on transient network failures, so most stream drops
// never reach this layer.
type Decoder struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
}

// decoderArgs builds the decoder invocation: reconnect-tolerant input, output
// pinned to the pipeline's fixed s16le format on stdout, diagnostics
// suppressed.
func decoderArgs(streamURL string) []string {
	return []string{
		"-reconnect", "1",
		"-reconnect_streamed", "1",
		"-reconnect_delay_max", "5",
		"-i", streamURL,
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(int(sampleRate)),
		"-ac", strconv.Itoa(numChannels),
		"-hide_banner",
		"-loglevel", "error",
		"-",
	}
}

// StartDecoder spawns the decoder against the stream URL. Spawn failures are
// fatal to startup.
func StartDecoder(binary, streamURL string) (*Decoder, error) {
	cmd := exec.Command(binary, decoderArgs(streamURL)...)
	// stderr stays nil: diagnostics are discarded, the terminal belongs to the UI.

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.WithSuggestion(
			fmt.Errorf("capture decoder output: %w", err),
			"This is unexpected; check file descriptor limits")
	}

	if err := cmd.Start(); err != nil {
		return nil, errors.WithSuggestion(
			fmt.Errorf("spawn %s: %w", binary, err),
			fmt.Sprintf("Install %s and make sure it is on your PATH", binary))
	}

	log.Debug().Str("url", streamURL).Int("pid", cmd.Process.Pid).Msg("decoder started")

	return &Decoder{cmd: cmd, stdout: stdout}, nil
}

// Output returns the decoder's raw PCM byte stream.
func (d *Decoder) Output() io.Reader {
	return d.stdout
}

// Stop terminates the process and reaps it, so no orphan is left behind.
func (d *Decoder) Stop() {
	if d.cmd == nil || d.cmd.Process == nil {
		return
	}
	_ = d.cmd.Process.Kill()
	_ = d.cmd.Wait()
	log.Debug().Msg("decoder stopped")
}
