package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/plazaterm/plaza/internal/config"
	"github.com/plazaterm/plaza/internal/core"
)

// maxBodySize caps metadata responses; the API payloads are tiny.
const maxBodySize = 256 * 1024

// Poller resolves now-playing metadata on a fixed interval. Each cycle tries
// the primary endpoint first and then the fallbacks in order, publishing the
// first usable record to the cell. A cycle with no usable result publishes
// nothing, leaving the previous record current.
type Poller struct {
	client    *http.Client
	primary   string
	fallbacks []string
	interval  time.Duration
	userAgent string
	cell      *Cell
}

// NewPoller creates a poller from config, publishing into cell.
func NewPoller(cfg config.MetadataConfig, cell *Cell) *Poller {
	return &Poller{
		client:    &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
		primary:   cfg.PrimaryURL,
		fallbacks: cfg.FallbackURLs,
		interval:  time.Duration(cfg.Interval) * time.Second,
		userAgent: cfg.UserAgent,
		cell:      cell,
	}
}

// Run polls until the context is cancelled. The first cycle fires immediately.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	np, ok := p.FetchOnce(ctx)
	if !ok {
		return
	}
	p.cell.Set(np)
}

// FetchOnce runs a single resolution cycle: primary endpoint with the priority
// chain, then each fallback with generic extraction. Individual request
// failures fall through to the next candidate.
func (p *Poller) FetchOnce(ctx context.Context) (core.NowPlaying, bool) {
	if v, err := p.fetchJSON(ctx, p.primary); err != nil {
		log.Debug().Err(err).Str("url", p.primary).Msg("primary metadata fetch failed")
	} else if np, ok := ParseBroadcast(v); ok {
		return np, true
	}

	for _, url := range p.fallbacks {
		v, err := p.fetchJSON(ctx, url)
		if err != nil {
			log.Debug().Err(err).Str("url", url).Msg("fallback metadata fetch failed")
			continue
		}
		if np, ok := ParseGeneric(v); ok {
			return np, true
		}
	}

	return core.NowPlaying{}, false
}

// fetchJSON issues a GET and decodes the body into a generic JSON object.
func (p *Poller) fetchJSON(ctx context.Context, url string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var v map[string]any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return v, nil
}
