package metadata

import (
	"sync"

	"github.com/plazaterm/plaza/internal/core"
)

// Cell is a single-slot "latest value" broadcast primitive. The poller writes
// the most recent NowPlaying record; any number of readers observe it without
// blocking the writer. There is no backlog: a read always returns the current
// value.
type Cell struct {
	mu  sync.RWMutex
	cur core.NowPlaying
	seq uint64
}

// NewCell returns an empty cell.
func NewCell() *Cell {
	return &Cell{}
}

// Set replaces the current record.
func (c *Cell) Set(np core.NowPlaying) {
	c.mu.Lock()
	c.cur = np
	c.seq++
	c.mu.Unlock()
}

// Get returns the current record and a sequence number that changes on every
// Set, letting pollers detect updates cheaply.
func (c *Cell) Get() (core.NowPlaying, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cur, c.seq
}

// Load returns just the current record.
func (c *Cell) Load() core.NowPlaying {
	np, _ := c.Get()
	return np
}
