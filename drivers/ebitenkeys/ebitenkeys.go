// Package ebitenkeys adapts Ebitengine's polled keyboard state to an
// input.Tracker. Ebitengine only answers "is this key down right now", so
// the tracker supplies the edge detection (just pressed / just released)
// that game code usually wants.
//
// Call Poll at the top of every Update, query during the tick, and call
// EndFrame once the tick is done.
package ebitenkeys

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/gamekit/input"
)

// Poller samples a fixed watch list of keys into a tracker once per tick.
// Only watched keys are tracked; everything else stays untracked and
// queries as up.
type Poller struct {
	keys    []ebiten.Key
	tracker *input.Tracker[ebiten.Key]
	scratch map[ebiten.Key]bool
}

// NewPoller creates a poller watching the given keys.
func NewPoller(keys ...ebiten.Key) *Poller {
	watched := make([]ebiten.Key, len(keys))
	copy(watched, keys)
	return &Poller{
		keys:    watched,
		tracker: input.NewTracker[ebiten.Key](),
		scratch: make(map[ebiten.Key]bool, len(watched)),
	}
}

// Poll samples the current keyboard state into the tracker. Call it first
// thing in Update.
func (p *Poller) Poll() {
	clear(p.scratch)
	for _, k := range p.keys {
		if ebiten.IsKeyPressed(k) {
			p.scratch[k] = true
		}
	}
	p.tracker.SyncPolled(p.scratch)
}

// EndFrame crosses the tracker's frame boundary. Call it at the end of
// Update, after all queries.
func (p *Poller) EndFrame() {
	p.tracker.EndFrame()
}

// IsDown reports whether the key is currently held.
func (p *Poller) IsDown(k ebiten.Key) bool {
	return p.tracker.IsDown(k)
}

// JustPressed reports whether the key went down this tick.
func (p *Poller) JustPressed(k ebiten.Key) bool {
	return p.tracker.JustPressed(k)
}

// JustReleased reports whether the key went up this tick.
func (p *Poller) JustReleased(k ebiten.Key) bool {
	return p.tracker.JustReleased(k)
}

// Tracker exposes the underlying tracker for the full query surface.
func (p *Poller) Tracker() *input.Tracker[ebiten.Key] {
	return p.tracker
}
