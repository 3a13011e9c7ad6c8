// Package input provides engine-agnostic input state tracking.
//
// The central type is Tracker, which unifies the two ways game engines
// deliver input — polling ("what is down right now", once per tick) and
// events (discrete press/release notifications, possibly several per tick) —
// behind one query surface that reports both current state and edge
// transitions ("was this just pressed/released").
//
// A Tracker is driven from a single game-loop goroutine. It holds no locks;
// if events arrive from another goroutine, funnel them through a channel
// drained on the tick goroutine before querying.
package input

// ButtonState is the per-frame state of a tracked key.
type ButtonState int

const (
	// Up: not held, no transition this frame.
	Up ButtonState = iota
	// JustUp: released during this frame.
	JustUp
	// Down: held, no transition this frame.
	Down
	// JustDown: pressed during this frame.
	JustDown
)

// String returns a human-readable name for the state.
func (s ButtonState) String() string {
	switch s {
	case Up:
		return "Up"
	case JustUp:
		return "JustUp"
	case Down:
		return "Down"
	case JustDown:
		return "JustDown"
	default:
		return "Unknown"
	}
}

// KeyState holds the raw tracked state for one key. Exported so tracker
// snapshots can be round-tripped through structural encoders like yaml.
type KeyState struct {
	// Down reports whether the key is currently considered held.
	Down bool `yaml:"down" json:"down"`
	// Changed reports whether at least one press or release was recorded
	// for the key since the last EndFrame.
	Changed bool `yaml:"changed" json:"changed"`
}

// Tracker tracks down/up state and per-frame transitions for keys of type K.
// K is any comparable type: an engine's key enum, a semantic control type,
// a string — whatever the caller uses to name a logical button.
//
// The zero value is not usable; create trackers with NewTracker. Keys are
// tracked lazily from their first mention and live for the tracker's
// lifetime. Querying a never-mentioned key returns the Up defaults rather
// than an error.
type Tracker[K comparable] struct {
	states map[K]KeyState
}

// NewTracker creates an empty tracker.
func NewTracker[K comparable]() *Tracker[K] {
	return &Tracker[K]{
		states: make(map[K]KeyState),
	}
}

// SyncPolled replaces the tracked state from a full poll of the backend.
// downNow is the set of keys currently held; entries with a false value are
// treated the same as absent ones. Call it once per tick when the backend is
// polling-based.
//
// For every key either present in downNow or already tracked, the new down
// state is downNow[k] and Changed is set when that differs from the previous
// down state. Keys that are neither held nor already tracked are not
// materialized, so a stream of unknown keys cannot grow the map.
//
// Calling SyncPolled twice with the same set in one tick is the same as
// calling it once: a poll is a full-state replace, not an event append.
func (t *Tracker[K]) SyncPolled(downNow map[K]bool) {
	for k, down := range downNow {
		if down {
			t.states[k] = KeyState{Down: true, Changed: !t.states[k].Down}
		}
	}
	for k, st := range t.states {
		if !downNow[k] {
			t.states[k] = KeyState{Down: false, Changed: st.Down}
		}
	}
}

// Press records a press event for k. Idempotent: pressing an already-held
// key neither flips state nor clears a pending Changed flag.
func (t *Tracker[K]) Press(k K) {
	if st := t.states[k]; !st.Down {
		t.states[k] = KeyState{Down: true, Changed: true}
	}
}

// Release records a release event for k. Idempotent, like Press.
//
// A Press followed by a Release with no EndFrame between them reports the
// key as JustUp, not JustDown: the final state wins, consistent with the
// polling model. Games that must not lose sub-tick taps need to latch them
// at the event source before they reach the tracker.
func (t *Tracker[K]) Release(k K) {
	if st := t.states[k]; st.Down {
		t.states[k] = KeyState{Down: false, Changed: true}
	}
}

// IsDown reports whether k is currently held.
func (t *Tracker[K]) IsDown(k K) bool {
	return t.states[k].Down
}

// JustPressed reports whether k went down during this frame.
func (t *Tracker[K]) JustPressed(k K) bool {
	st := t.states[k]
	return st.Down && st.Changed
}

// JustReleased reports whether k went up during this frame.
func (t *Tracker[K]) JustReleased(k K) bool {
	st := t.states[k]
	return !st.Down && st.Changed
}

// State returns the ButtonState for k, derived from its down/changed pair.
func (t *Tracker[K]) State(k K) ButtonState {
	switch st := t.states[k]; {
	case st.Down && st.Changed:
		return JustDown
	case st.Down:
		return Down
	case st.Changed:
		return JustUp
	default:
		return Up
	}
}

// EndFrame marks the frame boundary: every key keeps its down state and
// drops its Changed flag, collapsing JustDown to Down and JustUp to Up.
//
// Call it exactly once per tick, after all queries for the tick and before
// the next round of ingestion. Skipping it is not detected; transitions
// simply accumulate and get reported on a later, stale tick. Only EndFrame
// clears Changed, so within one tick every query sees a consistent answer
// no matter how often it is asked.
func (t *Tracker[K]) EndFrame() {
	for k, st := range t.states {
		if st.Changed {
			t.states[k] = KeyState{Down: st.Down}
		}
	}
}
