package input

// Handler layers a control-binding table on top of a Tracker. Raw engine
// inputs of type I (key codes, scancodes, key name strings) are translated
// to the game's semantic controls of type C before they reach the tracker,
// so game logic never sees engine key enums.
//
// Several inputs may be bound to the same control; the control counts as
// held while any of its inputs is held. Like the Tracker it wraps, a
// Handler expects a single writer and one EndFrame per tick.
type Handler[I comparable, C comparable] struct {
	bindings map[I]C
	tracker  *Tracker[C]

	// Raw inputs currently held, for the event path. A control bound to
	// two keys must not release while either key is still down.
	heldInputs map[I]bool

	// Ticks each control has been continuously held, advanced by EndFrame.
	heldTicks map[C]int

	rebindTo  C
	rebinding bool
}

// NewHandler creates a handler with the given input-to-control bindings.
// The map is copied; pass nil to start unbound and use Bind.
func NewHandler[I comparable, C comparable](bindings map[I]C) *Handler[I, C] {
	h := &Handler[I, C]{
		bindings:   make(map[I]C, len(bindings)),
		tracker:    NewTracker[C](),
		heldInputs: make(map[I]bool),
		heldTicks:  make(map[C]int),
	}
	for i, c := range bindings {
		h.bindings[i] = c
	}
	return h
}

// Bind associates a raw input with a control, replacing any previous
// binding for that input.
func (h *Handler[I, C]) Bind(i I, c C) {
	h.bindings[i] = c
}

// Bindings returns a copy of the current binding table.
func (h *Handler[I, C]) Bindings() map[I]C {
	out := make(map[I]C, len(h.bindings))
	for i, c := range h.bindings {
		out[i] = c
	}
	return out
}

// ListenForRebind puts the handler into rebinding mode: the next raw input
// received (by InputDown or Poll) is bound to c instead of being treated as
// gameplay input. If several inputs arrive in the same frame, one of them
// wins; which one is unspecified.
func (h *Handler[I, C]) ListenForRebind(c C) {
	h.rebindTo = c
	h.rebinding = true
}

// Rebinding reports whether the handler is waiting for an input to rebind.
func (h *Handler[I, C]) Rebinding() bool {
	return h.rebinding
}

// InputDown feeds a press event for a raw input. Unbound inputs are
// ignored, except while rebinding, when the input is captured as the new
// binding for the pending control.
func (h *Handler[I, C]) InputDown(i I) {
	if h.rebinding {
		h.bindings[i] = h.rebindTo
		h.rebinding = false
		return
	}
	c, ok := h.bindings[i]
	if !ok {
		return
	}
	h.heldInputs[i] = true
	h.tracker.Press(c)
}

// InputUp feeds a release event for a raw input. The bound control is
// released only once no other held input maps to it.
func (h *Handler[I, C]) InputUp(i I) {
	delete(h.heldInputs, i)
	c, ok := h.bindings[i]
	if !ok {
		return
	}
	for held := range h.heldInputs {
		if h.bindings[held] == c {
			return
		}
	}
	h.tracker.Release(c)
}

// Poll replaces the handler's state from a full poll of raw inputs, for
// engines that expose "what is down right now" instead of events. Entries
// with a false value count as absent. While rebinding, the poll is consumed
// to capture the new binding and is not treated as gameplay input.
func (h *Handler[I, C]) Poll(downNow map[I]bool) {
	if h.rebinding {
		for i, down := range downNow {
			if down {
				h.bindings[i] = h.rebindTo
				h.rebinding = false
				break
			}
		}
		return
	}

	controlsDown := make(map[C]bool, len(h.bindings))
	for i, down := range downNow {
		if !down {
			continue
		}
		if c, ok := h.bindings[i]; ok {
			controlsDown[c] = true
		}
	}
	h.tracker.SyncPolled(controlsDown)
}

// Pressed reports whether the control is currently held.
func (h *Handler[I, C]) Pressed(c C) bool {
	return h.tracker.IsDown(c)
}

// Released reports whether the control is currently up.
func (h *Handler[I, C]) Released(c C) bool {
	return !h.tracker.IsDown(c)
}

// ClickedDown reports whether the control went down this frame.
func (h *Handler[I, C]) ClickedDown(c C) bool {
	return h.tracker.JustPressed(c)
}

// ClickedUp reports whether the control went up this frame.
func (h *Handler[I, C]) ClickedUp(c C) bool {
	return h.tracker.JustReleased(c)
}

// HeldTicks returns how many completed ticks the control has been held.
// It is 0 on the tick the control goes down and counts up from the first
// EndFrame after that.
func (h *Handler[I, C]) HeldTicks(c C) int {
	return h.heldTicks[c]
}

// State returns the control's ButtonState.
func (h *Handler[I, C]) State(c C) ButtonState {
	return h.tracker.State(c)
}

// Tracker exposes the underlying control tracker, for callers that want the
// raw query surface.
func (h *Handler[I, C]) Tracker() *Tracker[C] {
	return h.tracker
}

// EndFrame advances the frame boundary: transition flags are cleared and
// held-tick counters are updated. Call once per tick, after queries.
func (h *Handler[I, C]) EndFrame() {
	h.tracker.EndFrame()
	for c, st := range h.tracker.states {
		if st.Down {
			h.heldTicks[c]++
		} else if h.heldTicks[c] != 0 {
			h.heldTicks[c] = 0
		}
	}
}
