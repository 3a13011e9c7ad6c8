package input

// Snapshot returns a copy of the tracker's per-key state, keyed by the keys
// seen so far. The KeyState values carry yaml and json tags, so the result
// can be handed to any structural encoder and round-tripped losslessly.
//
// Snapshots are per-process debugging and replay aids; a restored snapshot
// is only meaningful to a tracker using the same key type and key values.
func (t *Tracker[K]) Snapshot() map[K]KeyState {
	out := make(map[K]KeyState, len(t.states))
	for k, st := range t.states {
		out[k] = st
	}
	return out
}

// RestoreSnapshot replaces the tracker's state with the given snapshot.
// A nil snapshot resets the tracker to empty.
func (t *Tracker[K]) RestoreSnapshot(snap map[K]KeyState) {
	t.states = make(map[K]KeyState, len(snap))
	for k, st := range snap {
		t.states[k] = st
	}
}
