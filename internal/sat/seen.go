package sat

// Seen states used while walking the trail during conflict analysis and
// minimization (§4.4). A variable starts Unset; analysis marks the ones it
// visits IsSource, and minimization further refines a subset of those to
// Removable or RemovalFailed.
type seenState uint8

const (
	seenUnset seenState = iota
	seenIsSource
	seenRemovable
	seenRemovalFailed
)

// seenTracker is a per-variable state array that can be reset to all-Unset
// in O(1) by bumping an epoch counter instead of rewriting every slot. This
// is the teacher's ResetSet trick (internal/sat/set.go), generalized from a
// binary membership set to the four-state marker §4.4 needs.
type seenTracker struct {
	epoch   []uint32
	state   []seenState
	current uint32
}

// expand grows the tracker to cover one more variable.
func (t *seenTracker) expand() {
	t.epoch = append(t.epoch, 0)
	t.state = append(t.state, seenUnset)
}

// clear resets every variable to seenUnset.
func (t *seenTracker) clear() {
	t.current++
	if t.current == 0 { // overflow, extremely unlikely but keep it correct
		t.current = 1
		for i := range t.epoch {
			t.epoch[i] = 0
		}
	}
}

// get returns the current state of v, or seenUnset if v hasn't been touched
// since the last clear.
func (t *seenTracker) get(v Variable) seenState {
	if t.epoch[v] != t.current {
		return seenUnset
	}
	return t.state[v]
}

// set marks v with the given state for the current epoch.
func (t *seenTracker) set(v Variable, s seenState) {
	t.epoch[v] = t.current
	t.state[v] = s
}
