package sat

// clauseSlot is one arena entry. An empty literals slice marks a tombstone:
// the slot has been removed and its index pushed onto the free list.
type clauseSlot struct {
	literals []Literal
	activity float64
}

// ClauseStore is an append-only arena of clauses addressed by a stable
// integer index, with slot recycling on removal. The Solver keeps two
// independent stores, one for original clauses and one for learned ones
// (§4.1); ClauseRef.Origin says which one a given ref names.
type ClauseStore struct {
	slots []clauseSlot
	free  []int
}

// NewClauseStore returns an empty store.
func NewClauseStore() *ClauseStore {
	return &ClauseStore{}
}

// Add stores literals as a new clause, reusing a free slot if one exists,
// and returns its index within this store.
func (cs *ClauseStore) Add(literals []Literal) int {
	if n := len(cs.free); n > 0 {
		idx := cs.free[n-1]
		cs.free = cs.free[:n-1]
		cs.slots[idx].literals = append(cs.slots[idx].literals[:0], literals...)
		cs.slots[idx].activity = 0
		return idx
	}
	cs.slots = append(cs.slots, clauseSlot{
		literals: append([]Literal(nil), literals...),
	})
	return len(cs.slots) - 1
}

// Remove deletes the clause at idx. If idx is the last slot it is popped;
// otherwise the slot is tombstoned (cleared, activity reset) and its index
// recycled for the next Add.
func (cs *ClauseStore) Remove(idx int) {
	if idx == len(cs.slots)-1 {
		cs.slots = cs.slots[:idx]
		return
	}
	cs.slots[idx].literals = cs.slots[idx].literals[:0]
	cs.slots[idx].activity = 0
	cs.free = append(cs.free, idx)
}

// Literals returns the literal sequence of the clause at idx for in-place
// reads and element swaps (e.g. watch rotation). Use SetLiterals to change
// its length.
func (cs *ClauseStore) Literals(idx int) []Literal {
	return cs.slots[idx].literals
}

// SetLiterals replaces the literal sequence of the clause at idx, e.g. after
// filtering false literals during simplification.
func (cs *ClauseStore) SetLiterals(idx int, literals []Literal) {
	cs.slots[idx].literals = literals
}

// Activity returns a pointer to the clause's activity score for in-place
// bumping and decay. Only meaningful for learned clauses.
func (cs *ClauseStore) Activity(idx int) *float64 {
	return &cs.slots[idx].activity
}

// IsTombstone reports whether the slot at idx has been removed.
func (cs *ClauseStore) IsTombstone(idx int) bool {
	return len(cs.slots[idx].literals) == 0
}

// Size returns an upper bound on the number of stored clauses, including
// tombstones; iterate [0, Size()) and skip tombstones.
func (cs *ClauseStore) Size() int {
	return len(cs.slots)
}
