package sat

// Watch is an entry in a literal's watch list: the clause currently
// watching that literal, plus a blocker literal that, if true, lets the
// propagator skip loading the clause entirely (§4.3 step 1). Two Watches
// compare equal iff their ClauseRefs match; the blocker is mutable metadata
// and does not participate in equality.
type Watch struct {
	Clause  ClauseRef
	Blocker Literal
}

func (w Watch) equalClause(ref ClauseRef) bool {
	return w.Clause == ref
}

// watchIndex maps each literal (as an index in [0, 2n)) to the ordered list
// of clauses currently watching it.
type watchIndex struct {
	lists [][]Watch
}

// expand grows the index to cover one more variable's two literals.
func (wi *watchIndex) expand() {
	wi.lists = append(wi.lists, nil, nil)
}

// append adds a watch to l's list.
func (wi *watchIndex) append(l Literal, w Watch) {
	wi.lists[l] = append(wi.lists[l], w)
}

// list returns l's watch list for iteration.
func (wi *watchIndex) list(l Literal) []Watch {
	return wi.lists[l]
}

// setList replaces l's watch list wholesale, e.g. once the propagator has
// finished rewriting it in place.
func (wi *watchIndex) setList(l Literal, ws []Watch) {
	wi.lists[l] = ws
}

// remove drops the first watch on l's list whose ClauseRef equals ref.
func (wi *watchIndex) remove(l Literal, ref ClauseRef) {
	ws := wi.lists[l]
	for i, w := range ws {
		if w.equalClause(ref) {
			ws[i] = ws[len(ws)-1]
			wi.lists[l] = ws[:len(ws)-1]
			return
		}
	}
}
