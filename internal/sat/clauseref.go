package sat

// Origin tells which of the clause store's two arenas a ClauseRef points
// into.
type Origin uint8

const (
	Original Origin = 0
	Learned  Origin = 1
)

// ClauseRef is a stable handle into one of the clause store's arenas: an
// (index, origin) pair packed into a single integer whose low bit is the
// origin, mirroring Literal's "negate/tag is the low bit" encoding. It is a
// handle, not an owning pointer: the slot it names can be recycled after
// the clause is removed, but the ref value itself never changes meaning
// while the clause it named is still attached.
type ClauseRef int

// InvalidClauseRef is the sentinel for "no clause" (e.g. the reason of a
// decision variable, or a successful propagate() call).
const InvalidClauseRef ClauseRef = -1

func newClauseRef(index int, origin Origin) ClauseRef {
	return ClauseRef(index<<1) | ClauseRef(origin)
}

// Index returns the position of the referenced clause within its arena.
func (r ClauseRef) Index() int {
	return int(r) >> 1
}

// Origin returns which arena the ref points into.
func (r ClauseRef) Origin() Origin {
	return Origin(r & 1)
}

// Valid reports whether r is not the InvalidClauseRef sentinel.
func (r ClauseRef) Valid() bool {
	return r != InvalidClauseRef
}
