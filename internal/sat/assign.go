package sat

// decisionLevel returns the current decision depth: |separators| (§3).
func (s *Solver) decisionLevel() int {
	return len(s.separators)
}

// LitValue returns the current truth value of a literal.
func (s *Solver) LitValue(l Literal) LBool {
	return s.value[l]
}

// VarValue returns the current truth value of a variable.
func (s *Solver) VarValue(v Variable) LBool {
	return s.value[PositiveLiteral(v)]
}

// isUnset reports whether v has no current assignment.
func (s *Solver) isUnset(v Variable) bool {
	return s.VarValue(v) == Unset
}

// enqueue records l as true, either as a fact (reason == InvalidClauseRef)
// or because `reason` forced it. Returns false if l is already false
// (conflicting assignment); true if it was already true or newly assigned.
func (s *Solver) enqueue(l Literal, reason ClauseRef) bool {
	switch s.LitValue(l) {
	case False:
		return false
	case True:
		return true
	default:
		v := l.VarID()
		s.value[l] = True
		s.value[l.Opposite()] = False
		s.level[v] = s.decisionLevel()
		s.reason[v] = reason
		s.trail = append(s.trail, l)
		return true
	}
}

// undoOne pops the top trail literal, resets its variable to Unset, saves
// its phase, and returns it to the branching reservoir (§4.8 Backtrack).
func (s *Solver) undoOne() {
	l := s.trail[len(s.trail)-1]
	v := l.VarID()

	s.value[l] = Unset
	s.value[l.Opposite()] = Unset
	s.reason[v] = InvalidClauseRef
	s.level[v] = -1

	s.trail = s.trail[:len(s.trail)-1]
	s.ord.unassign(v, l.IsPositive())
}

// assume pushes a new decision separator and enqueues l as a decision (no
// reason).
func (s *Solver) assume(l Literal) bool {
	s.separators = append(s.separators, len(s.trail))
	return s.enqueue(l, InvalidClauseRef)
}

// cancelUntil backtracks the trail to the given decision level (§4.8
// Backtrack): every literal assigned at a level above `level` is undone, in
// top-down order, and propagationHead is reset to the truncated trail
// length (P6).
func (s *Solver) cancelUntil(level int) {
	for s.decisionLevel() > level {
		target := s.separators[len(s.separators)-1]
		for len(s.trail) > target {
			s.undoOne()
		}
		s.separators = s.separators[:len(s.separators)-1]
	}
	s.propagationHead = len(s.trail)
}
