package sat

// Simplify implements §4.6: it must be called at decision level 0. It
// propagates first; if that conflicts, the instance is UNSAT. Otherwise
// every clause satisfied by a level-0 assignment is detached and removed,
// every remaining clause has its false literals (at positions >= 2) dropped
// in place, and the branching reservoir is rebuilt and reshuffled.
func (s *Solver) Simplify() bool {
	assertf(s.decisionLevel() == 0, "Simplify called at decision level %d", s.decisionLevel())

	if conflict := s.Propagate(); conflict.Valid() {
		return false
	}

	s.simplifyStore(Original)
	s.simplifyStore(Learned)

	s.ord.rebuild(s.isUnset, s.numVars)

	return true
}

func (s *Solver) simplifyStore(origin Origin) {
	store := s.original
	if origin == Learned {
		store = s.learned
	}

	for i := 0; i < store.Size(); i++ {
		if store.IsTombstone(i) {
			continue
		}
		ref := newClauseRef(i, origin)
		lits := store.Literals(i)

		satisfied := false
		for _, l := range lits {
			if s.LitValue(l) == True {
				satisfied = true
				break
			}
		}
		if satisfied {
			s.removeClause(ref)
			continue
		}

		if len(lits) <= 2 {
			continue
		}
		kept := lits[:2]
		for _, l := range lits[2:] {
			if s.LitValue(l) != False {
				kept = append(kept, l)
			}
		}
		if len(kept) != len(lits) {
			s.setClauseLiterals(ref, kept)
		}
	}
}
