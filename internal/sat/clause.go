package sat

import "sort"

// clauseLiterals returns the literal sequence of the clause ref points to,
// dispatching to whichever arena its Origin names.
func (s *Solver) clauseLiterals(ref ClauseRef) []Literal {
	if ref.Origin() == Original {
		return s.original.Literals(ref.Index())
	}
	return s.learned.Literals(ref.Index())
}

func (s *Solver) setClauseLiterals(ref ClauseRef, literals []Literal) {
	if ref.Origin() == Original {
		s.original.SetLiterals(ref.Index(), literals)
	} else {
		s.learned.SetLiterals(ref.Index(), literals)
	}
}

// clauseActivity returns a pointer to ref's activity score. Only learned
// clauses carry a meaningful one (§4.1).
func (s *Solver) clauseActivity(ref ClauseRef) *float64 {
	return s.learned.Activity(ref.Index())
}

// locked reports whether ref is currently acting as the reason for a trail
// literal, and so cannot be removed without first invalidating that reason
// (§3 I4, GLOSSARY "Locked clause").
func (s *Solver) locked(ref ClauseRef) bool {
	lits := s.clauseLiterals(ref)
	return s.reason[lits[0].VarID()] == ref
}

// attachWatchers installs ref's watch on the negation of its two watched
// literals (positions 0 and 1), each remembering the other as its blocker.
func (s *Solver) attachWatchers(ref ClauseRef) {
	lits := s.clauseLiterals(ref)
	s.watches.append(lits[0].Opposite(), Watch{Clause: ref, Blocker: lits[1]})
	s.watches.append(lits[1].Opposite(), Watch{Clause: ref, Blocker: lits[0]})
}

// detachWatchers removes ref from the watch lists of its two watched
// literals.
func (s *Solver) detachWatchers(ref ClauseRef) {
	lits := s.clauseLiterals(ref)
	s.watches.remove(lits[0].Opposite(), ref)
	s.watches.remove(lits[1].Opposite(), ref)
}

// addClauseToStore stores a (non-unit) clause of the given origin and
// attaches its watches, returning the new stable ref.
func (s *Solver) addClauseToStore(origin Origin, literals []Literal) ClauseRef {
	var idx int
	if origin == Original {
		idx = s.original.Add(literals)
		s.numOriginal++
	} else {
		idx = s.learned.Add(literals)
		s.numLearned++
	}
	ref := newClauseRef(idx, origin)
	s.attachWatchers(ref)
	return ref
}

// removeClause unwatches and deletes ref, tombstoning its slot.
func (s *Solver) removeClause(ref ClauseRef) {
	s.detachWatchers(ref)
	if ref.Origin() == Original {
		s.original.Remove(ref.Index())
		s.numOriginal--
	} else {
		s.learned.Remove(ref.Index())
		s.numLearned--
	}
}

// AddClause implements §4.9: it must be called at decision level 0. It
// canonicalizes the incoming literals (dropping satisfied/tautological
// clauses, deduplicating, and discarding literals already false at level 0)
// before storing what remains. It returns false iff the problem is now
// provably UNSAT, matching the contract the parser relies on to stop early
// (§6).
func (s *Solver) AddClause(literals []Literal) bool {
	assertf(s.decisionLevel() == 0, "AddClause called at decision level %d", s.decisionLevel())

	if s.unsatAtRoot {
		return false
	}

	lits := append([]Literal(nil), literals...)
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })

	out := lits[:0]
	for i := 0; i < len(lits); i++ {
		l := lits[i]
		if i+1 < len(lits) && lits[i+1] == l.Opposite() {
			return true // tautology, e.g. A or !A: drop the clause, not an error.
		}
		if len(out) > 0 && out[len(out)-1] == l {
			continue // duplicate literal
		}
		switch s.LitValue(l) {
		case True:
			return true // already satisfied at level 0
		case False:
			continue // discard: false at level 0
		default:
			out = append(out, l)
		}
	}
	lits = out

	switch len(lits) {
	case 0:
		s.unsatAtRoot = true
		return false
	case 1:
		// A unit clause is applied immediately and propagated so that a
		// contradiction between facts is caught at AddClause time rather
		// than surfacing later as a confusing conflict during search.
		if !s.enqueue(lits[0], InvalidClauseRef) {
			s.unsatAtRoot = true
			return false
		}
		if conflict := s.Propagate(); conflict.Valid() {
			s.unsatAtRoot = true
			return false
		}
		return true
	default:
		s.addClauseToStore(Original, lits)
		return true
	}
}

// installLearnedClause attaches a freshly-analyzed learned clause (§4.8): a
// unit clause is applied as a fact with no reason, otherwise it is attached,
// its activity bumped, and its asserting (position-0) literal assigned with
// the clause as reason.
func (s *Solver) installLearnedClause(literals []Literal) {
	if len(literals) == 1 {
		s.enqueue(literals[0], InvalidClauseRef)
		return
	}
	ref := s.addClauseToStore(Learned, literals)
	s.bumpClauseActivity(ref)
	s.enqueue(literals[0], ref)
}
