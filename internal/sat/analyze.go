package sat

// explainLiterals returns, negated, the literals of ref's clause that count
// as "causes": every literal if ref is the conflict clause itself
// (skipFirst == false), or every literal but position 0 if ref is a reason
// clause (skipFirst == true, since position 0 is the literal the clause
// itself assigned). The result aliases a reused scratch buffer and must be
// consumed before the next call.
func (s *Solver) explainLiterals(ref ClauseRef, skipFirst bool, bump bool) []Literal {
	lits := s.clauseLiterals(ref)
	src := lits
	if skipFirst {
		src = lits[1:]
	}
	buf := s.tmpExplain[:0]
	for _, l := range src {
		buf = append(buf, l.Opposite())
	}
	s.tmpExplain = buf
	if bump && ref.Origin() == Learned {
		s.bumpClauseActivity(ref)
	}
	return buf
}

// analyze implements §4.4: given a conflicting clause, it returns a learned
// clause (position 0 holds the negated first-UIP literal, asserting) and
// the level to backtrack to.
func (s *Solver) analyze(conflict ClauseRef) ([]Literal, int) {
	s.seen.clear()

	s.tmpLearnt = append(s.tmpLearnt[:0], InvalidLiteral) // slot 0 reserved for the FUIP

	pathLength := 0
	ref := conflict
	skipFirst := false // the conflict clause itself: inspect every literal
	nextIdx := len(s.trail) - 1
	var pivot Literal

	for {
		for _, q := range s.explainLiterals(ref, skipFirst, true) {
			v := q.VarID()
			if s.seen.get(v) != seenUnset {
				continue
			}
			lvl := s.level[v]
			if lvl == 0 {
				continue // level-0 causes are permanent facts, never part of the clause
			}
			s.seen.set(v, seenIsSource)
			if lvl == s.decisionLevel() {
				pathLength++
			} else {
				s.tmpLearnt = append(s.tmpLearnt, q.Opposite())
			}
		}

		// Find the next pivot: the closest trail literal (walking down) that
		// was marked IS_SOURCE; anything unmarked is irrelevant.
		for {
			pivot = s.trail[nextIdx]
			nextIdx--
			if s.seen.get(pivot.VarID()) == seenIsSource {
				break
			}
		}

		ref = s.reason[pivot.VarID()]
		skipFirst = true
		pathLength--
		s.seen.set(pivot.VarID(), seenUnset)

		if pathLength <= 0 {
			break
		}
	}

	s.tmpLearnt[0] = pivot.Opposite()

	learnt := s.minimize(s.tmpLearnt)
	return s.finalizeBacktrackLevel(learnt)
}

// finalizeBacktrackLevel implements the backtrack-level computation of
// §4.4: the literal at position >= 1 with the highest decision level is
// swapped into position 1 (so it becomes the second watched literal once
// the clause is attached), and its level is the backtrack level. A unit
// learned clause backtracks to level 0.
func (s *Solver) finalizeBacktrackLevel(learnt []Literal) ([]Literal, int) {
	if len(learnt) == 1 {
		return learnt, 0
	}
	maxIdx, maxLevel := 1, s.level[learnt[1].VarID()]
	for i := 2; i < len(learnt); i++ {
		if lvl := s.level[learnt[i].VarID()]; lvl > maxLevel {
			maxIdx, maxLevel = i, lvl
		}
	}
	learnt[1], learnt[maxIdx] = learnt[maxIdx], learnt[1]
	return learnt, maxLevel
}

// minimize implements §4.4's clause minimization: a non-asserting literal is
// dropped if every ancestor in its reason-graph (skipping level-0 literals)
// is already accounted for (IS_SOURCE or REMOVABLE) or is itself provably
// removable. Traversal uses an explicit work stack rather than recursion
// (§9 design note) so deep implication chains cannot overflow the Go stack.
func (s *Solver) minimize(learnt []Literal) []Literal {
	out := learnt[:1]
	for _, lit := range learnt[1:] {
		if s.isRedundant(lit) {
			continue
		}
		out = append(out, lit)
	}
	return out
}

// isRedundant explores the reason-graph rooted at lit's variable, following
// MiniSat's iterative litRedundant: every node popped off the stack —
// including lit itself, on the very first iteration — unconditionally
// fetches its own reason clause and walks its antecedents; the seen-state
// check only gates whether an antecedent is worth pushing at all (it is
// skipped if already accounted for, and fails the whole walk immediately if
// a prior walk already proved it irreducible). lit is necessarily marked
// IS_SOURCE already (it came from the main analyze() walk), which is why a
// check against the popped node's own seen state, before consulting its
// reason, would wrongly treat the root as already resolved and return
// "redundant" without ever inspecting a single antecedent. On success every
// antecedent visited is marked REMOVABLE; on failure every antecedent
// visited along the path that led to the failure is marked REMOVAL_FAILED,
// so that later checks sharing part of that path terminate immediately
// instead of re-exploring it.
func (s *Solver) isRedundant(lit Literal) bool {
	s.workStack = append(s.workStack[:0], lit)

	var path []Variable // antecedents visited during this exploration

	for len(s.workStack) > 0 {
		n := len(s.workStack) - 1
		cur := s.workStack[n]
		s.workStack = s.workStack[:n]

		reason := s.reason[cur.VarID()]
		if !reason.Valid() {
			s.failPath(path)
			return false
		}

		for _, q := range s.explainLiterals(reason, true, false) {
			av := q.VarID()
			if s.level[av] == 0 {
				continue
			}
			switch s.seen.get(av) {
			case seenIsSource, seenRemovable:
				continue
			case seenRemovalFailed:
				s.failPath(path)
				return false
			}
			s.seen.set(av, seenIsSource)
			path = append(path, av)
			s.workStack = append(s.workStack, q)
		}
	}

	for _, v := range path {
		s.seen.set(v, seenRemovable)
	}
	return true
}

func (s *Solver) failPath(path []Variable) {
	for _, v := range path {
		s.seen.set(v, seenRemovalFailed)
	}
}
