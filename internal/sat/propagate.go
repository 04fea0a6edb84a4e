package sat

// Propagate consumes trail entries from propagationHead to the end of the
// trail, extending the trail with forced assignments via two-watched-literal
// unit propagation (§4.3), until either the trail is exhausted (returns
// InvalidClauseRef) or a clause is falsified (returns that clause's ref,
// having set propagationHead = len(trail)).
func (s *Solver) Propagate() ClauseRef {
	for s.propagationHead < len(s.trail) {
		l := s.trail[s.propagationHead]
		s.propagationHead++
		s.stats.Propagations++

		watchers := s.watches.list(l)
		s.tmpWatchers = append(s.tmpWatchers[:0], watchers...)
		s.watches.setList(l, watchers[:0])

		for i := 0; i < len(s.tmpWatchers); i++ {
			w := s.tmpWatchers[i]

			// Blocker shortcut: no need to load the clause at all.
			if s.LitValue(w.Blocker) == True {
				s.watches.append(l, w)
				continue
			}

			lits := s.clauseLiterals(w.Clause)
			opp := l.Opposite()
			if lits[0] == opp {
				lits[0], lits[1] = lits[1], lits[0]
			}
			other := lits[0]

			if other != w.Blocker && s.LitValue(other) == True {
				s.watches.append(l, Watch{Clause: w.Clause, Blocker: other})
				continue
			}

			replaced := false
			for k := 2; k < len(lits); k++ {
				if s.LitValue(lits[k]) != False {
					lits[1], lits[k] = lits[k], lits[1]
					s.watches.append(lits[1].Opposite(), Watch{Clause: w.Clause, Blocker: other})
					replaced = true
					break
				}
			}
			if replaced {
				continue
			}

			// No replacement: the clause is unit or conflicting. Either way
			// the watch is kept under l, now pointing at `other` as blocker.
			s.watches.append(l, Watch{Clause: w.Clause, Blocker: other})

			if s.LitValue(other) == False {
				for j := i + 1; j < len(s.tmpWatchers); j++ {
					s.watches.append(l, s.tmpWatchers[j])
				}
				s.propagationHead = len(s.trail)
				return w.Clause
			}

			s.enqueue(other, w.Clause)
		}
	}
	return InvalidClauseRef
}
