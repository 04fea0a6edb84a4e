package sat

import "sort"

// reduceLearned implements §4.5: the learned-clause database is pruned to
// roughly its median activity, keeping binary clauses and locked clauses
// (ones currently acting as a propagation reason) regardless of score.
func (s *Solver) reduceLearned() {
	var idxs []int
	for i := 0; i < s.learned.Size(); i++ {
		if !s.learned.IsTombstone(i) {
			idxs = append(idxs, i)
		}
	}
	if len(idxs) == 0 {
		return
	}

	sort.Slice(idxs, func(i, j int) bool {
		return *s.learned.Activity(idxs[i]) < *s.learned.Activity(idxs[j])
	})

	median := *s.learned.Activity(idxs[len(idxs)/2])
	threshold := s.clauseActivityIncrement / float64(len(idxs))
	pruneThreshold := threshold
	if median < pruneThreshold {
		pruneThreshold = median
	}

	for _, idx := range idxs {
		ref := newClauseRef(idx, Learned)
		lits := s.clauseLiterals(ref)
		if len(lits) <= 2 {
			continue
		}
		if *s.learned.Activity(idx) >= pruneThreshold {
			continue
		}
		if s.locked(ref) {
			continue
		}
		s.removeClause(ref)
	}
}
