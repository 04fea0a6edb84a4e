package sat

const clauseActivityRescaleThreshold = 1e20
const clauseActivityRescaleFactor = 1e-20

// bumpClauseActivity implements §4.7: a learned clause's activity grows by
// the current increment every time it is consulted during conflict
// analysis (or freshly learned). Original clauses carry no activity and are
// silently ignored.
func (s *Solver) bumpClauseActivity(ref ClauseRef) {
	if ref.Origin() != Learned {
		return
	}
	a := s.learned.Activity(ref.Index())
	*a += s.clauseActivityIncrement
	if *a > clauseActivityRescaleThreshold {
		s.rescaleClauseActivities()
	}
}

// rescaleClauseActivities keeps every learned clause's activity (and the
// increment itself) within float64 range while preserving their relative
// order.
func (s *Solver) rescaleClauseActivities() {
	for i := 0; i < s.learned.Size(); i++ {
		if s.learned.IsTombstone(i) {
			continue
		}
		a := s.learned.Activity(i)
		*a *= clauseActivityRescaleFactor
	}
	s.clauseActivityIncrement *= clauseActivityRescaleFactor
}

// decayClauseActivity implements the increment growth of §4.7: dividing by
// a decay factor below 1 makes future bumps count for more, so that recent
// conflicts dominate older ones without rescaling every clause each time.
func (s *Solver) decayClauseActivity() {
	s.clauseActivityIncrement /= s.opts.ClauseActivityDecay
}
