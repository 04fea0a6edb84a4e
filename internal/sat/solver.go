package sat

import "time"

// Solver is a single CDCL instance: clause stores, watch index, trail and
// all scratch buffers reused across propagation/analysis calls. A Solver is
// not safe for concurrent use (§5): every mutating operation is expected to
// run on a single logical thread.
type Solver struct {
	numVars int

	original *ClauseStore
	learned  *ClauseStore
	watches  watchIndex

	value  []LBool // indexed by Literal
	level  []int   // indexed by Variable
	reason []ClauseRef

	trail           []Literal
	separators      []int
	propagationHead int

	ord *order

	opts                     Options
	clauseActivityIncrement  float64
	maxLearnedClauses        float64
	learnedSizeAdjustOnConfl float64
	learnedSizeAdjustCount   int64

	numOriginal int
	numLearned  int
	unsatAtRoot bool

	models [][]bool
	stats  Statistics
	start  time.Time

	// OnProgress, if set, is invoked once per learned-size adjustment and
	// once per restart with a snapshot of the running statistics. The core
	// performs no logging itself (§10.2); this is the CLI's hook.
	OnProgress func(Statistics)

	seen        seenTracker
	tmpWatchers []Watch
	tmpLearnt   []Literal
	tmpExplain  []Literal
	workStack   []Literal
}

// NewSolver returns an empty solver configured with the given options.
func NewSolver(opts Options) *Solver {
	return &Solver{
		original:                NewClauseStore(),
		learned:                 NewClauseStore(),
		ord:                     newOrder(opts.Seed, opts.PhaseSaving),
		opts:                    opts,
		clauseActivityIncrement: 1.0,
	}
}

// NewDefaultSolver returns a solver configured with DefaultOptions,
// equivalent to NewSolver(DefaultOptions).
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// AddVariable creates a new variable and returns its id. Must be called
// before any AddClause referencing it (§6 createVariables contract).
func (s *Solver) AddVariable() Variable {
	v := Variable(s.numVars)
	s.numVars++

	s.value = append(s.value, Unset, Unset)
	s.level = append(s.level, -1)
	s.reason = append(s.reason, InvalidClauseRef)
	s.watches.expand()
	s.ord.expand()
	s.seen.expand()

	return v
}

// NumVariables returns the number of variables created so far.
func (s *Solver) NumVariables() int {
	return s.numVars
}

// NumConstraints returns the number of live original clauses.
func (s *Solver) NumConstraints() int {
	return s.numOriginal
}

// NumClauses is an alias of NumConstraints for the §6 observer contract.
func (s *Solver) NumClauses() int {
	return s.numOriginal
}

// NumLearnts returns the number of live learned clauses.
func (s *Solver) NumLearnts() int {
	return s.numLearned
}

// Statistics returns a snapshot of the running search counters.
func (s *Solver) Statistics() Statistics {
	return s.stats
}

// Model returns the most recently found satisfying assignment, or nil if
// none has been found yet.
func (s *Solver) Model() []bool {
	if len(s.models) == 0 {
		return nil
	}
	return s.models[len(s.models)-1]
}

// Models returns every satisfying assignment found so far by successive
// Solve calls (e.g. after blocking each model found with AddClause to
// enumerate the next one). This is plain repeated solving, not the
// assumption-based incremental solving the core excludes (§1 Non-goals).
func (s *Solver) Models() [][]bool {
	return s.models
}

func (s *Solver) saveModel() {
	model := make([]bool, s.numVars)
	for v := 0; v < s.numVars; v++ {
		model[v] = s.VarValue(Variable(v)) == True
	}
	s.models = append(s.models, model)
}

// Solve implements the outer restart loop of §4.8: successive search
// episodes are run, each bounded by a Luby-paced conflict budget, until one
// of them settles the instance as SAT or UNSAT.
func (s *Solver) Solve() Status {
	if s.unsatAtRoot {
		return Unsat
	}

	s.start = time.Now()
	s.maxLearnedClauses = float64(s.numOriginal) * s.opts.MaxLearnedClausesFactor
	s.learnedSizeAdjustOnConfl = s.opts.LearnedSizeAdjustConflicts
	s.learnedSizeAdjustCount = s.opts.LearnedSizeAdjustCount

	var restartIndex int64
	for {
		budget := int64(float64(s.opts.RestartFirst) * luby(s.opts.RestartInc, restartIndex))
		restartIndex++
		s.stats.Restarts++

		if status := s.search(budget); status != Unknown {
			return status
		}
		if s.OnProgress != nil {
			s.OnProgress(s.stats)
		}
	}
}

// search runs one restart episode, returning Unknown if the episode's
// conflict budget is exhausted before the instance is settled.
func (s *Solver) search(budget int64) Status {
	var conflictsThisEpisode int64

	for {
		s.stats.Iterations++

		conflict := s.Propagate()
		if conflict.Valid() {
			s.stats.Conflicts++
			conflictsThisEpisode++

			if s.decisionLevel() == 0 {
				s.unsatAtRoot = true
				return Unsat
			}

			learnt, backtrackLevel := s.analyze(conflict)
			s.cancelUntil(backtrackLevel)
			s.installLearnedClause(learnt)

			s.decayClauseActivity()

			s.learnedSizeAdjustCount--
			if s.learnedSizeAdjustCount == 0 {
				s.learnedSizeAdjustOnConfl *= s.opts.MaxLearnedAdjustIncrement
				s.learnedSizeAdjustCount = int64(s.learnedSizeAdjustOnConfl)
				s.maxLearnedClauses *= s.opts.MaxLearnedClausesIncrement
				if s.OnProgress != nil {
					s.OnProgress(s.stats)
				}
			}
			continue
		}

		// NO CONFLICT
		if conflictsThisEpisode >= budget {
			s.cancelUntil(0)
			return Unknown
		}

		if s.decisionLevel() == 0 {
			if !s.Simplify() {
				return Unsat
			}
		}

		if float64(s.numLearned) >= s.maxLearnedClauses+float64(len(s.trail)) {
			s.reduceLearned()
		}

		v, polarity, ok := s.ord.pick(s.isUnset)
		if !ok {
			s.saveModel()
			s.cancelUntil(0)
			return Sat
		}
		s.stats.Decisions++
		s.assume(LiteralOf(v, polarity))
	}
}
