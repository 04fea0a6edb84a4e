package sat

// Options holds every tunable named in the spec's external-interface
// constants, generalized into an explicit configuration record (per the
// teacher's Options/DefaultOptions pair) instead of compile-time literals,
// so a caller such as cmd/yasat can override individual values.
type Options struct {
	// ClauseActivityDecay < 1 makes the activity increment grow after every
	// conflict (§4.7). Teacher's ClauseDecay; reference value 0.999.
	ClauseActivityDecay float64

	// MaxLearnedClausesFactor sets the initial learned-clause budget as a
	// fraction of the number of original clauses (reference value 1/3).
	MaxLearnedClausesFactor float64

	// MaxLearnedClausesIncrement scales the learned-clause budget every time
	// the size-adjust counter lapses (reference value 1.1).
	MaxLearnedClausesIncrement float64

	// MaxLearnedAdjustIncrement scales learnedSizeAdjustConflicts (the
	// counter's reset floor) every time it lapses (reference value 1.5).
	MaxLearnedAdjustIncrement float64

	// RestartFirst and RestartInc pace the Luby restart sequence: episode
	// budget = RestartFirst * luby(RestartInc, episodeIndex).
	RestartFirst int64
	RestartInc   float64

	// LearnedSizeAdjustConflicts is the initial value of the floor that the
	// per-conflict countdown growing the learned-clause budget resets to each
	// time it lapses (after being scaled by MaxLearnedAdjustIncrement);
	// LearnedSizeAdjustCount is the countdown's starting value.
	LearnedSizeAdjustConflicts float64
	LearnedSizeAdjustCount     int64

	// Seed drives the deterministic PRNG used for branching (§5: identical
	// seed and input must reproduce bit-for-bit identical search).
	Seed int64

	// PhaseSaving enables caching the last polarity a variable had before
	// being unassigned, reused as its preferred polarity on its next
	// decision (§4.8 pickBranchLiteral).
	PhaseSaving bool
}

// DefaultOptions holds the exact values required by §6 for reproducibility.
var DefaultOptions = Options{
	ClauseActivityDecay:        0.999,
	MaxLearnedClausesFactor:    1.0 / 3.0,
	MaxLearnedClausesIncrement: 1.1,
	MaxLearnedAdjustIncrement:  1.5,
	RestartFirst:               100,
	RestartInc:                 2.0,
	LearnedSizeAdjustConflicts: 100.0,
	LearnedSizeAdjustCount:     100,
	Seed:                       42,
	PhaseSaving:                true,
}
