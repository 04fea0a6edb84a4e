package sat

import "math/rand"

// order is the branching structure described in §4.8: a reservoir of
// currently-unassigned variables drawn from uniformly at random (no VSIDS,
// per §1's explicit non-goal), plus the saved-phase array used to pick a
// polarity once a variable is chosen.
//
// rand.Rand is seeded once from Options.Seed and never reseeded; together
// with processing clauses/decisions in a fixed order this is what makes
// search bit-for-bit reproducible (§5). The generator isn't literally a
// Mersenne Twister, but math/rand's source is itself a deterministic,
// seedable stream, which is the property §6 actually requires.
type order struct {
	rng          *rand.Rand
	phase        []Polarity
	phaseSaving  bool
	reservoir    []Variable
	positionOf   []int // index of v within reservoir, -1 if absent
}

func newOrder(seed int64, phaseSaving bool) *order {
	return &order{
		rng:         rand.New(rand.NewSource(seed)),
		phaseSaving: phaseSaving,
	}
}

func (o *order) expand() {
	o.phase = append(o.phase, Negative)
	o.positionOf = append(o.positionOf, -1)
}

// rebuild empties the reservoir and refills it with every variable that is
// currently unassigned, then shuffles it. Used by Simplify (§4.6) after
// top-level garbage collection.
func (o *order) rebuild(isUnset func(Variable) bool, numVars int) {
	o.reservoir = o.reservoir[:0]
	for v := Variable(0); v < Variable(numVars); v++ {
		if isUnset(v) {
			o.positionOf[v] = len(o.reservoir)
			o.reservoir = append(o.reservoir, v)
		} else {
			o.positionOf[v] = -1
		}
	}
	o.shuffle()
}

func (o *order) shuffle() {
	o.rng.Shuffle(len(o.reservoir), func(i, j int) {
		o.reservoir[i], o.reservoir[j] = o.reservoir[j], o.reservoir[i]
		o.positionOf[o.reservoir[i]] = i
		o.positionOf[o.reservoir[j]] = j
	})
}

// unassign records v's polarity (if phase saving is on) and pushes it back
// into the reservoir, called from backtracking (§4.8 Backtrack).
func (o *order) unassign(v Variable, wasPositive bool) {
	if o.phaseSaving {
		o.phase[v] = Polarity(wasPositive)
	}
	if o.positionOf[v] >= 0 {
		return // already in the reservoir
	}
	o.positionOf[v] = len(o.reservoir)
	o.reservoir = append(o.reservoir, v)
}

// pick pops a uniformly random element of the reservoir (swap-with-back),
// discarding entries for variables that turned out to already be assigned,
// until it finds a genuinely unset one or the reservoir runs dry.
func (o *order) pick(isUnset func(Variable) bool) (Variable, Polarity, bool) {
	for len(o.reservoir) > 0 {
		i := o.rng.Intn(len(o.reservoir))
		v := o.reservoir[i]

		last := len(o.reservoir) - 1
		o.reservoir[i] = o.reservoir[last]
		o.positionOf[o.reservoir[i]] = i
		o.reservoir = o.reservoir[:last]
		o.positionOf[v] = -1

		if !isUnset(v) {
			continue
		}
		return v, o.phase[v], true
	}
	return 0, Negative, false
}
