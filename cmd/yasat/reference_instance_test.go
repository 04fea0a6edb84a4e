package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rhartert/yasat/internal/dimacs"
	yasat "github.com/rhartert/yasat/sat"
)

// referenceInstance is a 403-variable, 2029-clause 3-SAT instance (kept
// outside testdata so TestSolveAll's exhaustive model enumeration never
// walks it: at this size and clause/variable ratio it can have far too many
// satisfying assignments to enumerate one at a time). Every clause has
// exactly three literals, so nothing is solvable by unit propagation alone —
// reaching SAT requires real decisions, conflicts, and learned-clause
// minimization, which is the point: this is the one instance in the tree
// that would have caught a minimizer broken the way isRedundant once was.
const referenceInstance = "refdata/medium_planted.cnf"

func TestReferenceInstanceIsSatisfiable(t *testing.T) {
	instance, err := dimacs.ParseInstance(referenceInstance)
	require.NoError(t, err)

	s := yasat.NewDefaultSolver()
	require.NoError(t, dimacs.Load(referenceInstance, s))

	status := s.Solve()
	require.Equal(t, yasat.Sat, status)

	model := s.Model()
	require.Len(t, model, instance.Variables)

	for _, clause := range instance.Clauses {
		satisfied := false
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			if (lit > 0) == model[v-1] {
				satisfied = true
				break
			}
		}
		require.True(t, satisfied, "clause %v not satisfied by returned model", clause)
	}
}
