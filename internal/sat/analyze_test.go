package sat

import "testing"

// TestAnalyzeMinimizesRedundantLiteralButKeepsNecessaryOne hand-drives a
// two-level conflict whose pre-minimization learned clause contains one
// literal that minimize() must drop (its only antecedent, x2, is already in
// the clause) and one it must keep (its antecedent traces back to the bare
// decision x1, which never appears in the clause and so can never be
// resolved away). This is the scenario the iterative reason-graph walk in
// isRedundant exists to tell apart; a minimizer that strips every
// non-asserting literal unconditionally (or that never looks past a
// literal's own seen state) passes neither half of this test.
//
// Level 1: decision x1 implies x2 (via x1->x2), which implies x6 (x2->x6).
// Level 2: decision x3 implies x4, which implies x5, which implies x7. The
// clause (!x2 | !x6 | !x5 | !x7) then conflicts once x2, x6, x5 and x7 are
// all true. It has two unset literals at level 1, so nothing propagates
// from it before the level-2 decision, and x5 is the first UIP.
func TestAnalyzeMinimizesRedundantLiteralButKeepsNecessaryOne(t *testing.T) {
	s := NewDefaultSolver()
	x1 := s.AddVariable()
	x2 := s.AddVariable()
	x3 := s.AddVariable()
	x4 := s.AddVariable()
	x5 := s.AddVariable()
	x6 := s.AddVariable()
	x7 := s.AddVariable()

	s.AddClause([]Literal{NegativeLiteral(x1), PositiveLiteral(x2)})
	s.AddClause([]Literal{NegativeLiteral(x2), PositiveLiteral(x6)})
	s.AddClause([]Literal{NegativeLiteral(x3), PositiveLiteral(x4)})
	s.AddClause([]Literal{NegativeLiteral(x4), PositiveLiteral(x5)})
	s.AddClause([]Literal{NegativeLiteral(x5), PositiveLiteral(x7)})
	s.AddClause([]Literal{NegativeLiteral(x2), NegativeLiteral(x6), NegativeLiteral(x5), NegativeLiteral(x7)})

	if !s.assume(PositiveLiteral(x1)) {
		t.Fatalf("assume(x1) failed")
	}
	if conflict := s.Propagate(); conflict.Valid() {
		t.Fatalf("unexpected conflict after level 1 propagation: %v", conflict)
	}

	if !s.assume(PositiveLiteral(x3)) {
		t.Fatalf("assume(x3) failed")
	}
	conflict := s.Propagate()
	if !conflict.Valid() {
		t.Fatalf("expected a conflict after level 2 propagation, got none")
	}

	learnt, backtrackLevel := s.analyze(conflict)

	if backtrackLevel != 1 {
		t.Errorf("backtrackLevel = %d, want 1", backtrackLevel)
	}
	if len(learnt) != 2 {
		t.Fatalf("minimized learnt clause = %v, want exactly 2 literals", learnt)
	}
	if learnt[0] != NegativeLiteral(x5) {
		t.Errorf("learnt[0] = %v, want the asserting literal %v (!x5)", learnt[0], NegativeLiteral(x5))
	}
	if learnt[1] != NegativeLiteral(x2) {
		t.Errorf("learnt[1] = %v, want %v (!x2): x2's only cause is the bare decision x1, so it cannot be minimized away", learnt[1], NegativeLiteral(x2))
	}
	for _, l := range learnt {
		if l == NegativeLiteral(x6) {
			t.Errorf("minimize() kept !x6 in %v, but x6's only cause (x2) is already in the clause, so it should have been dropped", learnt)
		}
	}
}
