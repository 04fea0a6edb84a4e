package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClauseStoreAddGet(t *testing.T) {
	cs := NewClauseStore()
	lits := []Literal{PositiveLiteral(0), NegativeLiteral(1)}

	idx := cs.Add(lits)
	if diff := cmp.Diff(lits, cs.Literals(idx)); diff != "" {
		t.Errorf("Literals(): mismatch (+want -got):\n%s", diff)
	}
	if cs.IsTombstone(idx) {
		t.Errorf("freshly added slot should not be a tombstone")
	}
}

func TestClauseStoreRemoveRecyclesSlot(t *testing.T) {
	cs := NewClauseStore()
	a := cs.Add([]Literal{PositiveLiteral(0), NegativeLiteral(1)})
	b := cs.Add([]Literal{PositiveLiteral(2), NegativeLiteral(3)})

	cs.Remove(a) // not the last slot: tombstoned, index freed
	if !cs.IsTombstone(a) {
		t.Errorf("removed non-tail slot should be tombstoned")
	}

	c := cs.Add([]Literal{PositiveLiteral(4), NegativeLiteral(5)})
	if c != a {
		t.Errorf("Add() did not reuse freed slot %d, got %d", a, c)
	}
	if cs.IsTombstone(c) {
		t.Errorf("reused slot should no longer be a tombstone")
	}
	if cs.IsTombstone(b) {
		t.Errorf("untouched slot should remain live")
	}
}

func TestClauseStoreRemoveLastSlotShrinks(t *testing.T) {
	cs := NewClauseStore()
	cs.Add([]Literal{PositiveLiteral(0), NegativeLiteral(1)})
	b := cs.Add([]Literal{PositiveLiteral(2), NegativeLiteral(3)})

	cs.Remove(b)
	if got, want := cs.Size(), 1; got != want {
		t.Errorf("Size() after removing tail slot = %d, want %d", got, want)
	}
}

func TestClauseStoreActivity(t *testing.T) {
	cs := NewClauseStore()
	idx := cs.Add([]Literal{PositiveLiteral(0), NegativeLiteral(1)})

	a := cs.Activity(idx)
	*a += 3.5
	if got := *cs.Activity(idx); got != 3.5 {
		t.Errorf("Activity() = %v, want 3.5", got)
	}
}
