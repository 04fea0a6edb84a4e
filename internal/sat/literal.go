package sat

import "fmt"

// Variable is the identifier of a boolean variable, always in [0, n) once
// the problem has been loaded with AddVariable.
type Variable int

// Polarity is the sign a literal gives to a variable: true for positive,
// false for negative.
type Polarity bool

const (
	Positive Polarity = true
	Negative Polarity = false
)

// Literal packs a Variable and a Polarity into a single integer so that the
// two literals of the same variable are adjacent: VarID*2 is the positive
// literal, VarID*2+1 is the negative one. Negation flips the low bit, which
// is why the propagator and watch index can treat Literal as a plain array
// index without ever unpacking it.
type Literal int

// InvalidLiteral is the sentinel returned where no literal applies, e.g. the
// pseudo-literal representing the conflict clause itself during analysis.
const InvalidLiteral Literal = -1

// PositiveLiteral returns the positive literal of the given variable.
func PositiveLiteral(v Variable) Literal {
	return Literal(v) * 2
}

// NegativeLiteral returns the negative literal of the given variable.
func NegativeLiteral(v Variable) Literal {
	return PositiveLiteral(v).Opposite()
}

// LiteralOf returns the literal of v with the given polarity.
func LiteralOf(v Variable, p Polarity) Literal {
	if p {
		return PositiveLiteral(v)
	}
	return NegativeLiteral(v)
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() Variable {
	return Variable(int(l) / 2)
}

// IsPositive returns true iff the literal represents its variable's value
// directly (as opposed to its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Polarity returns the literal's polarity.
func (l Literal) Polarity() Polarity {
	return Polarity(l.IsPositive())
}

// Opposite returns the negation of the literal: same variable, flipped low
// bit. This is the O(1) operation the propagator and watch index rely on.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

// Less orders literals lexicographically by variable, then polarity
// (positive before negative), so clauses can be canonicalized by sorting.
func (l Literal) Less(other Literal) bool {
	if l.VarID() != other.VarID() {
		return l.VarID() < other.VarID()
	}
	return l.IsPositive() && !other.IsPositive()
}

func (l Literal) String() string {
	if l == InvalidLiteral {
		return "Literal[invalid]"
	}
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("-%d", l.VarID())
}
