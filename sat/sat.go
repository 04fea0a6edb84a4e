// Package sat is the public facade over internal/sat: it re-exports the
// types an embedder needs (literals, solver, options) without reaching
// into the module's internal packages.
package sat

import "github.com/rhartert/yasat/internal/sat"

type (
	Variable = sat.Variable
	Polarity = sat.Polarity
	Literal  = sat.Literal
	Solver   = sat.Solver
	Options  = sat.Options
	Status   = sat.Status
	LBool    = sat.LBool
)

const (
	InvalidLiteral = sat.InvalidLiteral
	Positive       = sat.Positive
	Negative       = sat.Negative
)

const (
	Unsat   = sat.Unsat
	Sat     = sat.Sat
	Unknown = sat.Unknown
)

const (
	True  = sat.True
	False = sat.False
	Unset = sat.Unset
)

var DefaultOptions = sat.DefaultOptions

var (
	NewSolver        = sat.NewSolver
	NewDefaultSolver = sat.NewDefaultSolver
	PositiveLiteral  = sat.PositiveLiteral
	NegativeLiteral  = sat.NegativeLiteral
	LiteralOf        = sat.LiteralOf
)
