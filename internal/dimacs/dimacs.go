// Package dimacs reads the DIMACS CNF subset described in §6: comment
// lines, a single "p cnf <nvars> <nclauses>" header, and 0-terminated
// clause lines, optionally transparently decompressed from .gz or .xz.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	extdimacs "github.com/rhartert/dimacs"
	"github.com/ulikunitz/xz"

	"github.com/rhartert/yasat/internal/sat"
)

// SATSolver is the subset of internal/sat.Solver's API the loader needs
// (§6 "Solver API consumed by the parser").
type SATSolver interface {
	AddVariable() sat.Variable
	AddClause(literals []sat.Literal) bool
}

// openReader opens filename, transparently wrapping it in a gzip or xz
// decompressing reader when its name ends in .gz or .xz.
func openReader(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", filename, err)
	}

	switch {
	case strings.HasSuffix(filename, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("reading %q as gzip: %w", filename, err)
		}
		return &compressedFile{ReadCloser: io.NopCloser(gz), underlying: f}, nil
	case strings.HasSuffix(filename, ".xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("reading %q as xz: %w", filename, err)
		}
		return &compressedFile{ReadCloser: io.NopCloser(xr), underlying: f}, nil
	default:
		return f, nil
	}
}

// compressedFile closes the underlying file once the decompressing reader
// on top of it is closed.
type compressedFile struct {
	io.ReadCloser
	underlying *os.File
}

func (c *compressedFile) Close() error {
	c.ReadCloser.Close()
	return c.underlying.Close()
}

// solverBuilder adapts a SATSolver to the external dimacs.Builder
// interface, translating 1-based signed DIMACS literals into the solver's
// 0-based (Variable, Polarity) encoding.
type solverBuilder struct {
	solver SATSolver
}

func (b *solverBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("unsupported problem type %q, want \"cnf\"", problem)
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *solverBuilder) Clause(tmp []int) error {
	clause := make([]sat.Literal, len(tmp))
	for i, l := range tmp {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(sat.Variable(-l - 1))
		} else {
			clause[i] = sat.PositiveLiteral(sat.Variable(l - 1))
		}
	}
	b.solver.AddClause(clause)
	return nil
}

func (b *solverBuilder) Comment(_ string) error {
	return nil
}

// Load parses the DIMACS file at filename and feeds its variables and
// clauses directly into solver, streaming rather than materializing the
// whole instance in memory.
func Load(filename string, solver SATSolver) error {
	r, err := openReader(filename)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := extdimacs.ReadBuilder(r, &solverBuilder{solver}); err != nil {
		return fmt.Errorf("parsing %q: %w", filename, err)
	}
	return nil
}

// Instance is a materialized DIMACS CNF problem, kept only so tests and
// golden-file comparisons have something to diff against; Load is the path
// production code actually takes.
type Instance struct {
	Variables int
	Clauses   [][]int
	Comments  []string
}

type instanceBuilder struct {
	instance Instance
}

func (b *instanceBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("unsupported problem type %q, want \"cnf\"", problem)
	}
	b.instance.Variables = nVars
	b.instance.Clauses = make([][]int, 0, nClauses)
	return nil
}

func (b *instanceBuilder) Clause(tmp []int) error {
	clause := make([]int, len(tmp))
	copy(clause, tmp)
	b.instance.Clauses = append(b.instance.Clauses, clause)
	return nil
}

func (b *instanceBuilder) Comment(comment string) error {
	b.instance.Comments = append(b.instance.Comments, comment)
	return nil
}

// ParseInstance reads filename into a materialized Instance, for tests and
// tooling that want to inspect the problem before (or without) solving it.
func ParseInstance(filename string) (*Instance, error) {
	r, err := openReader(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	b := &instanceBuilder{}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", filename, err)
	}
	return &b.instance, nil
}
