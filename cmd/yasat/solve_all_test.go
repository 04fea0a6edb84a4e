package main

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rhartert/yasat/internal/dimacs"
	yasat "github.com/rhartert/yasat/sat"
)

// This test verifies that the solver finds the exact set of models for each
// instance under testdata, by repeatedly solving and blocking the model
// just found (plain repeated solving, not assumption-based incremental
// solving — see Solver.Models).

var testdataDir = "testdata"

type testCase struct {
	name         string
	instanceFile string
	modelsFile   string
}

func listTestCases(dir string) ([]testCase, error) {
	var cases []testCase
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".cnf") {
			return nil
		}
		cases = append(cases, testCase{
			name:         d.Name(),
			instanceFile: path,
			modelsFile:   path + ".models",
		})
		return nil
	})
	return cases, err
}

func modelKey(model []bool) string {
	b := make([]byte, len(model))
	for i, v := range model {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

func modelSet(models [][]bool) map[string]struct{} {
	set := make(map[string]struct{}, len(models))
	for _, m := range models {
		set[modelKey(m)] = struct{}{}
	}
	return set
}

// solveAll finds every model of the loaded instance by adding, after each
// SAT result, a clause that blocks the model just found.
func solveAll(s *yasat.Solver) [][]bool {
	for s.Solve() == yasat.Sat {
		model := s.Model()
		blocker := make([]yasat.Literal, len(model))
		for i, b := range model {
			if b {
				blocker[i] = yasat.NegativeLiteral(yasat.Variable(i))
			} else {
				blocker[i] = yasat.PositiveLiteral(yasat.Variable(i))
			}
		}
		s.AddClause(blocker)
	}
	return s.Models()
}

func TestSolveAll(t *testing.T) {
	cases, err := listTestCases(testdataDir)
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			want, err := dimacs.ReadModels(tc.modelsFile)
			require.NoError(t, err)

			s := yasat.NewDefaultSolver()
			require.NoError(t, dimacs.Load(tc.instanceFile, s))

			got := solveAll(s)

			require.Equal(t, modelSet(want), modelSet(got))
		})
	}
}
