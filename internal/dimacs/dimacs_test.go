package dimacs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/rhartert/yasat/internal/sat"
)

var testInstance = Instance{
	Variables: 3,
	Clauses: [][]int{
		{1, 2, 3},
		{1, 2, -3},
		{1, -2, 3},
		{-1, 2, 3},
		{-1, -2, 3},
		{-1, 2, -3},
		{1, -2, -3},
		{-1, -2, -3},
	},
	Comments: []string{"c minimalist unsat instance"},
}

func TestParseInstance_plain(t *testing.T) {
	got, err := ParseInstance("testdata/test_instance.cnf")
	require.NoError(t, err)
	if diff := cmp.Diff(&testInstance, got); diff != "" {
		t.Errorf("ParseInstance(): mismatch (+want, -got):\n%s", diff)
	}
}

func TestParseInstance_gzip(t *testing.T) {
	got, err := ParseInstance("testdata/test_instance.cnf.gz")
	require.NoError(t, err)
	if diff := cmp.Diff(&testInstance, got); diff != "" {
		t.Errorf("ParseInstance(): mismatch (+want, -got):\n%s", diff)
	}
}

func TestParseInstance_xz(t *testing.T) {
	got, err := ParseInstance("testdata/test_instance.cnf.xz")
	require.NoError(t, err)
	if diff := cmp.Diff(&testInstance, got); diff != "" {
		t.Errorf("ParseInstance(): mismatch (+want, -got):\n%s", diff)
	}
}

func TestParseInstance_missingFile(t *testing.T) {
	_, err := ParseInstance("testdata/does_not_exist.cnf")
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	s := sat.NewDefaultSolver()
	require.NoError(t, Load("testdata/sat_instance.cnf", s))
	require.Equal(t, 2, s.NumVariables())
	// Both clauses in the fixture are units, so they are applied as facts
	// during AddClause rather than retained as stored constraints (§4.9).
	require.Equal(t, 0, s.NumConstraints())
	require.Equal(t, sat.True, s.VarValue(0))
	require.Equal(t, sat.False, s.VarValue(1))
}

func TestReadModels(t *testing.T) {
	models, err := ReadModels("testdata/sat_instance.cnf.models")
	require.NoError(t, err)
	require.Equal(t, [][]bool{{true, false}}, models)
}
