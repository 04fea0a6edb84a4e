package dimacs

import (
	"fmt"

	extdimacs "github.com/rhartert/dimacs"
)

// modelBuilder reads a "<instance>.cnf.models" sidecar file: one line per
// known model, using the same signed-literal convention as clause lines,
// with no header. Kept as test infrastructure supporting regression runs
// against corpora with precomputed reference models.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files must not contain a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmp []int) error {
	model := make([]bool, len(tmp))
	for i, l := range tmp {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}

// ReadModels returns the list of models recorded in a ".cnf.models" file.
func ReadModels(filename string) ([][]bool, error) {
	r, err := openReader(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("parsing models file %q: %w", filename, err)
	}
	return b.models, nil
}
