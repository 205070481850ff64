package expr

import (
	"github.com/Somesh067/BinaryLogicSimulator/gate"
	"github.com/Somesh067/BinaryLogicSimulator/internal"
)

// Row is one truth table line: the operand assignment (in variable order,
// most significant first) and the evaluated output.
type Row struct {
	Inputs []gate.Bit
	Output gate.Bit
}

// Table is the complete truth table of an expression.
type Table struct {
	Expression string
	Variables  []string
	Rows       []Row
}

// TruthTable evaluates an expression under every assignment of its
// distinct operands. Rows are enumerated in canonical counting order:
// the assignments form an n-bit counter from all-zero to all-one with
// the alphabetically first operand most significant. Per-row traces are
// discarded.
func TruthTable(expression string) (table Table, err error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return
	}

	names := Variables(tokens)
	if len(names) == 0 {
		err = ErrMalformed
		return
	}

	table = Table{
		Expression: expression,
		Variables:  names,
	}

	for assignment := range internal.Combinations(len(names)) {
		bindings := make(map[string]gate.Bit, len(names))
		inputs := make([]gate.Bit, len(names))
		for i, name := range names {
			inputs[i] = gate.Bit(assignment[i])
			bindings[name] = inputs[i]
		}

		var out gate.Bit
		out, _, err = EvaluatePostfix(postfix, bindings)
		if err != nil {
			table = Table{}
			return
		}

		table.Rows = append(table.Rows, Row{Inputs: inputs, Output: out})
	}

	return
}
