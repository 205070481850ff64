// Package render formats engine output — execution traces and truth
// tables — for terminal display. The engine itself never formats; these
// helpers belong to the presentation boundary.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Somesh067/BinaryLogicSimulator/expr"
	"github.com/Somesh067/BinaryLogicSimulator/trace"
)

// WriteTrace writes a trace one step per line, fields indented below
// their step.
func WriteTrace(w io.Writer, tr trace.Trace) (err error) {
	for _, step := range tr {
		_, err = fmt.Fprintf(w, "%3d. %v\n", step.Index, step.Description)
		if err != nil {
			return
		}
		for _, field := range step.Fields {
			_, err = fmt.Fprintf(w, "     %v: %v\n", field.Key, field.Value)
			if err != nil {
				return
			}
		}
	}
	return
}

// WriteTable writes a truth table with one column per operand plus the
// output column.
func WriteTable(w io.Writer, table expr.Table) (err error) {
	_, err = fmt.Fprintf(w, "Truth table for: %v\n", table.Expression)
	if err != nil {
		return
	}

	header := strings.Join(table.Variables, " | ") + " | OUT"
	_, err = fmt.Fprintf(w, "%v\n%v\n", header, strings.Repeat("-", len(header)))
	if err != nil {
		return
	}

	for _, row := range table.Rows {
		cells := make([]string, 0, len(row.Inputs))
		for _, bit := range row.Inputs {
			cells = append(cells, fmt.Sprintf("%d", bit))
		}
		_, err = fmt.Fprintf(w, "%v |  %d\n", strings.Join(cells, " | "), row.Output)
		if err != nil {
			return
		}
	}
	return
}
