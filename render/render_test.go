package render

import (
	"strings"
	"testing"

	"github.com/Somesh067/BinaryLogicSimulator/expr"
	"github.com/Somesh067/BinaryLogicSimulator/trace"
	"github.com/stretchr/testify/assert"
)

func TestWriteTrace(t *testing.T) {
	assert := assert.New(t)

	tb := &trace.Builder{}
	tb.Add("start", trace.F("A", "0000 0101"))
	tb.Add("done")

	var sb strings.Builder
	err := WriteTrace(&sb, tb.Trace())
	assert.NoError(err)
	assert.Equal("  0. start\n     A: 0000 0101\n  1. done\n", sb.String())
}

func TestWriteTable(t *testing.T) {
	assert := assert.New(t)

	table, err := expr.TruthTable("A AND B")
	assert.NoError(err)

	var sb strings.Builder
	err = WriteTable(&sb, table)
	assert.NoError(err)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Equal("Truth table for: A AND B", lines[0])
	assert.Equal("A | B | OUT", lines[1])
	assert.Equal("0 | 0 |  0", lines[3])
	assert.Equal("1 | 1 |  1", lines[6])
}
