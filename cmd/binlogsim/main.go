// Copyright 2026, Somesh

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/Somesh067/BinaryLogicSimulator/alu"
	"github.com/Somesh067/BinaryLogicSimulator/bitvec"
	"github.com/Somesh067/BinaryLogicSimulator/expr"
	"github.com/Somesh067/BinaryLogicSimulator/gate"
	"github.com/Somesh067/BinaryLogicSimulator/render"
)

// valueOf evaluates an operand value expression. Plain decimal, 0x/0b
// literals, and arithmetic expressions are all accepted.
func valueOf(text string) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + text + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "value", prog, starlark.StringDict{})
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = fmt.Errorf("'%v' is not a value", text)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = fmt.Errorf("'%v' is not a value", text)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = fmt.Errorf("'%v' is not a value", text)
		return
	}
	value = uint64(st_int64)
	return
}

// operandOf converts a value expression to an ALU operand vector.
func operandOf(text string) (v bitvec.Vector, err error) {
	value, err := valueOf(text)
	if err != nil {
		return
	}

	v, overflow := bitvec.Fit(bitvec.FromUint(value, 64), alu.OPERAND_WIDTH)
	if overflow {
		err = fmt.Errorf("'%v' does not fit in %d bits", text, alu.OPERAND_WIDTH)
		v = nil
	}
	return
}

// bindingsOf parses "A=1,B=0,C=1" into operand bindings.
func bindingsOf(text string) (bindings map[string]gate.Bit, err error) {
	bindings = map[string]gate.Bit{}
	if text == "" {
		return
	}

	for _, part := range strings.Split(text, ",") {
		name, value, ok := strings.Cut(part, "=")
		name = strings.ToUpper(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if !ok || len(name) != 1 || (value != "0" && value != "1") {
			err = fmt.Errorf("'%v' is not a binding (want X=0 or X=1)", part)
			bindings = nil
			return
		}
		bindings[name] = gate.Bit(value[0] - '0')
	}
	return
}

func main() {
	var opName string
	var aText string
	var bText string
	var exprText string
	var bindText string
	var table bool
	var verbose bool

	flag.StringVar(&opName, "op", "", "ALU operation to run (add, sub, mul, div, cmp, and, or, xor, not, shl, shr, rol, ror)")
	flag.StringVar(&aText, "a", "", "Operand A value")
	flag.StringVar(&bText, "b", "", "Operand B value")
	flag.StringVar(&exprText, "e", "", "Boolean expression to evaluate")
	flag.StringVar(&bindText, "bind", "", "Expression operand bindings, e.g. A=1,B=0")
	flag.BoolVar(&table, "table", false, "Print the expression's truth table")
	flag.BoolVar(&verbose, "v", false, "Print the execution trace")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	switch {
	case opName != "":
		op, err := alu.OpcodeOf(opName)
		if err != nil {
			log.Fatalf("-op %v: %v", opName, err)
		}

		a, err := operandOf(aText)
		if err != nil {
			log.Fatalf("-a: %v", err)
		}

		var b bitvec.Vector
		if bText != "" {
			b, err = operandOf(bText)
			if err != nil {
				log.Fatalf("-b: %v", err)
			}
		} else if !op.Unary() {
			log.Fatalf("%v: operand -b required", op)
		}

		cu := alu.NewControlUnit(alu.OPERAND_WIDTH)
		result, flags, tr, err := cu.DecodeExecute(op, a, b)
		if err != nil {
			log.Fatal(err)
		}

		if verbose {
			render.WriteTrace(os.Stdout, tr)
		}
		fmt.Printf("result: %v (%d, 0x%02x)\n", result, result.Uint(), result.Uint())
		fmt.Printf("flags:  %v\n", flags)

	case exprText != "" && table:
		tbl, err := expr.TruthTable(exprText)
		if err != nil {
			log.Fatal(err)
		}
		render.WriteTable(os.Stdout, tbl)

	case exprText != "":
		bindings, err := bindingsOf(bindText)
		if err != nil {
			log.Fatalf("-bind: %v", err)
		}

		out, tr, err := expr.Evaluate(exprText, bindings)
		if err != nil {
			log.Fatal(err)
		}

		if verbose {
			render.WriteTrace(os.Stdout, tr)
		}
		fmt.Printf("%v = %d\n", exprText, out)

	default:
		flag.Usage()
		os.Exit(2)
	}
}
