// Copyright 2026, Somesh

package alu

import (
	"github.com/Somesh067/BinaryLogicSimulator/arith"
	"github.com/Somesh067/BinaryLogicSimulator/bitvec"
	"github.com/Somesh067/BinaryLogicSimulator/gate"
	"github.com/Somesh067/BinaryLogicSimulator/trace"
)

const (
	OPERAND_WIDTH = 8  // Width of ALU operands and results.
	PRODUCT_WIDTH = 16 // Width of the full multiplication product.
)

// ALU executes opcodes against fixed-width operands. It carries no state
// between calls; Width only fixes the operand size.
type ALU struct {
	Width int
}

// NewALU creates an ALU for the given operand width.
func NewALU(width int) (alu *ALU) {
	alu = &ALU{
		Width: width,
	}
	return
}

// Execute runs a single operation and returns the result vector, a fresh
// flag derivation, and the execution trace. Unary operations ignore b and
// accept nil; binary operations require both operands.
func (alu *ALU) Execute(op Opcode, a, b bitvec.Vector) (result bitvec.Vector, flags Flags, tr trace.Trace, err error) {
	if err = a.Validate(); err != nil {
		return
	}
	if b == nil {
		if !op.Unary() {
			err = bitvec.ErrWidthMismatch{A: len(a), B: 0}
			return
		}
		b = bitvec.New(len(a))
	}
	if err = b.Validate(); err != nil {
		return
	}
	if err = bitvec.SameWidth(a, b); err != nil {
		return
	}

	tb := &trace.Builder{}
	tb.Add(f("alu execute %v", op),
		trace.F("opcode", op),
		trace.F("A", a),
		trace.F("B", b))

	var carry, overflow gate.Bit

	// Flags derive from the returned result, except for CMP which flags
	// the discarded difference.
	var flagSource bitvec.Vector

	switch op {
	case OP_ADD:
		var subTr trace.Trace
		result, carry, subTr, err = arith.RippleCarryAdder(a, b, 0)
		if err != nil {
			return
		}
		tb.Append(subTr)
		overflow, err = addOverflow(a.MSB(), b.MSB(), result.MSB())
		if err != nil {
			return
		}

	case OP_SUB:
		var borrow gate.Bit
		var subTr trace.Trace
		result, borrow, subTr, err = arith.Subtract(a, b)
		if err != nil {
			return
		}
		tb.Append(subTr)
		carry, err = gate.NOT(borrow)
		if err != nil {
			return
		}
		overflow, err = subOverflow(a.MSB(), b.MSB(), result.MSB())
		if err != nil {
			return
		}

	case OP_CMP:
		var borrow gate.Bit
		var subTr trace.Trace
		var diff bitvec.Vector
		diff, borrow, subTr, err = arith.Subtract(a, b)
		if err != nil {
			return
		}
		tb.Append(subTr)
		carry, err = gate.NOT(borrow)
		if err != nil {
			return
		}
		overflow, err = subOverflow(a.MSB(), b.MSB(), diff.MSB())
		if err != nil {
			return
		}
		// Compare discards the difference; A passes through unchanged.
		result = a.Clone()
		flagSource = diff
		tb.Add(f("compare discards difference"),
			trace.F("A - B", diff))

	case OP_MUL:
		var product bitvec.Vector
		var subTr trace.Trace
		product, subTr, err = arith.Multiply(a, b)
		if err != nil {
			return
		}
		tb.Append(subTr)
		// Low half is the result; any set high bit is overflow.
		result = product[:len(a)].Clone()
		for _, bit := range product[len(a):] {
			overflow, err = gate.OR(overflow, bit)
			if err != nil {
				return
			}
		}
		tb.Add(f("product truncated to result width"),
			trace.F("product", product),
			trace.F("result", result),
			trace.F("overflow", overflow))

	case OP_DIV:
		var quotient, remainder bitvec.Vector
		var subTr trace.Trace
		quotient, remainder, subTr, err = arith.Divide(a, b)
		if err != nil {
			return
		}
		tb.Append(subTr)
		result = quotient
		tb.Add(f("quotient is the result"),
			trace.F("quotient", quotient),
			trace.F("remainder", remainder))

	case OP_AND, OP_OR, OP_XOR:
		kinds := map[Opcode]gate.Kind{
			OP_AND: gate.KIND_AND,
			OP_OR:  gate.KIND_OR,
			OP_XOR: gate.KIND_XOR,
		}
		fn := gate.Binary[kinds[op]]
		result = bitvec.New(len(a))
		for i := range a {
			result[i], err = fn(a[i], b[i])
			if err != nil {
				return
			}
		}
		tb.Add(f("bitwise %v", op), trace.F("result", result))

	case OP_NOT:
		result, err = arith.Invert(a)
		if err != nil {
			return
		}
		tb.Add(f("bitwise not"), trace.F("result", result))

	case OP_SHL:
		carry = a.MSB()
		result = a.ShiftLeft(1)
		tb.Add(f("shift left one position"),
			trace.F("result", result),
			trace.F("carry (outgoing msb)", carry))

	case OP_SHR:
		carry = a.LSB()
		result = a.ShiftRight(1)
		tb.Add(f("shift right one position"),
			trace.F("result", result),
			trace.F("carry (outgoing lsb)", carry))

	case OP_ROL:
		carry = a.MSB()
		result = a.ShiftLeft(1)
		result[0] = carry
		tb.Add(f("rotate left one position"),
			trace.F("result", result),
			trace.F("carry (wrapped msb)", carry))

	case OP_ROR:
		carry = a.LSB()
		result = a.ShiftRight(1)
		result[len(result)-1] = carry
		tb.Add(f("rotate right one position"),
			trace.F("result", result),
			trace.F("carry (wrapped lsb)", carry))

	default:
		err = ErrOpcode(op)
		return
	}

	if flagSource == nil {
		flagSource = result
	}
	flags, err = ComputeFlags(flagSource, carry, overflow)
	if err != nil {
		result = nil
		return
	}

	tb.Add(f("alu execute complete"),
		trace.F("result", result),
		trace.F("flags", flags))

	tr = tb.Trace()
	return
}
