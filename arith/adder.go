// Copyright 2026, Somesh

package arith

import (
	"github.com/Somesh067/BinaryLogicSimulator/bitvec"
	"github.com/Somesh067/BinaryLogicSimulator/gate"
	"github.com/Somesh067/BinaryLogicSimulator/trace"
)

// checkOperands validates widths and bit values of a two-operand call.
func checkOperands(a, b bitvec.Vector) (err error) {
	if err = bitvec.SameWidth(a, b); err != nil {
		return
	}
	if err = a.Validate(); err != nil {
		return
	}
	err = b.Validate()
	return
}

// RippleCarryAdder adds two equal-width vectors by chaining one full adder
// per bit position, feeding each position's carry out into the next
// position's carry in. One trace step is recorded per bit.
func RippleCarryAdder(a, b bitvec.Vector, carryIn gate.Bit) (sum bitvec.Vector, carryOut gate.Bit, tr trace.Trace, err error) {
	if err = checkOperands(a, b); err != nil {
		return
	}
	if err = gate.Check(carryIn); err != nil {
		return
	}

	tb := &trace.Builder{}
	tb.Add(f("ripple carry adder start"),
		trace.F("A", a),
		trace.F("B", b),
		trace.F("carry in", carryIn))

	sum = bitvec.New(a.Width())
	carry := carryIn
	for i := range a {
		var s, c gate.Bit
		s, c, err = gate.FullAdder(a[i], b[i], carry)
		if err != nil {
			sum = nil
			return
		}
		sum[i] = s

		tb.Add(f("bit %d full adder", i),
			trace.F("a", a[i]),
			trace.F("b", b[i]),
			trace.F("carry in", carry),
			trace.F("sum", s),
			trace.F("carry out", c))

		carry = c
	}
	carryOut = carry

	tb.Add(f("addition complete"),
		trace.F("sum", sum),
		trace.F("carry out", carryOut))

	tr = tb.Trace()
	return
}

// Invert applies a NOT gate to every bit position (ones' complement).
func Invert(v bitvec.Vector) (out bitvec.Vector, err error) {
	if err = v.Validate(); err != nil {
		return
	}

	out = bitvec.New(v.Width())
	for i := range v {
		out[i], err = gate.NOT(v[i])
		if err != nil {
			out = nil
			return
		}
	}
	return
}

// TwosComplement negates a vector: invert every bit, then add one. The add
// is performed by the ripple-carry adder with carry in fixed to 1 against
// an all-zero second operand. The trace concatenates the inversion step
// and the adder's per-bit steps.
func TwosComplement(v bitvec.Vector) (out bitvec.Vector, tr trace.Trace, err error) {
	inverted, err := Invert(v)
	if err != nil {
		return
	}

	tb := &trace.Builder{}
	tb.Add(f("two's complement start"), trace.F("input", v))
	tb.Add(f("invert all bits (ones' complement)"), trace.F("inverted", inverted))

	out, _, addTr, err := RippleCarryAdder(bitvec.New(v.Width()), inverted, 1)
	if err != nil {
		out = nil
		return
	}
	tb.Append(addTr)
	tb.Add(f("two's complement complete"), trace.F("result", out))

	tr = tb.Trace()
	return
}
