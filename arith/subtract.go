package arith

import (
	"github.com/Somesh067/BinaryLogicSimulator/bitvec"
	"github.com/Somesh067/BinaryLogicSimulator/gate"
	"github.com/Somesh067/BinaryLogicSimulator/trace"
)

// Subtract computes A - B as A + NOT(B) with carry in fixed to 1. The
// carry_in supplies the "+1" of the two's complement, so only the bit
// inversion of B is needed before the single adder pass.
//
// Borrow is NOT(carry out): 1 when A < B unsigned.
func Subtract(a, b bitvec.Vector) (result bitvec.Vector, borrow gate.Bit, tr trace.Trace, err error) {
	if err = checkOperands(a, b); err != nil {
		return
	}

	inverted, err := Invert(b)
	if err != nil {
		return
	}

	tb := &trace.Builder{}
	tb.Add(f("subtraction start (A - B)"),
		trace.F("A", a),
		trace.F("B", b))
	tb.Add(f("invert B, carry in 1 supplies the +1"),
		trace.F("NOT B", inverted))

	result, carryOut, addTr, err := RippleCarryAdder(a, inverted, 1)
	if err != nil {
		result = nil
		return
	}
	tb.Append(addTr)

	borrow, err = gate.NOT(carryOut)
	if err != nil {
		result = nil
		return
	}

	tb.Add(f("subtraction complete"),
		trace.F("result", result),
		trace.F("borrow (A < B)", borrow))

	tr = tb.Trace()
	return
}
