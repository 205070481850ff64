package arith

import (
	"github.com/Somesh067/BinaryLogicSimulator/bitvec"
	"github.com/Somesh067/BinaryLogicSimulator/trace"
)

// Multiply computes the full-width product of two equal-width vectors by
// shift-and-add: for each set bit i of B, the multiplicand shifted left by
// i positions is added into the product with a double-width ripple-carry
// adder. Shifting is bit-position relabeling, never native arithmetic.
//
// The product is twice the operand width.
func Multiply(a, b bitvec.Vector) (product bitvec.Vector, tr trace.Trace, err error) {
	if err = checkOperands(a, b); err != nil {
		return
	}

	width := a.Width()
	product = bitvec.New(2 * width)
	multiplicand, _ := bitvec.Fit(a, 2*width)

	tb := &trace.Builder{}
	tb.Add(f("multiplication start (shift-and-add)"),
		trace.F("A (multiplicand)", a),
		trace.F("B (multiplier)", b))

	for i := range b {
		if b[i] == 1 {
			shifted := multiplicand.ShiftLeft(i)
			// Per-bit adder steps are summarized into this iteration's step.
			product, _, _, err = RippleCarryAdder(product, shifted, 0)
			if err != nil {
				product = nil
				return
			}
			tb.Add(f("multiplier bit %d is 1: add shifted multiplicand", i),
				trace.F("shifted A", shifted),
				trace.F("product", product))
		} else {
			tb.Add(f("multiplier bit %d is 0: no add", i),
				trace.F("product", product))
		}
	}

	tb.Add(f("multiplication complete"), trace.F("product", product))

	tr = tb.Trace()
	return
}
