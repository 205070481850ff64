package arith

import (
	"github.com/Somesh067/BinaryLogicSimulator/bitvec"
	"github.com/Somesh067/BinaryLogicSimulator/gate"
	"github.com/Somesh067/BinaryLogicSimulator/trace"
)

// Divide computes quotient and remainder by restoring division.
//
// A combined register pair is maintained: A is the remainder accumulator
// (initially zero) and Q the quotient register (initially the dividend).
// Each of the width iterations shifts (A,Q) left one position with Q's
// outgoing MSB entering A's LSB, trial-subtracts the divisor from A, then
// commits the subtraction and sets the quotient bit when no borrow was
// needed (A >= M), or restores A and clears the quotient bit when the
// trial borrowed (A < M). The borrow is the unsigned comparison; the
// trial difference wraps modulo 2^width, so its MSB is not a usable
// sign.
//
// A divisor of all zeroes fails with ErrDivisionByZero before any trace
// step is produced.
func Divide(dividend, divisor bitvec.Vector) (quotient, remainder bitvec.Vector, tr trace.Trace, err error) {
	if err = checkOperands(dividend, divisor); err != nil {
		return
	}

	// Zero check through gates: all bits inverted and ANDed together.
	isZero := gate.Bit(1)
	for _, bit := range divisor {
		var nb gate.Bit
		nb, err = gate.NOT(bit)
		if err != nil {
			return
		}
		isZero, err = gate.AND(isZero, nb)
		if err != nil {
			return
		}
	}
	if isZero == 1 {
		err = ErrDivisionByZero
		return
	}

	tb := &trace.Builder{}
	tb.Add(f("division start (restoring)"),
		trace.F("dividend", dividend),
		trace.F("divisor", divisor))

	width := dividend.Width()
	acc := bitvec.New(width)
	quo := dividend.Clone()

	for i := range width {
		qMSB := quo.MSB()
		acc = acc.ShiftLeft(1)
		acc[0] = qMSB
		quo = quo.ShiftLeft(1)

		var trial bitvec.Vector
		var borrow, restored gate.Bit
		// Trial per-bit steps fold into this iteration's single step.
		trial, borrow, _, err = Subtract(acc, divisor)
		if err != nil {
			return
		}

		if borrow == 1 {
			// A < M: subtraction unsuccessful. Keep A, quotient bit 0.
			quo[0] = 0
			restored = 1
		} else {
			quo[0] = 1
			acc = trial
		}

		tb.Add(f("iteration %d: shift (A,Q), trial A - M, borrow check", i+1),
			trace.F("A", acc),
			trace.F("Q", quo),
			trace.F("A - M", trial),
			trace.F("borrow", borrow),
			trace.F("restored", restored))
	}

	quotient = quo
	remainder = acc

	tb.Add(f("division complete"),
		trace.F("quotient", quotient),
		trace.F("remainder", remainder))

	tr = tb.Trace()
	return
}
