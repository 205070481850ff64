package arith

import (
	"testing"

	"github.com/Somesh067/BinaryLogicSimulator/bitvec"
	"github.com/Somesh067/BinaryLogicSimulator/gate"
	"github.com/stretchr/testify/assert"
)

func TestRippleCarryAdderExhaustive(t *testing.T) {
	assert := assert.New(t)

	for a := range uint64(256) {
		for b := range uint64(256) {
			sum, carryOut, _, err := RippleCarryAdder(
				bitvec.FromUint(a, 8), bitvec.FromUint(b, 8), 0)
			if !assert.NoError(err) {
				t.FailNow()
			}

			total := a + b
			assert.Equal(total&0xff, sum.Uint(), "%d + %d", a, b)
			assert.Equal(gate.Bit(total>>8), carryOut, "%d + %d carry", a, b)
		}
	}
}

func TestRippleCarryAdderCarryIn(t *testing.T) {
	assert := assert.New(t)

	sum, carryOut, tr, err := RippleCarryAdder(
		bitvec.FromUint(0xff, 8), bitvec.FromUint(0x00, 8), 1)
	assert.NoError(err)
	assert.Equal(uint64(0), sum.Uint())
	assert.Equal(gate.Bit(1), carryOut)

	// One step per bit plus the start and completion records.
	assert.Len(tr, 10)
	for i, step := range tr {
		assert.Equal(i, step.Index)
	}
}

func TestRippleCarryAdderWidthMismatch(t *testing.T) {
	assert := assert.New(t)

	_, _, tr, err := RippleCarryAdder(bitvec.New(8), bitvec.New(16), 0)
	assert.ErrorIs(err, bitvec.ErrWidthMismatch{A: 8, B: 16})
	assert.Nil(tr)
}

func TestTwosComplement(t *testing.T) {
	assert := assert.New(t)

	for v := range uint64(256) {
		out, tr, err := TwosComplement(bitvec.FromUint(v, 8))
		assert.NoError(err)
		assert.Equal((256-v)&0xff, out.Uint(), "complement of %d", v)
		assert.NotEmpty(tr)
	}
}

func TestSubtractExhaustive(t *testing.T) {
	assert := assert.New(t)

	for a := range uint64(256) {
		for b := range uint64(256) {
			result, borrow, _, err := Subtract(
				bitvec.FromUint(a, 8), bitvec.FromUint(b, 8))
			if !assert.NoError(err) {
				t.FailNow()
			}

			assert.Equal((a-b)&0xff, result.Uint(), "%d - %d", a, b)

			want := gate.Bit(0)
			if a < b {
				want = 1
			}
			assert.Equal(want, borrow, "%d - %d borrow", a, b)
		}
	}
}

func TestSubtractTrace(t *testing.T) {
	assert := assert.New(t)

	_, _, tr, err := Subtract(bitvec.FromUint(5, 8), bitvec.FromUint(3, 8))
	assert.NoError(err)

	// Start, inversion, 8 adder bits plus its start/complete, completion.
	assert.Len(tr, 13)
	assert.Equal("subtraction start (A - B)", tr[0].Description)
}

func TestMultiplyExhaustive(t *testing.T) {
	assert := assert.New(t)

	for a := range uint64(256) {
		for b := range uint64(256) {
			product, _, err := Multiply(
				bitvec.FromUint(a, 8), bitvec.FromUint(b, 8))
			if !assert.NoError(err) {
				t.FailNow()
			}

			assert.Equal(16, product.Width())
			assert.Equal(a*b, product.Uint(), "%d * %d", a, b)
		}
	}
}

func TestMultiplyTrace(t *testing.T) {
	assert := assert.New(t)

	// 5 * 3: multiplier bits 0 and 1 set, six clear.
	_, tr, err := Multiply(bitvec.FromUint(5, 8), bitvec.FromUint(3, 8))
	assert.NoError(err)
	assert.Len(tr, 10)
	assert.Equal("multiplier bit 0 is 1: add shifted multiplicand", tr[1].Description)
	assert.Equal("multiplier bit 2 is 0: no add", tr[3].Description)
}

func TestDivideExhaustive(t *testing.T) {
	assert := assert.New(t)

	for dividend := range uint64(256) {
		for divisor := uint64(1); divisor < 256; divisor++ {
			quotient, remainder, _, err := Divide(
				bitvec.FromUint(dividend, 8), bitvec.FromUint(divisor, 8))
			if !assert.NoError(err) {
				t.FailNow()
			}

			q := quotient.Uint()
			r := remainder.Uint()
			assert.Equal(dividend, q*divisor+r, "%d / %d", dividend, divisor)
			assert.Less(r, divisor, "%d / %d remainder", dividend, divisor)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	assert := assert.New(t)

	quotient, remainder, tr, err := Divide(
		bitvec.FromUint(5, 8), bitvec.FromUint(0, 8))
	assert.ErrorIs(err, ErrDivisionByZero)
	assert.Nil(quotient)
	assert.Nil(remainder)
	assert.Nil(tr)
}

func TestDivideTrace(t *testing.T) {
	assert := assert.New(t)

	// 5 / 3 = 1 remainder 2.
	quotient, remainder, tr, err := Divide(
		bitvec.FromUint(5, 8), bitvec.FromUint(3, 8))
	assert.NoError(err)
	assert.Equal(uint64(1), quotient.Uint())
	assert.Equal(uint64(2), remainder.Uint())

	// Start, one step per iteration, completion.
	assert.Len(tr, 10)
	assert.Equal("iteration 1: shift (A,Q), trial A - M, borrow check", tr[1].Description)
}

func TestDivideLargeDivisor(t *testing.T) {
	assert := assert.New(t)

	// Divisors above 128 make the trial difference wrap past the MSB, so
	// restoration must follow the borrow, not the difference sign.
	for _, test := range []struct {
		dividend  uint64
		divisor   uint64
		quotient  uint64
		remainder uint64
	}{
		{dividend: 0, divisor: 129, quotient: 0, remainder: 0},
		{dividend: 10, divisor: 200, quotient: 0, remainder: 10},
		{dividend: 200, divisor: 129, quotient: 1, remainder: 71},
		{dividend: 255, divisor: 255, quotient: 1, remainder: 0},
	} {
		quotient, remainder, _, err := Divide(
			bitvec.FromUint(test.dividend, 8), bitvec.FromUint(test.divisor, 8))
		assert.NoError(err, "%d / %d", test.dividend, test.divisor)
		assert.Equal(test.quotient, quotient.Uint(), "%d / %d", test.dividend, test.divisor)
		assert.Equal(test.remainder, remainder.Uint(), "%d / %d remainder", test.dividend, test.divisor)
	}
}

func TestInvalidBitRejected(t *testing.T) {
	assert := assert.New(t)

	bad := bitvec.New(8)
	bad[2] = 2

	_, _, _, err := RippleCarryAdder(bad, bitvec.New(8), 0)
	assert.ErrorIs(err, gate.ErrBitInvalid(2))

	_, _, _, err = Subtract(bitvec.New(8), bad)
	assert.ErrorIs(err, gate.ErrBitInvalid(2))

	_, _, err = Multiply(bad, bitvec.New(8))
	assert.ErrorIs(err, gate.ErrBitInvalid(2))

	_, _, _, err = Divide(bad, bitvec.FromUint(1, 8))
	assert.ErrorIs(err, gate.ErrBitInvalid(2))
}
