package bitvec

import (
	"strings"

	"github.com/Somesh067/BinaryLogicSimulator/gate"
)

// Vector is an ordered, fixed-length sequence of bits, LSB first.
type Vector []gate.Bit

// New creates an all-zero vector of the given width.
func New(width int) Vector {
	return make(Vector, width)
}

// FromUint converts a native unsigned value to a vector of the given width.
// Bits above the width are truncated.
func FromUint(value uint64, width int) (v Vector) {
	v = New(width)
	for i := range v {
		v[i] = gate.Bit((value >> i) & 1)
	}
	return
}

// Uint converts the vector back to a native unsigned value.
func (v Vector) Uint() (value uint64) {
	for i, bit := range v {
		if bit == 1 {
			value |= 1 << i
		}
	}
	return
}

// Width returns the number of bits in the vector.
func (v Vector) Width() int {
	return len(v)
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() (out Vector) {
	out = New(len(v))
	copy(out, v)
	return
}

// LSB returns the least-significant bit.
func (v Vector) LSB() gate.Bit {
	return v[0]
}

// MSB returns the most-significant bit.
func (v Vector) MSB() gate.Bit {
	return v[len(v)-1]
}

// ShiftLeft returns the vector logically shifted toward the MSB by amount
// positions: zeroes enter at the LSB end, outgoing high bits are discarded.
// The width is unchanged. Pure bit-position relabeling.
func (v Vector) ShiftLeft(amount int) (out Vector) {
	out = New(len(v))
	if amount < 0 {
		amount = 0
	}
	for i := amount; i < len(v); i++ {
		out[i] = v[i-amount]
	}
	return
}

// ShiftRight returns the vector logically shifted toward the LSB by amount
// positions: zeroes enter at the MSB end, outgoing low bits are discarded.
func (v Vector) ShiftRight(amount int) (out Vector) {
	out = New(len(v))
	if amount < 0 {
		amount = 0
	}
	for i := amount; i < len(v); i++ {
		out[i-amount] = v[i]
	}
	return
}

// Validate checks that every element is a legal bit value.
func (v Vector) Validate() (err error) {
	return gate.Check(v...)
}

// SameWidth validates that two operands have equal width.
func SameWidth(a, b Vector) (err error) {
	if len(a) != len(b) {
		err = ErrWidthMismatch{A: len(a), B: len(b)}
	}
	return
}

// Fit pads or truncates a vector to the given width. The overflow result is
// true when non-zero high bits were discarded.
func Fit(v Vector, width int) (out Vector, overflow bool) {
	out = New(width)
	copy(out, v)
	for _, bit := range v[min(len(v), width):] {
		if bit == 1 {
			overflow = true
		}
	}
	return
}

// String formats the vector MSB first, grouped in nibbles: "0001 0110".
func (v Vector) String() string {
	var sb strings.Builder
	for i := len(v) - 1; i >= 0; i-- {
		sb.WriteByte('0' + byte(v[i]&1))
		if i > 0 && i%4 == 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
