package alu

import (
	"github.com/Somesh067/BinaryLogicSimulator/bitvec"
	"github.com/Somesh067/BinaryLogicSimulator/gate"
)

// Flags is the status word derived from one ALU operation.
//
//	Zero     every result bit is 0
//	Sign     MSB of the result
//	Carry    raw carry out (ADD), inverted borrow (SUB/CMP), shifted-out
//	         bit (shifts and rotates); 0 for operations with no carry
//	Overflow two's-complement overflow (ADD/SUB/CMP), or a non-zero high
//	         product half (MUL); 0 otherwise
//	Parity   1 when the count of 1-bits in the result is even
type Flags struct {
	Zero     gate.Bit
	Sign     gate.Bit
	Carry    gate.Bit
	Overflow gate.Bit
	Parity   gate.Bit
}

// ComputeFlags derives a fresh flag set from a result vector and the raw
// carry and overflow signals of the producing operation. Prior flag state
// never contributes; every flag is rebuilt through gates.
func ComputeFlags(result bitvec.Vector, carry, overflow gate.Bit) (flags Flags, err error) {
	if err = result.Validate(); err != nil {
		return
	}
	if err = gate.Check(carry, overflow); err != nil {
		return
	}

	// Zero: AND of every inverted result bit.
	zero := gate.Bit(1)
	for _, bit := range result {
		var nb gate.Bit
		nb, err = gate.NOT(bit)
		if err != nil {
			return
		}
		zero, err = gate.AND(zero, nb)
		if err != nil {
			return
		}
	}

	// Parity: XOR chain yields 1 for an odd population count.
	odd := gate.Bit(0)
	for _, bit := range result {
		odd, err = gate.XOR(odd, bit)
		if err != nil {
			return
		}
	}
	even, err := gate.NOT(odd)
	if err != nil {
		return
	}

	flags = Flags{
		Zero:     zero,
		Sign:     result.MSB(),
		Carry:    carry,
		Overflow: overflow,
		Parity:   even,
	}
	return
}

// String renders the flags in register-dump form: "Z=0 S=0 C=1 V=0 P=1".
func (flags Flags) String() string {
	return f("Z=%d S=%d C=%d V=%d P=%d",
		flags.Zero, flags.Sign, flags.Carry, flags.Overflow, flags.Parity)
}

// addOverflow detects two's-complement overflow for addition: the operand
// signs agree and the result sign differs from them.
func addOverflow(signA, signB, signR gate.Bit) (overflow gate.Bit, err error) {
	same, err := gate.XNOR(signA, signB)
	if err != nil {
		return
	}
	flipped, err := gate.XOR(signA, signR)
	if err != nil {
		return
	}
	overflow, err = gate.AND(same, flipped)
	return
}

// subOverflow detects two's-complement overflow for subtraction: the
// operand signs differ and the result sign matches the subtrahend.
func subOverflow(signA, signB, signR gate.Bit) (overflow gate.Bit, err error) {
	differ, err := gate.XOR(signA, signB)
	if err != nil {
		return
	}
	matchesB, err := gate.XNOR(signR, signB)
	if err != nil {
		return
	}
	overflow, err = gate.AND(differ, matchesB)
	return
}
