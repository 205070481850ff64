package alu

import (
	"github.com/Somesh067/BinaryLogicSimulator/bitvec"
	"github.com/Somesh067/BinaryLogicSimulator/trace"
)

// ControlUnit is the engine's sole entry point for arithmetic and logic
// requests. It validates the opcode and operand widths, then directs the
// ALU. No state is retained between calls.
type ControlUnit struct {
	Alu *ALU
}

// NewControlUnit creates a control unit driving an ALU of the given
// operand width.
func NewControlUnit(width int) (cu *ControlUnit) {
	cu = &ControlUnit{
		Alu: NewALU(width),
	}
	return
}

// DecodeExecute validates an instruction and commands the ALU.
func (cu *ControlUnit) DecodeExecute(op Opcode, a, b bitvec.Vector) (result bitvec.Vector, flags Flags, tr trace.Trace, err error) {
	if !op.Valid() {
		err = ErrOpcode(op)
		return
	}
	if len(a) != cu.Alu.Width {
		err = bitvec.ErrWidthMismatch{A: len(a), B: cu.Alu.Width}
		return
	}
	// Only unary operations may omit B.
	if b == nil && !op.Unary() {
		err = bitvec.ErrWidthMismatch{A: cu.Alu.Width, B: 0}
		return
	}
	if b != nil && len(b) != cu.Alu.Width {
		err = bitvec.ErrWidthMismatch{A: len(b), B: cu.Alu.Width}
		return
	}

	result, flags, tr, err = cu.Alu.Execute(op, a, b)
	return
}
