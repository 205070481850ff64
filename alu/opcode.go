package alu

import (
	"fmt"
)

// Opcode selects an ALU operation. The enumeration is closed: the control
// unit rejects any value not listed here.
type Opcode uint8

const (
	// Arithmetic operations
	OP_ADD = Opcode(0x01) // add
	OP_SUB = Opcode(0x02) // sub
	OP_MUL = Opcode(0x03) // mul
	OP_DIV = Opcode(0x04) // div
	OP_CMP = Opcode(0x05) // cmp

	// Logical operations
	OP_AND = Opcode(0x10) // and
	OP_OR  = Opcode(0x11) // or
	OP_XOR = Opcode(0x12) // xor
	OP_NOT = Opcode(0x13) // not

	// Shift and rotate operations
	OP_SHL = Opcode(0x20) // shl
	OP_SHR = Opcode(0x21) // shr
	OP_ROL = Opcode(0x22) // rol
	OP_ROR = Opcode(0x23) // ror
)

var _opcode_names = map[Opcode]string{
	OP_ADD: "add",
	OP_SUB: "sub",
	OP_MUL: "mul",
	OP_DIV: "div",
	OP_CMP: "cmp",
	OP_AND: "and",
	OP_OR:  "or",
	OP_XOR: "xor",
	OP_NOT: "not",
	OP_SHL: "shl",
	OP_SHR: "shr",
	OP_ROL: "rol",
	OP_ROR: "ror",
}

var _opcode_values = func() (values map[string]Opcode) {
	values = make(map[string]Opcode, len(_opcode_names))
	for op, name := range _opcode_names {
		values[name] = op
	}
	return
}()

// Valid returns true if the opcode is a member of the instruction set.
func (op Opcode) Valid() (ok bool) {
	_, ok = _opcode_names[op]
	return
}

// Unary returns true for operations that take a single operand.
func (op Opcode) Unary() bool {
	switch op {
	case OP_NOT, OP_SHL, OP_SHR, OP_ROL, OP_ROR:
		return true
	}
	return false
}

// String returns the opcode mnemonic.
func (op Opcode) String() (name string) {
	name, ok := _opcode_names[op]
	if !ok {
		name = fmt.Sprintf("op(0x%02x)", uint8(op))
	}
	return
}

// OpcodeOf looks up an opcode by mnemonic.
func OpcodeOf(name string) (op Opcode, err error) {
	op, ok := _opcode_values[name]
	if !ok {
		err = ErrOpcodeName(name)
	}
	return
}
