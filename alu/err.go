package alu

import (
	"github.com/Somesh067/BinaryLogicSimulator/translate"
)

var f = translate.From

// ErrOpcode reports an opcode outside the instruction set.
type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x", uint8(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrOpcodeName reports an unknown opcode mnemonic.
type ErrOpcodeName string

func (en ErrOpcodeName) Error() string {
	return f("'%v' is not an opcode", string(en))
}
