package bitvec

import (
	"github.com/Somesh067/BinaryLogicSimulator/translate"
)

var f = translate.From

// ErrWidthMismatch reports two operands of unequal width.
type ErrWidthMismatch struct {
	A int
	B int
}

func (ew ErrWidthMismatch) Error() string {
	return f("operand widths %d and %d differ", ew.A, ew.B)
}

func (ew ErrWidthMismatch) Is(err error) (ok bool) {
	_, ok = err.(ErrWidthMismatch)
	return
}
