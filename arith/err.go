package arith

import (
	"errors"

	"github.com/Somesh067/BinaryLogicSimulator/translate"
)

var f = translate.From

var (
	// ErrDivisionByZero is returned when the divisor is all-zero.
	ErrDivisionByZero = errors.New(f("division by zero"))
)
