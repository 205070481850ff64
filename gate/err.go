package gate

import (
	"github.com/Somesh067/BinaryLogicSimulator/translate"
)

var f = translate.From

// ErrBitInvalid reports a bit value outside {0,1}.
type ErrBitInvalid uint8

func (eb ErrBitInvalid) Error() string {
	return f("bit value %d outside {0,1}", uint8(eb))
}

func (eb ErrBitInvalid) Is(err error) (ok bool) {
	_, ok = err.(ErrBitInvalid)
	return
}
