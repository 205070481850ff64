package expr

import (
	"errors"

	"github.com/Somesh067/BinaryLogicSimulator/translate"
)

var f = translate.From

var (
	// ErrParenMismatch is returned for unbalanced parentheses.
	ErrParenMismatch = errors.New(f("mismatched parentheses"))

	// ErrMalformed is returned when postfix evaluation does not reduce
	// to exactly one value.
	ErrMalformed = errors.New(f("expression does not reduce to a single value"))
)

// ErrSyntax reports an unrecognized token in the expression text.
type ErrSyntax struct {
	Pos  int
	Text string
}

func (es ErrSyntax) Error() string {
	return f("position %d: '%v' is not a valid token", es.Pos, es.Text)
}

func (es ErrSyntax) Is(err error) (ok bool) {
	_, ok = err.(ErrSyntax)
	return
}

// ErrUnbound reports an operand with no bound value.
type ErrUnbound string

func (eu ErrUnbound) Error() string {
	return f("no binding for operand %v", string(eu))
}
