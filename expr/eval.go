package expr

import (
	"strings"

	"github.com/Somesh067/BinaryLogicSimulator/gate"
	"github.com/Somesh067/BinaryLogicSimulator/trace"
)

// stackString renders the evaluation stack bottom-first for the trace.
func stackString(stack []gate.Bit) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, bit := range stack {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('0' + byte(bit&1))
	}
	sb.WriteByte(']')
	return sb.String()
}

// EvaluatePostfix runs a postfix token sequence against operand bindings
// in a single pass over an explicit bit stack. Operands push their bound
// value; NOT pops one bit; the binary operators pop two (topmost is the
// right operand). Each push and pop records a trace step with the stack
// contents.
func EvaluatePostfix(postfix []Token, bindings map[string]gate.Bit) (out gate.Bit, tr trace.Trace, err error) {
	tb := &trace.Builder{}
	var stack []gate.Bit

	for _, tok := range postfix {
		switch {
		case tok.Kind == TOKEN_IDENT:
			value, ok := bindings[tok.Text]
			if !ok {
				err = ErrUnbound(tok.Text)
				return
			}
			if err = gate.Check(value); err != nil {
				return
			}
			stack = append(stack, value)
			tb.Add(f("load operand %v", tok.Text),
				trace.F("value", value),
				trace.F("stack", stackString(stack)))

		case tok.Kind == TOKEN_NOT:
			if len(stack) < 1 {
				err = ErrMalformed
				return
			}
			operand := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			var value gate.Bit
			value, err = gate.NOT(operand)
			if err != nil {
				return
			}
			stack = append(stack, value)
			tb.Add(f("apply not"),
				trace.F("operand", operand),
				trace.F("result", value),
				trace.F("stack", stackString(stack)))

		case tok.Operator():
			if len(stack) < 2 {
				err = ErrMalformed
				return
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			kind := _token_gates[tok.Kind]
			var value gate.Bit
			value, err = gate.Binary[kind](left, right)
			if err != nil {
				return
			}
			stack = append(stack, value)
			tb.Add(f("apply %v", kind),
				trace.F("left", left),
				trace.F("right", right),
				trace.F("result", value),
				trace.F("stack", stackString(stack)))

		default:
			// Parentheses never survive ToPostfix.
			err = ErrSyntax{Pos: tok.Pos, Text: tok.Text}
			return
		}
	}

	if len(stack) != 1 {
		err = ErrMalformed
		return
	}

	out = stack[0]
	tb.Add(f("expression output"), trace.F("output", out))
	tr = tb.Trace()
	return
}

// Evaluate tokenizes, converts, and evaluates expression text in one
// call.
func Evaluate(text string, bindings map[string]gate.Bit) (out gate.Bit, tr trace.Trace, err error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return
	}
	out, tr, err = EvaluatePostfix(postfix, bindings)
	return
}
