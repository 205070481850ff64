package expr

// ToPostfix converts an infix token sequence to postfix (reverse Polish)
// order with the shunting-yard algorithm: operands pass straight to the
// output, operators wait on an explicit stack until an operator of lower
// precedence (or a parenthesis boundary) arrives.
func ToPostfix(tokens []Token) (postfix []Token, err error) {
	var stack []Token

	for _, tok := range tokens {
		switch {
		case tok.Kind == TOKEN_IDENT:
			postfix = append(postfix, tok)

		case tok.Kind == TOKEN_LPAREN:
			stack = append(stack, tok)

		case tok.Kind == TOKEN_RPAREN:
			for len(stack) > 0 && stack[len(stack)-1].Kind != TOKEN_LPAREN {
				postfix = append(postfix, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				postfix = nil
				err = ErrParenMismatch
				return
			}
			stack = stack[:len(stack)-1] // Drop the '('.

		case tok.Kind == TOKEN_NOT:
			// Unary NOT is right associative and nothing outranks it, so
			// it never pops the stack.
			stack = append(stack, tok)

		case tok.Operator():
			// Left associativity: pop while the stack top has higher or
			// equal precedence.
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == TOKEN_LPAREN || _precedence[top.Kind] < _precedence[tok.Kind] {
					break
				}
				postfix = append(postfix, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Kind == TOKEN_LPAREN {
			postfix = nil
			err = ErrParenMismatch
			return
		}
		postfix = append(postfix, top)
		stack = stack[:len(stack)-1]
	}

	return
}
