// Copyright 2026, Somesh

package expr

import (
	"slices"
	"strings"
	"unicode"

	"github.com/Somesh067/BinaryLogicSimulator/gate"
)

// TokenKind tags a lexed token.
type TokenKind int

const (
	TOKEN_IDENT  = TokenKind(0) // ident
	TOKEN_NOT    = TokenKind(1) // not
	TOKEN_AND    = TokenKind(2) // and
	TOKEN_XOR    = TokenKind(3) // xor
	TOKEN_OR     = TokenKind(4) // or
	TOKEN_LPAREN = TokenKind(5) // (
	TOKEN_RPAREN = TokenKind(6) // )
)

var _token_names = map[TokenKind]string{
	TOKEN_IDENT:  "ident",
	TOKEN_NOT:    "not",
	TOKEN_AND:    "and",
	TOKEN_XOR:    "xor",
	TOKEN_OR:     "or",
	TOKEN_LPAREN: "(",
	TOKEN_RPAREN: ")",
}

func (tk TokenKind) String() (name string) {
	name, ok := _token_names[tk]
	if !ok {
		name = "token?"
	}
	return
}

// The single fixed precedence table: NOT > AND > XOR > OR. Binary
// operators associate left to right.
var _precedence = map[TokenKind]int{
	TOKEN_NOT: 4,
	TOKEN_AND: 3,
	TOKEN_XOR: 2,
	TOKEN_OR:  1,
}

// Binary operator token to gate dispatch.
var _token_gates = map[TokenKind]gate.Kind{
	TOKEN_AND: gate.KIND_AND,
	TOKEN_XOR: gate.KIND_XOR,
	TOKEN_OR:  gate.KIND_OR,
}

// Word and symbol spellings of the operators.
var _operator_words = map[string]TokenKind{
	"NOT": TOKEN_NOT,
	"AND": TOKEN_AND,
	"XOR": TOKEN_XOR,
	"OR":  TOKEN_OR,
}

var _operator_symbols = map[rune]TokenKind{
	'!': TOKEN_NOT,
	'~': TOKEN_NOT,
	'&': TOKEN_AND,
	'^': TOKEN_XOR,
	'|': TOKEN_OR,
}

// Token is one lexed element of an expression.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// Operator returns true for the four operator kinds.
func (tok Token) Operator() (ok bool) {
	_, ok = _precedence[tok.Kind]
	return
}

// Tokenize splits expression text into tokens. Operands are single
// letters; operators may be spelled as words or symbols; parentheses
// group. Anything else fails with ErrSyntax.
func Tokenize(text string) (tokens []Token, err error) {
	runes := []rune(text)

	for pos := 0; pos < len(runes); {
		r := runes[pos]
		symbol, isSymbol := _operator_symbols[r]

		switch {
		case unicode.IsSpace(r):
			pos++

		case r == '(':
			tokens = append(tokens, Token{Kind: TOKEN_LPAREN, Text: "(", Pos: pos})
			pos++

		case r == ')':
			tokens = append(tokens, Token{Kind: TOKEN_RPAREN, Text: ")", Pos: pos})
			pos++

		case isSymbol:
			tokens = append(tokens, Token{Kind: symbol, Text: string(r), Pos: pos})
			pos++

		case unicode.IsLetter(r):
			start := pos
			for pos < len(runes) && unicode.IsLetter(runes[pos]) {
				pos++
			}
			word := strings.ToUpper(string(runes[start:pos]))

			if kind, ok := _operator_words[word]; ok {
				tokens = append(tokens, Token{Kind: kind, Text: word, Pos: start})
			} else if len(word) == 1 {
				tokens = append(tokens, Token{Kind: TOKEN_IDENT, Text: word, Pos: start})
			} else {
				err = ErrSyntax{Pos: start, Text: word}
				tokens = nil
				return
			}

		default:
			err = ErrSyntax{Pos: pos, Text: string(r)}
			tokens = nil
			return
		}
	}

	return
}

// Variables returns the distinct operand identifiers of a token sequence
// in canonical (sorted) order.
func Variables(tokens []Token) (names []string) {
	seen := map[string]bool{}
	for _, tok := range tokens {
		if tok.Kind == TOKEN_IDENT && !seen[tok.Text] {
			seen[tok.Text] = true
			names = append(names, tok.Text)
		}
	}

	// Canonical order is alphabetical, first operand most significant.
	slices.Sort(names)
	return
}
