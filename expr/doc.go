// Package expr parses and evaluates Boolean expressions over the gate
// primitives, and generates complete truth tables.
//
// Expressions combine single-letter operands with the operators NOT, AND,
// XOR, and OR (word or symbol form: !, ~, &, ^, |) and parentheses.
// Operator precedence, highest to lowest:
//
//	NOT > AND > XOR > OR
//
// with left-to-right associativity for the binary operators. The same
// table governs both infix parsing and truth-table generation.
//
// Evaluation is a single postfix pass over an explicit bit stack; every
// push and pop is recorded in the execution trace.
package expr
