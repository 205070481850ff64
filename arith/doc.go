// Package arith implements multi-bit binary arithmetic built exclusively
// from the gate package: ripple-carry addition, two's-complement negation,
// subtraction, shift-and-add multiplication, and restoring division.
//
// Every operation validates its operands first, then runs to completion
// and returns its result together with a step-by-step execution trace.
// Operations are pure: no state survives between calls, and a failed call
// returns no partial trace.
package arith
