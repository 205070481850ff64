// Package alu implements the arithmetic logic unit of the simulator: an
// opcode-indexed dispatcher over the gate-level arithmetic routines and
// per-bit logic, a flag computer deriving the Zero/Sign/Carry/Overflow/
// Parity status bits from each result, and the control unit that validates
// and decodes incoming requests.
//
// The ALU holds no state between calls; flags are recomputed wholesale
// from each operation's result and raw carry signal.
package alu
