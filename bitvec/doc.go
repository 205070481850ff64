// Package bitvec provides the fixed-width bit vector used by all simulator
// operations, plus the decimal/binary conversion and formatting helpers used
// at the presentation boundary.
//
// A Vector stores its bits least-significant first: index 0 is the LSB. The
// width is fixed at construction; all gate-level operations on two vectors
// require equal widths.
//
// The conversion helpers (FromUint, Uint) use native arithmetic. They exist
// only to move values across the engine boundary; the engine itself never
// computes with them.
package bitvec
