// Package gate implements the primitive one- and two-input Boolean gates
// and the combinational circuits assembled from them.
//
// Every higher layer of the simulator (arithmetic, ALU, expression
// evaluation) is built exclusively from these gates. No native integer
// arithmetic is used anywhere above this package except for bit-position
// bookkeeping; the gates themselves are the only source of computed values.
//
// Gates operate on the Bit type, whose only legal values are 0 and 1. Any
// other value is rejected with ErrBitInvalid.
package gate
