package gate

// HalfAdder adds two single bits.
//
//	Sum   = A XOR B
//	Carry = A AND B
func HalfAdder(a, b Bit) (sum, carry Bit, err error) {
	sum, err = XOR(a, b)
	if err != nil {
		return
	}
	carry, err = AND(a, b)
	return
}

// FullAdder adds three single bits using two half adders and an OR gate
// combining the two intermediate carries.
func FullAdder(a, b, carryIn Bit) (sum, carryOut Bit, err error) {
	sum1, carry1, err := HalfAdder(a, b)
	if err != nil {
		return
	}
	sum, carry2, err := HalfAdder(sum1, carryIn)
	if err != nil {
		return
	}
	carryOut, err = OR(carry1, carry2)
	return
}

// Mux2 selects between two inputs: OUT = (A AND NOT SEL) OR (B AND SEL).
func Mux2(a, b, sel Bit) (out Bit, err error) {
	nsel, err := NOT(sel)
	if err != nil {
		return
	}
	lhs, err := AND(a, nsel)
	if err != nil {
		return
	}
	rhs, err := AND(b, sel)
	if err != nil {
		return
	}
	out, err = OR(lhs, rhs)
	return
}
