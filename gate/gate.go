package gate

// Bit is a single binary digit. Only the values 0 and 1 are legal.
type Bit uint8

// Check validates that every input is a legal bit value.
func Check(bits ...Bit) (err error) {
	for _, bit := range bits {
		if bit > 1 {
			err = ErrBitInvalid(bit)
			return
		}
	}
	return
}

// AND outputs 1 only if both inputs are 1.
func AND(a, b Bit) (out Bit, err error) {
	if err = Check(a, b); err != nil {
		return
	}
	if a == 1 && b == 1 {
		out = 1
	}
	return
}

// OR outputs 1 if at least one input is 1.
func OR(a, b Bit) (out Bit, err error) {
	if err = Check(a, b); err != nil {
		return
	}
	if a == 1 || b == 1 {
		out = 1
	}
	return
}

// NOT inverts the input.
func NOT(a Bit) (out Bit, err error) {
	if err = Check(a); err != nil {
		return
	}
	out = 1 - a
	return
}

// XOR outputs 1 if the inputs differ.
// Constructed as (A AND NOT B) OR (NOT A AND B).
func XOR(a, b Bit) (out Bit, err error) {
	nb, err := NOT(b)
	if err != nil {
		return
	}
	na, err := NOT(a)
	if err != nil {
		return
	}
	lhs, err := AND(a, nb)
	if err != nil {
		return
	}
	rhs, err := AND(na, b)
	if err != nil {
		return
	}
	out, err = OR(lhs, rhs)
	return
}

// NAND is NOT(AND).
func NAND(a, b Bit) (out Bit, err error) {
	out, err = AND(a, b)
	if err != nil {
		return
	}
	out, err = NOT(out)
	return
}

// NOR is NOT(OR).
func NOR(a, b Bit) (out Bit, err error) {
	out, err = OR(a, b)
	if err != nil {
		return
	}
	out, err = NOT(out)
	return
}

// XNOR is NOT(XOR); outputs 1 if the inputs match.
func XNOR(a, b Bit) (out Bit, err error) {
	out, err = XOR(a, b)
	if err != nil {
		return
	}
	out, err = NOT(out)
	return
}
