package gate

// Kind identifies a gate type for table-driven dispatch.
type Kind int

const (
	KIND_AND  = Kind(0) // and
	KIND_OR   = Kind(1) // or
	KIND_XOR  = Kind(2) // xor
	KIND_NAND = Kind(3) // nand
	KIND_NOR  = Kind(4) // nor
	KIND_XNOR = Kind(5) // xnor
	KIND_NOT  = Kind(6) // not
)

var _kind_names = map[Kind]string{
	KIND_AND:  "and",
	KIND_OR:   "or",
	KIND_XOR:  "xor",
	KIND_NAND: "nand",
	KIND_NOR:  "nor",
	KIND_XNOR: "xnor",
	KIND_NOT:  "not",
}

func (k Kind) String() (name string) {
	name, ok := _kind_names[k]
	if !ok {
		name = "kind?"
	}
	return
}

// Binary is the fixed dispatch table from two-input gate kind to its
// implementation. KIND_NOT is the only unary kind and is not listed here.
var Binary = map[Kind]func(a, b Bit) (Bit, error){
	KIND_AND:  AND,
	KIND_OR:   OR,
	KIND_XOR:  XOR,
	KIND_NAND: NAND,
	KIND_NOR:  NOR,
	KIND_XNOR: XNOR,
}
