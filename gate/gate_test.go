package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateTruthTables(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		fn   func(a, b Bit) (Bit, error)
		out  [4]Bit // outputs for (0,0) (0,1) (1,0) (1,1)
	}){
		{"and", AND, [4]Bit{0, 0, 0, 1}},
		{"or", OR, [4]Bit{0, 1, 1, 1}},
		{"xor", XOR, [4]Bit{0, 1, 1, 0}},
		{"nand", NAND, [4]Bit{1, 1, 1, 0}},
		{"nor", NOR, [4]Bit{1, 0, 0, 0}},
		{"xnor", XNOR, [4]Bit{1, 0, 0, 1}},
	}

	for _, entry := range table {
		for n, want := range entry.out {
			a := Bit(n >> 1)
			b := Bit(n & 1)
			out, err := entry.fn(a, b)
			assert.NoError(err, entry.name)
			assert.Equal(want, out, "%v(%v,%v)", entry.name, a, b)
		}
	}
}

func TestNot(t *testing.T) {
	assert := assert.New(t)

	out, err := NOT(0)
	assert.NoError(err)
	assert.Equal(Bit(1), out)

	out, err = NOT(1)
	assert.NoError(err)
	assert.Equal(Bit(0), out)
}

func TestBitInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := AND(2, 0)
	assert.ErrorIs(err, ErrBitInvalid(2))

	_, err = NOT(7)
	assert.ErrorIs(err, ErrBitInvalid(7))

	_, _, err = HalfAdder(0, 3)
	assert.ErrorIs(err, ErrBitInvalid(3))

	_, _, err = FullAdder(0, 1, 200)
	assert.ErrorIs(err, ErrBitInvalid(200))
}

func TestHalfAdder(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b, sum, carry Bit
	}){
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{1, 0, 1, 0},
		{1, 1, 0, 1},
	}

	for _, entry := range table {
		sum, carry, err := HalfAdder(entry.a, entry.b)
		assert.NoError(err)
		assert.Equal(entry.sum, sum, "sum of %v+%v", entry.a, entry.b)
		assert.Equal(entry.carry, carry, "carry of %v+%v", entry.a, entry.b)
	}
}

func TestFullAdder(t *testing.T) {
	assert := assert.New(t)

	for n := range 8 {
		a := Bit(n >> 2)
		b := Bit((n >> 1) & 1)
		cin := Bit(n & 1)

		sum, carry, err := FullAdder(a, b, cin)
		assert.NoError(err)

		total := uint8(a) + uint8(b) + uint8(cin)
		assert.Equal(Bit(total&1), sum, "sum of %v+%v+%v", a, b, cin)
		assert.Equal(Bit(total>>1), carry, "carry of %v+%v+%v", a, b, cin)
	}
}

func TestMux2(t *testing.T) {
	assert := assert.New(t)

	for n := range 8 {
		a := Bit(n >> 2)
		b := Bit((n >> 1) & 1)
		sel := Bit(n & 1)

		out, err := Mux2(a, b, sel)
		assert.NoError(err)

		want := a
		if sel == 1 {
			want = b
		}
		assert.Equal(want, out, "mux(%v,%v,sel=%v)", a, b, sel)
	}
}

func TestBinaryDispatch(t *testing.T) {
	assert := assert.New(t)

	out, err := Binary[KIND_XOR](1, 0)
	assert.NoError(err)
	assert.Equal(Bit(1), out)

	assert.Equal("xor", KIND_XOR.String())
	assert.Equal("not", KIND_NOT.String())

	_, ok := Binary[KIND_NOT]
	assert.False(ok, "NOT is unary")
}
