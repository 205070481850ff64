package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}
	assert.Equal(0, b.Len())

	b.Add("first", F("a", 1), F("b", 0))
	b.Add("second")

	tr := b.Trace()
	assert.Len(tr, 2)
	assert.Equal(0, tr[0].Index)
	assert.Equal("first", tr[0].Description)
	assert.Equal([]Field{{Key: "a", Value: "1"}, {Key: "b", Value: "0"}}, tr[0].Fields)
	assert.Equal(1, tr[1].Index)
	assert.Empty(tr[1].Fields)
}

func TestAppendReindexes(t *testing.T) {
	assert := assert.New(t)

	sub := &Builder{}
	sub.Add("sub a")
	sub.Add("sub b")

	b := &Builder{}
	b.Add("outer")
	b.Append(sub.Trace())

	tr := b.Trace()
	assert.Len(tr, 3)
	assert.Equal(1, tr[1].Index)
	assert.Equal("sub a", tr[1].Description)
	assert.Equal(2, tr[2].Index)
	assert.Equal("sub b", tr[2].Description)
}
