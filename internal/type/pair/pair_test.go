package pair

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/tl/internal/interface/literal"
	"github.com/michaelmacinnis/tl/internal/type/num"
	"github.com/michaelmacinnis/tl/internal/type/str"
)

func TestLiteral(t *testing.T) {
	assert.Equal(t, "'()", literal.String(Null))

	l := List(num.Int64(1), num.Int64(2), num.Int64(3))
	assert.Equal(t, "'(1 2 3)", literal.String(l))

	nested := List(l, Null, str.New("x"))
	assert.Equal(t, `'((1 2 3) () "x")`, literal.String(nested))
}

func TestEqual(t *testing.T) {
	a := List(num.Int64(1), num.Int64(2))
	b := List(num.Int64(1), num.Int64(2))
	c := List(num.Int64(1))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, c.Equal(a))
	assert.True(t, Null.Equal(Null))
	assert.False(t, Null.Equal(a))
	assert.False(t, a.Equal(num.Int64(1)))
}

func TestSliceAndLength(t *testing.T) {
	l := Cons(num.Int64(1), Cons(num.Int64(2), Null))

	assert.Equal(t, 2, Length(l))
	assert.Len(t, Slice(l), 2)
	assert.Empty(t, Slice(Null))
	assert.True(t, IsNull(Cdr(Cdr(l))))
}
