package option

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/tl/internal/type/num"
	"github.com/michaelmacinnis/tl/internal/type/pair"
)

func TestLiteral(t *testing.T) {
	assert.Equal(t, "None", None.Literal())
	assert.Equal(t, "(Some 1)", Some(num.Int64(1)).Literal())
	assert.Equal(t, "(Some '(2))", Some(pair.List(num.Int64(2))).Literal())
}

func TestEqual(t *testing.T) {
	assert.True(t, None.Equal(None))
	assert.True(t, Some(num.Int64(1)).Equal(Some(num.Int64(1))))
	assert.False(t, Some(num.Int64(1)).Equal(None))
	assert.False(t, None.Equal(Some(num.Int64(1))))
	assert.False(t, None.Equal(num.Int64(1)))
}

func TestValue(t *testing.T) {
	_, ok := None.Value()
	assert.False(t, ok)

	v, ok := Some(num.Int64(3)).Value()
	assert.True(t, ok)
	assert.Equal(t, "3", num.To(v).Literal())
}
