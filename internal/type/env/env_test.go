package env

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/tl/internal/type/num"
)

func TestLookupFallsBackToEnclosing(t *testing.T) {
	outer := New(nil)
	outer.Define("x", num.Int64(1))
	outer.Define("y", num.Int64(2))

	inner := New(outer)
	inner.Define("x", num.Int64(3))

	v, ok := inner.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, "3", num.To(v).Literal())

	v, ok = inner.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, "2", num.To(v).Literal())

	_, ok = inner.Lookup("z")
	assert.False(t, ok)

	assert.Same(t, outer, inner.Enclosing())
}

func TestNilLookup(t *testing.T) {
	var e *T

	_, ok := e.Lookup("x")
	assert.False(t, ok)
}
