package errpos

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/tl/internal/type/loc"
)

func TestLocationIsStoredZeroBased(t *testing.T) {
	e := New(loc.T{Line: 2, Char: 5}, "unexpected %q", ")")

	assert.Equal(t, loc.T{Line: 2, Char: 5}, e.Source())
	assert.Equal(t, `3:6: unexpected ")"`, e.Error())
}

func TestErrorIsOneBased(t *testing.T) {
	e := New(loc.T{Line: 2, Char: 5}, "boom")

	assert.Equal(t, "3:6: boom", e.Error())
}

func TestFoundWhenWrapped(t *testing.T) {
	err := fmt.Errorf("loading: %w", New(loc.T{}, "bad"))

	var e *T
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "1:1: bad", e.Error())
}
