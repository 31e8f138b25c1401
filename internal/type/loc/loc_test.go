package loc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringIsOneBased(t *testing.T) {
	l := T{Line: 2, Char: 5}

	assert.Equal(t, "3:6", l.String())
}

func TestZeroValue(t *testing.T) {
	var l T

	assert.Equal(t, "1:1", l.String())
}
