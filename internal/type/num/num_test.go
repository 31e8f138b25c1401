package num

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrefixes(t *testing.T) {
	for s, want := range map[string]int64{
		"42":    42,
		"-7":    -7,
		"0x10":  16,
		"0b101": 5,
		"0o777": 511,
	} {
		n, ok := New(s)
		require.True(t, ok, s)
		assert.Equal(t, want, n.Int().Int64(), s)
	}
}

func TestNewRejectsGarbage(t *testing.T) {
	_, ok := New("12abc")
	assert.False(t, ok)
}

func TestBig(t *testing.T) {
	n, ok := New("123456789012345678901234567890")
	require.True(t, ok)

	assert.Equal(t, "123456789012345678901234567890", n.Literal())
	assert.True(t, n.Equal(Int(new(big.Int).Set(n.Int()))))
	assert.False(t, n.Equal(Int64(1)))
}
