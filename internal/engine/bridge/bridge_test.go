package bridge

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(x, y, z *big.Int) (*big.Int, bool) {
	n := new(big.Int).Mul(x, y)
	return n.Mul(n, z), true
}

func TestCallReturnsValue(t *testing.T) {
	n, err := Call(product, big.NewInt(2), big.NewInt(3), big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, "42", n.String())
}

func TestCallWithoutCallback(t *testing.T) {
	_, err := Call(nil, big.NewInt(1), big.NewInt(2), big.NewInt(3))
	assert.ErrorIs(t, err, ErrNoCallback)
}

func TestCallNoValue(t *testing.T) {
	none := func(_, _, _ *big.Int) (*big.Int, bool) {
		return nil, false
	}

	_, err := Call(none, big.NewInt(1), big.NewInt(2), big.NewInt(3))
	assert.ErrorIs(t, err, ErrNoValue)

	nilResult := func(_, _, _ *big.Int) (*big.Int, bool) {
		return nil, true
	}

	_, err = Call(nilResult, big.NewInt(1), big.NewInt(2), big.NewInt(3))
	assert.ErrorIs(t, err, ErrNoValue)
}

func TestCallRecoversPanic(t *testing.T) {
	boom := func(_, _, _ *big.Int) (*big.Int, bool) {
		panic("boom")
	}

	_, err := Call(boom, big.NewInt(1), big.NewInt(2), big.NewInt(3))
	require.Error(t, err)
	assert.Equal(t, "call-host: callback failed: boom", err.Error())
}

func TestCallCannotMutateArguments(t *testing.T) {
	x := big.NewInt(5)
	var kept *big.Int

	mutate := func(a, _, _ *big.Int) (*big.Int, bool) {
		a.SetInt64(0)
		kept = a
		return a, true
	}

	n, err := Call(mutate, x, big.NewInt(1), big.NewInt(1))
	require.NoError(t, err)

	assert.Equal(t, "5", x.String())
	assert.Equal(t, "0", n.String())

	kept.SetInt64(9)
	assert.Equal(t, "0", n.String())
}
