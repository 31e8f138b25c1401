package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	assert.Equal(t, "Int", Int.String())
	assert.Equal(t, "(List (Option Bool))", List(Option(Bool)).String())
	assert.Equal(t, "(-> (Int String) Bool)", Func(Bool, Int, String).String())
}

func TestUnifyBindsVariables(t *testing.T) {
	var supply Supply

	a := supply.Fresh()
	b := supply.Fresh()

	s := Subst{}
	require.NoError(t, s.Unify(Func(a, List(b)), Func(Int, List(Bool))))

	assert.Equal(t, "Int", s.Apply(a).String())
	assert.Equal(t, "Bool", s.Apply(b).String())
}

func TestUnifyMismatch(t *testing.T) {
	s := Subst{}

	err := s.Unify(Int, Bool)
	require.Error(t, err)
	assert.Equal(t, "expected Int, found Bool", err.Error())

	err = s.Unify(Func(Int, Int), Func(Int, Int, Int))
	require.Error(t, err)
	assert.Equal(t, "expected (-> (Int) Int), found (-> (Int Int) Int)", err.Error())
}

func TestOccursCheck(t *testing.T) {
	var supply Supply

	a := supply.Fresh()

	s := Subst{}
	err := s.Unify(a, List(a))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "infinite type")
}

func TestGeneralizeAndInstantiate(t *testing.T) {
	var supply Supply

	a := supply.Fresh()
	id := Func(a, a)

	s := Subst{}
	sc := s.Generalize(id, nil)
	require.Equal(t, []int{a.ID}, sc.Vars)

	first := supply.Instantiate(sc)
	second := supply.Instantiate(sc)
	assert.NotEqual(t, first.String(), second.String())

	require.NoError(t, s.Unify(first, Func(Int, Int)))
	require.NoError(t, s.Unify(second, Func(Bool, Bool)))
}

func TestGeneralizeKeepsFixed(t *testing.T) {
	var supply Supply

	a := supply.Fresh()
	b := supply.Fresh()

	s := Subst{}
	sc := s.Generalize(Func(a, b), map[int]bool{b.ID: true})

	assert.Equal(t, []int{a.ID}, sc.Vars)
}
