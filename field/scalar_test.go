//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarArithmetic(t *testing.T) {
	params := DefaultParams()

	a := NewScalar(big.NewInt(7), params)
	b := NewScalar(big.NewInt(3), params)

	require.True(t, a.Add(b).Equal(NewScalar(big.NewInt(10), params)))
	require.True(t, a.Sub(b).Equal(NewScalar(big.NewInt(4), params)))
	require.True(t, a.Mul(b).Equal(NewScalar(big.NewInt(21), params)))
	require.True(t, a.Sub(a).Equal(NewScalar(big.NewInt(0), params)))
}

func TestScalarWrapsModP(t *testing.T) {
	params := DefaultParams()

	pMinusOne := new(big.Int).Sub(params.P(), big.NewInt(1))
	a := NewScalar(pMinusOne, params)
	one := NewScalar(big.NewInt(1), params)

	require.True(t, a.Add(one).Equal(NewScalar(big.NewInt(0), params)))
}

func TestScalarReducesNegativeInput(t *testing.T) {
	params := DefaultParams()

	a := NewScalar(big.NewInt(-5), params)
	want := new(big.Int).Sub(params.P(), big.NewInt(5))

	require.True(t, a.Equal(NewScalar(want, params)))
}

func TestScalarExpAgainstBigInt(t *testing.T) {
	params := DefaultParams()

	e := NewExponent(big.NewInt(17), params)
	got := params.G().Exp(e)

	want := new(big.Int).Exp(params.G().Big(), big.NewInt(17), params.P())
	require.Equal(t, 0, want.Cmp(got.Big()))
}

func TestScalarMixedParamsPanics(t *testing.T) {
	params1 := DefaultParams()
	p2, q2, g2 := big.NewInt(23), big.NewInt(11), big.NewInt(4)
	params2, err := NewParams(p2, q2, g2)
	require.NoError(t, err)

	a := NewScalar(big.NewInt(1), params1)
	b := NewScalar(big.NewInt(1), params2)

	require.Panics(t, func() {
		a.Add(b)
	})
}

func TestScalarExpMixedParamsPanics(t *testing.T) {
	params1 := DefaultParams()
	p2, q2, g2 := big.NewInt(23), big.NewInt(11), big.NewInt(4)
	params2, err := NewParams(p2, q2, g2)
	require.NoError(t, err)

	a := NewScalar(big.NewInt(1), params1)
	e := NewExponent(big.NewInt(1), params2)

	require.Panics(t, func() {
		a.Exp(e)
	})
}

func TestProdScalar(t *testing.T) {
	params := DefaultParams()
	factors := []Scalar{
		NewScalar(big.NewInt(2), params),
		NewScalar(big.NewInt(3), params),
		NewScalar(big.NewInt(5), params),
	}
	require.True(t, ProdScalar(factors).Equal(NewScalar(big.NewInt(30), params)))
}
