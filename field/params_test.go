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

func TestDefaultParamsValid(t *testing.T) {
	params := DefaultParams()

	want := new(big.Int).Lsh(params.Q(), 1)
	want.Add(want, big.NewInt(1))
	require.Equal(t, 0, want.Cmp(params.P()), "p must equal 2q+1")

	one := new(big.Int).Exp(params.G().Big(), params.Q(), params.P())
	require.Equal(t, 0, one.Cmp(big.NewInt(1)), "g must have order q")
}

func TestNewParamsRejectsBadTriple(t *testing.T) {
	p := DefaultParams().P()
	q := DefaultParams().Q()
	g := DefaultParams().G().Big()

	tests := []struct {
		name    string
		p, q, g *big.Int
	}{
		{"p not 2q+1", new(big.Int).Add(p, big.NewInt(2)), q, g},
		{"g is 1", p, q, big.NewInt(1)},
		{"g out of range", p, q, new(big.Int).Add(p, big.NewInt(1))},
		{"g wrong order", p, q, new(big.Int).Sub(p, big.NewInt(1))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParams(tc.p, tc.q, tc.g)
			require.Error(t, err)
		})
	}
}

// TestExponentAgreesModQAndMod2Q resolves the spec's open question on
// whether exponent shares must be reduced mod q or mod 2q: since g has
// order q, g^x mod p depends only on x mod q, so reducing shares mod
// 2q (as correlate/split do) and reducing the reconstructed sum mod q
// must agree.
func TestExponentAgreesModQAndMod2Q(t *testing.T) {
	params := DefaultParams()

	x := new(big.Int).Add(params.Q(), big.NewInt(12345))
	xMod2Q := new(big.Int).Mod(x, new(big.Int).Lsh(params.Q(), 1))
	xModQ := new(big.Int).Mod(x, params.Q())

	g := params.G().Big()
	lhs := new(big.Int).Exp(g, xMod2Q, params.P())
	rhs := new(big.Int).Exp(g, xModQ, params.P())
	require.Equal(t, 0, lhs.Cmp(rhs))
}
