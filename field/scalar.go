//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package field

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

// Scalar is an element of Z_p: a plaintext value, a mask, a
// multiplicative combination of masks, or an additive share of the
// protocol's result. Scalar values from different Params must never
// be mixed; doing so panics rather than silently producing a
// meaningless result, since it can only happen through a programming
// error (a node or contributor using the wrong instance's parameters).
type Scalar struct {
	nat *saferith.Nat
	mod *saferith.Modulus
}

// NewScalar reduces x modulo the instance's field modulus p.
func NewScalar(x *big.Int, params Params) Scalar {
	return Scalar{nat: natFromBig(x, params.p, params.pMod), mod: params.pMod}
}

// scalarFromNat wraps an already-reduced Nat. The caller must ensure
// nat is already reduced modulo mod.
func scalarFromNat(nat *saferith.Nat, mod *saferith.Modulus) Scalar {
	return Scalar{nat: nat, mod: mod}
}

func (a Scalar) checkField(b Scalar) {
	if a.mod != b.mod {
		panic("field: mixing scalars from different Params")
	}
}

// Add returns a+b mod p.
func (a Scalar) Add(b Scalar) Scalar {
	a.checkField(b)
	return scalarFromNat(new(saferith.Nat).ModAdd(a.nat, b.nat, a.mod), a.mod)
}

// Sub returns a-b mod p.
func (a Scalar) Sub(b Scalar) Scalar {
	a.checkField(b)
	return scalarFromNat(new(saferith.Nat).ModSub(a.nat, b.nat, a.mod), a.mod)
}

// Neg returns -a mod p.
func (a Scalar) Neg() Scalar {
	return scalarFromNat(new(saferith.Nat).ModNeg(a.nat, a.mod), a.mod)
}

// Mul returns a*b mod p.
func (a Scalar) Mul(b Scalar) Scalar {
	a.checkField(b)
	return scalarFromNat(new(saferith.Nat).ModMul(a.nat, b.nat, a.mod), a.mod)
}

// Exp returns a^e mod p, where e is an exponent share or the
// protocol's secret exponent, taken as its non-negative representative
// in [0, 2q). g has order q | 2q, so this agrees with ordinary
// exponentiation mod q. Panics if e did not come from the same Params
// as a, the same way Add/Sub/Mul/Equal panic on a Params mismatch —
// this is the one point a Scalar and an Exponent legitimately meet,
// and a caller crossing Params here is a programming error, not a
// runtime condition.
func (a Scalar) Exp(e Exponent) Scalar {
	if a.mod != e.pMod {
		panic("field: exponentiating a Scalar by an Exponent from a different Params")
	}
	return scalarFromNat(new(saferith.Nat).Exp(a.nat, e.nat, a.mod), a.mod)
}

// Equal reports whether a and b denote the same field element. Panics
// if a and b belong to different Params.
func (a Scalar) Equal(b Scalar) bool {
	a.checkField(b)
	return a.nat.Eq(b.nat) == 1
}

// Big returns the non-negative representative of a in [0, p) as a
// big.Int.
func (a Scalar) Big() *big.Int {
	return a.nat.Big()
}

// String renders a in hexadecimal, for diagnostics and logs only.
func (a Scalar) String() string {
	return a.nat.Big().Text(16)
}

// One returns the multiplicative identity of the field that params
// describes.
func One(params Params) Scalar {
	return NewScalar(big.NewInt(1), params)
}

// ProdScalar returns the product of factors mod p. Panics if factors
// is empty or mixes Params; callers that may pass zero factors for an
// empty term must special-case that themselves (spec.md §4.6 requires
// k_t >= 1, so an empty term never reaches here).
func ProdScalar(factors []Scalar) Scalar {
	prod := factors[0]
	for _, f := range factors[1:] {
		prod = prod.Mul(f)
	}
	return prod
}
