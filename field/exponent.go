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

// Exponent is an element of Z_2q: a dealer-sampled secret exponent, or
// a node's additive share of one, or an additive share of a factor's
// exponent mask. Kept as a distinct type from Scalar (spec.md §9,
// Design Notes) so that exponent-domain and value-domain arithmetic
// cannot be mixed by accident; the two domains meet only at
// Scalar.Exp.
type Exponent struct {
	nat  *saferith.Nat
	mod  *saferith.Modulus
	pMod *saferith.Modulus // the paired Scalar field modulus, carried only so Scalar.Exp can detect a mismatched Params
}

// NewExponent reduces x modulo the instance's exponent modulus 2q.
func NewExponent(x *big.Int, params Params) Exponent {
	return Exponent{nat: natFromBig(x, params.twoQBig, params.twoQ), mod: params.twoQ, pMod: params.pMod}
}

func exponentFromNat(nat *saferith.Nat, mod, pMod *saferith.Modulus) Exponent {
	return Exponent{nat: nat, mod: mod, pMod: pMod}
}

func (a Exponent) checkField(b Exponent) {
	if a.mod != b.mod {
		panic("field: mixing exponents from different Params")
	}
}

// Add returns a+b mod 2q.
func (a Exponent) Add(b Exponent) Exponent {
	a.checkField(b)
	return exponentFromNat(new(saferith.Nat).ModAdd(a.nat, b.nat, a.mod), a.mod, a.pMod)
}

// Sub returns a-b mod 2q.
func (a Exponent) Sub(b Exponent) Exponent {
	a.checkField(b)
	return exponentFromNat(new(saferith.Nat).ModSub(a.nat, b.nat, a.mod), a.mod, a.pMod)
}

// Neg returns -a mod 2q.
func (a Exponent) Neg() Exponent {
	return exponentFromNat(new(saferith.Nat).ModNeg(a.nat, a.mod), a.mod, a.pMod)
}

// Equal reports whether a and b denote the same element of Z_2q.
func (a Exponent) Equal(b Exponent) bool {
	a.checkField(b)
	return a.nat.Eq(b.nat) == 1
}

// Big returns the non-negative representative of a in [0, 2q) as a
// big.Int.
func (a Exponent) Big() *big.Int {
	return a.nat.Big()
}

// String renders a in hexadecimal, for diagnostics only.
func (a Exponent) String() string {
	return a.nat.Big().Text(16)
}
