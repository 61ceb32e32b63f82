//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package field implements the modular arithmetic assumed available
// by the tinynmc protocol core: elements of Z_p (field.Scalar) and
// elements of Z_2q (field.Exponent), backed by saferith's
// constant-time big-integer type.
package field

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
)

// Params fixes the (p, q, g) triple shared by every party in a
// protocol instance: p is a safe prime, q = (p-1)/2 is also prime,
// and g generates the order-q subgroup of quadratic residues mod p.
type Params struct {
	p, q    *big.Int
	twoQBig *big.Int // 2q, kept as a big.Int so natFromBig can reduce negative inputs correctly

	pMod *saferith.Modulus // field modulus, values and masks live in Z_p
	twoQ *saferith.Modulus // 2q, exponent shares live in Z_2q
	g    Scalar
}

// DefaultParams returns the reference (p, q, g) triple from the
// protocol specification. Implementations that interoperate must use
// this literal triple.
func DefaultParams() Params {
	p, _ := new(big.Int).SetString("340282366920938463463374607431768196007", 10)
	q, _ := new(big.Int).SetString("170141183460469231731687303715884098003", 10)
	g, _ := new(big.Int).SetString("205482397601703717038466705921080247554", 10)

	params, err := NewParams(p, q, g)
	if err != nil {
		// The literal triple above is fixed and known-valid; a
		// failure here means the constant table was corrupted.
		panic(fmt.Sprintf("field: default parameters invalid: %v", err))
	}
	return params
}

// NewParams builds a Params from an arbitrary (p, q, g) triple and
// validates it (spec's Open Question on parameter validation): p =
// 2q+1, p and q prime, and g of order q mod p with g != 1.
func NewParams(p, q, g *big.Int) (Params, error) {
	if err := validate(p, q, g); err != nil {
		return Params{}, err
	}

	twoQBig := new(big.Int).Lsh(q, 1)

	params := Params{
		p:       new(big.Int).Set(p),
		q:       new(big.Int).Set(q),
		twoQBig: twoQBig,
		pMod:    saferith.ModulusFromBytes(p.Bytes()),
		twoQ:    saferith.ModulusFromBytes(twoQBig.Bytes()),
	}
	params.g = NewScalar(g, params)
	return params, nil
}

func validate(p, q, g *big.Int) error {
	if p.Sign() <= 0 || q.Sign() <= 0 {
		return fmt.Errorf("field: p and q must be positive")
	}
	want := new(big.Int).Lsh(q, 1)
	want.Add(want, big.NewInt(1))
	if want.Cmp(p) != 0 {
		return fmt.Errorf("field: p != 2q+1")
	}
	if !p.ProbablyPrime(32) {
		return fmt.Errorf("field: p is not prime")
	}
	if !q.ProbablyPrime(32) {
		return fmt.Errorf("field: q is not prime")
	}
	if g.Cmp(big.NewInt(1)) <= 0 || g.Cmp(p) >= 0 {
		return fmt.Errorf("field: g out of range [2, p)")
	}
	one := new(big.Int).Exp(g, q, p)
	if one.Cmp(big.NewInt(1)) != 0 {
		return fmt.Errorf("field: g does not have order q mod p")
	}
	return nil
}

// G returns the instance's subgroup generator as a Scalar.
func (params Params) G() Scalar {
	return params.g
}

// P returns the field modulus as a big.Int, for callers (tests,
// diagnostics) that need the plain integer rather than a Scalar.
func (params Params) P() *big.Int {
	return new(big.Int).Set(params.p)
}

// Q returns the subgroup order as a big.Int.
func (params Params) Q() *big.Int {
	return new(big.Int).Set(params.q)
}

// natFromBig reduces x modulo asBig (the plain big.Int value of mod)
// before converting to a saferith.Nat. The reduction must happen on
// the big.Int side first: big.Int.Mod always returns a non-negative
// result per Go's Euclidean-division semantics, whereas x.Bytes() on a
// negative x silently discards the sign and would reduce |x| instead
// of x mod asBig.
func natFromBig(x, asBig *big.Int, mod *saferith.Modulus) *saferith.Nat {
	reduced := new(big.Int).Mod(x, asBig)
	nat := new(saferith.Nat).SetBytes(reduced.Bytes())
	return new(saferith.Nat).Mod(nat, mod)
}
