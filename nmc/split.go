//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package nmc

import (
	"io"

	"github.com/nmcproto/tinynmc/field"
)

// subber constrains split to the two field domains (field.Scalar and
// field.Exponent), both of which already expose Sub(T) T.
type subber[T any] interface {
	Sub(T) T
}

// split implements spec.md §4.1's additive-sharing primitive
// generically over Scalar and Exponent shares: it draws n-1 uniformly
// random elements with sample and sets the first share so that all n
// sum to secret modulo the domain's modulus. rng is threaded through
// explicitly (spec.md §9, "Global RNG") rather than read from a
// package-global source.
func split[T subber[T]](rng io.Reader, secret T, n int, sample func(io.Reader) (T, error)) ([]T, error) {
	if n < 1 {
		return nil, newError(ErrKindParameter, "split", "n must be >= 1, got %d", n)
	}
	shares := make([]T, n)
	remainder := secret
	for i := 1; i < n; i++ {
		r, err := sample(rng)
		if err != nil {
			return nil, wrapError(ErrKindEntropy, "split", err)
		}
		shares[i] = r
		remainder = remainder.Sub(r)
	}
	shares[0] = remainder
	return shares, nil
}

// SplitScalar produces n additive shares of secret modulo p.
func SplitScalar(rng io.Reader, secret field.Scalar, params field.Params, n int) ([]field.Scalar, error) {
	return split(rng, secret, n, func(r io.Reader) (field.Scalar, error) {
		return field.RandomScalar(r, params)
	})
}

// SplitExponent produces n additive shares of secret modulo 2q.
func SplitExponent(rng io.Reader, secret field.Exponent, params field.Params, n int) ([]field.Exponent, error) {
	return split(rng, secret, n, func(r io.Reader) (field.Exponent, error) {
		return field.RandomExponent(r, params)
	})
}
