//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package field

import (
	"crypto/rand"
	"io"
)

// RandomScalar draws a uniformly random element of [0, p) using rng as
// the entropy source. rng is threaded explicitly rather than read from
// a package-global (spec.md §9, "Global RNG"); callers that need a
// cryptographically secure source pass crypto/rand.Reader.
func RandomScalar(rng io.Reader, params Params) (Scalar, error) {
	n, err := rand.Int(rng, params.p)
	if err != nil {
		return Scalar{}, err
	}
	return NewScalar(n, params), nil
}

// RandomExponent draws a uniformly random element of [0, 2q) using rng
// as the entropy source.
func RandomExponent(rng io.Reader, params Params) (Exponent, error) {
	n, err := rand.Int(rng, params.twoQBig)
	if err != nil {
		return Exponent{}, err
	}
	return NewExponent(n, params), nil
}
