//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package nmc

// Signature is the public shape [k_0, ..., k_{T-1}] of the
// sum-of-products expression (spec.md §3): T = len(Signature) is the
// term count, and k_t = Signature[t] is term t's factor count. It is
// identical at the dealer, every node, and every contributor.
type Signature []int

// Validate checks the structural constraints spec.md §7 assigns to
// ParameterError: the signature must name at least one term, and
// every term must have at least one factor.
func (s Signature) Validate() error {
	if len(s) == 0 {
		return newError(ErrKindParameter, "Signature.Validate", "signature has no terms")
	}
	for t, k := range s {
		if k < 1 {
			return newError(ErrKindParameter, "Signature.Validate",
				"term %d has %d factors, want >= 1", t, k)
		}
	}
	return nil
}

// Coordinates returns every (term, factor) coordinate the signature
// defines, in term-major order. It does not include any
// DiagnosticFactor entries; those exist per-node, not per-signature.
func (s Signature) Coordinates() []Coordinate {
	var coords []Coordinate
	for t, k := range s {
		for j := 0; j < k; j++ {
			coords = append(coords, Coordinate{Term: t, Factor: j})
		}
	}
	return coords
}
