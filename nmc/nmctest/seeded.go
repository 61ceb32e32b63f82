//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package nmctest provides deterministic entropy sources for tests
// that exercise the nmc package's split/correlate/preprocess paths
// without depending on true randomness for reproducibility.
package nmctest

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// SeededReader returns a deterministic io.Reader derived from seed via
// HKDF (RFC 5869: extract, then expand), suitable anywhere the nmc package accepts an
// rng parameter. Two calls with the same seed and info produce
// identical byte streams, which lets property tests fix a scenario's
// randomness without weakening the core API's explicit rng threading
// (spec.md §9, "Global RNG").
func SeededReader(seed []byte, info string) io.Reader {
	return hkdf.New(sha256.New, seed, nil, []byte(info))
}

// Seed is a fixed, low-entropy byte string for tests that don't care
// what the seed is, only that it is stable across runs.
func Seed(label string) []byte {
	sum := sha256.Sum256([]byte("nmctest-seed:" + label))
	return sum[:]
}
