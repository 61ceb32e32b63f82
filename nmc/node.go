//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package nmc

import (
	"io"
	"sync/atomic"

	"github.com/nmcproto/tinynmc/field"
)

// Node is a computing party: it holds correlated randomness produced
// by a Dealer and, from that, issues masks to contributors and
// computes its additive share of the protocol's result.
//
// A Node moves through the states of spec.md §4.7: Fresh accepts only
// correlate; Ready accepts Masks and Compute any number of times.
// There is no transition back to Fresh. Masks and Compute are
// read-only once correlate has completed and may be called
// concurrently with each other and with themselves without external
// locking (spec.md §5): the ready flag is an atomic.Bool rather than a
// mutex, so its Store in correlate happens-before every Load a
// subsequent Masks/Compute call performs, and the maps it guards are
// never mutated again after that store.
type Node struct {
	params field.Params

	ready atomic.Bool

	shareOut map[int]field.Scalar       // share_out[t]
	masks    map[Coordinate]field.Scalar // mask[(t,j)] and mask[(t,-1)]
}

// NewNode returns a Fresh node with its field parameters set.
func NewNode(params field.Params) *Node {
	return &Node{params: params}
}

// correlate implements spec.md §4.3: given this node's exponent shares
// and output shares from preprocessing, it derives the per-coordinate
// masks and stores the output shares for Compute. It is unexported
// because only a Dealer (or a test standing in for one) should drive
// it; spec.md §4.7 requires it be called exactly once, before Masks or
// Compute.
func (n *Node) correlate(rng io.Reader, sig Signature, exponentShares []field.Exponent, outputShares []field.Scalar) error {
	if n.ready.Load() {
		return newError(ErrKindProtocol, "correlate", "node already correlated")
	}
	if len(exponentShares) != len(sig) || len(outputShares) != len(sig) {
		return newError(ErrKindProtocol, "correlate",
			"share vectors disagree with signature length: got %d/%d shares, want %d",
			len(exponentShares), len(outputShares), len(sig))
	}

	shareOut := make(map[int]field.Scalar, len(sig))
	masks := make(map[Coordinate]field.Scalar, len(sig.Coordinates())+len(sig))

	for t, k := range sig {
		negExponent := exponentShares[t].Neg()
		factorShares, err := SplitExponent(rng, negExponent, n.params, k)
		if err != nil {
			return err
		}
		for j, fShare := range factorShares {
			masks[Coordinate{Term: t, Factor: j}] = n.params.G().Exp(fShare)
		}
		masks[Coordinate{Term: t, Factor: DiagnosticFactor}] = n.params.G().Exp(exponentShares[t])
		shareOut[t] = outputShares[t]
	}

	n.shareOut = shareOut
	n.masks = masks
	n.ready.Store(true)
	return nil
}

// Masks implements spec.md §4.4: it returns this node's mask for each
// requested coordinate. Requesting a coordinate the node has no mask
// for is a caller/protocol disagreement, not an absent entry or a zero
// value.
func (n *Node) Masks(coords []Coordinate) (map[Coordinate]field.Scalar, error) {
	if !n.ready.Load() {
		return nil, newError(ErrKindState, "Masks", "node not correlated")
	}
	out := make(map[Coordinate]field.Scalar, len(coords))
	for _, c := range coords {
		m, ok := n.masks[c]
		if !ok {
			return nil, newError(ErrKindProtocol, "Masks", "unknown coordinate %v", c)
		}
		out[c] = m
	}
	return out, nil
}

// Compute implements spec.md §4.6: given the broadcast of masked
// factors from every contributor, it returns this node's additive
// share of the protocol's result.
func (n *Node) Compute(sig Signature, broadcasts []map[Coordinate]field.Scalar) (field.Scalar, error) {
	if !n.ready.Load() {
		return field.Scalar{}, newError(ErrKindState, "Compute", "node not correlated")
	}
	if err := sig.Validate(); err != nil {
		return field.Scalar{}, err
	}

	merged := make(map[Coordinate]field.Scalar)
	for _, broadcast := range broadcasts {
		for coord, v := range broadcast {
			if _, dup := merged[coord]; dup {
				return field.Scalar{}, newError(ErrKindProtocol, "Compute",
					"duplicate coordinate %v across contributors", coord)
			}
			merged[coord] = v
		}
	}

	var result field.Scalar
	haveResult := false

	for t, k := range sig {
		factors := make([]field.Scalar, k)
		for j := 0; j < k; j++ {
			v, ok := merged[Coordinate{Term: t, Factor: j}]
			if !ok {
				return field.Scalar{}, newError(ErrKindProtocol, "Compute",
					"missing coordinate (%d,%d) in broadcast", t, j)
			}
			factors[j] = v
		}
		term := n.shareOut[t].Mul(field.ProdScalar(factors))
		if !haveResult {
			result = term
			haveResult = true
		} else {
			result = result.Add(term)
		}
	}
	return result, nil
}
