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

// Dealer simulates the trusted preprocessing driver of spec.md §4.2.
// It never participates in the online phase: once Preprocess returns,
// a Dealer holds no state worth keeping.
type Dealer struct {
	params field.Params
}

// NewDealer creates a Dealer for the given field parameters.
func NewDealer(params field.Params) *Dealer {
	return &Dealer{params: params}
}

// Preprocess runs the preprocessing phase of spec.md §4.2 for sig
// against nodes: for every term it samples a random exponent, derives
// the term's masked output g^e, splits both into per-node shares, and
// calls correlate on each node. It transitions every node in nodes
// from Fresh to Ready.
func (d *Dealer) Preprocess(rng io.Reader, sig Signature, nodes []*Node) error {
	if err := sig.Validate(); err != nil {
		return err
	}
	if len(nodes) < 2 {
		return newError(ErrKindParameter, "Preprocess",
			"need at least 2 nodes, got %d", len(nodes))
	}

	terms := len(sig)
	exponentShares := make([][]field.Exponent, terms) // [t][node]
	outputShares := make([][]field.Scalar, terms)      // [t][node]

	for t := range sig {
		e, err := field.RandomExponent(rng, d.params)
		if err != nil {
			return wrapError(ErrKindEntropy, "Preprocess", err)
		}
		m := d.params.G().Exp(e)

		eShares, err := SplitExponent(rng, e, d.params, len(nodes))
		if err != nil {
			return err
		}
		mShares, err := SplitScalar(rng, m, d.params, len(nodes))
		if err != nil {
			return err
		}
		exponentShares[t] = eShares
		outputShares[t] = mShares
	}

	for i, node := range nodes {
		nodeExponents := make([]field.Exponent, terms)
		nodeOutputs := make([]field.Scalar, terms)
		for t := range sig {
			nodeExponents[t] = exponentShares[t][i]
			nodeOutputs[t] = outputShares[t][i]
		}
		if err := node.correlate(rng, sig, nodeExponents, nodeOutputs); err != nil {
			return err
		}
	}
	return nil
}

// Preprocess mirrors the core API's preprocess(signature, nodes)
// (spec.md §6) as a package-level function for callers that do not
// need to keep a Dealer value around.
func Preprocess(rng io.Reader, params field.Params, sig Signature, nodes []*Node) error {
	return NewDealer(params).Preprocess(rng, sig, nodes)
}
