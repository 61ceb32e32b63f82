//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package nmc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nmcproto/tinynmc/field"
	"github.com/nmcproto/tinynmc/nmc/nmctest"
)

func TestNodeCorrelateTwiceFails(t *testing.T) {
	params := field.DefaultParams()
	rng := nmctest.SeededReader(nmctest.Seed("node-correlate-twice"), "test")
	sig := Signature{2}

	node := NewNode(params)
	require.NoError(t, Preprocess(rng, params, sig, []*Node{node, NewNode(params)}))

	err := node.correlate(rng, sig,
		[]field.Exponent{field.NewExponent(big.NewInt(1), params)},
		[]field.Scalar{field.NewScalar(big.NewInt(1), params)})
	require.Error(t, err)
	var nerr *Error
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, ErrKindProtocol, nerr.Kind)
}

func TestNodeCorrelateShareLengthMismatch(t *testing.T) {
	params := field.DefaultParams()
	rng := nmctest.SeededReader(nmctest.Seed("node-correlate-mismatch"), "test")
	sig := Signature{2, 3}

	cases := []struct {
		name      string
		exponents []field.Exponent
		outputs   []field.Scalar
	}{
		{
			name:      "too few exponent shares",
			exponents: []field.Exponent{field.NewExponent(big.NewInt(1), params)},
			outputs:   []field.Scalar{field.NewScalar(big.NewInt(1), params), field.NewScalar(big.NewInt(1), params)},
		},
		{
			name:      "too few output shares",
			exponents: []field.Exponent{field.NewExponent(big.NewInt(1), params), field.NewExponent(big.NewInt(1), params)},
			outputs:   []field.Scalar{field.NewScalar(big.NewInt(1), params)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			node := NewNode(params)
			err := node.correlate(rng, sig, tc.exponents, tc.outputs)
			require.Error(t, err)
			var nerr *Error
			require.ErrorAs(t, err, &nerr)
			require.Equal(t, ErrKindProtocol, nerr.Kind)
		})
	}
}

func TestNodeMasksBeforeCorrelateFails(t *testing.T) {
	params := field.DefaultParams()
	node := NewNode(params)

	_, err := node.Masks([]Coordinate{{Term: 0, Factor: 0}})
	require.Error(t, err)
	var nerr *Error
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, ErrKindState, nerr.Kind)
}

func TestNodeMasksUnknownCoordinateFails(t *testing.T) {
	params := field.DefaultParams()
	rng := nmctest.SeededReader(nmctest.Seed("node-masks-unknown"), "test")
	sig := Signature{2}

	nodes := []*Node{NewNode(params), NewNode(params)}
	require.NoError(t, Preprocess(rng, params, sig, nodes))

	_, err := nodes[0].Masks([]Coordinate{{Term: 0, Factor: 99}})
	require.Error(t, err)
	var nerr *Error
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, ErrKindProtocol, nerr.Kind)
}

func TestNodeComputeBeforeCorrelateFails(t *testing.T) {
	params := field.DefaultParams()
	node := NewNode(params)
	sig := Signature{2}

	_, err := node.Compute(sig, nil)
	require.Error(t, err)
	var nerr *Error
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, ErrKindState, nerr.Kind)
}

func TestNodeComputeDuplicateCoordinateFails(t *testing.T) {
	params := field.DefaultParams()
	rng := nmctest.SeededReader(nmctest.Seed("node-compute-duplicate"), "test")
	sig := Signature{1}

	nodes := []*Node{NewNode(params), NewNode(params)}
	require.NoError(t, Preprocess(rng, params, sig, nodes))

	masks, err := nodes[0].Masks(sig.Coordinates())
	require.NoError(t, err)

	coord := Coordinate{Term: 0, Factor: 0}
	broadcasts := []map[Coordinate]field.Scalar{
		{coord: masks[coord]},
		{coord: masks[coord]},
	}

	_, err = nodes[0].Compute(sig, broadcasts)
	require.Error(t, err)
	var nerr *Error
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, ErrKindProtocol, nerr.Kind)
}

func TestNodeComputeMissingCoordinateFails(t *testing.T) {
	params := field.DefaultParams()
	rng := nmctest.SeededReader(nmctest.Seed("node-compute-missing"), "test")
	sig := Signature{2}

	nodes := []*Node{NewNode(params), NewNode(params)}
	require.NoError(t, Preprocess(rng, params, sig, nodes))

	_, err := nodes[0].Compute(sig, []map[Coordinate]field.Scalar{
		{{Term: 0, Factor: 0}: field.One(params)},
	})
	require.Error(t, err)
	var nerr *Error
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, ErrKindProtocol, nerr.Kind)
}
