//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package nmc

import "github.com/nmcproto/tinynmc/field"

// Contributor holds one contributor's plaintext inputs for a subset of
// the expression's coordinates (spec.md §3: a signature's coordinates
// are partitioned, not necessarily evenly, across contributors) and
// masks them for broadcast.
type Contributor struct {
	inputs map[Coordinate]field.Scalar
}

// NewContributor copies values into a Contributor. values maps each
// coordinate this contributor owns to its plaintext factor.
func NewContributor(values map[Coordinate]field.Scalar) *Contributor {
	inputs := make(map[Coordinate]field.Scalar, len(values))
	for c, v := range values {
		inputs[c] = v
	}
	return &Contributor{inputs: inputs}
}

// Coordinates returns the coordinates this contributor owns, in no
// particular order.
func (c *Contributor) Coordinates() []Coordinate {
	coords := make([]Coordinate, 0, len(c.inputs))
	for coord := range c.inputs {
		coords = append(coords, coord)
	}
	return coords
}

// Broadcast masks this contributor's inputs against the masks
// published by every node (spec.md §4.5: masked_factors) and returns
// the result to publish.
func (c *Contributor) Broadcast(nodeMasks []map[Coordinate]field.Scalar) (map[Coordinate]field.Scalar, error) {
	return MaskInputs(c.inputs, nodeMasks)
}

// MaskInputs implements spec.md §4.5: for every coordinate in values,
// it multiplies the plaintext factor by every node's mask at that
// coordinate, yielding the value a contributor actually broadcasts.
func MaskInputs(values map[Coordinate]field.Scalar, nodeMasks []map[Coordinate]field.Scalar) (map[Coordinate]field.Scalar, error) {
	out := make(map[Coordinate]field.Scalar, len(values))
	for coord, v := range values {
		masked := v
		for _, masks := range nodeMasks {
			m, ok := masks[coord]
			if !ok {
				return nil, newError(ErrKindProtocol, "MaskInputs",
					"missing mask for coordinate %v", coord)
			}
			masked = masked.Mul(m)
		}
		out[coord] = masked
	}
	return out, nil
}
