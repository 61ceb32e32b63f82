//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nmcproto/tinynmc/field"
	"github.com/nmcproto/tinynmc/nmc"
)

var (
	flagSignature string
	flagValues    string
	flagPartition string
	flagNodes     int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Preprocess and evaluate one sum-of-products expression",
	Long: `run builds N fresh nodes, has a dealer preprocess them for the
given signature, masks the given plaintext values through the given
contributor partition, and prints the reconstructed result.

Example:
  tinynmc run --signature 3,2 --nodes 3 \
    --values "0:0=1,0:1=2,0:2=3,1:0=4,1:1=5" \
    --partition "0:0,1:0;0:1,1:1;0:2"`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagSignature, "signature", "", "comma-separated factor counts per term, e.g. 3,2 (required)")
	runCmd.Flags().StringVar(&flagValues, "values", "", "comma-separated term:factor=value assignments (required)")
	runCmd.Flags().StringVar(&flagPartition, "partition", "", "semicolon-separated groups of term:factor coordinates, one group per contributor (required)")
	runCmd.Flags().IntVar(&flagNodes, "nodes", 3, "number of nodes to simulate (must be >= 2)")
	runCmd.MarkFlagRequired("signature")
	runCmd.MarkFlagRequired("values")
	runCmd.MarkFlagRequired("partition")
	registerParamsFlags(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	sessionID := uuid.New()
	log := logger.With(zap.String("session", sessionID.String()))

	sig, err := parseSignature(flagSignature)
	if err != nil {
		return err
	}
	values, err := parseValues(flagValues)
	if err != nil {
		return err
	}
	groups, err := parsePartition(flagPartition)
	if err != nil {
		return err
	}

	params, err := resolveParams()
	if err != nil {
		return err
	}
	log.Info("preprocessing", zap.Int("nodes", flagNodes), zap.Ints("signature", sig))

	nodes := make([]*nmc.Node, flagNodes)
	for i := range nodes {
		nodes[i] = nmc.NewNode(params)
	}
	if err := nmc.Preprocess(rand.Reader, params, sig, nodes); err != nil {
		log.Error("preprocess failed", zap.Error(err))
		return err
	}

	coords := sig.Coordinates()
	ctx := context.Background()

	nodeMasks := make([]map[nmc.Coordinate]field.Scalar, len(nodes))
	g, _ := errgroup.WithContext(ctx)
	for i, n := range nodes {
		i, n := i, n
		g.Go(func() error {
			m, err := n.Masks(coords)
			if err != nil {
				return fmt.Errorf("node %d: %w", i, err)
			}
			nodeMasks[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("mask retrieval failed", zap.Error(err))
		return err
	}

	scalarValues := make(map[nmc.Coordinate]field.Scalar, len(values))
	for c, v := range values {
		scalarValues[c] = field.NewScalar(v, params)
	}

	broadcasts := make([]map[nmc.Coordinate]field.Scalar, len(groups))
	gBroadcast, _ := errgroup.WithContext(ctx)
	for i, group := range groups {
		i, group := i, group
		gBroadcast.Go(func() error {
			owned := make(map[nmc.Coordinate]field.Scalar, len(group))
			for _, c := range group {
				v, ok := scalarValues[c]
				if !ok {
					return fmt.Errorf("contributor %d: coordinate %v in --partition has no matching --values entry", i, c)
				}
				owned[c] = v
			}
			contributor := nmc.NewContributor(owned)
			b, err := contributor.Broadcast(nodeMasks)
			if err != nil {
				return fmt.Errorf("contributor %d: %w", i, err)
			}
			broadcasts[i] = b
			return nil
		})
	}
	if err := gBroadcast.Wait(); err != nil {
		log.Error("masking failed", zap.Error(err))
		return err
	}

	shares := make([]field.Scalar, len(nodes))
	gCompute, _ := errgroup.WithContext(ctx)
	for i, n := range nodes {
		i, n := i, n
		gCompute.Go(func() error {
			share, err := n.Compute(sig, broadcasts)
			if err != nil {
				return fmt.Errorf("node %d: %w", i, err)
			}
			shares[i] = share
			return nil
		})
	}
	if err := gCompute.Wait(); err != nil {
		log.Error("compute failed", zap.Error(err))
		return err
	}

	result := shares[0]
	for _, s := range shares[1:] {
		result = result.Add(s)
	}

	log.Info("evaluation complete", zap.String("result", result.Big().String()))
	fmt.Println(result.Big().String())
	return nil
}

func parseSignature(s string) (nmc.Signature, error) {
	parts := strings.Split(s, ",")
	sig := make(nmc.Signature, len(parts))
	for i, p := range parts {
		k, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid signature term %q: %w", p, err)
		}
		sig[i] = k
	}
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	return sig, nil
}

func parseCoordinate(s string) (nmc.Coordinate, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return nmc.Coordinate{}, fmt.Errorf("invalid coordinate %q, want term:factor", s)
	}
	term, err := strconv.Atoi(parts[0])
	if err != nil {
		return nmc.Coordinate{}, fmt.Errorf("invalid term in %q: %w", s, err)
	}
	factor, err := strconv.Atoi(parts[1])
	if err != nil {
		return nmc.Coordinate{}, fmt.Errorf("invalid factor in %q: %w", s, err)
	}
	return nmc.Coordinate{Term: term, Factor: factor}, nil
}

func parseValues(s string) (map[nmc.Coordinate]*big.Int, error) {
	values := make(map[nmc.Coordinate]*big.Int)
	for _, assignment := range strings.Split(s, ",") {
		assignment = strings.TrimSpace(assignment)
		if assignment == "" {
			continue
		}
		parts := strings.SplitN(assignment, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid assignment %q, want term:factor=value", assignment)
		}
		coord, err := parseCoordinate(parts[0])
		if err != nil {
			return nil, err
		}
		v, ok := new(big.Int).SetString(strings.TrimSpace(parts[1]), 10)
		if !ok {
			return nil, fmt.Errorf("invalid value in %q", assignment)
		}
		values[coord] = v
	}
	return values, nil
}

func parsePartition(s string) ([][]nmc.Coordinate, error) {
	var groups [][]nmc.Coordinate
	for _, group := range strings.Split(s, ";") {
		group = strings.TrimSpace(group)
		var coords []nmc.Coordinate
		if group != "" {
			for _, c := range strings.Split(group, ",") {
				coord, err := parseCoordinate(c)
				if err != nil {
					return nil, err
				}
				coords = append(coords, coord)
			}
		}
		groups = append(groups, coords)
	}
	return groups, nil
}
