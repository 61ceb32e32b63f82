//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nmcproto/tinynmc/nmc"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Run the dealer's preprocessing phase and report diagnostics",
	Long: `preprocess builds N fresh nodes, has a dealer correlate them for
the given signature, and prints each node's diagnostic per-term mask
(spec.md §3's retained diagnostic state) without running an online
phase. It exists to check a signature's shape and node count before
spending a full run.`,
	RunE: runPreprocess,
}

func init() {
	preprocessCmd.Flags().StringVar(&flagSignature, "signature", "", "comma-separated factor counts per term, e.g. 3,2 (required)")
	preprocessCmd.Flags().IntVar(&flagNodes, "nodes", 3, "number of nodes to simulate (must be >= 2)")
	preprocessCmd.MarkFlagRequired("signature")
	registerParamsFlags(preprocessCmd)
	rootCmd.AddCommand(preprocessCmd)
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	log := logger.With(zap.Int("nodes", flagNodes))

	sig, err := parseSignature(flagSignature)
	if err != nil {
		return err
	}

	params, err := resolveParams()
	if err != nil {
		return err
	}
	nodes := make([]*nmc.Node, flagNodes)
	for i := range nodes {
		nodes[i] = nmc.NewNode(params)
	}
	if err := nmc.Preprocess(rand.Reader, params, sig, nodes); err != nil {
		log.Error("preprocess failed", zap.Error(err))
		return err
	}

	for t := range sig {
		for i, n := range nodes {
			diag, err := n.Masks([]nmc.Coordinate{{Term: t, Factor: nmc.DiagnosticFactor}})
			if err != nil {
				return err
			}
			fmt.Printf("term %d, node %d: diagnostic mask %s\n", t, i, diag[nmc.Coordinate{Term: t, Factor: nmc.DiagnosticFactor}].String())
		}
	}
	log.Info("preprocessing complete")
	return nil
}
