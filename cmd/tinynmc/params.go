//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/nmcproto/tinynmc/field"
)

var (
	flagP string
	flagQ string
	flagG string
)

// registerParamsFlags adds the --p/--q/--g triple to cmd, shared by
// every subcommand that builds a field.Params.
func registerParamsFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagP, "p", "", "field prime p (decimal); must be given together with --q and --g")
	cmd.Flags().StringVar(&flagQ, "q", "", "subgroup order q = (p-1)/2 (decimal)")
	cmd.Flags().StringVar(&flagG, "g", "", "subgroup generator g (decimal)")
}

// resolveParams builds a field.Params from --p/--q/--g if all three
// were given, or falls back to field.DefaultParams() if none were.
// Giving only some of the three is a usage error.
func resolveParams() (field.Params, error) {
	switch {
	case flagP == "" && flagQ == "" && flagG == "":
		return field.DefaultParams(), nil
	case flagP == "" || flagQ == "" || flagG == "":
		return field.Params{}, fmt.Errorf("--p, --q, and --g must all be given together, or all omitted to use the default parameters")
	}

	p, ok := new(big.Int).SetString(flagP, 10)
	if !ok {
		return field.Params{}, fmt.Errorf("invalid --p value %q", flagP)
	}
	q, ok := new(big.Int).SetString(flagQ, 10)
	if !ok {
		return field.Params{}, fmt.Errorf("invalid --q value %q", flagQ)
	}
	g, ok := new(big.Int).SetString(flagG, 10)
	if !ok {
		return field.Params{}, fmt.Errorf("invalid --g value %q", flagG)
	}

	return field.NewParams(p, q, g)
}
