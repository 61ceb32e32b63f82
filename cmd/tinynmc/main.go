//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "tinynmc",
	Short: "Drive a tinynmc non-interactive MPC evaluation locally",
	Long: `tinynmc simulates a dealer, a set of nodes, and a set of
contributors evaluating a fixed-shape sum-of-products expression,
all within a single process. It exists to exercise the protocol
core end to end; it defines no wire format and talks to no network.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Sync()
	},
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable development logging")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tinynmc: %v\n", err)
		os.Exit(1)
	}
}
