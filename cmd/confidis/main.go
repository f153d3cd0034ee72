// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "confidis",
	Short: "Trust-weighted answer resolver for multi-source question answering",
	Long: `confidis runs the belief graph engine that resolves the most credible
answer to a question when multiple sources of unknown reliability submit
candidate answers.

Key features:
- Trust-weighted voting that outperforms plain plurality on skewed sources
- A line-oriented text protocol: CONFIGURE, BELIEVE, SET, GET ANSWER TO
- Optional trusted "seed" sources that pin a question's answer`,
}

func main() {
	rootCmd.AddCommand(
		replCmd(),
		runCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
