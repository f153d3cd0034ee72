// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/waoai/confidis"
	"github.com/waoai/confidis/params"
)

// tunableFlags holds the command-line overrides for the three
// CONFIGURE-able tunables plus the solver's build-time iteration cap,
// composed through a params.Builder on top of --config or the
// defaults. A flag left at its zero value is treated as unset.
type tunableFlags struct {
	configPath, metricsAddr                    string
	initialSourceStrength, defaultSourceQuality float64
	logWeightFactor                            float64
	maxIterations                              int
}

func addEngineFlags(cmd *cobra.Command) *tunableFlags {
	f := &tunableFlags{}
	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML file seeding initial parameters")
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "address to serve Prometheus /metrics on (disabled if empty)")
	cmd.Flags().Float64Var(&f.initialSourceStrength, "initial-source-strength", 0, "override initial_source_strength (0 leaves config/defaults unchanged)")
	cmd.Flags().Float64Var(&f.defaultSourceQuality, "default-source-quality", 0, "override default_source_quality (0 leaves config/defaults unchanged)")
	cmd.Flags().Float64Var(&f.logWeightFactor, "log-weight-factor", 0, "override log_weight_factor (0 leaves config/defaults unchanged)")
	cmd.Flags().IntVar(&f.maxIterations, "max-iterations", 0, "override the solver's fixed-point iteration cap (0 leaves config/defaults unchanged)")
	return f
}

func replCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read protocol lines from stdin and print each result",
	}
	f := addEngineFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		engine, err := newEngine(f)
		if err != nil {
			return err
		}
		defer engine.Release()

		sessionID := uuid.NewString()
		return runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), engine, sessionID)
	}
	return cmd
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Execute every protocol line in a file, in order",
		Args:  cobra.ExactArgs(1),
	}
	f := addEngineFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(f)
		if err != nil {
			return err
		}
		defer engine.Release()

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer file.Close()

		return runREPL(file, cmd.OutOrStdout(), engine, uuid.NewString())
	}
	return cmd
}

// newEngine builds an Engine from f's --config, the per-tunable
// override flags, and --metrics-addr, shared by repl and run. The
// config/defaults and the override flags are both folded through a
// single params.Builder pass so that all of CONFIGURE's bounds
// checking (spec §4.1) runs uniformly regardless of where a value
// came from.
func newEngine(f *tunableFlags) (*confidis.Engine, error) {
	base := params.Default()
	if f.configPath != "" {
		cf, err := os.Open(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer cf.Close()

		base, err = params.FromYAML(cf)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	b := params.NewBuilder().
		WithInitialSourceStrength(base.InitialSourceStrength).
		WithDefaultSourceQuality(base.DefaultSourceQuality).
		WithLogWeightFactor(base.LogWeightFactor).
		WithMaxIterations(base.MaxIterations)

	if f.initialSourceStrength != 0 {
		b = b.WithInitialSourceStrength(f.initialSourceStrength)
	}
	if f.defaultSourceQuality != 0 {
		b = b.WithDefaultSourceQuality(f.defaultSourceQuality)
	}
	if f.logWeightFactor != 0 {
		b = b.WithLogWeightFactor(f.logWeightFactor)
	}
	if f.maxIterations != 0 {
		b = b.WithMaxIterations(f.maxIterations)
	}

	p, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("build params: %w", err)
	}

	opts := []confidis.Option{confidis.WithLogger(log.NewNoOpLogger()), confidis.WithParams(p)}

	if f.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, confidis.WithRegisterer(reg))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go http.ListenAndServe(f.metricsAddr, mux) //nolint:errcheck
	}

	return confidis.New(opts...), nil
}

// runREPL executes one protocol line per line of r, printing the
// result or error for each to w. sessionID is included so multiple
// concurrent `run` invocations can be told apart in shared logs. Blank
// lines and lines starting with '#' are no-ops, so command scripts can
// carry comments.
func runREPL(r io.Reader, w io.Writer, engine *confidis.Engine, sessionID string) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result, err := engine.Execute(line)
		switch {
		case err != nil:
			fmt.Fprintf(w, "[%s] ERROR %v\n", sessionID, err)
		case result != nil:
			fmt.Fprintf(w, "[%s] OK answer=%s confidence=%.4f\n", sessionID, result.Answer, result.Confidence)
		default:
			fmt.Fprintf(w, "[%s] OK\n", sessionID)
		}
	}
	return scanner.Err()
}
