package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/occupancy/config"
	"github.com/katalvlaran/occupancy/enumerate"
	"github.com/katalvlaran/occupancy/normalize"
	"github.com/katalvlaran/occupancy/report"
)

// runEnumerate normalizes the inputs, runs the search and writes the report.
func runEnumerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	applySearchFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	f, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if stream && f != report.Text {
		return fmt.Errorf("--stream requires --format text, got %q", f)
	}
	opts, err := cfg.SearchOptions()
	if err != nil {
		return err
	}

	r, err := reduce()
	if err != nil {
		return err
	}

	var ts *report.TextStream
	if stream {
		ts, err = report.NewTextStream(cmd.OutOrStdout(), r)
		if err != nil {
			return err
		}
		opts = append(opts, enumerate.WithCountOnly(), enumerate.WithOnConfiguration(ts.Add))
	} else if countOnly {
		opts = append(opts, enumerate.WithCountOnly())
	}
	opts = append(opts, enumerate.WithContext(ctx))

	start := time.Now()
	res, err := enumerate.Enumerate(r, opts...)
	fields := []zap.Field{
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("residual_levels", r.ResidualLevels),
	}
	if res != nil {
		fields = append(fields,
			zap.Int("count", res.Count),
			zap.Int64("nodes", res.Nodes),
			zap.Int64("pruned", res.Pruned))
	}
	if err != nil {
		logger.Error("Enumeration failed", append(fields, zap.Error(err))...)
		if ts != nil {
			_ = ts.Flush()
		}

		return err
	}
	logger.Info("Enumeration finished", fields...)

	if ts != nil {
		return ts.Close()
	}

	return report.Write(cmd.OutOrStdout(), f, r, res)
}

// runReduce prints the reduced problem without searching.
func runReduce(cmd *cobra.Command, args []string) error {
	f, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	r, err := reduce()
	if err != nil {
		return err
	}

	return report.WriteProblem(cmd.OutOrStdout(), f, r)
}

// reduce runs the normalizer on the flag values and logs the outcome.
func reduce() (normalize.Reduced, error) {
	r, err := normalize.Reduce(particles, energy)
	if err != nil {
		logger.Warn("Rejected input",
			zap.Int("particles", particles),
			zap.Float64("energy", energy),
			zap.Error(err))

		return r, err
	}
	logger.Debug("Reduced problem",
		zap.Int("particles", r.Particles),
		zap.Stringer("energy", r.Energy),
		zap.Stringer("ground_energy", r.GroundEnergy),
		zap.Int("max_level", r.MaxLevel),
		zap.Int("frozen", r.Frozen),
		zap.Int("residual_levels", r.ResidualLevels))

	return r, nil
}

// applySearchFlags overrides config values with flags the user set explicitly.
func applySearchFlags(cmd *cobra.Command, c *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("max-levels") {
		c.Search.MaxLevels = maxLevels
	}
	if fl.Changed("workers") {
		c.Search.Workers = workers
	}
	if fl.Changed("no-prune") {
		c.Search.Prune = !noPrune
	}
	if fl.Changed("time-limit") {
		c.Search.TimeLimit = timeLimit
	}
	if fl.Changed("step-budget") {
		c.Search.StepBudget = stepBudget
	}
}

// outputFormat resolves --format over the config default.
func outputFormat(cmd *cobra.Command) (report.Format, error) {
	name := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		name = format
	}
	f, err := report.ParseFormat(name)
	if err != nil {
		return "", fmt.Errorf("--format: %w", err)
	}

	return f, nil
}
