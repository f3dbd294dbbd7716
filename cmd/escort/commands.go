package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/escort/internal/config"
	"github.com/katalvlaran/escort/internal/logging"
)

// app carries state shared by all subcommands after PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *slog.Logger
}

// newRootCmd builds the command tree; a fresh tree per call keeps tests isolated.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "escort",
		Short: "Minimal-round schedules for two separated agents",
		Long: `escort solves the separated two-agent problem: agents A and B move
alternately on an undirected graph, and after every move of B the two must be
more than D hops apart. It reports the fewest rounds within budget T, or T+1.

Subcommands:
  solve  - solve one problem file and print the schedule
  batch  - solve many files concurrently, checking reference answers
  gen    - write a problem file for a generated topology

Examples:
  escort solve testcases/grid10-2.in
  escort batch 'testcases/*.in' --workers 8 --metrics-out escort.prom
  escort gen grid 10 10 -T 200 -D 2 > grid10-2.in`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(newSolveCmd(a), newBatchCmd(a), newGenCmd(a))

	return root
}

// setup loads configuration, applies global flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.log = logging.New(cfg.Logging, cmd.ErrOrStderr())

	return nil
}

// elapsed logs the wall time of a command when the returned func runs.
func (a *app) elapsed(what string) func() {
	start := time.Now()
	return func() {
		a.log.Info(what+" finished", "elapsed", time.Since(start))
	}
}
