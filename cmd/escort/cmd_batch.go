package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/escort/batch"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		workers      int
		metricsOut   string
		doVerify     bool
		checkAnswers bool
		dedup        string
	)

	cmd := &cobra.Command{
		Use:   "batch GLOB...",
		Short: "Solve many problem files and check reference answers",
		Long: `Solve every matching file on a bounded worker pool.

For FILE.in, a sibling FILE.out holding the expected round count is compared
with the computed answer. Malformed files and mismatches are listed and the
command exits non-zero, but every file is still processed.

Examples:
  escort batch 'testcases/*.in'
  escort batch 'testcases/*.in' --workers 4 --verify --metrics-out escort.prom`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("workers") {
				a.cfg.Batch.Workers = workers
			}
			if f.Changed("metrics-out") {
				a.cfg.Batch.MetricsOut = metricsOut
			}
			if f.Changed("check-answers") {
				a.cfg.Batch.CheckAnswers = checkAnswers
			}
			if f.Changed("verify") {
				a.cfg.Search.Verify = doVerify
			}
			if f.Changed("dedup") {
				a.cfg.Search.Dedup = dedup
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			key, _ := a.cfg.DedupKey()

			files, err := batch.ExpandGlobs(args)
			if err != nil {
				return err
			}

			var metrics *batch.Metrics
			if a.cfg.Batch.MetricsOut != "" {
				metrics = batch.NewMetrics()
			}

			rep, runErr := batch.Run(cmd.Context(), files,
				batch.WithWorkers(a.cfg.Batch.Workers),
				batch.WithAnswerCheck(a.cfg.Batch.CheckAnswers),
				batch.WithVerify(a.cfg.Search.Verify),
				batch.WithDedupKey(key),
				batch.WithLogger(a.log),
				batch.WithMetrics(metrics),
			)
			if rep == nil {
				return runErr
			}
			if metrics != nil {
				if err := metrics.WriteTextfile(a.cfg.Batch.MetricsOut); err != nil {
					a.log.Error("write metrics", "path", a.cfg.Batch.MetricsOut, "error", err)
				}
			}

			failed := rep.Failed()
			if err := printReport(cmd, rep, failed); err != nil {
				return err
			}
			if runErr != nil {
				return runErr
			}
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d instances failed", len(failed), len(rep.Items))
			}

			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&workers, "workers", 0, "concurrent instances (0 = one per CPU)")
	fl.StringVar(&metricsOut, "metrics-out", "", "write Prometheus metrics to this textfile")
	fl.BoolVar(&doVerify, "verify", false, "re-check every emitted path")
	fl.BoolVar(&checkAnswers, "check-answers", true, "compare with FILE.out when present")
	fl.StringVar(&dedup, "dedup", "", "visited-set key: positions-turn or positions")

	return cmd
}

// printReport writes one line per failed item and a summary line.
func printReport(cmd *cobra.Command, rep *batch.Report, failed []batch.Item) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, it := range failed {
		fmt.Fprintf(tw, "%s\t%s\t%v\n", it.File, it.Status, it.Err)
	}
	fmt.Fprintf(tw, "solved=%d infeasible=%d failed=%d total=%d\n",
		rep.Counts[batch.StatusSolved],
		rep.Counts[batch.StatusInfeasible],
		len(failed),
		len(rep.Items),
	)

	return tw.Flush()
}
