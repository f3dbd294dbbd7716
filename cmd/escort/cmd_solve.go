package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/escort/instance"
	"github.com/katalvlaran/escort/joint"
	"github.com/katalvlaran/escort/verify"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		dedup    string
		doVerify bool
	)

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve one problem file",
		Long: `Solve one problem file and print the answer.

Output (1-indexed):
  rounds
  A positions, one per round boundary
  B positions, one per round boundary

When no schedule fits in T rounds only T+1 is printed.

Examples:
  escort solve grid10-2.in
  escort solve grid10-2.in --dedup positions --verify`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("dedup") {
				a.cfg.Search.Dedup = dedup
			}
			if cmd.Flags().Changed("verify") {
				a.cfg.Search.Verify = doVerify
			}
			key, err := a.cfg.DedupKey()
			if err != nil {
				return err
			}

			defer a.elapsed("solve")()
			in, err := instance.ParseFile(args[0])
			if err != nil {
				return err
			}
			sol, err := instance.Solve(cmd.Context(), in, joint.WithDedupKey(key))
			if err != nil {
				return err
			}
			res := sol.Result
			a.log.Debug("search stats",
				"file", args[0],
				"dedup", key.String(),
				"expanded", res.Stats.Expanded,
				"enqueued", res.Stats.Enqueued,
				"pruned", res.Stats.Pruned,
				"deduped", res.Stats.Deduped,
			)

			if a.cfg.Search.Verify && res.Found {
				if err := verify.Check(res.Rounds, sol.Path, sol.Dist, in.Threshold, nil); err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				if err := verify.CheckMoves(sol.Graph, sol.Path, in.Start, in.Target); err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
			}

			return instance.WriteResult(cmd.OutOrStdout(), res, sol.Path)
		},
	}

	cmd.Flags().StringVar(&dedup, "dedup", "", "visited-set key: positions-turn or positions")
	cmd.Flags().BoolVar(&doVerify, "verify", false, "re-check the emitted path")

	return cmd
}
