package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/escort/builder"
	"github.com/katalvlaran/escort/instance"
	"github.com/katalvlaran/escort/joint"
)

// genFlags are shared by all gen subcommands. Vertex flags are 1-indexed;
// 0 selects the default (A: 1 → n, B: n → 1, a full swap).
type genFlags struct {
	budget    int
	threshold int
	startA    int
	targetA   int
	startB    int
	targetB   int
	seed      int64
	out       string
}

func newGenCmd(a *app) *cobra.Command {
	gf := &genFlags{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a problem file for a generated topology",
		Long: `Generate a problem file from a deterministic topology.

Subcommands:
  path N | cycle N | star N | complete N | grid ROWS COLS | random N P

By default A travels from vertex 1 to vertex n and B the other way.

Examples:
  escort gen cycle 12 -T 20 -D 2
  escort gen grid 10 10 -T 200 -D 2 --out grid10-2.in
  escort gen random 30 0.15 --seed 7 -T 50 -D 1`,
	}

	pf := cmd.PersistentFlags()
	pf.IntVarP(&gf.budget, "budget", "T", 100, "round budget T")
	pf.IntVarP(&gf.threshold, "threshold", "D", 1, "separation threshold D")
	pf.IntVar(&gf.startA, "start-a", 0, "start vertex of A (1-indexed)")
	pf.IntVar(&gf.targetA, "target-a", 0, "target vertex of A (1-indexed)")
	pf.IntVar(&gf.startB, "start-b", 0, "start vertex of B (1-indexed)")
	pf.IntVar(&gf.targetB, "target-b", 0, "target vertex of B (1-indexed)")
	pf.Int64Var(&gf.seed, "seed", 1, "seed for random topologies")
	pf.StringVarP(&gf.out, "out", "o", "", "output file (default stdout)")

	sized := func(use, short string, mk func(n int) builder.Constructor) *cobra.Command {
		return &cobra.Command{
			Use:   use + " N",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := atoiArg(args[0], "N")
				if err != nil {
					return err
				}
				return gf.emit(a, cmd, mk(n))
			},
		}
	}

	grid := &cobra.Command{
		Use:   "grid ROWS COLS",
		Short: "Rectangular grid, vertices numbered row-major",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := atoiArg(args[0], "ROWS")
			if err != nil {
				return err
			}
			cols, err := atoiArg(args[1], "COLS")
			if err != nil {
				return err
			}
			return gf.emit(a, cmd, builder.Grid(rows, cols))
		},
	}

	random := &cobra.Command{
		Use:   "random N P",
		Short: "Erdős–Rényi G(n,p) graph seeded by --seed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := atoiArg(args[0], "N")
			if err != nil {
				return err
			}
			p, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("P: %q is not a number", args[1])
			}
			return gf.emit(a, cmd, builder.RandomSparse(n, p), builder.WithSeed(gf.seed))
		},
	}

	cmd.AddCommand(
		sized("path", "Simple path 1-2-…-n", builder.Path),
		sized("cycle", "Cycle of n vertices", builder.Cycle),
		sized("star", "Star with hub 1", builder.Star),
		sized("complete", "Complete graph K_n", builder.Complete),
		grid,
		random,
	)

	return cmd
}

func atoiArg(s, name string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", name, s)
	}
	return v, nil
}

// emit builds the topology, assembles the instance and writes it.
func (gf *genFlags) emit(a *app, cmd *cobra.Command, con builder.Constructor, bopts ...builder.BuilderOption) error {
	topo, err := builder.BuildEdges(bopts, con)
	if err != nil {
		return err
	}

	pick := func(v, def int) int {
		if v == 0 {
			return def
		}
		return v - 1
	}
	last := topo.N - 1
	in := &instance.Instance{
		N:         topo.N,
		Edges:     topo.Edges,
		Budget:    gf.budget,
		Threshold: gf.threshold,
		Start:     joint.Pair{A: pick(gf.startA, 0), B: pick(gf.startB, last)},
		Target:    joint.Pair{A: pick(gf.targetA, last), B: pick(gf.targetB, 0)},
	}
	if err := in.Validate(); err != nil {
		return err
	}

	if err := writeInstance(cmd.OutOrStdout(), gf.out, in); err != nil {
		return err
	}
	a.log.Debug("instance generated", "vertices", in.N, "edges", len(in.Edges), "out", gf.out)

	return nil
}

// writeInstance writes in to path, or to stdout when path is empty. The file
// is closed explicitly so a failed flush to disk is reported.
func writeInstance(stdout io.Writer, path string, in *instance.Instance) error {
	if path == "" {
		return instance.Write(stdout, in)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := instance.Write(f, in); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
