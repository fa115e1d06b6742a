// Command dynaforest drives the benchmark harness and a one-shot query
// executor over the dynamic-forest engines in this module (spec §6.3).
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynaforest/bench"
	"github.com/katalvlaran/dynaforest/core"
	"github.com/katalvlaran/dynaforest/dynamictree"
	"github.com/katalvlaran/dynaforest/stt"
	"github.com/katalvlaran/dynaforest/workload"
)

// errUsage marks a CLI invocation that does not match spec §6.3, mapped
// to exit status 1.
var errUsage = errors.New("dynaforest: usage error")

// cutFromParentErr and cutFromParentBool are the two shapes CutFromParent
// takes across engines: stt.Forest rejects it with an error (it has no
// represented-parent concept of its own to detach), dynamictree.Forest
// performs it and reports whether v actually had a parent.
type cutFromParentErr interface{ CutFromParent(v int) error }
type cutFromParentBool interface{ CutFromParent(v int) bool }

// lcaEngine is satisfied by both stt.Forest (which rejects it) and
// dynamictree.Forest (which answers it); the signatures already agree.
type lcaEngine interface{ LCA(u, v int) (int, error) }

func buildEngine(name string, n int) (core.Engine, error) {
	switch name {
	case "greedy":
		return stt.NewGreedy(n), nil
	case "mtr":
		return stt.NewMTR(n), nil
	case "ltp":
		return stt.NewLTP(n), nil
	case "dtree":
		return dynamictree.NewConnectivityForest(n), nil
	default:
		return nil, fmt.Errorf("%w: unknown --engine %q (want greedy|mtr|ltp|dtree)", errUsage, name)
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var engineName string

	root := &cobra.Command{
		Use:           "dynaforest",
		Short:         "Benchmark and drive dynamic-forest connectivity engines",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&engineName, "engine", "greedy", "engine to use: greedy|mtr|ltp|dtree")

	var jsonOut bool
	benchCmd := &cobra.Command{
		Use:   "bench [--json] <repeat> <query-file>",
		Short: "Time repeat runs of a query file against an engine",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repeat, err := strconv.Atoi(args[0])
			if err != nil || repeat <= 0 {
				return fmt.Errorf("%w: <repeat> must be a positive integer, got %q", errUsage, args[0])
			}

			n, items, err := readQueryFile(args[1])
			if err != nil {
				return err
			}
			if _, err := buildEngine(engineName, n); err != nil {
				return err
			}

			if !jsonOut {
				fmt.Fprintf(cmd.OutOrStdout(),
					"Successfully parsed file. Now executing %d queries on %d vertices %d times.\n",
					len(items), n, repeat)
			}

			res, err := bench.Run(engineName, n, repeat, func() core.Engine {
				eng, _ := buildEngine(engineName, n)

				return eng
			}, items)
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}

			if jsonOut {
				return res.WriteJSON(cmd.OutOrStdout())
			}

			return res.WriteText(cmd.OutOrStdout())
		},
	}
	benchCmd.Flags().BoolVar(&jsonOut, "json", false, "emit a single JSON result object instead of plain text")
	root.AddCommand(benchCmd)

	computeCmd := &cobra.Command{
		Use:   "compute <query-file>",
		Short: "Execute a query file once and print each connectivity answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, items, err := readQueryFile(args[0])
			if err != nil {
				return err
			}

			eng, err := buildEngine(engineName, n)
			if err != nil {
				return err
			}

			return computeQueries(cmd.OutOrStdout(), eng, items)
		},
	}
	root.AddCommand(computeCmd)

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dynaforest: %v\n", err)

		return exitCode(err)
	}

	return 0
}

func readQueryFile(path string) (int, []workload.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", workload.ErrIO, err)
	}
	defer f.Close()

	return workload.ParseFile(f)
}

// computeQueries mirrors parse_input.h's compute_queries: every LINK/CUT
// mutates the engine in place, every PATH query prints 0 or 1, and the
// dynamic-tree-only item types are dispatched through the optional
// interfaces above.
func computeQueries(w io.Writer, eng core.Engine, items []workload.Item) error {
	for _, it := range items {
		switch it.Type {
		case workload.Link:
			if err := eng.Link(it.A, it.B); err != nil {
				return fmt.Errorf("compute: link(%d,%d): %w", it.A, it.B, err)
			}
		case workload.Cut:
			if err := eng.Cut(it.A, it.B); err != nil {
				return fmt.Errorf("compute: cut(%d,%d): %w", it.A, it.B, err)
			}
		case workload.CutFromParent:
			switch e := eng.(type) {
			case cutFromParentErr:
				if err := e.CutFromParent(it.A); err != nil {
					return fmt.Errorf("compute: cut-from-parent(%d): %w", it.A, err)
				}
			case cutFromParentBool:
				e.CutFromParent(it.A)
			default:
				return fmt.Errorf("compute: cut-from-parent(%d): engine does not support it", it.A)
			}
		case workload.LCA:
			e, ok := eng.(lcaEngine)
			if !ok {
				return fmt.Errorf("compute: lca(%d,%d): engine does not support it", it.A, it.B)
			}
			anc, err := e.LCA(it.A, it.B)
			if err != nil {
				return fmt.Errorf("compute: lca(%d,%d): %w", it.A, it.B, err)
			}
			if _, err := fmt.Fprintf(w, "%d\n", anc); err != nil {
				return err
			}
		case workload.Path:
			yes := 0
			if eng.Connected(it.A, it.B) {
				yes = 1
			}
			if _, err := fmt.Fprintf(w, "%d\n", yes); err != nil {
				return err
			}
		}
	}

	return nil
}

// exitCode maps a returned error to spec §6.3's exit status: cobra's own
// argument/flag-parsing errors and our own errUsage land on 1 by default,
// workload parse/IO failures land on 2, and anything wrapping
// core.ErrPreconditionViolated (a Link/Cut/LCA precondition failing
// mid-run) is an execution failure, 3.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, workload.ErrParse), errors.Is(err, workload.ErrIO):
		return 2
	case errors.Is(err, core.ErrPreconditionViolated):
		return 3
	default:
		return 1
	}
}
