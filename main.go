// Command dd-net-checker computes the reachable global state space of a
// network of synchronizing finite-state automata using ROBDDs. See
// SPEC_FULL.md for the full design; this file is only the CLI surface
// spec.md §6 keeps out of the symbolic core.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MichalKnapik/dd-net-checker/internal/model"
	"github.com/MichalKnapik/dd-net-checker/internal/run"
)

var (
	flagSync            string
	flagModels          []string
	flagVerbose         bool
	flagDotDir          string
	flagCountTrans      bool
	flagStrict          bool
	flagInitialCapacity int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dd-net-checker",
		Short:         "Symbolic reachability for networks of synchronizing automata",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Encode a network and compute its reachable state count",
		RunE:  runRun,
	}
	cmd.Flags().StringVar(&flagSync, "sync", "", "path to the sync.modgraph action-alphabet file (required)")
	cmd.Flags().StringArrayVar(&flagModels, "model", nil, "path to a component *.modgraph file (repeatable, required)")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print per-iteration reachable counts")
	cmd.Flags().StringVar(&flagDotDir, "dot", "", "directory to write each automaton's transition graph as Graphviz DOT")
	cmd.Flags().BoolVar(&flagCountTrans, "count-transitions", false, "also report the approximate reachable transition count")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "fail if a transition references an undeclared state")
	cmd.Flags().IntVar(&flagInitialCapacity, "bdd-initial-vars", 8, "initial BDD variable table size")
	cmd.MarkFlagRequired("sync")
	cmd.MarkFlagRequired("model")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagVerbose)
	defer logger.Sync()

	opts := run.Options{
		SyncPath:           flagSync,
		ModelPaths:         flagModels,
		Verbose:            flagVerbose,
		DotDir:             flagDotDir,
		CountTransitions:   flagCountTrans,
		Strict:             flagStrict,
		InitialVarCapacity: flagInitialCapacity,
	}

	report, err := run.Do(opts, logger)
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}

	fmt.Printf("reachable states: %d\n", int64(report.Result.ReachableCount))
	if flagCountTrans {
		fmt.Printf("approximate reachable transitions: %d\n", int64(report.Result.ApproxTransitions))
	}
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func exitCode(err error) int {
	var modelErr *model.Error
	if errors.As(err, &modelErr) && modelErr.Kind == model.BddLimitExceeded {
		return 2
	}
	return 1
}
