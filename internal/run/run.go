// Package run wires the external collaborators spec.md §1 keeps out of
// the symbolic core — file parsing, a BDD manager instance, and
// diagnostic printing — into one call a thin CLI can invoke.
package run

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/MichalKnapik/dd-net-checker/internal/bdd"
	"github.com/MichalKnapik/dd-net-checker/internal/diagram"
	"github.com/MichalKnapik/dd-net-checker/internal/model"
	"github.com/MichalKnapik/dd-net-checker/internal/symbolic"
)

// Options mirrors the CLI surface from SPEC_FULL.md §6.2.
type Options struct {
	SyncPath         string
	ModelPaths       []string
	Verbose          bool
	DotDir           string
	CountTransitions bool
	Strict           bool

	// InitialVarCapacity sizes the BDD manager's starting variable
	// table; it only affects how many times NewVars has to grow the
	// table, never correctness.
	InitialVarCapacity int
}

// Report is the end-to-end outcome: the parsed network, the encoding,
// and the reachability result, everything a caller would want to print
// or assert against in a test.
type Report struct {
	Network *model.Network
	Encoded *symbolic.EncodedNetwork
	Result  symbolic.Result
}

// Do loads the model files, encodes the network, and runs reachability,
// logging progress through log when Verbose is set. It is the single
// entrypoint spec.md §6 describes as "(sync_path, [model_paths],
// options)".
func Do(opts Options, log *zap.Logger) (Report, error) {
	if log == nil {
		log = zap.NewNop()
	}

	net, err := model.LoadNetwork(opts.SyncPath, opts.ModelPaths, opts.Strict)
	if err != nil {
		return Report{}, err
	}

	if len(net.Alphabet) == 0 {
		log.Warn("empty action alphabet: every transition is being treated as τ")
	}
	for _, c := range net.Automata {
		log.Debug("parsed automaton",
			zap.String("name", c.Name),
			zap.Int("states", len(c.States)),
			zap.Int("transitions", len(c.Transitions)),
			zap.Int("known_actions", len(c.Known)))
	}

	if opts.DotDir != "" {
		for _, c := range net.Automata {
			path, err := diagram.WriteFile(opts.DotDir, c)
			if err != nil {
				return Report{}, err
			}
			log.Debug("wrote diagram", zap.String("automaton", c.Name), zap.String("path", path))
		}
	}

	capacity := opts.InitialVarCapacity
	if capacity <= 0 {
		capacity = 8
	}
	mgr, err := bdd.NewRuddManager(capacity)
	if err != nil {
		return Report{}, fmt.Errorf("run: %w", err)
	}

	encoded, err := symbolic.EncodeNetwork(mgr, net)
	if err != nil {
		return Report{}, err
	}

	start := time.Now()
	var onProgress symbolic.Progress
	if opts.Verbose {
		onProgress = func(iteration int, newStates, reachableSoFar float64) {
			log.Info("reachability iteration",
				zap.Int("iteration", iteration),
				zap.Float64("new_states", newStates),
				zap.Float64("reachable_so_far", reachableSoFar))
		}
	}

	result, err := symbolic.Reachable(mgr, encoded, opts.CountTransitions, onProgress)
	elapsed := time.Since(start)
	if err != nil {
		return Report{Network: net, Encoded: encoded, Result: result}, err
	}

	log.Info("reachability complete",
		zap.Float64("reachable_states", result.ReachableCount),
		zap.Int("iterations", result.Iterations),
		zap.Duration("elapsed", elapsed))
	if opts.CountTransitions {
		log.Info("approximate transition count", zap.Float64("transitions", result.ApproxTransitions))
	}

	return Report{Network: net, Encoded: encoded, Result: result}, nil
}
