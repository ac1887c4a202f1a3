package symbolic

import (
	"fmt"

	"github.com/MichalKnapik/dd-net-checker/internal/bdd"
	"github.com/MichalKnapik/dd-net-checker/internal/model"
)

// Result is what Reachable reports: the fixed point itself, how many
// iterations it took to reach it, the reachable-state count, and
// (optionally) the approximate transition count from spec.md §4.4.
type Result struct {
	Reach             bdd.Node
	Iterations        int
	ReachableCount    float64
	ApproxTransitions float64
}

// Progress is called once per fixpoint iteration that discovers new
// states, with the number of newly discovered states, for --verbose
// reporting; the final iteration that finds none does not call it. May
// be nil.
type Progress func(iteration int, newStates float64, reachableSoFar float64)

// Reachable runs the frontier-based forward-image fixpoint of
// spec.md §4.4 starting at en.InitGlobal over en.Global, terminating
// when an iteration discovers no new states. If countTransitions is
// set, it also computes the approximate transition count: the global
// relation's satisfying-assignment count restricted to reachable
// source states, over unprimed ∪ action ∪ primed vars.
//
// Partial results are returned alongside a BddLimitExceeded error if
// the manager's resource limit trips mid-fixpoint.
func Reachable(mgr bdd.Manager, en *EncodedNetwork, countTransitions bool, onProgress Progress) (Result, error) {
	srcVars := make([]bdd.Var, 0, len(en.UnprimedVars)+len(en.ActionVars))
	srcVars = append(srcVars, en.UnprimedVars...)
	srcVars = append(srcVars, en.ActionVars...)

	reach := en.InitGlobal
	frontier := en.InitGlobal
	iter := 0

	for {
		postPrimed := mgr.Exist(mgr.And(frontier, en.Global), srcVars)
		post := mgr.Substitute(postPrimed, en.ToUnprimed)
		newStates := mgr.And(post, mgr.Not(reach))

		if err := mgr.Err(); err != nil {
			return Result{Reach: reach, Iterations: iter, ReachableCount: mgr.SatCount(reach, en.UnprimedVars)},
				&model.Error{Kind: model.BddLimitExceeded, Msg: fmt.Sprintf("iteration %d: %v", iter, err)}
		}

		if mgr.Equal(newStates, mgr.False()) {
			break
		}

		reach = mgr.Or(reach, newStates)
		iter++
		if onProgress != nil {
			onProgress(iter, mgr.SatCount(newStates, en.UnprimedVars), mgr.SatCount(reach, en.UnprimedVars))
		}
		frontier = newStates
	}

	result := Result{
		Reach:          reach,
		Iterations:     iter,
		ReachableCount: mgr.SatCount(reach, en.UnprimedVars),
	}

	if countTransitions {
		restricted := mgr.And(en.Global, reach)
		allVars := make([]bdd.Var, 0, len(en.UnprimedVars)+len(en.ActionVars)+len(en.PrimedVars))
		allVars = append(allVars, en.UnprimedVars...)
		allVars = append(allVars, en.ActionVars...)
		allVars = append(allVars, en.PrimedVars...)
		result.ApproxTransitions = mgr.SatCount(restricted, allVars)
	}

	if err := mgr.Err(); err != nil {
		return result, &model.Error{Kind: model.BddLimitExceeded, Msg: err.Error()}
	}
	return result, nil
}
