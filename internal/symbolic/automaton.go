package symbolic

import (
	"fmt"

	"github.com/MichalKnapik/dd-net-checker/internal/bdd"
	"github.com/MichalKnapik/dd-net-checker/internal/model"
)

// EncodedAutomaton is the four artifacts spec.md §4.2 builds for one
// component: its initial-state BDD, its per-action transition
// relations (indexed by K_i ∪ {τ}), its identity relation, and the
// state-variable blocks used to build all three.
type EncodedAutomaton struct {
	Source *model.Automaton

	States *PrimedBlock

	Init      bdd.Node
	Identity  bdd.Node
	Relations map[model.Label]bdd.Node

	UnprimedVars []bdd.Var
	PrimedVars   []bdd.Var
}

// EncodeAutomaton builds one component's artifacts. actionVars is the
// network-wide action alphabet encoding, or nil when the alphabet is
// empty (every transition is τ).
func EncodeAutomaton(mgr bdd.Manager, c *model.Automaton, actionVars *Block) (*EncodedAutomaton, error) {
	states, err := EncodeWithPrimed(mgr, c.States, c.Name+"state")
	if err != nil {
		return nil, fmt.Errorf("symbolic: encode states of automaton %q: %w", c.Name, err)
	}

	initNode, ok := states.Unprimed.Node(c.Initial())
	if !ok {
		return nil, &model.Error{Kind: model.UnknownReference,
			Msg: fmt.Sprintf("automaton %q: initial state %q not found in its own encoding", c.Name, c.Initial())}
	}

	idParts := make([]bdd.Node, 0, len(c.States))
	for _, s := range c.States {
		un, _ := states.Unprimed.Node(s)
		pr, _ := states.Primed.Node(s)
		idParts = append(idParts, mgr.And(un, pr))
	}
	identity := mgr.Or(idParts...)

	relations := make(map[model.Label]bdd.Node, len(c.Known)+1)
	relations[model.Tau] = mgr.False()
	for a := range c.Known {
		relations[a] = mgr.False()
	}

	for _, t := range c.Transitions {
		sNode, ok := states.Unprimed.Node(t.From)
		if !ok {
			return nil, &model.Error{Kind: model.UnknownReference,
				Msg: fmt.Sprintf("automaton %q: transition source %q not declared", c.Name, t.From)}
		}
		s2Node, ok := states.Primed.Node(t.To)
		if !ok {
			return nil, &model.Error{Kind: model.UnknownReference,
				Msg: fmt.Sprintf("automaton %q: transition target %q not declared", c.Name, t.To)}
		}

		var labelNode bdd.Node
		if t.Action == model.Tau {
			labelNode = mgr.True()
		} else {
			if actionVars == nil {
				return nil, &model.Error{Kind: model.UnknownReference,
					Msg: fmt.Sprintf("automaton %q: action %q referenced with an empty network alphabet", c.Name, t.Action)}
			}
			n, ok := actionVars.Node(t.Action)
			if !ok {
				return nil, &model.Error{Kind: model.UnknownReference,
					Msg: fmt.Sprintf("automaton %q: action %q not in the network alphabet", c.Name, t.Action)}
			}
			labelNode = n
		}

		piece := mgr.And(sNode, labelNode, s2Node)
		relations[t.Action] = mgr.Or(relations[t.Action], piece)
	}

	return &EncodedAutomaton{
		Source:       c,
		States:       states,
		Init:         initNode,
		Identity:     identity,
		Relations:    relations,
		UnprimedVars: states.Unprimed.Vars,
		PrimedVars:   states.Primed.Vars,
	}, nil
}
