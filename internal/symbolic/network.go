package symbolic

import (
	"fmt"

	"github.com/MichalKnapik/dd-net-checker/internal/bdd"
	"github.com/MichalKnapik/dd-net-checker/internal/model"
)

// EncodedNetwork is the global artifact spec.md §4.3 composes: the
// global initial state, the global transition relation, and the
// variable bookkeeping the reachability engine needs to take images.
type EncodedNetwork struct {
	Actions    *Block
	ActionVars []bdd.Var

	Automata []*EncodedAutomaton

	InitGlobal bdd.Node
	Global     bdd.Node

	UnprimedVars []bdd.Var
	PrimedVars   []bdd.Var
	ToUnprimed   bdd.Pairing
}

// EncodeNetwork encodes the action alphabet, then every automaton in
// declaration order, then composes the global transition relation as
// the disjunction of per-action synchronized slices and per-automaton
// silent-action slices, per spec.md §4.3.
func EncodeNetwork(mgr bdd.Manager, net *model.Network) (*EncodedNetwork, error) {
	en := &EncodedNetwork{}

	if len(net.Alphabet) > 0 {
		labels := make([]model.Label, len(net.Alphabet))
		copy(labels, net.Alphabet)
		actions, err := Encode(mgr, labels, "act")
		if err != nil {
			return nil, fmt.Errorf("symbolic: encode action alphabet: %w", err)
		}
		en.Actions = actions
		en.ActionVars = actions.Vars
	}

	encoded := make([]*EncodedAutomaton, 0, len(net.Automata))
	var allUnprimed, allPrimed []bdd.Var
	seenVars := make(map[bdd.Var]string)
	seenNames := make(map[string]struct{}, len(net.Automata))
	for _, c := range net.Automata {
		if _, dup := seenNames[c.Name]; dup {
			return nil, &model.Error{Kind: model.NameCollision,
				Msg: fmt.Sprintf("automaton name %q used more than once: state-variable prefixes collide", c.Name)}
		}
		seenNames[c.Name] = struct{}{}
		ea, err := EncodeAutomaton(mgr, c, en.Actions)
		if err != nil {
			return nil, err
		}
		for _, v := range append(append([]bdd.Var{}, ea.UnprimedVars...), ea.PrimedVars...) {
			if owner, dup := seenVars[v]; dup {
				return nil, &model.Error{Kind: model.NameCollision,
					Msg: fmt.Sprintf("state variable blocks of %q and %q are not disjoint", owner, c.Name)}
			}
			seenVars[v] = c.Name
		}
		encoded = append(encoded, ea)
		allUnprimed = append(allUnprimed, ea.UnprimedVars...)
		allPrimed = append(allPrimed, ea.PrimedVars...)
	}

	toUnprimed, err := mgr.MakePairing(allPrimed, allUnprimed)
	if err != nil {
		return nil, fmt.Errorf("symbolic: build global primed->unprimed pairing: %w", err)
	}

	en.Automata = encoded
	en.UnprimedVars = allUnprimed
	en.PrimedVars = allPrimed
	en.ToUnprimed = toUnprimed

	initParts := make([]bdd.Node, len(encoded))
	for i, ea := range encoded {
		initParts[i] = ea.Init
	}
	en.InitGlobal = mgr.And(initParts...)

	global := mgr.False()

	for _, a := range net.Alphabet {
		var participants, nonParticipants []*EncodedAutomaton
		for _, ea := range encoded {
			if ea.Source.KnowsAction(a) {
				participants = append(participants, ea)
			} else {
				nonParticipants = append(nonParticipants, ea)
			}
		}
		if len(participants) == 0 {
			continue
		}
		parts := make([]bdd.Node, 0, len(participants)+len(nonParticipants))
		for _, ea := range participants {
			parts = append(parts, ea.Relations[a])
		}
		for _, ea := range nonParticipants {
			parts = append(parts, ea.Identity)
		}
		global = mgr.Or(global, mgr.And(parts...))
	}

	falseNode := mgr.False()
	for i, ea := range encoded {
		tau := ea.Relations[model.Tau]
		if mgr.Equal(tau, falseNode) {
			continue
		}
		parts := make([]bdd.Node, 0, len(encoded))
		parts = append(parts, tau)
		for j, other := range encoded {
			if j == i {
				continue
			}
			parts = append(parts, other.Identity)
		}
		global = mgr.Or(global, mgr.And(parts...))
	}

	en.Global = global
	return en, nil
}
