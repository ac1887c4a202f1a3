// Package model holds the plain data shapes read from .modgraph files:
// labels, the action alphabet, and component automata. Nothing here
// touches the BDD manager; encoding lives in internal/symbolic.
package model

import "fmt"

// Label identifies an action or a local state. Uniqueness is only
// required within its enclosing list (the action alphabet, or one
// automaton's state list).
type Label string

// Tau is the distinguished silent action. It is never a member of an
// Alphabet and is always implicitly known by every automaton.
const Tau Label = "τ"

// Alphabet is the network's shared, ordered, duplicate-free list of
// synchronizing action labels.
type Alphabet []Label

// Index returns the position of a in the alphabet, or -1 if a is not a
// synchronizing action (including Tau, which is never a member).
func (a Alphabet) Index(label Label) int {
	for i, l := range a {
		if l == label {
			return i
		}
	}
	return -1
}

// Transition is one edge of a component automaton's transition set.
type Transition struct {
	From   Label
	Action Label
	To     Label
}

// Automaton is one component C_i = (name, S_i, s0_i, T_i, K_i). States
// holds S_i in declaration order; States[0] is s0_i. Known is K_i, the
// action labels that actually appear on some transition of T_i — it
// never includes Tau.
type Automaton struct {
	Name        string
	States      []Label
	Transitions []Transition
	Known       map[Label]struct{}
}

// Initial returns s0_i, the first declared state.
func (c *Automaton) Initial() Label {
	return c.States[0]
}

// HasState reports whether s is one of C_i's declared states.
func (c *Automaton) HasState(s Label) bool {
	for _, st := range c.States {
		if st == s {
			return true
		}
	}
	return false
}

// KnowsAction reports whether a ∈ K_i. Tau is always known.
func (c *Automaton) KnowsAction(a Label) bool {
	if a == Tau {
		return true
	}
	_, ok := c.Known[a]
	return ok
}

// Resolve rewrites every transition whose label is absent from the
// network alphabet to Tau, and fills in Known from what remains,
// per spec.md §4.2's "read" operation. It must be called once, after
// parsing and before Automaton encoding.
func (c *Automaton) Resolve(alphabet Alphabet) {
	c.Known = make(map[Label]struct{})
	for i, t := range c.Transitions {
		if t.Action == Tau {
			continue
		}
		if alphabet.Index(t.Action) < 0 {
			c.Transitions[i].Action = Tau
			continue
		}
		c.Known[t.Action] = struct{}{}
	}
}

// Network is the full input to one run: the shared alphabet and the
// ordered list of component automata, in declaration order.
type Network struct {
	Alphabet Alphabet
	Automata []*Automaton
}

// Validate checks the cross-automaton invariants spec.md leaves to the
// "caller" (here: the parser's caller, before any BDD work starts):
// distinct automaton names, and — if strict is requested — that every
// transition only references declared states.
func (n *Network) Validate(strict bool) error {
	seen := make(map[string]struct{}, len(n.Automata))
	for _, c := range n.Automata {
		if _, dup := seen[c.Name]; dup {
			return &Error{Kind: NameCollision, Msg: fmt.Sprintf("automaton name %q used more than once", c.Name)}
		}
		seen[c.Name] = struct{}{}
		if len(c.States) == 0 {
			return &Error{Kind: InputMalformed, Msg: fmt.Sprintf("automaton %q declares no states", c.Name)}
		}
		if strict {
			for _, t := range c.Transitions {
				if !c.HasState(t.From) || !c.HasState(t.To) {
					return &Error{Kind: UnknownReference, Msg: fmt.Sprintf(
						"automaton %q: transition (%s,%s,%s) references an undeclared state",
						c.Name, t.From, t.Action, t.To)}
				}
			}
		}
	}
	return nil
}
