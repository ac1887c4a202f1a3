package model

import (
	"strings"
	"testing"
)

func TestParseAutomatonBasic(t *testing.T) {
	src := "states\na\nb\nc\ntransitions\n(a, x, b)\n(b, x, c)\n"
	c, err := parseAutomaton(strings.NewReader(src), "mem", "comp1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "comp1" {
		t.Errorf("expected name comp1, got %s", c.Name)
	}
	if len(c.States) != 3 {
		t.Errorf("expected 3 states, got %d", len(c.States))
	}
	if c.Initial() != "a" {
		t.Errorf("expected initial state a, got %s", c.Initial())
	}
	if len(c.Transitions) != 2 {
		t.Errorf("expected 2 transitions, got %d", len(c.Transitions))
	}
	want := Transition{From: "a", Action: "x", To: "b"}
	if c.Transitions[0] != want {
		t.Errorf("expected first transition %+v, got %+v", want, c.Transitions[0])
	}
}

func TestParseAutomatonMissingStatesHeader(t *testing.T) {
	_, err := parseAutomaton(strings.NewReader("a\nb\n"), "mem", "comp1")
	if err == nil {
		t.Fatal("expected an error for a missing \"states\" header")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if perr.Kind != InputMalformed {
		t.Errorf("expected InputMalformed, got %s", perr.Kind)
	}
}

func TestParseAutomatonEmptyStateList(t *testing.T) {
	_, err := parseAutomaton(strings.NewReader("states\ntransitions\n"), "mem", "comp1")
	if err == nil {
		t.Fatal("expected an error for an empty state list")
	}
}

func TestParseTransitionMalformed(t *testing.T) {
	cases := []string{
		"a, x, b",     // missing parens
		"(a, x)",      // too few fields
		"(a, x, b, c)", // too many fields
		"(, x, b)",    // empty field
	}
	for _, c := range cases {
		if _, err := parseTransition(c); err == nil {
			t.Errorf("expected an error for malformed transition %q", c)
		}
	}
}

func TestResolveRewritesUnknownActionsToTau(t *testing.T) {
	c := &Automaton{
		Name:   "c1",
		States: []Label{"s0", "s1", "s2"},
		Transitions: []Transition{
			{From: "s0", Action: "a", To: "s1"},
			{From: "s1", Action: "ghost", To: "s2"},
		},
	}
	c.Resolve(Alphabet{"a"})

	if c.Transitions[0].Action != "a" {
		t.Errorf("expected known action 'a' to survive, got %s", c.Transitions[0].Action)
	}
	if c.Transitions[1].Action != Tau {
		t.Errorf("expected unknown action rewritten to Tau, got %s", c.Transitions[1].Action)
	}
	if !c.KnowsAction("a") {
		t.Error("expected Known to contain 'a'")
	}
	if c.KnowsAction("ghost") {
		t.Error("did not expect Known to contain 'ghost'")
	}
	if !c.KnowsAction(Tau) {
		t.Error("Tau must always be known")
	}
}

func TestValidateDetectsNameCollision(t *testing.T) {
	net := &Network{
		Automata: []*Automaton{
			{Name: "dup", States: []Label{"s0"}},
			{Name: "dup", States: []Label{"s0"}},
		},
	}
	err := net.Validate(false)
	if err == nil {
		t.Fatal("expected a NameCollision error")
	}
	perr := err.(*Error)
	if perr.Kind != NameCollision {
		t.Errorf("expected NameCollision, got %s", perr.Kind)
	}
}

func TestValidateStrictUnknownReference(t *testing.T) {
	net := &Network{
		Automata: []*Automaton{
			{
				Name:   "c1",
				States: []Label{"s0", "s1"},
				Transitions: []Transition{
					{From: "s0", Action: Tau, To: "ghost"},
				},
			},
		},
	}
	if err := net.Validate(false); err != nil {
		t.Fatalf("non-strict validate should not catch dangling references: %v", err)
	}
	err := net.Validate(true)
	if err == nil {
		t.Fatal("expected an UnknownReference error in strict mode")
	}
	if err.(*Error).Kind != UnknownReference {
		t.Errorf("expected UnknownReference, got %s", err.(*Error).Kind)
	}
}
