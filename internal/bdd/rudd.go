package bdd

import (
	"fmt"

	"github.com/dalzilio/rudd"
)

// RuddManager implements Manager on top of github.com/dalzilio/rudd, the
// only BDD package available to this program. rudd declares its total
// variable count up front (BuDDy-style) and grows it via SetVarnum, so
// NewVars grows the underlying table lazily instead of pre-declaring
// everything the network will ever need.
type RuddManager struct {
	bdd       *rudd.BDD
	allocated int
}

// NewRuddManager constructs a Manager with room for at least initialCap
// variables (grown automatically as NewVars is called beyond it).
func NewRuddManager(initialCap int) (*RuddManager, error) {
	if initialCap < 1 {
		initialCap = 1
	}
	b, err := rudd.New(initialCap)
	if err != nil {
		return nil, fmt.Errorf("bdd: initialize rudd manager: %w", err)
	}
	return &RuddManager{bdd: b}, nil
}

func (m *RuddManager) True() Node  { return m.bdd.True() }
func (m *RuddManager) False() Node { return m.bdd.False() }

func (m *RuddManager) NewVars(n int) ([]Var, error) {
	if n <= 0 {
		return nil, nil
	}
	want := m.allocated + n
	if want > m.bdd.Varnum() {
		if err := m.bdd.SetVarnum(want); err != nil {
			return nil, fmt.Errorf("bdd: grow variable table to %d: %w", want, err)
		}
	}
	vars := make([]Var, n)
	for i := 0; i < n; i++ {
		vars[i] = Var(m.allocated + i)
	}
	m.allocated += n
	return vars, nil
}

func (m *RuddManager) VarNode(v Var) Node {
	return m.bdd.Ithvar(int(v))
}

func (m *RuddManager) And(nodes ...Node) Node {
	acc := m.bdd.True()
	for _, n := range nodes {
		acc = m.bdd.And(acc, asRudd(n))
	}
	return acc
}

func (m *RuddManager) Or(nodes ...Node) Node {
	acc := m.bdd.False()
	for _, n := range nodes {
		acc = m.bdd.Or(acc, asRudd(n))
	}
	return acc
}

func (m *RuddManager) Not(n Node) Node {
	return m.bdd.Not(asRudd(n))
}

func (m *RuddManager) Exist(n Node, vars []Var) Node {
	if len(vars) == 0 {
		return n
	}
	set := m.bdd.Makeset(varInts(vars))
	return m.bdd.Exist(asRudd(n), set)
}

func (m *RuddManager) MakePairing(from, to []Var) (Pairing, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("bdd: pairing length mismatch: %d unprimed vs %d primed", len(from), len(to))
	}
	pair, err := m.bdd.Makepair(varInts(from), varInts(to))
	if err != nil {
		return nil, fmt.Errorf("bdd: build substitution pairing: %w", err)
	}
	return pair, nil
}

func (m *RuddManager) Substitute(n Node, p Pairing) Node {
	return m.bdd.Replace(asRudd(n), p.(*rudd.Pair))
}

func (m *RuddManager) Equal(a, b Node) bool {
	return asRudd(a) == asRudd(b)
}

func (m *RuddManager) SatCount(n Node, vars []Var) float64 {
	if len(vars) == 0 {
		// Over an empty universe there is exactly one (empty)
		// assignment, and it satisfies n only if n is true.
		if m.Equal(n, m.True()) {
			return 1
		}
		return 0
	}
	set := m.bdd.Makeset(varInts(vars))
	return m.bdd.Satcountset(asRudd(n), set)
}

func (m *RuddManager) Err() error {
	return m.bdd.Error()
}

func asRudd(n Node) rudd.Node {
	return n.(rudd.Node)
}

func varInts(vars []Var) []int {
	out := make([]int, len(vars))
	for i, v := range vars {
		out[i] = int(v)
	}
	return out
}
