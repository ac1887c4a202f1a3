// Package bdd defines the symbolic-manager capability the rest of the
// program depends on, and a concrete implementation backed by
// github.com/dalzilio/rudd. Core code never imports rudd directly; it only
// sees the Manager interface, so a different backend can be dropped in
// without touching the encoder, composer, or reachability engine.
package bdd

// Var is the identifier of one allocated Boolean variable.
type Var int

// Node is an opaque handle to a BDD node held by a Manager. Nodes from two
// different Managers must never be mixed.
type Node interface{}

// Pairing is an opaque unprimed->primed (or any var->var) substitution
// built by Manager.MakePairing, consumed by Manager.Substitute.
type Pairing interface{}

// Manager is the minimal capability surface a BDD package must expose for
// this program: variable allocation, the two constants, Boolean
// combinators, existential quantification, variable substitution, node
// equality, and a satisfying-assignment count restricted to a variable
// set. Reference counting, if the backend needs it, is internal to the
// implementation.
type Manager interface {
	// True returns the constant-true node.
	True() Node
	// False returns the constant-false node.
	False() Node

	// NewVars allocates n fresh variables, ordered immediately after
	// every variable allocated by prior calls, and returns their ids.
	// NewVars(0) is legal and returns an empty slice (the single-label
	// encoding case).
	NewVars(n int) ([]Var, error)

	// VarNode returns the single-variable literal (v) for an allocated
	// variable.
	VarNode(v Var) Node

	// And returns the conjunction of zero or more nodes (And() == True()).
	And(nodes ...Node) Node
	// Or returns the disjunction of zero or more nodes (Or() == False()).
	Or(nodes ...Node) Node
	// Not returns the negation of n.
	Not(n Node) Node

	// Exist returns the existential quantification of n over vars.
	Exist(n Node, vars []Var) Node

	// MakePairing builds a substitution that renames each from[i] to
	// to[i]. from and to must have equal length and contain only
	// variables allocated by this Manager.
	MakePairing(from, to []Var) (Pairing, error)
	// Substitute applies a pairing built by MakePairing to n.
	Substitute(n Node, p Pairing) Node

	// Equal reports whether a and b denote the same Boolean function.
	// BDD canonicity makes this a cheap identity check in any ROBDD
	// backend.
	Equal(a, b Node) bool

	// SatCount returns the number of satisfying assignments of n,
	// counted over exactly the given variable universe (vars not in
	// n's support still contribute a factor of 2 each, vars outside
	// the given set are ignored).
	SatCount(n Node, vars []Var) float64

	// Err returns the backend's sticky resource-exhaustion error, if
	// any operation since the manager was created has hit one (BDD
	// node table or cache limits). Callers should check it after
	// every fixpoint iteration, not just at the end, since the
	// backend keeps running on a degraded/truncated result once
	// tripped.
	Err() error
}
