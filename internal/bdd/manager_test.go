package bdd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *RuddManager {
	t.Helper()
	mgr, err := NewRuddManager(4)
	require.NoError(t, err)
	return mgr
}

func TestConstantsAreDistinct(t *testing.T) {
	mgr := newManager(t)
	require.False(t, mgr.Equal(mgr.True(), mgr.False()))
	require.True(t, mgr.Equal(mgr.True(), mgr.True()))
}

func TestNewVarsGrowsMonotonically(t *testing.T) {
	mgr := newManager(t)

	first, err := mgr.NewVars(2)
	require.NoError(t, err)
	require.Equal(t, []Var{0, 1}, first)

	second, err := mgr.NewVars(3)
	require.NoError(t, err)
	require.Equal(t, []Var{2, 3, 4}, second)

	// Growing past the initial capacity must not disturb the earlier
	// block's identity.
	require.False(t, mgr.Equal(mgr.VarNode(first[0]), mgr.VarNode(second[0])))
}

func TestNewVarsZeroIsANoop(t *testing.T) {
	mgr := newManager(t)
	vars, err := mgr.NewVars(0)
	require.NoError(t, err)
	require.Empty(t, vars)
}

func TestAndOrNotBooleanAlgebra(t *testing.T) {
	mgr := newManager(t)
	vars, err := mgr.NewVars(1)
	require.NoError(t, err)
	x := mgr.VarNode(vars[0])
	notX := mgr.Not(x)

	require.True(t, mgr.Equal(mgr.And(x, notX), mgr.False()))
	require.True(t, mgr.Equal(mgr.Or(x, notX), mgr.True()))
	require.True(t, mgr.Equal(mgr.And(), mgr.True()), "empty And is the identity, true")
	require.True(t, mgr.Equal(mgr.Or(), mgr.False()), "empty Or is the identity, false")
}

func TestExistEliminatesVariable(t *testing.T) {
	mgr := newManager(t)
	vars, err := mgr.NewVars(2)
	require.NoError(t, err)
	x, y := mgr.VarNode(vars[0]), mgr.VarNode(vars[1])

	// x ∧ y, quantifying out y, should collapse to x.
	f := mgr.And(x, y)
	require.True(t, mgr.Equal(mgr.Exist(f, []Var{vars[1]}), x))
}

func TestSubstitutePairing(t *testing.T) {
	mgr := newManager(t)
	vars, err := mgr.NewVars(2)
	require.NoError(t, err)
	x, y := vars[0], vars[1]

	pair, err := mgr.MakePairing([]Var{x}, []Var{y})
	require.NoError(t, err)

	replaced := mgr.Substitute(mgr.VarNode(x), pair)
	require.True(t, mgr.Equal(replaced, mgr.VarNode(y)))
}

func TestSatCountOverGivenUniverse(t *testing.T) {
	mgr := newManager(t)
	vars, err := mgr.NewVars(2)
	require.NoError(t, err)
	x := mgr.VarNode(vars[0])

	// x depends only on vars[0]; counted over both vars, the don't-care
	// on vars[1] doubles the count.
	require.Equal(t, float64(2), mgr.SatCount(x, vars))
}
