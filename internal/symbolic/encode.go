// Package symbolic builds the BDD encoding of a component network and
// runs forward reachability over it. It never touches rudd directly —
// only the bdd.Manager capability interface — and never touches the
// filesystem; callers parse a model.Network first (internal/model) and
// hand it to EncodeNetwork.
package symbolic

import (
	"fmt"

	"github.com/MichalKnapik/dd-net-checker/internal/bdd"
	"github.com/MichalKnapik/dd-net-checker/internal/model"
)

// Block is one allocated variable block plus the label<->minterm
// bijection described in spec.md §4.1. Variables carry integer ids
// rather than the source format's string names (Design Notes §9): a
// side "display name" (Prefix plus index, see VarName) is kept; neither
// the --verbose nor the --dot output prints it.
type Block struct {
	Prefix string
	Vars   []bdd.Var
	index  map[model.Label]int
	minterm map[model.Label]bdd.Node
}

// Node returns the minterm BDD assigned to label, or nil if label was
// not part of the encoded list.
func (b *Block) Node(label model.Label) (bdd.Node, bool) {
	n, ok := b.minterm[label]
	return n, ok
}

// VarName returns the display name of the i-th variable in the block,
// e.g. "act3" or "pstate1", matching spec.md §6's naming scheme.
func (b *Block) VarName(i int) string {
	return fmt.Sprintf("%s%d", b.Prefix, i)
}

// PrimedBlock pairs an unprimed Block with its primed counterpart and
// the substitution used to rename one into the other.
type PrimedBlock struct {
	Unprimed Block
	Primed   Block
	ToPrimed bdd.Pairing
	ToUnprimed bdd.Pairing
}

// bitWidth returns ⌈log2(n)⌉, with the convention bitWidth(1) == 0.
func bitWidth(n int) int {
	if n <= 1 {
		return 0
	}
	k := 0
	for (1 << uint(k)) < n {
		k++
	}
	return k
}

// bitsOf returns the k-bit, left-padded, MSB-first binary digits of i.
func bitsOf(i, k int) []bool {
	bits := make([]bool, k)
	for j := 0; j < k; j++ {
		shift := k - 1 - j
		bits[j] = (i>>uint(shift))&1 == 1
	}
	return bits
}

// Encode allocates ⌈log2(|labels|)⌉ fresh variables named prefix0...
// and assigns each label in order a unique minterm over them, per
// spec.md §4.1. labels must be non-empty and duplicate-free.
func Encode(mgr bdd.Manager, labels []model.Label, prefix string) (*Block, error) {
	if len(labels) == 0 {
		return nil, &model.Error{Kind: model.InputMalformed, Msg: fmt.Sprintf("encode %q: empty label list", prefix)}
	}
	k := bitWidth(len(labels))
	vars, err := mgr.NewVars(k)
	if err != nil {
		return nil, fmt.Errorf("symbolic: allocate %d vars for %q: %w", k, prefix, err)
	}

	b := &Block{
		Prefix:  prefix,
		Vars:    vars,
		index:   make(map[model.Label]int, len(labels)),
		minterm: make(map[model.Label]bdd.Node, len(labels)),
	}
	for i, label := range labels {
		if _, dup := b.index[label]; dup {
			return nil, &model.Error{Kind: model.InputMalformed, Msg: fmt.Sprintf("encode %q: duplicate label %q", prefix, label)}
		}
		b.index[label] = i
		if k == 0 {
			b.minterm[label] = mgr.True()
			continue
		}
		bits := bitsOf(i, k)
		lits := make([]bdd.Node, k)
		for j, v := range vars {
			lit := mgr.VarNode(v)
			if !bits[j] {
				lit = mgr.Not(lit)
			}
			lits[j] = lit
		}
		b.minterm[label] = mgr.And(lits...)
	}
	return b, nil
}

// EncodeWithPrimed behaves like Encode but additionally allocates a
// parallel "primed" variable block of equal size and the substitution
// maps in both directions, per spec.md §4.1's emit_primed flag.
func EncodeWithPrimed(mgr bdd.Manager, labels []model.Label, prefix string) (*PrimedBlock, error) {
	unprimed, err := Encode(mgr, labels, prefix)
	if err != nil {
		return nil, err
	}
	primed, err := Encode(mgr, labels, "primed"+prefix)
	if err != nil {
		return nil, err
	}
	toPrimed, err := mgr.MakePairing(unprimed.Vars, primed.Vars)
	if err != nil {
		return nil, fmt.Errorf("symbolic: build %q->primed pairing: %w", prefix, err)
	}
	toUnprimed, err := mgr.MakePairing(primed.Vars, unprimed.Vars)
	if err != nil {
		return nil, fmt.Errorf("symbolic: build primed->%q pairing: %w", prefix, err)
	}
	return &PrimedBlock{
		Unprimed:   *unprimed,
		Primed:     *primed,
		ToPrimed:   toPrimed,
		ToUnprimed: toUnprimed,
	}, nil
}
