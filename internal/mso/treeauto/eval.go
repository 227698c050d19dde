// Evaluation of a compiled tree automaton against a concrete encoded tree,
// per spec §4.6 (tree variants) and §4.8's encoded-tree shape. Grounded on
// _examples/original_source/treeAutomata.py's nta_run/run: a bottom-up
// pass computing states (or state sets) from the leaves up.
package treeauto

import (
	"github.com/dekarrin/msologic/internal/mso/alphabet"
	"github.com/dekarrin/msologic/internal/mso/msoerr"
	"github.com/dekarrin/msologic/internal/util"
)

// EncodedTree is a node of the concrete encoded-tree input: a letter plus
// one child per the letter's declared arity, in order.
type EncodedTree struct {
	Letter   alphabet.Letter
	Children []*EncodedTree
}

// Run evaluates t against a, bottom-up. If a is deterministic the single
// per-node state is propagated; otherwise a state *set* is tracked at each
// node, unioned over every child-state combination. A letter outside a's
// alphabet is a definite reject (spec §4.6's Failure clause); a child count
// disagreeing with the letter's declared arity is a caller bug and is
// reported as ErrArityMismatch.
func (a *NTA) Run(t *EncodedTree) (bool, error) {
	if t == nil {
		return false, nil
	}
	det := a.IsDeterministic()
	state, err := a.evalNode(t, det)
	if err != nil {
		return false, err
	}
	if det {
		if state.Empty() {
			return false, nil
		}
		return a.Accept.Has(state.Elements()[0]), nil
	}
	return state.Any(func(q string) bool { return a.Accept.Has(q) }), nil
}

// evalNode returns, for a deterministic automaton, a singleton set holding
// the one reached state (or an empty set on reject), and for a
// nondeterministic one the full reachable state set at this node.
func (a *NTA) evalNode(t *EncodedTree, det bool) (util.StringSet, error) {
	if !a.Alpha.Contains(t.Letter) {
		return util.NewStringSet(), nil
	}
	if a.Alpha.ArityOf(t.Letter) != len(t.Children) {
		return nil, msoerr.New(msoerr.ErrArityMismatch, "letter %s declares arity %d but node has %d children",
			t.Letter, a.Alpha.ArityOf(t.Letter), len(t.Children))
	}

	childSets := make([]util.StringSet, len(t.Children))
	for i, c := range t.Children {
		cs, err := a.evalNode(c, det)
		if err != nil {
			return nil, err
		}
		childSets[i] = cs
		if cs.Empty() {
			return util.NewStringSet(), nil
		}
	}

	result := a.SuccessorsOfSets(t.Letter, childSets)
	if det {
		if result.Len() != 1 {
			return util.NewStringSet(), nil
		}
	}
	return result, nil
}
