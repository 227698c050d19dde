// Package treeauto implements the tree-automaton half of the algebra:
// bottom-up nondeterministic tree automata (NTA) over an extended ranked
// alphabet, with product construction, complementation, reachable
// bottom-up determinization, and projection, per spec §4.2–§4.3 (tree
// variants). Grounded on
// _examples/original_source/treeAutomata.py and treeAutomataConstruction.py,
// reimplemented with a single generic arity-dispatched transition table
// instead of that file's separate arity-0/1/2 code paths (which also left
// an arity-1 gap in union/cut — not carried over here).
package treeauto

import (
	"sort"
	"strings"

	"github.com/dekarrin/msologic/internal/mso/alphabet"
	"github.com/dekarrin/msologic/internal/util"
)

// NTA is a bottom-up nondeterministic tree automaton. There is no explicit
// start-state set (spec §3): acceptance is by the root state landing in
// Accept after a bottom-up pass.
type NTA struct {
	States util.StringSet
	Alpha  alphabet.ExtendedAlphabet
	Accept util.StringSet
	Delta  map[string]map[string]util.StringSet // letter key -> childKey -> successors
}

// New returns an empty NTA over alpha.
func New(alpha alphabet.ExtendedAlphabet) *NTA {
	return &NTA{
		States: util.NewStringSet(),
		Alpha:  alpha,
		Accept: util.NewStringSet(),
		Delta:  map[string]map[string]util.StringSet{},
	}
}

func childKey(children []string) string {
	return strings.Join(children, "|")
}

// AddState registers a state.
func (a *NTA) AddState(q string) {
	a.States.Add(q)
}

// SetAccept marks q as an accepting root state.
func (a *NTA) SetAccept(q string) {
	a.AddState(q)
	a.Accept.Add(q)
}

// AddTransition adds to as a successor of letter applied to children (in
// order; children must have length equal to the letter's arity).
func (a *NTA) AddTransition(letter alphabet.Letter, children []string, to string) {
	a.AddState(to)
	for _, c := range children {
		a.AddState(c)
	}
	lk := letter.Key()
	if a.Delta[lk] == nil {
		a.Delta[lk] = map[string]util.StringSet{}
	}
	ck := childKey(children)
	if a.Delta[lk][ck] == nil {
		a.Delta[lk][ck] = util.NewStringSet()
	}
	a.Delta[lk][ck].Add(to)
}

// Successors returns the successor set of letter applied to children.
func (a *NTA) Successors(letter alphabet.Letter, children []string) util.StringSet {
	if m, ok := a.Delta[letter.Key()]; ok {
		if s, ok := m[childKey(children)]; ok {
			return s
		}
	}
	return util.NewStringSet()
}

// SuccessorsOfSets returns ⋃ Successors(letter, c) over every combination c
// in the cartesian product of childSets (childSets[i] is the subset of
// states reachable at child i). Used by both nondeterministic evaluation
// and reachable determinization.
func (a *NTA) SuccessorsOfSets(letter alphabet.Letter, childSets []util.StringSet) util.StringSet {
	out := util.NewStringSet()
	combos := cartesianProduct(childSets)
	for _, combo := range combos {
		out.AddAll(a.Successors(letter, combo))
	}
	return out
}

func cartesianProduct(sets []util.StringSet) [][]string {
	if len(sets) == 0 {
		return [][]string{{}}
	}
	rest := cartesianProduct(sets[1:])
	first := sets[0].Elements()
	sort.Strings(first)
	out := make([][]string, 0, len(first)*len(rest))
	for _, f := range first {
		for _, r := range rest {
			combo := append([]string{f}, r...)
			out = append(out, combo)
		}
	}
	return out
}

// IsDeterministic reports whether every (letter, children) combination that
// could occur has exactly one successor, for every possible child-state
// tuple over States (totality included).
func (a *NTA) IsDeterministic() bool {
	for _, l := range a.Alpha.Letters {
		arity := a.Alpha.ArityOf(l)
		tuples := cartesianProduct(repeatedSet(a.States, arity))
		for _, tuple := range tuples {
			if a.Successors(l, tuple).Len() != 1 {
				return false
			}
		}
	}
	return true
}

func repeatedSet(s util.StringSet, n int) []util.StringSet {
	out := make([]util.StringSet, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func (a *NTA) sortedStates() []string {
	s := a.States.Elements()
	sort.Strings(s)
	return s
}
