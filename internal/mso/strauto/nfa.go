// Package strauto implements the string-automaton half of the algebra:
// finite automata over an extended alphabet, with product construction,
// complementation, reachable-state determinization, and projection, per
// spec §4.2–§4.3. Transitions are represented uniformly as a (possibly
// singleton) set of successor states, per spec §9's "dynamic polymorphism
// of transition targets" note — determinism is a derived property, never a
// separate type.
//
// Grounded on _examples/dekarrin-tunaq/internal/ictiobus/automaton's
// NFA/DFA pair, in particular its reachable-subset ToDFA implementation of
// the Dragon-book subset construction; reimplemented here against this
// package's own Letter-keyed alphabet rather than that package's grammar
// symbols.
package strauto

import (
	"sort"

	"github.com/dekarrin/msologic/internal/mso/alphabet"
	"github.com/dekarrin/msologic/internal/util"
)

// NFA is a nondeterministic finite automaton over an extended alphabet.
// Determinism (spec §3: |S|=1, every (q,a) has exactly one successor, δ
// total) is checked on demand by IsDeterministic rather than tracked as a
// separate type.
type NFA struct {
	States  util.StringSet
	Alpha   alphabet.ExtendedAlphabet
	Start   util.StringSet
	Accept  util.StringSet
	Delta   map[string]map[string]util.StringSet // state -> letter key -> successors
}

// New returns an empty NFA over alpha.
func New(alpha alphabet.ExtendedAlphabet) *NFA {
	return &NFA{
		States: util.NewStringSet(),
		Alpha:  alpha,
		Start:  util.NewStringSet(),
		Accept: util.NewStringSet(),
		Delta:  map[string]map[string]util.StringSet{},
	}
}

// AddState registers a state. No-op if already present.
func (a *NFA) AddState(q string) {
	a.States.Add(q)
	if _, ok := a.Delta[q]; !ok {
		a.Delta[q] = map[string]util.StringSet{}
	}
}

// SetStart marks q as a start state.
func (a *NFA) SetStart(q string) {
	a.AddState(q)
	a.Start.Add(q)
}

// SetAccept marks q as accepting.
func (a *NFA) SetAccept(q string) {
	a.AddState(q)
	a.Accept.Add(q)
}

// AddTransition adds to to the successor set of (from, letter).
func (a *NFA) AddTransition(from string, letter alphabet.Letter, to string) {
	a.AddState(from)
	a.AddState(to)
	key := letter.Key()
	if a.Delta[from][key] == nil {
		a.Delta[from][key] = util.NewStringSet()
	}
	a.Delta[from][key].Add(to)
}

// Move returns the successor set of (from, letter), possibly empty.
func (a *NFA) Move(from string, letter alphabet.Letter) util.StringSet {
	if m, ok := a.Delta[from]; ok {
		if s, ok := m[letter.Key()]; ok {
			return s
		}
	}
	return util.NewStringSet()
}

// MoveSet returns the union of Move(q, letter) over every q in from.
func (a *NFA) MoveSet(from util.StringSet, letter alphabet.Letter) util.StringSet {
	result := util.NewStringSet()
	for _, q := range from.Elements() {
		result.AddAll(a.Move(q, letter))
	}
	return result
}

// IsDeterministic reports whether |Start|=1 and every (q, letter) has
// exactly one successor across the full alphabet (totality included).
func (a *NFA) IsDeterministic() bool {
	if a.Start.Len() != 1 {
		return false
	}
	for _, q := range a.States.Elements() {
		for _, l := range a.Alpha.Letters {
			if a.Move(q, l).Len() != 1 {
				return false
			}
		}
	}
	return true
}

// sortedStates returns a's states sorted for deterministic iteration/output.
func (a *NFA) sortedStates() []string {
	s := a.States.Elements()
	sort.Strings(s)
	return s
}
