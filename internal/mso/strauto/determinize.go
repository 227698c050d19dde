package strauto

import (
	"github.com/dekarrin/msologic/internal/util"
)

// Determinize performs reachable-state subset construction (Dragon-book
// algorithm 3.20), exploring only subsets reachable from the start subset
// rather than materializing the full powerset — spec §4.3 marks the
// reachable variant mandatory. Grounded on
// _examples/dekarrin-tunaq/internal/ictiobus/automaton/nfa.go's
// NFA.ToDFA: a worklist of "marked" discovered subsets, each popped once
// and expanded over every letter.
//
// The returned automaton is deterministic and total: a state is added for
// the empty subset (the implicit sink) whenever some (subset, letter) pair
// has no successor, so that IsDeterministic holds on the result.
func (a *NFA) Determinize() *NFA {
	startSubset := a.Start.Copy().(util.StringSet)
	startName := util.StringOrdered[string](startSubset)

	det := New(a.Alpha)
	det.SetStart(startName)

	type pending struct {
		name   string
		subset util.StringSet
	}
	worklist := []pending{{name: startName, subset: startSubset}}
	seen := map[string]bool{startName: true}

	markAcceptIfNeeded := func(name string, subset util.StringSet) {
		if subset.Any(func(q string) bool { return a.Accept.Has(q) }) {
			det.SetAccept(name)
		}
	}
	markAcceptIfNeeded(startName, startSubset)

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		for _, letter := range a.Alpha.Letters {
			next := a.MoveSet(cur.subset, letter)
			nextName := util.StringOrdered[string](next)
			if !seen[nextName] {
				seen[nextName] = true
				det.AddState(nextName)
				markAcceptIfNeeded(nextName, next)
				worklist = append(worklist, pending{name: nextName, subset: next})
			}
			det.AddTransition(cur.name, letter, nextName)
		}
	}

	return det
}

// Renumber replaces this automaton's state names with canonical q0..qN-1
// labels in sorted order of the original names, matching the teacher's
// DFA.NumberStates convention for producing stable, human-readable output.
func (a *NFA) Renumber() *NFA {
	old := a.sortedStates()
	rename := make(map[string]string, len(old))
	for i, q := range old {
		rename[q] = stateLabel(i)
	}

	out := New(a.Alpha)
	for _, q := range old {
		out.AddState(rename[q])
	}
	for _, q := range a.Start.Elements() {
		out.SetStart(rename[q])
	}
	for _, q := range a.Accept.Elements() {
		out.SetAccept(rename[q])
	}
	for _, q := range old {
		for _, l := range a.Alpha.Letters {
			for _, to := range a.Move(q, l).Elements() {
				out.AddTransition(rename[q], l, rename[to])
			}
		}
	}
	return out
}

func stateLabel(i int) string {
	digits := "0123456789"
	if i < 10 {
		return "q" + string(digits[i])
	}
	// Fall back to a simple base-10 expansion for larger automata.
	var buf []byte
	n := i
	for n > 0 {
		buf = append([]byte{digits[n%10]}, buf...)
		n /= 10
	}
	return "q" + string(buf)
}
