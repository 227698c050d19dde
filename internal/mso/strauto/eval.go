// Evaluation of a compiled string automaton against a concrete encoded
// word, per spec §4.6. Grounded on
// _examples/original_source/StringCase/stringAutomata.py's run/nfa_run:
// a deterministic single-path simulation when the automaton is known
// deterministic, and a subset-tracking simulation otherwise.
package strauto

import (
	"github.com/dekarrin/msologic/internal/mso/alphabet"
	"github.com/dekarrin/msologic/internal/mso/msoerr"
	"github.com/dekarrin/msologic/internal/util"
)

// Run evaluates word against a. If a is deterministic it follows the single
// path; otherwise it tracks the full reachable-state subset. An input
// letter outside a's alphabet is a definite reject, not an error (spec
// §4.6's Failure clause).
func (a *NFA) Run(word []alphabet.Letter) (bool, error) {
	for _, l := range word {
		if !a.Alpha.Contains(l) {
			return false, nil
		}
	}
	if a.IsDeterministic() {
		return a.runDeterministic(word)
	}
	return a.runNondeterministic(word), nil
}

func (a *NFA) runDeterministic(word []alphabet.Letter) (bool, error) {
	if a.Start.Len() != 1 {
		return false, msoerr.New(msoerr.ErrArityMismatch, "runDeterministic called on non-deterministic automaton")
	}
	cur := a.Start.Elements()[0]
	for _, l := range word {
		next := a.Move(cur, l)
		if next.Len() != 1 {
			return false, nil
		}
		cur = next.Elements()[0]
	}
	return a.Accept.Has(cur), nil
}

func (a *NFA) runNondeterministic(word []alphabet.Letter) bool {
	current := a.Start.Copy().(util.StringSet)
	for _, l := range word {
		current = a.MoveSet(current, l)
		if current.Empty() {
			return false
		}
	}
	return current.Any(func(q string) bool { return a.Accept.Has(q) })
}
