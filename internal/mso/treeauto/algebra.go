package treeauto

import (
	"fmt"

	"github.com/dekarrin/msologic/internal/mso/alphabet"
	"github.com/dekarrin/msologic/internal/util"
)

func pairName(a, b string) string {
	return fmt.Sprintf("(%s,%s)", a, b)
}

// Cut returns the product automaton recognizing L(a) ∩ L(b), per spec
// §4.3 (tree variant): states are pairs, transitions are the cross product
// of both sides' successor sets at every (letter, children) combination,
// and a pair accepts iff both coordinates accept.
func (a *NTA) Cut(b *NTA) *NTA {
	return a.product(b, func(x, y bool) bool { return x && y })
}

// Union returns the product automaton recognizing L(a) ∪ L(b).
func (a *NTA) Union(b *NTA) *NTA {
	return a.product(b, func(x, y bool) bool { return x || y })
}

func (a *NTA) product(b *NTA, combine func(aAccept, bAccept bool) bool) *NTA {
	out := New(a.Alpha)

	for _, qa := range a.States.Elements() {
		for _, qb := range b.States.Elements() {
			name := pairName(qa, qb)
			out.AddState(name)
			if combine(a.Accept.Has(qa), b.Accept.Has(qb)) {
				out.SetAccept(name)
			}
		}
	}

	for _, l := range a.Alpha.Letters {
		arity := a.Alpha.ArityOf(l)
		forEachChildTuple(arity, pairStates(a, b), func(children []string) {
			leftChildren := make([]string, arity)
			rightChildren := make([]string, arity)
			for i, c := range children {
				la, lb := splitPair(c)
				leftChildren[i] = la
				rightChildren[i] = lb
			}
			leftSucc := a.Successors(l, leftChildren)
			rightSucc := b.Successors(l, rightChildren)
			if leftSucc.Empty() || rightSucc.Empty() {
				return
			}
			for _, sa := range leftSucc.Elements() {
				for _, sb := range rightSucc.Elements() {
					out.AddTransition(l, children, pairName(sa, sb))
				}
			}
		})
	}

	return out
}

func pairStates(a, b *NTA) []string {
	out := make([]string, 0, a.States.Len()*b.States.Len())
	for _, qa := range a.States.Elements() {
		for _, qb := range b.States.Elements() {
			out = append(out, pairName(qa, qb))
		}
	}
	return out
}

func splitPair(s string) (string, string) {
	// pairName always wraps in "(x,y)"; split on the single top-level comma.
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 1 {
				return s[1:i], s[i+1 : len(s)-1]
			}
		}
	}
	return s, s
}

const sinkLabel = "⊥"

// Totalize returns a's deterministic, total form: determinizing first if
// needed, then adding a sink state for any (letter, children) combination
// lacking a transition.
func (a *NTA) Totalize() *NTA {
	det := a
	if !a.IsDeterministic() {
		det = a.Determinize()
	}
	out := New(det.Alpha)
	for _, q := range det.States.Elements() {
		out.AddState(q)
		if det.Accept.Has(q) {
			out.SetAccept(q)
		}
	}
	out.AddState(sinkLabel)

	for _, l := range det.Alpha.Letters {
		arity := det.Alpha.ArityOf(l)
		allStates := append(det.sortedStates(), sinkLabel)
		forEachChildTuple(arity, allStates, func(children []string) {
			succ := det.Successors(l, children)
			if succ.Empty() {
				out.AddTransition(l, children, sinkLabel)
				return
			}
			for _, s := range succ.Elements() {
				out.AddTransition(l, children, s)
			}
		})
	}
	return out
}

// Complement determinizes/totalizes a and flips the accept set.
func (a *NTA) Complement() *NTA {
	total := a.Totalize()
	out := New(total.Alpha)
	for _, q := range total.States.Elements() {
		out.AddState(q)
		if !total.Accept.Has(q) {
			out.SetAccept(q)
		}
	}
	for _, l := range total.Alpha.Letters {
		arity := total.Alpha.ArityOf(l)
		forEachChildTuple(arity, total.sortedStates(), func(children []string) {
			for _, s := range total.Successors(l, children).Elements() {
				out.AddTransition(l, children, s)
			}
		})
	}
	return out
}

// Determinize performs reachable bottom-up subset construction, per spec
// §4.3: one DFA state per nullary letter's successor set, then repeated
// passes over every letter and every combination of already-reached
// subsets as children, until a pass discovers no new subset. Grounded on the same Dragon-book
// reachable-exploration discipline as strauto.Determinize, adapted to the
// tree case's arity-dispatched transition shape per
// _examples/original_source/treeAutomata.py's determinize (reimplemented
// here restricted to reachable subsets only, since the original's full
// powerset variant is explicitly the non-mandatory one per spec §4.3).
func (a *NTA) Determinize() *NTA {
	out := New(a.Alpha)
	seen := map[string]util.StringSet{}

	markIfAccept := func(name string, subset util.StringSet) {
		if subset.Any(func(q string) bool { return a.Accept.Has(q) }) {
			out.SetAccept(name)
		}
	}

	changed := true
	for changed {
		changed = false
		for _, l := range a.Alpha.Letters {
			arity := a.Alpha.ArityOf(l)
			if arity == 0 {
				subset := a.Successors(l, nil)
				name := util.StringOrdered[string](subset)
				if _, ok := seen[name]; !ok {
					seen[name] = subset
					out.AddState(name)
					markIfAccept(name, subset)
					out.AddTransition(l, nil, name)
					changed = true
				} else {
					out.AddTransition(l, nil, name)
				}
				continue
			}

			names := make([]string, 0, len(seen))
			for n := range seen {
				names = append(names, n)
			}
			forEachChildTuple(arity, names, func(children []string) {
				childSets := make([]util.StringSet, arity)
				for i, c := range children {
					childSets[i] = seen[c]
				}
				subset := a.SuccessorsOfSets(l, childSets)
				name := util.StringOrdered[string](subset)
				if _, ok := seen[name]; !ok {
					seen[name] = subset
					out.AddState(name)
					markIfAccept(name, subset)
					changed = true
				}
				out.AddTransition(l, children, name)
			})
		}
	}

	return out
}

// Project eliminates the last track of a's alphabet, per spec §4.3 (tree
// variant): for each (letter, children) pair, δ'(children) = ⋃_b
// δ((symbol,v',b), children) — identical per-letter collapsing to the
// string case, applied once per fixed child-state tuple.
func (a *NTA) Project() *NTA {
	newAlpha := alphabet.Extend(a.Alpha.Base, a.Alpha.K-1)
	out := New(newAlpha)
	for _, q := range a.States.Elements() {
		out.AddState(q)
		if a.Accept.Has(q) {
			out.SetAccept(q)
		}
	}

	for _, newLetter := range newAlpha.Letters {
		arity := newAlpha.ArityOf(newLetter)
		forEachChildTuple(arity, a.sortedStates(), func(children []string) {
			for _, bit := range []bool{false, true} {
				oldLetter := newLetter.WithLast(bit)
				for _, s := range a.Successors(oldLetter, children).Elements() {
					out.AddTransition(newLetter, children, s)
				}
			}
		})
	}
	return out
}
