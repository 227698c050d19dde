package strauto

import (
	"fmt"

	"github.com/dekarrin/msologic/internal/mso/alphabet"
	"github.com/dekarrin/msologic/internal/util"
)

func pairName(a, b string) string {
	return fmt.Sprintf("(%s,%s)", a, b)
}

// Cut returns the product automaton recognizing L(a) ∩ L(b), per spec
// §4.3. States are pairs; a transition exists at (a,b) -> (a',b') on letter
// x iff both a and b have that transition (the product is not totalized,
// matching the original's cut() gap-on-missing-transition behavior, which
// is harmless here since both operands are consulted before any run).
func (a *NFA) Cut(b *NFA) *NFA {
	return a.product(b, func(acc, bcc bool) bool { return acc && bcc })
}

// Union returns the product automaton recognizing L(a) ∪ L(b). Both
// operands are totalized first, since the product only follows letters on
// which both sides have a successor.
func (a *NFA) Union(b *NFA) *NFA {
	return a.Totalize().product(b.Totalize(), func(acc, bcc bool) bool { return acc || bcc })
}

func (a *NFA) product(b *NFA, combine func(aAccept, bAccept bool) bool) *NFA {
	out := New(a.Alpha)

	for _, qa := range a.Start.Elements() {
		for _, qb := range b.Start.Elements() {
			out.SetStart(pairName(qa, qb))
		}
	}

	worklist := [][2]string{}
	seen := map[string]bool{}
	for _, qa := range a.Start.Elements() {
		for _, qb := range b.Start.Elements() {
			name := pairName(qa, qb)
			if !seen[name] {
				seen[name] = true
				worklist = append(worklist, [2]string{qa, qb})
			}
		}
	}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		qa, qb := cur[0], cur[1]
		name := pairName(qa, qb)
		out.AddState(name)
		if combine(a.Accept.Has(qa), b.Accept.Has(qb)) {
			out.SetAccept(name)
		}

		for _, l := range a.Alpha.Letters {
			nextA := a.Move(qa, l)
			nextB := b.Move(qb, l)
			if nextA.Empty() || nextB.Empty() {
				continue
			}
			for _, na := range nextA.Elements() {
				for _, nb := range nextB.Elements() {
					toName := pairName(na, nb)
					if !seen[toName] {
						seen[toName] = true
						worklist = append(worklist, [2]string{na, nb})
					}
					out.AddTransition(name, l, toName)
				}
			}
		}
	}

	return out
}

// sinkLabel is the trap state totalization adds after projection or
// determinization, per spec §9's totalization note.
const sinkLabel = "⊥"

// Totalize returns a's deterministic form (determinizing first if needed)
// with a sink state added for any (state, letter) lacking a transition, so
// that Complement can safely flip the accept set.
func (a *NFA) Totalize() *NFA {
	det := a
	if !a.IsDeterministic() {
		det = a.Determinize()
	}
	out := New(det.Alpha)
	for _, q := range det.States.Elements() {
		out.AddState(q)
	}
	for _, q := range det.Start.Elements() {
		out.SetStart(q)
	}
	for _, q := range det.Accept.Elements() {
		out.SetAccept(q)
	}
	needsSink := false
	for _, q := range det.States.Elements() {
		for _, l := range det.Alpha.Letters {
			next := det.Move(q, l)
			if next.Empty() {
				needsSink = true
				out.AddTransition(q, l, sinkLabel)
			} else {
				for _, n := range next.Elements() {
					out.AddTransition(q, l, n)
				}
			}
		}
	}
	if needsSink {
		for _, l := range det.Alpha.Letters {
			out.AddTransition(sinkLabel, l, sinkLabel)
		}
	}
	return out
}

// Complement determinizes (if necessary), totalizes, and flips the accept
// set, per spec §4.3.
func (a *NFA) Complement() *NFA {
	total := a.Totalize()
	out := New(total.Alpha)
	for _, q := range total.States.Elements() {
		out.AddState(q)
		if !total.Accept.Has(q) {
			out.SetAccept(q)
		}
	}
	for _, q := range total.Start.Elements() {
		out.SetStart(q)
	}
	for _, q := range total.States.Elements() {
		for _, l := range total.Alpha.Letters {
			for _, n := range total.Move(q, l).Elements() {
				out.AddTransition(q, l, n)
			}
		}
	}
	return out
}

// Project eliminates the last track of a's alphabet, producing an
// automaton over alphabet.Extend(base, k-1). Per spec §4.3, letters
// (s,v1..vj) map to (s,v1..v_{j-1}), and δ'(q,(s,v')) = ⋃_b δ(q,(s,v',b)) —
// multiple old letters collapse onto one new letter, introducing
// nondeterminism even if a was deterministic.
func (a *NFA) Project() *NFA {
	newAlpha := alphabet.Extend(a.Alpha.Base, a.Alpha.K-1)
	out := New(newAlpha)
	for _, q := range a.States.Elements() {
		out.AddState(q)
		if a.Accept.Has(q) {
			out.SetAccept(q)
		}
	}
	for _, q := range a.Start.Elements() {
		out.SetStart(q)
	}

	for _, q := range a.States.Elements() {
		for _, newLetter := range newAlpha.Letters {
			for _, bit := range []bool{false, true} {
				oldLetter := newLetter.WithLast(bit)
				for _, to := range a.Move(q, oldLetter).Elements() {
					out.AddTransition(q, newLetter, to)
				}
			}
		}
	}
	return out
}

// union of more than two successor sets, used by a handful of base
// automata constructors that build transitions incrementally.
func unionAll(sets ...util.StringSet) util.StringSet {
	out := util.NewStringSet()
	for _, s := range sets {
		out.AddAll(s)
	}
	return out
}
