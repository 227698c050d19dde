// Base automaton constructors for the atomic MSO predicates, per spec
// §4.2. Grounded on _examples/original_source/StringCase/conversion.py's
// singl/le/sub/symb/in/even_set constructors; card_eq is restricted to
// set-equality rather than ported as-is, per spec §9's explicit warning
// that the original's general cardinality-equality construction is wrong.
package strauto

import (
	"github.com/dekarrin/msologic/internal/mso/alphabet"
)

// Singl builds the automaton for "track i is marked at exactly one
// position" (spec §4.2 singl(i)). States q0 (not yet seen), q1 (seen once);
// seeing the mark again from q1 has no transition, an implicit sink that a
// later Totalize/Determinize makes explicit.
func Singl(alpha alphabet.ExtendedAlphabet, i int) *NFA {
	a := New(alpha)
	a.SetStart("q0")
	a.SetAccept("q1")
	for _, l := range alpha.Letters {
		if l.Bits[i-1] {
			a.AddTransition("q0", l, "q1")
			// q1 --mark again--> sink: omitted.
		} else {
			a.AddTransition("q0", l, "q0")
			a.AddTransition("q1", l, "q1")
		}
	}
	return a
}

// Leq builds the automaton for "the (unique) i-marked position is <= the
// (unique) j-marked position" (spec §4.2 le(i,j)). s0 reads until the j
// mark commits; s1 must not see an i mark afterward.
func Leq(alpha alphabet.ExtendedAlphabet, i, j int) *NFA {
	a := New(alpha)
	a.SetStart("s0")
	a.SetAccept("s0")
	a.SetAccept("s1")
	for _, l := range alpha.Letters {
		iMark := l.Bits[i-1]
		jMark := l.Bits[j-1]
		switch {
		case jMark:
			a.AddTransition("s0", l, "s1")
			a.AddTransition("s1", l, "s1")
		case iMark:
			a.AddTransition("s0", l, "s0")
			// s1 --i mark--> sink: omitted.
		default:
			a.AddTransition("s0", l, "s0")
			a.AddTransition("s1", l, "s1")
		}
	}
	return a
}

// Sub builds the automaton for "every position marked on track i is also
// marked on track j" (spec §4.2 sub(i,j), X_i ⊆ X_j): accept unless some
// position has v_i=1 ∧ v_j=0.
func Sub(alpha alphabet.ExtendedAlphabet, i, j int) *NFA {
	a := New(alpha)
	a.SetStart("ok")
	a.SetAccept("ok")
	for _, l := range alpha.Letters {
		if l.Bits[i-1] && !l.Bits[j-1] {
			// ok --violation--> sink: omitted.
			continue
		}
		a.AddTransition("ok", l, "ok")
	}
	return a
}

// In builds the automaton for "position x (track elemTrack) is a member of
// set X (track setTrack)", per spec §9's "simple version" of the `in`
// operator: identical construction to Sub(elemTrack, setTrack).
func In(alpha alphabet.ExtendedAlphabet, elemTrack, setTrack int) *NFA {
	return Sub(alpha, elemTrack, setTrack)
}

// Symb builds the automaton for "every position marked on track i carries
// base symbol c" (spec §4.2 symb(c,i)): accept unless some marked position
// has a different symbol.
func Symb(alpha alphabet.ExtendedAlphabet, c byte, i int) *NFA {
	a := New(alpha)
	a.SetStart("ok")
	a.SetAccept("ok")
	for _, l := range alpha.Letters {
		if l.Bits[i-1] && l.Symbol != c {
			continue
		}
		a.AddTransition("ok", l, "ok")
	}
	return a
}

// CardEq builds the restricted form of card_eq(i,j): true set equality
// X_i = X_j, computed as Sub(i,j) ∩ Sub(j,i). Spec §9 requires this
// restriction rather than porting the original's general (and, per its own
// comment, incorrect) cardinality-equality construction.
func CardEq(alpha alphabet.ExtendedAlphabet, i, j int) *NFA {
	return Sub(alpha, i, j).Cut(Sub(alpha, j, i))
}

// EvenSet builds the automaton for "track i is marked at an even number of
// positions" (the supplemented even(X) predicate; spec §9 / conversion.py's
// even_set): a 2-state parity alternator, accepting when the final parity
// is even.
func EvenSet(alpha alphabet.ExtendedAlphabet, i int) *NFA {
	a := New(alpha)
	a.SetStart("p0")
	a.SetAccept("p0")
	for _, l := range alpha.Letters {
		if l.Bits[i-1] {
			a.AddTransition("p0", l, "p1")
			a.AddTransition("p1", l, "p0")
		} else {
			a.AddTransition("p0", l, "p0")
			a.AddTransition("p1", l, "p1")
		}
	}
	return a
}
