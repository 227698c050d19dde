package strauto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/msologic/internal/mso/alphabet"
)

func wordAlphabet() alphabet.BaseAlphabet {
	return alphabet.NewWordAlphabet('a', 'b')
}

func encode(base alphabet.BaseAlphabet, k int, symbols string, tracks ...[]bool) []alphabet.Letter {
	out := make([]alphabet.Letter, len(symbols))
	for i := range symbols {
		bits := make([]bool, k)
		if i < len(tracks) {
			bits = tracks[i]
		}
		out[i] = alphabet.Letter{Symbol: symbols[i], Bits: bits}
	}
	return out
}

func Test_Singl_acceptsExactlyOneMark(t *testing.T) {
	alpha := alphabet.Extend(wordAlphabet(), 1)
	a := Singl(alpha, 1)

	w := []alphabet.Letter{
		{Symbol: 'a', Bits: []bool{false}},
		{Symbol: 'b', Bits: []bool{true}},
	}
	ok, err := a.Run(w)
	require.NoError(t, err)
	assert.True(t, ok)

	wNone := []alphabet.Letter{{Symbol: 'a', Bits: []bool{false}}}
	ok, err = a.Run(wNone)
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_Cut_and_Union_acceptCommonModel(t *testing.T) {
	alpha := alphabet.Extend(wordAlphabet(), 1)
	singl := Singl(alpha, 1)
	symbA := Symb(alpha, 'a', 1)

	cut := singl.Cut(symbA)
	union := singl.Union(symbA)

	w := []alphabet.Letter{
		{Symbol: 'a', Bits: []bool{false}},
		{Symbol: 'a', Bits: []bool{true}},
	}

	cutOk, err := cut.Run(w)
	require.NoError(t, err)
	unionOk, err := union.Run(w)
	require.NoError(t, err)

	assert.True(t, cutOk)
	assert.True(t, unionOk)
}

func Test_Complement_idempotent(t *testing.T) {
	alpha := alphabet.Extend(wordAlphabet(), 1)
	a := Singl(alpha, 1)

	notNot := a.Complement().Complement()

	words := [][]alphabet.Letter{
		{{Symbol: 'a', Bits: []bool{false}}, {Symbol: 'b', Bits: []bool{true}}},
		{{Symbol: 'a', Bits: []bool{false}}},
		{},
	}
	for _, w := range words {
		want, err := a.Run(w)
		require.NoError(t, err)
		got, err := notNot.Run(w)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func Test_Determinize_preservesLanguage(t *testing.T) {
	alpha := alphabet.Extend(wordAlphabet(), 1)
	a := Singl(alpha, 1)
	det := a.Determinize()

	require.True(t, det.IsDeterministic())

	words := [][]alphabet.Letter{
		{{Symbol: 'a', Bits: []bool{false}}, {Symbol: 'b', Bits: []bool{true}}},
		{{Symbol: 'a', Bits: []bool{true}}, {Symbol: 'b', Bits: []bool{true}}},
		{},
	}
	for _, w := range words {
		want, err := a.Run(w)
		require.NoError(t, err)
		got, err := det.Run(w)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func Test_Project_eliminatesLastTrack(t *testing.T) {
	base := wordAlphabet()
	alpha2 := alphabet.Extend(base, 2)
	// singl(2): track 2 marked exactly once.
	a := Singl(alpha2, 2)
	projected := a.Project()

	assert.Equal(t, 1, projected.Alpha.K)

	// Projected automaton is now "exists an assignment to track 2 making
	// singl(2) true" over 1-track letters -- i.e. always satisfiable, so
	// every word of length >= 1 should be accepted nondeterministically.
	w := encode(base, 1, "ab")
	ok, err := projected.Run(w)
	require.NoError(t, err)
	assert.True(t, ok)
}

// S1. φ = ∃x P_a(x) compiled by hand: cut(singl(1), symb('a',1)), project.
func Test_SeedScenario_S1(t *testing.T) {
	base := wordAlphabet()
	alpha1 := alphabet.Extend(base, 1)
	compiled := Singl(alpha1, 1).Cut(Symb(alpha1, 'a', 1)).Project()

	cases := []struct {
		word string
		want bool
	}{
		{"ab", true},
		{"bb", false},
		{"", false},
	}
	for _, c := range cases {
		w := encode(base, 0, c.word)
		ok, err := compiled.Run(w)
		require.NoError(t, err)
		assert.Equal(t, c.want, ok, "word=%q", c.word)
	}
}

// S4. φ = ∃X (∀x (P_a(x) ↔ in(X,x))). Must accept on every w.
func Test_SeedScenario_S4(t *testing.T) {
	base := wordAlphabet()
	// Track 1 = X (second-order), track 2 = x (first-order, introduced by
	// the inner forall -> innermost, so it occupies the last track).
	alpha2 := alphabet.Extend(base, 2)

	inXx := In(alpha2, 2, 1)   // in(X,x): elem track 2, set track 1
	symbA := Symb(alpha2, 'a', 2)

	// P_a(x) <-> in(X,x)  ==  (P_a(x) -> in(X,x)) and (in(X,x) -> P_a(x))
	// (A -> B) == not(A) or B
	impl1 := symbA.Complement().Union(inXx)
	impl2 := inXx.Complement().Union(symbA)
	iff := impl1.Cut(impl2)

	// forall x (...) == not (exists x (not ...))
	notIff := iff.Complement()
	cutSingl := Singl(alpha2, 2).Cut(notIff)
	existsX := cutSingl.Project() // removes track 2 (x)
	forallX := existsX.Complement()

	// exists X (...)
	final := forallX.Project() // removes track 1 (X)

	for _, w := range []string{"ab", "bb", "aaa", ""} {
		word := encode(base, 0, w)
		ok, err := final.Run(word)
		require.NoError(t, err)
		assert.True(t, ok, "word=%q", w)
	}
}
