package msologic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/msologic/internal/mso/alphabet"
	"github.com/dekarrin/msologic/internal/mso/msoerr"
)

func encodeWord(base BaseAlphabet, k int, symbols string) EncodedWord {
	out := make(EncodedWord, len(symbols))
	for i := range symbols {
		out[i] = alphabet.Letter{Symbol: symbols[i], Bits: make([]bool, k)}
	}
	return out
}

// S1. φ = ∃x P_a(x).
func Test_Accepts_S1(t *testing.T) {
	base := NewWordAlphabet('a', 'b')
	formula := "exists x(P_a(x))"

	cases := []struct {
		word string
		want bool
	}{
		{"ab", true},
		{"bb", false},
		{"", false},
	}
	for _, c := range cases {
		ok, err := Accepts(formula, base, ModeWord, encodeWord(base, 0, c.word))
		require.NoError(t, err)
		assert.Equal(t, c.want, ok, "word=%q", c.word)
	}
}

// S3. φ = ∃x ∃y ∃z (le(x,y) ∧ le(y,z) ∧ P_a(x) ∧ P_b(y) ∧ P_a(z)).
func Test_Accepts_S3(t *testing.T) {
	base := NewWordAlphabet('a', 'b')
	formula := "exists x(exists y(exists z(and(le(x,y),and(le(y,z),and(P_a(x),and(P_b(y),P_a(z))))))))"

	ok, err := Accepts(formula, base, ModeWord, encodeWord(base, 0, "aba"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Accepts(formula, base, ModeWord, encodeWord(base, 0, "aab"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_Compile_rejectsSyntaxError(t *testing.T) {
	base := NewWordAlphabet('a', 'b')
	_, err := Compile("not a valid %%% formula", base, ModeWord)
	require.Error(t, err)
}

func Test_Compile_rejectsUnboundVariable(t *testing.T) {
	base := NewWordAlphabet('a', 'b')
	_, err := Compile("P_a(x)", base, ModeWord)
	require.Error(t, err)
}

func Test_Compile_rejectsSortMismatch(t *testing.T) {
	base := NewWordAlphabet('a', 'b')
	// X is bound second-order (capital letter), but P_a expects a
	// first-order position variable.
	_, err := Compile("exists X(P_a(X))", base, ModeWord)
	require.Error(t, err)
	assert.True(t, errors.Is(err, msoerr.ErrArityMismatch))
}

func Test_Run_rejectsWrongInputShape(t *testing.T) {
	base := NewWordAlphabet('a', 'b')
	a, err := Compile("exists x(P_a(x))", base, ModeWord)
	require.NoError(t, err)

	_, err = Run(a, "not the right shape")
	require.Error(t, err)
}
