package treeauto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/msologic/internal/mso/alphabet"
)

func treeAlphabetBase() alphabet.BaseAlphabet {
	return alphabet.NewTreeAlphabet(map[byte]int{'a': 2, 'b': 2, 'l': 0})
}

func leaf(base alphabet.BaseAlphabet, k int, symbol byte) *EncodedTree {
	return &EncodedTree{Letter: alphabet.Letter{Symbol: symbol, Bits: make([]bool, k)}}
}

func node(base alphabet.BaseAlphabet, k int, symbol byte, left, right *EncodedTree) *EncodedTree {
	return &EncodedTree{Letter: alphabet.Letter{Symbol: symbol, Bits: make([]bool, k)}, Children: []*EncodedTree{left, right}}
}

func Test_Symb_acceptsUniformLabel(t *testing.T) {
	base := treeAlphabetBase()
	alpha := alphabet.Extend(base, 1)
	a := Symb(alpha, 'a', 1)

	tree := node(base, 1, 'a', leaf(base, 1, 'l'), leaf(base, 1, 'l'))
	ok, err := a.Run(tree)
	require.NoError(t, err)
	assert.True(t, ok)
}

func Test_Complement_idempotent_tree(t *testing.T) {
	base := treeAlphabetBase()
	alpha := alphabet.Extend(base, 1)
	a := Symb(alpha, 'a', 1)
	notNot := a.Complement().Complement()

	tree := node(base, 1, 'a', leaf(base, 1, 'l'), leaf(base, 1, 'l'))

	want, err := a.Run(tree)
	require.NoError(t, err)
	got, err := notNot.Run(tree)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_Determinize_preservesLanguage_tree(t *testing.T) {
	base := treeAlphabetBase()
	alpha := alphabet.Extend(base, 1)
	a := Singl(alpha, 1)
	det := a.Determinize()

	require.True(t, det.IsDeterministic())

	trees := []*EncodedTree{
		leaf(base, 1, 'l'),
		node(base, 1, 'a', leaf(base, 1, 'l'), leaf(base, 1, 'l')),
	}
	for _, tr := range trees {
		want, err := a.Run(tr)
		require.NoError(t, err)
		got, err := det.Run(tr)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

// S5. Tree alphabet {a:2, b:2, leaf:0}; φ = ∃x ∃y (P_a(x) ∧ P_b(y) ∧
// left(x,y)) meaning "some a-node has a b-node as its left child".
func Test_SeedScenario_S5(t *testing.T) {
	base := treeAlphabetBase()
	alpha2 := alphabet.Extend(base, 2)

	// track 1 = x, track 2 = y (innermost).
	symbA := Symb(alpha2, 'a', 1)
	symbB := Symb(alpha2, 'b', 2)
	leftXY := LeftOrRight(alpha2, 1, 2, 0)

	alpha1 := alphabet.Extend(base, 1)

	compiled := symbA.Cut(symbB).Cut(leftXY)
	existsY := Singl(alpha2, 2).Cut(compiled).Project()
	existsX := Singl(alpha1, 1).Cut(existsY).Project()

	bNode := node(base, 0, 'b', leaf(base, 0, 'l'), leaf(base, 0, 'l'))
	accepting := node(base, 0, 'a', bNode, leaf(base, 0, 'l'))
	rejecting := node(base, 0, 'a', leaf(base, 0, 'l'), bNode)

	ok, err := existsX.Run(accepting)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = existsX.Run(rejecting)
	require.NoError(t, err)
	assert.False(t, ok)
}
