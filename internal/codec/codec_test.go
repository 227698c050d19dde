package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/msologic/internal/mso/alphabet"
	"github.com/dekarrin/msologic/internal/mso/treeauto"
)

func Test_EncodeDecodeWord_roundTrip(t *testing.T) {
	word := []alphabet.Letter{
		{Symbol: 'a', Bits: []bool{true, false}},
		{Symbol: 'b', Bits: []bool{false, true}},
	}

	data := EncodeWord(word)
	got, err := DecodeWord(data)
	require.NoError(t, err)
	assert.Equal(t, word, got)
}

func Test_EncodeDecodeTree_roundTrip(t *testing.T) {
	tree := &treeauto.EncodedTree{
		Letter: alphabet.Letter{Symbol: 'a', Bits: []bool{true}},
		Children: []*treeauto.EncodedTree{
			{Letter: alphabet.Letter{Symbol: 'l', Bits: []bool{false}}},
			{Letter: alphabet.Letter{Symbol: 'l', Bits: []bool{false}}},
		},
	}

	data := EncodeTree(tree)
	got, err := DecodeTree(data)
	require.NoError(t, err)
	assert.Equal(t, tree, got)
}
