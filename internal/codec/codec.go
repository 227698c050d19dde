// Package codec provides a binary wire form for encoded words and trees,
// as a CLI convenience for piping automaton inputs between invocations of
// msoc — explicitly not a cache (spec §1 excludes serialized on-disk
// caches; this only ever serializes the caller-supplied input, never an
// automaton). Grounded on
// _examples/dekarrin-tunaq/server/dao/sqlite/sessions.go's
// rezi.EncBinary/rezi.DecBinary usage for binary-marshaling domain values
// directly by reflection, with no manual (Un)MarshalBinary boilerplate per
// type — the same way the teacher hands rezi its own *game.Game structs.
package codec

import (
	"github.com/dekarrin/rezi"

	"github.com/dekarrin/msologic/internal/mso/alphabet"
	"github.com/dekarrin/msologic/internal/mso/treeauto"
)

// wireTree is the on-the-wire shape of treeauto.EncodedTree: rezi encodes
// structs by reflection but EncodedTree's self-referential *EncodedTree
// child pointers need an explicit value-typed mirror for it to walk.
type wireTree struct {
	Letter   alphabet.Letter
	Children []wireTree
}

func toWireTree(t *treeauto.EncodedTree) wireTree {
	if t == nil {
		return wireTree{}
	}
	children := make([]wireTree, len(t.Children))
	for i, c := range t.Children {
		children[i] = toWireTree(c)
	}
	return wireTree{Letter: t.Letter, Children: children}
}

func fromWireTree(w wireTree) *treeauto.EncodedTree {
	var children []*treeauto.EncodedTree
	if len(w.Children) > 0 {
		children = make([]*treeauto.EncodedTree, len(w.Children))
		for i, c := range w.Children {
			children[i] = fromWireTree(c)
		}
	}
	return &treeauto.EncodedTree{Letter: w.Letter, Children: children}
}

// EncodeWord serializes an encoded word (spec §4.8) to its binary wire
// form.
func EncodeWord(word []alphabet.Letter) []byte {
	return rezi.EncBinary(word)
}

// DecodeWord deserializes a word previously produced by EncodeWord.
func DecodeWord(data []byte) ([]alphabet.Letter, error) {
	var word []alphabet.Letter
	if _, err := rezi.DecBinary(data, &word); err != nil {
		return nil, err
	}
	return word, nil
}

// EncodeTree serializes an encoded tree (spec §4.8) to its binary wire
// form.
func EncodeTree(t *treeauto.EncodedTree) []byte {
	return rezi.EncBinary(toWireTree(t))
}

// DecodeTree deserializes a tree previously produced by EncodeTree.
func DecodeTree(data []byte) (*treeauto.EncodedTree, error) {
	var wire wireTree
	if _, err := rezi.DecBinary(data, &wire); err != nil {
		return nil, err
	}
	return fromWireTree(wire), nil
}
