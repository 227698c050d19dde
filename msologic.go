// Package msologic compiles Monadic Second-Order logic formulas over finite
// words and finite ranked trees into finite automata, per spec §1: the
// caller supplies a closed formula and a base alphabet and gets back an
// automaton whose acceptance of an encoded input is equivalent to that
// input satisfying the formula. This file is the package's external
// surface (spec §6); the compiler internals live under internal/mso.
package msologic

import (
	"github.com/dekarrin/msologic/internal/mso"
	"github.com/dekarrin/msologic/internal/mso/alphabet"
	"github.com/dekarrin/msologic/internal/mso/treeauto"
)

// Mode selects whether a formula is compiled against the word or the tree
// semantics.
type Mode = mso.Mode

const (
	ModeWord = mso.ModeWord
	ModeTree = mso.ModeTree
)

// BaseAlphabet is the finite base alphabet a formula is compiled over.
type BaseAlphabet = alphabet.BaseAlphabet

// NewWordAlphabet builds a base alphabet for the word case.
func NewWordAlphabet(symbols ...byte) BaseAlphabet {
	return alphabet.NewWordAlphabet(symbols...)
}

// NewTreeAlphabet builds a base alphabet for the tree case from a
// symbol-to-arity mapping.
func NewTreeAlphabet(arity map[byte]int) BaseAlphabet {
	return alphabet.NewTreeAlphabet(arity)
}

// Automaton is a compiled formula: a finite automaton over some extended
// alphabet Σ_k, in whichever of the two representations Mode selects.
type Automaton = mso.Automaton

// EncodedWord is a word over an automaton's extended alphabet: a sequence
// of (symbol, bits) letters, per spec §4.8.
type EncodedWord = []alphabet.Letter

// EncodedTree is a ranked-tree input over an automaton's extended
// alphabet, per spec §4.8.
type EncodedTree = treeauto.EncodedTree

// DefaultResourceCeiling bounds |Σ|·2^k during compilation (spec §9's
// "Alphabet growth" note): above this, Compile fails with
// msoerr.ErrResourceExceeded instead of silently building an intractable
// automaton. Zero means no ceiling.
const DefaultResourceCeiling = 1 << 20

// Compile parses formula and compiles it into an automaton over base, per
// spec §6's `compile(formula, base_alphabet, mode) -> Automaton`.
func Compile(formula string, base BaseAlphabet, mode Mode) (*Automaton, error) {
	return CompileWithCeiling(formula, base, mode, DefaultResourceCeiling)
}

// CompileWithCeiling is Compile with an explicit resource ceiling (0 = no
// ceiling), for callers that need to raise or disable the default.
func CompileWithCeiling(formula string, base BaseAlphabet, mode Mode, ceiling int) (*Automaton, error) {
	parser := mso.NewParser(mode)
	ast, err := parser.Parse(formula)
	if err != nil {
		return nil, err
	}
	return mso.Compile(ast, base, mode, ceiling)
}

// Run evaluates a compiled automaton against a concrete encoded input
// (EncodedWord for ModeWord, *EncodedTree for ModeTree), per spec §6's
// `run(automaton, encoded_input) -> bool`.
func Run(a *Automaton, input interface{}) (bool, error) {
	switch a.Mode {
	case ModeWord:
		word, ok := input.(EncodedWord)
		if !ok {
			return false, mso.ErrInputShape(ModeWord)
		}
		return a.Word.Run(word)
	case ModeTree:
		tree, ok := input.(*EncodedTree)
		if !ok {
			return false, mso.ErrInputShape(ModeTree)
		}
		return a.Tree.Run(tree)
	default:
		return false, mso.ErrInputShape(a.Mode)
	}
}

// Accepts compiles formula and immediately runs it against input, per spec
// §6's `accepts(formula, base_alphabet, encoded_input) -> bool` convenience
// entry point.
func Accepts(formula string, base BaseAlphabet, mode Mode, input interface{}) (bool, error) {
	a, err := Compile(formula, base, mode)
	if err != nil {
		return false, err
	}
	return Run(a, input)
}
