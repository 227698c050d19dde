// Package alphabet implements the extended-alphabet construction of
// spec §4.1: base alphabets (word or arity-mapped tree) extended with k
// boolean tracks. It is shared by the mso compilation driver and by both
// automaton representations (strauto, treeauto) and so lives below all of
// them to keep the import graph acyclic.
package alphabet

import (
	"fmt"
	"sort"
)

// Letter is one symbol of an extended alphabet: a base symbol paired with a
// bit vector of k tracks. Bits[i] records whether track i+1 is marked at a
// position carrying this letter.
type Letter struct {
	Symbol byte
	Bits   []bool
}

// Key returns a canonical string encoding of the letter suitable for use as
// a map key, e.g. "a#101".
func (l Letter) Key() string {
	buf := make([]byte, 0, 2+len(l.Bits))
	buf = append(buf, l.Symbol, '#')
	for _, b := range l.Bits {
		if b {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
	}
	return string(buf)
}

func (l Letter) String() string {
	return l.Key()
}

// DropLast returns the letter with its last track removed, the operation
// projection performs on every letter of Σ_k to produce a letter of Σ_{k-1}.
func (l Letter) DropLast() Letter {
	return Letter{Symbol: l.Symbol, Bits: l.Bits[:len(l.Bits)-1]}
}

// WithLast returns a copy of l with an additional track bit appended, used
// when enumerating the two old letters that project onto a new one.
func (l Letter) WithLast(bit bool) Letter {
	bits := make([]bool, len(l.Bits)+1)
	copy(bits, l.Bits)
	bits[len(l.Bits)] = bit
	return Letter{Symbol: l.Symbol, Bits: bits}
}

// BaseAlphabet is a finite base alphabet Σ. For the tree case every symbol
// carries a fixed arity; word-mode alphabets leave Arity nil and treat every
// symbol as arity-less.
type BaseAlphabet struct {
	Symbols []byte
	Arity   map[byte]int // nil for word alphabets
}

// NewWordAlphabet builds a base alphabet for the string case.
func NewWordAlphabet(symbols ...byte) BaseAlphabet {
	syms := append([]byte(nil), symbols...)
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return BaseAlphabet{Symbols: syms}
}

// NewTreeAlphabet builds a base alphabet for the tree case from a
// symbol-to-arity mapping.
func NewTreeAlphabet(arity map[byte]int) BaseAlphabet {
	syms := make([]byte, 0, len(arity))
	for s := range arity {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	cp := make(map[byte]int, len(arity))
	for k, v := range arity {
		cp[k] = v
	}
	return BaseAlphabet{Symbols: syms, Arity: cp}
}

// ArityOf returns the arity of s, or 0 if this is a word alphabet (every
// letter is treated as a single standalone position).
func (b BaseAlphabet) ArityOf(s byte) int {
	if b.Arity == nil {
		return 0
	}
	return b.Arity[s]
}

func (b BaseAlphabet) has(s byte) bool {
	for _, sym := range b.Symbols {
		if sym == s {
			return true
		}
	}
	return false
}

// ExtendedAlphabet is Σ_k: the base alphabet extended with k boolean tracks,
// per spec.md §4.1. |Σ_k| = |Σ|·2^k.
type ExtendedAlphabet struct {
	Base    BaseAlphabet
	K       int
	Letters []Letter
}

// Extend enumerates, for every base symbol, all 2^k bit vectors and returns
// the resulting extended alphabet. Order is unspecified.
func Extend(base BaseAlphabet, k int) ExtendedAlphabet {
	letters := make([]Letter, 0, len(base.Symbols)<<uint(k))
	for _, s := range base.Symbols {
		for mask := 0; mask < (1 << uint(k)); mask++ {
			bits := make([]bool, k)
			for i := 0; i < k; i++ {
				bits[i] = mask&(1<<uint(i)) != 0
			}
			letters = append(letters, Letter{Symbol: s, Bits: bits})
		}
	}
	return ExtendedAlphabet{Base: base, K: k, Letters: letters}
}

// Contains reports whether l is a letter of this extended alphabet: its
// symbol is in the base alphabet and it carries exactly K tracks.
func (a ExtendedAlphabet) Contains(l Letter) bool {
	return len(l.Bits) == a.K && a.Base.has(l.Symbol)
}

// ArityOf returns the arity of l's underlying base symbol.
func (a ExtendedAlphabet) ArityOf(l Letter) int {
	return a.Base.ArityOf(l.Symbol)
}

func (a ExtendedAlphabet) String() string {
	return fmt.Sprintf("Σ_%d over %s", a.K, string(a.Base.Symbols))
}
