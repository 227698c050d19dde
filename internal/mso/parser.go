package mso

import (
	"sort"
	"strings"
	"unicode"

	"github.com/dekarrin/msologic/internal/mso/msoerr"
	"github.com/dekarrin/msologic/internal/util"
)

// Parser turns formula source text into a desugared, variable-checked AST.
// It is a hand-written recursive-descent parser over the fixed prefix
// grammar of spec §4.4 (exists/forall binders, and/or/not/->/<-> as prefix
// functions, and a handful of atomic predicates), in the spirit of the
// original mso.py front end: no parser-generator or table is warranted for
// a grammar this size. Every binary form is "head(arg1,arg2)" and is split
// on its single top-level comma, mirroring mso.py's _split_at_comma.
type Parser struct {
	mode Mode
}

// Mode selects which atomic predicates are legal: the word case allows
// NodeLeq (order) but not NodeChild, the tree case is the reverse.
type Mode int

const (
	ModeWord Mode = iota
	ModeTree
)

func (m Mode) String() string {
	if m == ModeTree {
		return "tree"
	}
	return "word"
}

// NewParser returns a parser for the given mode.
func NewParser(mode Mode) *Parser {
	return &Parser{mode: mode}
}

// Parse parses src into a formula AST, desugars ∀ into ¬∃¬, and verifies
// every variable used is bound by an enclosing quantifier. It returns
// *msoerr.Error{ErrSyntax} or *msoerr.Error{ErrUnboundVariable} on failure.
func (p *Parser) Parse(src string) (*Node, error) {
	n, rest, err := p.parseFormula(strings.TrimSpace(src))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rest) != "" {
		return nil, msoerr.New(msoerr.ErrSyntax, "unexpected trailing input %q", rest)
	}
	n = n.Desugar()
	if free := n.FreeVars(); len(free) > 0 {
		names := make([]string, 0, len(free))
		for name := range free {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, msoerr.New(msoerr.ErrUnboundVariable, "%s not bound by any quantifier", util.MakeTextList(names))
	}
	return n, nil
}

// parseFormula dispatches on the formula's head token. Every non-atomic
// head is a recognized keyword; anything else falls through to parseAtom.
func (p *Parser) parseFormula(src string) (*Node, string, error) {
	src = strings.TrimSpace(src)

	if tok, ok := peekOp(src, "exists"); ok {
		return p.parseQuantifier(tok, NodeExists)
	}
	if tok, ok := peekOp(src, "forall"); ok {
		return p.parseQuantifier(tok, NodeForAll)
	}
	if tok, ok := peekOp(src, "not"); ok {
		inner, rest, err := splitParen(strings.TrimSpace(tok))
		if err != nil {
			return nil, "", err
		}
		operand, leftover, err := p.parseFormula(inner)
		if err != nil {
			return nil, "", err
		}
		if strings.TrimSpace(leftover) != "" {
			return nil, "", msoerr.New(msoerr.ErrSyntax, "unexpected input %q inside not(...)", leftover)
		}
		return not(operand), rest, nil
	}
	if tok, ok := peekOp(src, "and"); ok {
		return p.parseBinaryFormula(tok, func(l, r *Node) *Node { return and(l, r) })
	}
	if tok, ok := peekOp(src, "or"); ok {
		return p.parseBinaryFormula(tok, func(l, r *Node) *Node { return or(l, r) })
	}
	if tok, ok := peekOp(src, "->"); ok {
		return p.parseBinaryFormula(tok, func(l, r *Node) *Node { return &Node{Kind: NodeImplies, Left: l, Right: r} })
	}
	if tok, ok := peekOp(src, "<->"); ok {
		return p.parseBinaryFormula(tok, func(l, r *Node) *Node { return &Node{Kind: NodeIff, Left: l, Right: r} })
	}

	if strings.HasPrefix(src, "(") {
		inner, rest, err := splitParen(src)
		if err != nil {
			return nil, "", err
		}
		n, leftover, err := p.parseFormula(inner)
		if err != nil {
			return nil, "", err
		}
		if strings.TrimSpace(leftover) != "" {
			return nil, "", msoerr.New(msoerr.ErrSyntax, "unexpected input %q inside parentheses", leftover)
		}
		return n, rest, nil
	}

	return p.parseAtom(src)
}

// parseBinaryFormula parses "(phi,psi)" after a connective keyword, where
// each of phi and psi is itself a full formula.
func (p *Parser) parseBinaryFormula(src string, combine func(l, r *Node) *Node) (*Node, string, error) {
	inner, rest, err := splitParen(strings.TrimSpace(src))
	if err != nil {
		return nil, "", err
	}
	parts, err := splitAtComma(inner)
	if err != nil {
		return nil, "", err
	}
	if len(parts) != 2 {
		return nil, "", msoerr.New(msoerr.ErrSyntax, "expected exactly 2 comma-separated formulas, got %d", len(parts))
	}
	left, leftover, err := p.parseFormula(parts[0])
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(leftover) != "" {
		return nil, "", msoerr.New(msoerr.ErrSyntax, "unexpected input %q after left operand", leftover)
	}
	right, leftover, err := p.parseFormula(parts[1])
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(leftover) != "" {
		return nil, "", msoerr.New(msoerr.ErrSyntax, "unexpected input %q after right operand", leftover)
	}
	return combine(left, right), rest, nil
}

func peekOp(src, op string) (string, bool) {
	if strings.HasPrefix(src, op) {
		return src[len(op):], true
	}
	return "", false
}

// parseQuantifier parses "v(phi)" following an exists/forall keyword, per
// spec §4.4's "∃v(φ) | ∀v(φ)".
func (p *Parser) parseQuantifier(src string, kind NodeKind) (*Node, string, error) {
	src = strings.TrimSpace(src)
	name, rest := takeIdent(src)
	if name == "" {
		return nil, "", msoerr.New(msoerr.ErrSyntax, "expected variable name after quantifier")
	}
	varKind := kindOfName(name)
	inner, rest2, err := splitParen(strings.TrimSpace(rest))
	if err != nil {
		return nil, "", err
	}
	body, leftover, err := p.parseFormula(inner)
	if err != nil {
		return nil, "", err
	}
	if strings.TrimSpace(leftover) != "" {
		return nil, "", msoerr.New(msoerr.ErrSyntax, "unexpected input %q inside quantifier body", leftover)
	}
	if kind == NodeForAll {
		return &Node{Kind: NodeForAll, Var: name, VarKind: varKind, Body: body}, rest2, nil
	}
	return exists(name, varKind, body), rest2, nil
}

// parseAtom parses one of the fixed atomic predicates: P_c(v), le(v,v),
// in(V,v), left(v,v), right(v,v), card_eq(V,V), plus the supplemented
// even(V) (see SPEC_FULL.md).
func (p *Parser) parseAtom(src string) (*Node, string, error) {
	src = strings.TrimSpace(src)

	if strings.HasPrefix(src, "P_") {
		rest := src[2:]
		if len(rest) == 0 {
			return nil, "", msoerr.New(msoerr.ErrSyntax, "expected symbol after P_")
		}
		symbol := rest[0]
		rest = rest[1:]
		args, rest2, err := splitParen(strings.TrimSpace(rest))
		if err != nil {
			return nil, "", err
		}
		return &Node{Kind: NodeSymbol, Symbol: symbol, VarA: strings.TrimSpace(args)}, rest2, nil
	}

	if tok, ok := peekOp(src, "le"); ok && !strings.HasPrefix(src, "left") {
		if p.mode != ModeWord {
			return nil, "", msoerr.New(msoerr.ErrSyntax, "le(.,.) is only valid in word mode")
		}
		a, b, rest, err := parsePair(tok)
		if err != nil {
			return nil, "", err
		}
		return &Node{Kind: NodeLeq, VarA: a, VarB: b}, rest, nil
	}

	if tok, ok := peekOp(src, "in"); ok {
		// in(V,v): set variable first, element variable second, per spec §4.4.
		a, b, rest, err := parsePair(tok)
		if err != nil {
			return nil, "", err
		}
		return &Node{Kind: NodeIn, VarSet: a, VarA: b}, rest, nil
	}

	if tok, ok := peekOp(src, "left"); ok {
		if p.mode != ModeTree {
			return nil, "", msoerr.New(msoerr.ErrSyntax, "left(.,.) is only valid in tree mode")
		}
		a, b, rest, err := parsePair(tok)
		if err != nil {
			return nil, "", err
		}
		return &Node{Kind: NodeChild, VarA: a, VarB: b, ChildIndex: 0}, rest, nil
	}
	if tok, ok := peekOp(src, "right"); ok {
		if p.mode != ModeTree {
			return nil, "", msoerr.New(msoerr.ErrSyntax, "right(.,.) is only valid in tree mode")
		}
		a, b, rest, err := parsePair(tok)
		if err != nil {
			return nil, "", err
		}
		return &Node{Kind: NodeChild, VarA: a, VarB: b, ChildIndex: 1}, rest, nil
	}

	if tok, ok := peekOp(src, "card_eq"); ok {
		a, b, rest, err := parsePair(tok)
		if err != nil {
			return nil, "", err
		}
		return &Node{Kind: NodeCardEq, VarSet: a, VarSet2: b}, rest, nil
	}

	if tok, ok := peekOp(src, "even"); ok {
		inner, rest, err := splitParen(strings.TrimSpace(tok))
		if err != nil {
			return nil, "", err
		}
		return &Node{Kind: NodeEvenSet, VarSet: strings.TrimSpace(inner)}, rest, nil
	}

	return nil, "", msoerr.New(msoerr.ErrSyntax, "unrecognized atomic formula near %q", src)
}

// parsePair parses "(a,b)" honoring nested parentheses in either argument,
// grounded on mso.py's _split_at_comma.
func parsePair(src string) (a, b, rest string, err error) {
	inner, rest, err := splitParen(strings.TrimSpace(src))
	if err != nil {
		return "", "", "", err
	}
	parts, err := splitAtComma(inner)
	if err != nil {
		return "", "", "", err
	}
	if len(parts) != 2 {
		return "", "", "", msoerr.New(msoerr.ErrSyntax, "expected exactly 2 comma-separated arguments, got %d", len(parts))
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), rest, nil
}

// splitParen expects src to start with '(' and returns the content between
// the matching close paren and whatever trails it.
func splitParen(src string) (inner, rest string, err error) {
	if !strings.HasPrefix(src, "(") {
		return "", "", msoerr.New(msoerr.ErrSyntax, "expected '(' at %q", src)
	}
	depth := 0
	for i, r := range src {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return src[1:i], src[i+1:], nil
			}
		}
	}
	return "", "", msoerr.New(msoerr.ErrSyntax, "unbalanced parentheses in %q", src)
}

// splitAtComma splits src on top-level commas only, ignoring commas nested
// inside parentheses.
func splitAtComma(src string) ([]string, error) {
	var parts []string
	depth := 0
	start := 0
	for i, r := range src {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, msoerr.New(msoerr.ErrSyntax, "unbalanced parentheses in %q", src)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, src[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, msoerr.New(msoerr.ErrSyntax, "unbalanced parentheses in %q", src)
	}
	parts = append(parts, src[start:])
	return parts, nil
}

// takeIdent consumes a leading identifier (letters/digits, optionally
// subscripted with an underscore) and returns it plus whatever remains.
func takeIdent(src string) (ident, rest string) {
	i := 0
	for i < len(src) && (unicode.IsLetter(rune(src[i])) || unicode.IsDigit(rune(src[i])) || src[i] == '_') {
		i++
	}
	return src[:i], src[i:]
}

// kindOfName derives first- vs second-order per the original convention:
// an uppercase leading letter names a set variable.
func kindOfName(name string) VarKind {
	if len(name) > 0 && unicode.IsUpper(rune(name[0])) {
		return SecondOrder
	}
	return FirstOrder
}
