package mso

import (
	"github.com/google/uuid"

	"github.com/dekarrin/msologic/internal/mso/alphabet"
	"github.com/dekarrin/msologic/internal/mso/msoerr"
	"github.com/dekarrin/msologic/internal/mso/strauto"
	"github.com/dekarrin/msologic/internal/mso/treeauto"
)

// Automaton is the result of compiling a formula: exactly one of Word or
// Tree is populated, matching the Mode the formula was compiled for. K is
// the track width of the final alphabet (0 once every quantifier has been
// projected away). BuildID identifies this compile for log correlation,
// the same role the teacher's uuid.NewRandom() session ids serve.
type Automaton struct {
	Mode    Mode
	Base    alphabet.BaseAlphabet
	K       int
	Word    *strauto.NFA
	Tree    *treeauto.NTA
	BuildID uuid.UUID
}

// Compile walks a parsed, desugared formula bottom-up and produces the
// automaton recognizing its models, per spec §4.5. ResourceCeiling bounds
// |Σ|·2^k at every intermediate alphabet; a formula whose quantifier depth
// would exceed it fails with ErrResourceExceeded rather than silently
// attempting an intractable determinization.
func Compile(n *Node, base alphabet.BaseAlphabet, mode Mode, resourceCeiling int) (*Automaton, error) {
	c := &compiler{base: base, mode: mode, vars: NewVarTable(), ceiling: resourceCeiling}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeWord:
		a, err := c.compileWord(n)
		if err != nil {
			return nil, err
		}
		return &Automaton{Mode: mode, Base: base, K: a.Alpha.K, Word: a, BuildID: id}, nil
	case ModeTree:
		a, err := c.compileTree(n)
		if err != nil {
			return nil, err
		}
		return &Automaton{Mode: mode, Base: base, K: a.Alpha.K, Tree: a, BuildID: id}, nil
	default:
		return nil, msoerr.New(msoerr.ErrSyntax, "unknown compilation mode")
	}
}

type compiler struct {
	base    alphabet.BaseAlphabet
	mode    Mode
	vars    *VarTable
	ceiling int
}

func (c *compiler) checkCeiling(k int) error {
	if c.ceiling <= 0 {
		return nil
	}
	if len(c.base.Symbols)<<uint(k) > c.ceiling {
		return msoerr.New(msoerr.ErrResourceExceeded, "extended alphabet size %d*2^%d exceeds ceiling %d",
			len(c.base.Symbols), k, c.ceiling)
	}
	return nil
}

// --- word (string) compilation ---

func (c *compiler) compileWord(n *Node) (*strauto.NFA, error) {
	if err := c.checkCeiling(c.vars.Depth()); err != nil {
		return nil, err
	}
	alpha := alphabet.Extend(c.base, c.vars.Depth())

	switch n.Kind {
	case NodeSymbol:
		track, err := c.trackOfKind(n.VarA, FirstOrder)
		if err != nil {
			return nil, err
		}
		return strauto.Symb(alpha, n.Symbol, track), nil
	case NodeLeq:
		ti, err := c.trackOfKind(n.VarA, FirstOrder)
		if err != nil {
			return nil, err
		}
		tj, err := c.trackOfKind(n.VarB, FirstOrder)
		if err != nil {
			return nil, err
		}
		return strauto.Leq(alpha, ti, tj), nil
	case NodeSub:
		ti, err := c.trackOfKind(n.VarSet, SecondOrder)
		if err != nil {
			return nil, err
		}
		tj, err := c.trackOfKind(n.VarSet2, SecondOrder)
		if err != nil {
			return nil, err
		}
		return strauto.Sub(alpha, ti, tj), nil
	case NodeIn:
		te, err := c.trackOfKind(n.VarA, FirstOrder)
		if err != nil {
			return nil, err
		}
		ts, err := c.trackOfKind(n.VarSet, SecondOrder)
		if err != nil {
			return nil, err
		}
		return strauto.In(alpha, te, ts), nil
	case NodeCardEq:
		ti, err := c.trackOfKind(n.VarSet, SecondOrder)
		if err != nil {
			return nil, err
		}
		tj, err := c.trackOfKind(n.VarSet2, SecondOrder)
		if err != nil {
			return nil, err
		}
		return strauto.CardEq(alpha, ti, tj), nil
	case NodeEvenSet:
		ts, err := c.trackOfKind(n.VarSet, SecondOrder)
		if err != nil {
			return nil, err
		}
		return strauto.EvenSet(alpha, ts), nil
	case NodeNot:
		a, err := c.compileWord(n.Operand)
		if err != nil {
			return nil, err
		}
		return a.Complement(), nil
	case NodeAnd:
		l, err := c.compileWord(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := c.compileWord(n.Right)
		if err != nil {
			return nil, err
		}
		return l.Cut(r), nil
	case NodeOr:
		l, err := c.compileWord(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := c.compileWord(n.Right)
		if err != nil {
			return nil, err
		}
		return l.Union(r), nil
	case NodeImplies:
		l, err := c.compileWord(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := c.compileWord(n.Right)
		if err != nil {
			return nil, err
		}
		return l.Complement().Union(r), nil
	case NodeIff:
		l, err := c.compileWord(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := c.compileWord(n.Right)
		if err != nil {
			return nil, err
		}
		fwd := l.Complement().Union(r)
		bwd := r.Complement().Union(l)
		return fwd.Cut(bwd), nil
	case NodeExists:
		return c.compileWordExists(n)
	default:
		return nil, msoerr.New(msoerr.ErrSyntax, "node kind %d is not valid in word mode", n.Kind)
	}
}

func (c *compiler) compileWordExists(n *Node) (*strauto.NFA, error) {
	track := c.vars.Push(n.Var, n.VarKind)
	body, err := c.compileWord(n.Body)
	if err != nil {
		c.vars.Pop(n.Var)
		return nil, err
	}
	c.vars.Pop(n.Var)

	alpha := alphabet.Extend(c.base, track)
	if n.VarKind == FirstOrder {
		restricted := strauto.Singl(alpha, track).Cut(body)
		return restricted.Project(), nil
	}
	return body.Project(), nil
}

// trackOfKind resolves name to its allocated track and enforces that it was
// bound at the sort (first- vs second-order) the calling grammar position
// requires, per spec §7's ArityMismatch (predicate applied to wrong sort).
// exists X (P_a(X)) binds X second-order but NodeSymbol needs a first-order
// position; without this check it would compile silently into a vacuously
// true automaton instead of being rejected.
func (c *compiler) trackOfKind(name string, want VarKind) (int, error) {
	kind, ok := c.vars.KindOf(name)
	if !ok {
		return 0, msoerr.New(msoerr.ErrUnboundVariable, "variable %q is not bound", name)
	}
	if kind != want {
		return 0, msoerr.New(msoerr.ErrArityMismatch, "variable %q is %s, expected %s", name, kind, want)
	}
	t, _ := c.vars.TrackOf(name)
	return t, nil
}

// --- tree compilation ---

func (c *compiler) compileTree(n *Node) (*treeauto.NTA, error) {
	if err := c.checkCeiling(c.vars.Depth()); err != nil {
		return nil, err
	}
	alpha := alphabet.Extend(c.base, c.vars.Depth())

	switch n.Kind {
	case NodeSymbol:
		track, err := c.trackOfKind(n.VarA, FirstOrder)
		if err != nil {
			return nil, err
		}
		return treeauto.Symb(alpha, n.Symbol, track), nil
	case NodeChild:
		ti, err := c.trackOfKind(n.VarA, FirstOrder)
		if err != nil {
			return nil, err
		}
		tj, err := c.trackOfKind(n.VarB, FirstOrder)
		if err != nil {
			return nil, err
		}
		return treeauto.LeftOrRight(alpha, ti, tj, n.ChildIndex), nil
	case NodeSub:
		ti, err := c.trackOfKind(n.VarSet, SecondOrder)
		if err != nil {
			return nil, err
		}
		tj, err := c.trackOfKind(n.VarSet2, SecondOrder)
		if err != nil {
			return nil, err
		}
		return treeauto.Sub(alpha, ti, tj), nil
	case NodeIn:
		te, err := c.trackOfKind(n.VarA, FirstOrder)
		if err != nil {
			return nil, err
		}
		ts, err := c.trackOfKind(n.VarSet, SecondOrder)
		if err != nil {
			return nil, err
		}
		return treeauto.In(alpha, te, ts), nil
	case NodeCardEq:
		ti, err := c.trackOfKind(n.VarSet, SecondOrder)
		if err != nil {
			return nil, err
		}
		tj, err := c.trackOfKind(n.VarSet2, SecondOrder)
		if err != nil {
			return nil, err
		}
		return treeauto.CardEq(alpha, ti, tj), nil
	case NodeEvenSet:
		ts, err := c.trackOfKind(n.VarSet, SecondOrder)
		if err != nil {
			return nil, err
		}
		return treeauto.EvenSet(alpha, ts), nil
	case NodeNot:
		a, err := c.compileTree(n.Operand)
		if err != nil {
			return nil, err
		}
		return a.Complement(), nil
	case NodeAnd:
		l, err := c.compileTree(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := c.compileTree(n.Right)
		if err != nil {
			return nil, err
		}
		return l.Cut(r), nil
	case NodeOr:
		l, err := c.compileTree(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := c.compileTree(n.Right)
		if err != nil {
			return nil, err
		}
		return l.Union(r), nil
	case NodeImplies:
		l, err := c.compileTree(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := c.compileTree(n.Right)
		if err != nil {
			return nil, err
		}
		return l.Complement().Union(r), nil
	case NodeIff:
		l, err := c.compileTree(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := c.compileTree(n.Right)
		if err != nil {
			return nil, err
		}
		fwd := l.Complement().Union(r)
		bwd := r.Complement().Union(l)
		return fwd.Cut(bwd), nil
	case NodeExists:
		return c.compileTreeExists(n)
	default:
		return nil, msoerr.New(msoerr.ErrSyntax, "node kind %d is not valid in tree mode", n.Kind)
	}
}

func (c *compiler) compileTreeExists(n *Node) (*treeauto.NTA, error) {
	track := c.vars.Push(n.Var, n.VarKind)
	body, err := c.compileTree(n.Body)
	if err != nil {
		c.vars.Pop(n.Var)
		return nil, err
	}
	c.vars.Pop(n.Var)

	alpha := alphabet.Extend(c.base, track)
	if n.VarKind == FirstOrder {
		restricted := treeauto.Singl(alpha, track).Cut(body)
		return restricted.Project(), nil
	}
	return body.Project(), nil
}
