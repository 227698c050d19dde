// Package present renders a compiled automaton's transition table and the
// formula's AST as human-readable text. msoc's --describe flag prints the
// transition tables; the AST renderer is not wired into either CLI.
// Grounded on
// _examples/dekarrin-tunaq/internal/ictiobus/parse/lalr.go's use of
// rosed.Edit("").InsertTableOpts(...) to render parser tables.
package present

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/msologic/internal/mso"
	"github.com/dekarrin/msologic/internal/mso/strauto"
	"github.com/dekarrin/msologic/internal/mso/treeauto"
)

// StringTransitionTable renders a's transition table, one row per (state,
// letter) pair that has at least one successor.
func StringTransitionTable(a *strauto.NFA) string {
	data := [][]string{{"state", "letter", "successors"}}
	for _, q := range sortedElements(a.States) {
		for _, l := range a.Alpha.Letters {
			succ := a.Move(q, l)
			if succ.Empty() {
				continue
			}
			data = append(data, []string{q, l.Key(), strings.Join(sortedElements(succ), ",")})
		}
	}
	return rosed.Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{TableHeaders: true, NoTrailingLineSeparators: true}).
		String()
}

// TreeTransitionTable renders a's transition table, one row per (letter,
// children) combination that has at least one successor.
func TreeTransitionTable(a *treeauto.NTA) string {
	data := [][]string{{"letter", "children", "successors"}}
	for _, lk := range sortedKeys(a.Delta) {
		byChildren := a.Delta[lk]
		for _, ck := range sortedKeys(byChildren) {
			children := ck
			if children == "" {
				children = "()"
			}
			data = append(data, []string{lk, children, strings.Join(sortedElements(byChildren[ck]), ",")})
		}
	}
	return rosed.Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{TableHeaders: true, NoTrailingLineSeparators: true}).
		String()
}

// Formula renders a parsed formula's AST as an indented tree, one node per
// line, children indented two spaces below their parent.
func Formula(n *mso.Node) string {
	var sb strings.Builder
	writeNode(&sb, n, 0)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *mso.Node, depth int) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(describeNode(n))
	sb.WriteByte('\n')
	for _, child := range children(n) {
		writeNode(sb, child, depth+1)
	}
}

func children(n *mso.Node) []*mso.Node {
	switch n.Kind {
	case mso.NodeExists, mso.NodeForAll:
		return []*mso.Node{n.Body}
	case mso.NodeNot:
		return []*mso.Node{n.Operand}
	case mso.NodeAnd, mso.NodeOr, mso.NodeImplies, mso.NodeIff:
		return []*mso.Node{n.Left, n.Right}
	default:
		return nil
	}
}

func describeNode(n *mso.Node) string {
	switch n.Kind {
	case mso.NodeExists:
		return fmt.Sprintf("exists %s (%s)", n.Var, n.VarKind)
	case mso.NodeForAll:
		return fmt.Sprintf("forall %s (%s)", n.Var, n.VarKind)
	case mso.NodeNot:
		return "not"
	case mso.NodeAnd:
		return "and"
	case mso.NodeOr:
		return "or"
	case mso.NodeImplies:
		return "->"
	case mso.NodeIff:
		return "<->"
	case mso.NodeLeq:
		return fmt.Sprintf("le(%s,%s)", n.VarA, n.VarB)
	case mso.NodeSub:
		return fmt.Sprintf("sub(%s,%s)", n.VarSet, n.VarSet2)
	case mso.NodeIn:
		return fmt.Sprintf("in(%s,%s)", n.VarSet, n.VarA)
	case mso.NodeSymbol:
		return fmt.Sprintf("P_%c(%s)", n.Symbol, n.VarA)
	case mso.NodeChild:
		side := "left"
		if n.ChildIndex == 1 {
			side = "right"
		}
		return fmt.Sprintf("%s(%s,%s)", side, n.VarA, n.VarB)
	case mso.NodeCardEq:
		return fmt.Sprintf("card_eq(%s,%s)", n.VarSet, n.VarSet2)
	case mso.NodeEvenSet:
		return fmt.Sprintf("even(%s)", n.VarSet)
	default:
		return "node(" + strconv.Itoa(int(n.Kind)) + ")"
	}
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func sortedElements(s interface{ Elements() []string }) []string {
	el := s.Elements()
	out := make([]string, len(el))
	copy(out, el)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
