package present

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/msologic/internal/mso"
	"github.com/dekarrin/msologic/internal/mso/alphabet"
	"github.com/dekarrin/msologic/internal/mso/strauto"
	"github.com/dekarrin/msologic/internal/mso/treeauto"
)

func Test_StringTransitionTable_rendersHeaderRow(t *testing.T) {
	base := alphabet.NewWordAlphabet('a', 'b')
	alpha := alphabet.Extend(base, 1)

	a := strauto.Singl(alpha, 1)
	out := StringTransitionTable(a)

	assert.Contains(t, out, "state")
	assert.Contains(t, out, "letter")
	assert.Contains(t, out, "successors")
}

func Test_TreeTransitionTable_rendersHeaderRow(t *testing.T) {
	base := alphabet.NewTreeAlphabet(map[byte]int{'a': 2, 'l': 0})
	alpha := alphabet.Extend(base, 1)

	a := treeauto.Singl(alpha, 1)
	out := TreeTransitionTable(a)

	assert.Contains(t, out, "letter")
	assert.Contains(t, out, "children")
	assert.Contains(t, out, "successors")
}

func Test_Formula_rendersQuantifierAndPredicate(t *testing.T) {
	p := mso.NewParser(mso.ModeWord)
	n, err := p.Parse("exists x(P_a(x))")
	require.NoError(t, err)

	out := Formula(n)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "exists x")
	assert.Contains(t, lines[1], "P_a(x)")
}
