package treewidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S6. On a 3-cycle graph, any elimination ordering yields a tree
// decomposition with three bags of size <= 3 satisfying all three
// properties.
func Test_SeedScenario_S6(t *testing.T) {
	g := NewGraph()
	g.AddEdge("v1", "v2")
	g.AddEdge("v2", "v3")
	g.AddEdge("v3", "v1")

	order := g.MinDegreeOrdering()
	require.Len(t, order, 3)

	decomp := Decompose(g, order)
	for _, b := range decomp.Bags {
		assert.LessOrEqual(t, len(b.Vertices), 3)
	}

	vc, ec, ri := decomp.VerifyInvariants(g)
	assert.True(t, vc, "vertex cover")
	assert.True(t, ec, "edge cover")
	assert.True(t, ri, "running intersection")
}

func Test_MinDegreeOrdering_deterministicTieBreak(t *testing.T) {
	g := NewGraph()
	g.AddVertex("a")
	g.AddVertex("b")
	g.AddVertex("c")

	order := g.MinDegreeOrdering()
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func Test_Root_buildsTreeCoveringEveryBag(t *testing.T) {
	g := NewGraph()
	g.AddEdge("v1", "v2")
	g.AddEdge("v2", "v3")

	order := g.MinDegreeOrdering()
	decomp := Decompose(g, order)
	rooted := Root(decomp, decomp.Bags[len(decomp.Bags)-1].ID)

	seen := map[int]bool{}
	rooted.Walk(func(n *Node) { seen[n.ID] = true })
	assert.Len(t, seen, len(decomp.Bags))
}
