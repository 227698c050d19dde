// Package treewidth implements the graph + elimination-ordering +
// tree-decomposition + rooting pipeline of spec §4.7: an independent leg
// whose output (a RootedTree) feeds the tree-automaton compiler by
// providing a canonical ranked-tree shape derived from a graph instance.
// Grounded on _examples/original_source/graph.py and treeDecomp.py.
package treewidth

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	godsutils "github.com/emirpasic/gods/utils"
)

// Graph is an undirected simple graph over string-labelled vertices,
// grounded on graph.py's Vertex/Graph (adj, get_adj_verts, get_degree,
// add_fill_in_edges, remove_vertex, eliminate_vertex).
type Graph struct {
	adj map[string]map[string]bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: map[string]map[string]bool{}}
}

// AddVertex registers v with no edges, if not already present.
func (g *Graph) AddVertex(v string) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = map[string]bool{}
	}
}

// AddEdge adds an undirected edge between u and v, registering both
// vertices if needed.
func (g *Graph) AddEdge(u, v string) {
	g.AddVertex(u)
	g.AddVertex(v)
	if u == v {
		return
	}
	g.adj[u][v] = true
	g.adj[v][u] = true
}

// Vertices returns every vertex, in sorted order for deterministic output.
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Neighbors returns v's adjacent vertices, in sorted order.
func (g *Graph) Neighbors(v string) []string {
	out := make([]string, 0, len(g.adj[v]))
	for n := range g.adj[v] {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Degree returns the number of vertices adjacent to v.
func (g *Graph) Degree(v string) int {
	return len(g.adj[v])
}

// Adjacent reports whether u and v share an edge.
func (g *Graph) Adjacent(u, v string) bool {
	return g.adj[u][v]
}

// Copy returns an independent deep copy of g.
func (g *Graph) Copy() *Graph {
	out := NewGraph()
	for v, nbrs := range g.adj {
		out.AddVertex(v)
		for n := range nbrs {
			out.adj[v][n] = true
		}
	}
	return out
}

// MakeNeighborhoodClique adds fill-in edges so that every pair of v's
// current neighbors is connected, grounded on graph.py's
// make_neighborhood_clique / add_fill_in_edges.
func (g *Graph) MakeNeighborhoodClique(v string) {
	nbrs := g.Neighbors(v)
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			g.AddEdge(nbrs[i], nbrs[j])
		}
	}
}

// RemoveVertex deletes v and every edge touching it.
func (g *Graph) RemoveVertex(v string) {
	for n := range g.adj[v] {
		delete(g.adj[n], v)
	}
	delete(g.adj, v)
}

// EliminateVertex cliques v's neighborhood and then removes v, the single
// elimination step of graph.py's eliminate_vertex.
func (g *Graph) EliminateVertex(v string) {
	g.MakeNeighborhoodClique(v)
	g.RemoveVertex(v)
}

// MinDegreeOrdering computes an elimination ordering by iteratively
// picking the remaining vertex of minimum degree, cliquing its
// neighborhood, and removing it, per spec §4.7 and graph.py's
// minimal_degree_ordering. Ties are broken by label order — deterministic
// iteration over the remaining-vertex set is provided by an
// emirpasic/gods treeset rather than re-sorting on every step.
func (g *Graph) MinDegreeOrdering() []string {
	work := g.Copy()
	remaining := treeset.NewWith(godsutils.StringComparator)
	for _, v := range work.Vertices() {
		remaining.Add(v)
	}

	var order []string
	for !remaining.Empty() {
		var best string
		bestDegree := -1
		for _, vi := range remaining.Values() {
			v := vi.(string)
			d := work.Degree(v)
			if bestDegree == -1 || d < bestDegree {
				best = v
				bestDegree = d
			}
		}
		order = append(order, best)
		work.EliminateVertex(best)
		remaining.Remove(best)
	}
	return order
}
