package treewidth

// Bag is a labelled subset of graph vertices, per spec §3.
type Bag struct {
	ID       int
	Vertices map[string]bool
}

func newBag(id int, vertices []string) Bag {
	m := make(map[string]bool, len(vertices))
	for _, v := range vertices {
		m[v] = true
	}
	return Bag{ID: id, Vertices: m}
}

func (b Bag) has(v string) bool { return b.Vertices[v] }

// TreeDecomposition is a tree whose nodes are bags, per spec §3. Edges are
// stored as an adjacency list over bag ids, grounded on treeDecomp.py's
// Tree (I=bags, F=edges).
type TreeDecomposition struct {
	Bags  []Bag
	Edges [][2]int
}

// Width returns the decomposition's width, max(|bag|) - 1.
func (d *TreeDecomposition) Width() int {
	max := 0
	for _, b := range d.Bags {
		if len(b.Vertices) > max {
			max = len(b.Vertices)
		}
	}
	return max - 1
}

// Decompose builds a tree decomposition from g and an elimination ordering
// (typically g.MinDegreeOrdering()), per spec §4.7's "Permutation → tree
// decomposition": for vertex v, bag B_v = {v} ∪ (remaining neighbors of
// v); clique the neighborhood and remove v; add an edge from B_v to the
// bag of the first later vertex in the ordering still present in B_v.
// Grounded on graph.py's createBags / permutationToTreeDecomposition.
func Decompose(g *Graph, order []string) *TreeDecomposition {
	work := g.Copy()
	decomp := &TreeDecomposition{}

	bagOf := make(map[string]int, len(order))
	for i, v := range order {
		nbrs := work.Neighbors(v)
		verts := append([]string{v}, nbrs...)
		bag := newBag(i, verts)
		decomp.Bags = append(decomp.Bags, bag)
		bagOf[v] = i

		work.EliminateVertex(v)
	}

	// Connect each bag to the bag of the first later vertex (in the
	// ordering) still contained in it.
	for i, v := range order {
		bag := decomp.Bags[i]
		for j := i + 1; j < len(order); j++ {
			u := order[j]
			if bag.has(u) {
				decomp.Edges = append(decomp.Edges, [2]int{i, j})
				break
			}
		}
	}

	return decomp
}

// VerifyInvariants checks the three standard tree-decomposition properties
// against g (spec §8.7): vertex cover, edge cover, running intersection.
// Used by tests, not by the pipeline itself.
func (d *TreeDecomposition) VerifyInvariants(g *Graph) (vertexCover, edgeCover, runningIntersection bool) {
	covered := map[string]bool{}
	for _, b := range d.Bags {
		for v := range b.Vertices {
			covered[v] = true
		}
	}
	vertexCover = true
	for _, v := range g.Vertices() {
		if !covered[v] {
			vertexCover = false
			break
		}
	}

	edgeCover = true
	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			if u >= v {
				continue
			}
			found := false
			for _, b := range d.Bags {
				if b.has(u) && b.has(v) {
					found = true
					break
				}
			}
			if !found {
				edgeCover = false
			}
		}
	}

	adj := adjacencyFromEdges(len(d.Bags), d.Edges)
	runningIntersection = true
	for _, v := range g.Vertices() {
		containing := []int{}
		for _, b := range d.Bags {
			if b.has(v) {
				containing = append(containing, b.ID)
			}
		}
		if len(containing) <= 1 {
			continue
		}
		if !isConnectedSubset(adj, containing) {
			runningIntersection = false
		}
	}

	return
}

func adjacencyFromEdges(n int, edges [][2]int) map[int][]int {
	adj := make(map[int][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	return adj
}

func isConnectedSubset(adj map[int][]int, nodes []int) bool {
	if len(nodes) == 0 {
		return true
	}
	set := map[int]bool{}
	for _, n := range nodes {
		set[n] = true
	}
	visited := map[int]bool{nodes[0]: true}
	stack := []int{nodes[0]}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range adj[cur] {
			if set[n] && !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	for _, n := range nodes {
		if !visited[n] {
			return false
		}
	}
	return true
}
