package treewidth

// Node is one node of a rooted labelled tree, grounded on treeDecomp.py's
// Node (label, id, children).
type Node struct {
	ID       int
	Label    Bag
	Children []*Node
}

// RootedTree is a tree decomposition rooted at a chosen bag, consumable by
// the tree-automaton pipeline for the tree case (spec §4.7's Rooting
// step). Grounded on treeDecomp.py's RootedTree / build_subtree.
type RootedTree struct {
	Root *Node
}

// Root builds a RootedTree from d by DFS from rootBagID, per spec §4.7.
func Root(d *TreeDecomposition, rootBagID int) *RootedTree {
	adj := adjacencyFromEdges(len(d.Bags), d.Edges)
	bagByID := make(map[int]Bag, len(d.Bags))
	for _, b := range d.Bags {
		bagByID[b.ID] = b
	}

	visited := map[int]bool{}
	var build func(id int) *Node
	build = func(id int) *Node {
		visited[id] = true
		n := &Node{ID: id, Label: bagByID[id]}
		for _, nbr := range adj[id] {
			if !visited[nbr] {
				n.Children = append(n.Children, build(nbr))
			}
		}
		return n
	}

	return &RootedTree{Root: build(rootBagID)}
}

// Walk calls fn for every node in the tree, root first (pre-order).
func (t *RootedTree) Walk(fn func(*Node)) {
	var rec func(*Node)
	rec = func(n *Node) {
		if n == nil {
			return
		}
		fn(n)
		for _, c := range n.Children {
			rec(c)
		}
	}
	rec(t.Root)
}
