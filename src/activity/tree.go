package activity

import "directory-api/src/model"

// UnboundedDepth expands the whole subtree, used for cascade deletion.
const UnboundedDepth = -1

type treeNode struct {
	parent   int
	children []int
}

// Tree is an arena of taxonomy nodes indexed by activity id, built from the
// flat adjacency rows. It supports iterative breadth-first expansion with a
// depth cap, which generalizes past the current 3-level limit.
type Tree struct {
	nodes map[int]*treeNode
}

func NewTree(activities []model.Activity) *Tree {
	t := &Tree{nodes: make(map[int]*treeNode, len(activities))}

	node := func(id int) *treeNode {
		if n, ok := t.nodes[id]; ok {
			return n
		}
		n := &treeNode{}
		t.nodes[id] = n
		return n
	}

	for _, a := range activities {
		n := node(a.Id)
		if a.ParentId != nil {
			n.parent = *a.ParentId
			parent := node(*a.ParentId)
			parent.children = append(parent.children, a.Id)
		}
	}

	return t
}

// Resolve returns the deduplicated set of activity ids reachable from rootId
// by following parent->child edges for at most maxDepth hops, always
// including rootId itself. A negative maxDepth expands without limit. An
// unknown rootId yields exactly {rootId}: asking for descendants of a missing
// node is not an error.
func (t *Tree) Resolve(rootId, maxDepth int) []int {
	seen := map[int]bool{rootId: true}
	result := []int{rootId}
	frontier := []int{rootId}

	for depth := 0; len(frontier) > 0 && (maxDepth < 0 || depth < maxDepth); depth++ {
		var next []int
		for _, id := range frontier {
			n, ok := t.nodes[id]
			if !ok {
				continue
			}
			for _, child := range n.children {
				if seen[child] {
					continue
				}
				seen[child] = true
				result = append(result, child)
				next = append(next, child)
			}
		}
		frontier = next
	}

	return result
}
