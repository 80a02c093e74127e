package domain

// Walk visits root and its descendants depth-first in pre-order. depth is 0
// for root; parent is nil for root. Returning false from fn stops the walk.
func Walk(root *Node, fn func(n *Node, depth int, parent *Node) bool) {
	if root == nil {
		return
	}
	walk(root, 0, nil, fn)
}

func walk(n *Node, depth int, parent *Node, fn func(*Node, int, *Node) bool) bool {
	if !fn(n, depth, parent) {
		return false
	}
	for _, c := range n.Children {
		if !walk(c, depth+1, n, fn) {
			return false
		}
	}
	return true
}

// Find returns the node with the given id, or nil.
func Find(root *Node, id string) *Node {
	n, _ := FindWithParent(root, id)
	return n
}

// FindWithParent returns the node with the given id and its parent. The
// parent is nil when id is the root.
func FindWithParent(root *Node, id string) (node, parent *Node) {
	Walk(root, func(n *Node, _ int, p *Node) bool {
		if n.ID == id {
			node, parent = n, p
			return false
		}
		return true
	})
	return node, parent
}

// Count returns the number of nodes in the tree.
func Count(root *Node) int {
	total := 0
	Walk(root, func(*Node, int, *Node) bool {
		total++
		return true
	})
	return total
}

// MaxDepth returns the depth of the deepest node; a lone root has depth 0.
func MaxDepth(root *Node) int {
	deepest := 0
	Walk(root, func(_ *Node, d int, _ *Node) bool {
		if d > deepest {
			deepest = d
		}
		return true
	})
	return deepest
}

// FlatNode is a node with its position in the tree.
type FlatNode struct {
	Node     *Node
	Depth    int
	ParentID string
}

// FlattenByDepth lists nodes in depth-first order. When depthFilter is set
// only nodes at exactly that depth are returned.
func FlattenByDepth(root *Node, depthFilter *int) []FlatNode {
	var out []FlatNode
	Walk(root, func(n *Node, d int, p *Node) bool {
		if depthFilter != nil && d != *depthFilter {
			return true
		}
		fn := FlatNode{Node: n, Depth: d}
		if p != nil {
			fn.ParentID = p.ID
		}
		out = append(out, fn)
		return true
	})
	return out
}

// Clone deep-copies the tree structure. Plan attributes are copied by value;
// style maps and tag slices are shared.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Extended != nil {
		ext := *n.Extended
		if ext.Plan != nil {
			plan := *ext.Plan
			ext.Plan = &plan
		}
		c.Extended = &ext
	}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = Clone(child)
		}
	}
	return &c
}

// MoveNodeToPosition returns a copy of tree in which nodeID sits at newIndex
// among parentID's children. newIndex is clamped to the valid range. The
// input tree is never modified. ok is false, and an unchanged copy is
// returned, when nodeID is not a child of parentID.
func MoveNodeToPosition(tree *Node, nodeID, parentID string, newIndex int) (updated *Node, ok bool) {
	updated = Clone(tree)
	parent := Find(updated, parentID)
	if parent == nil {
		return updated, false
	}
	current := -1
	for i, c := range parent.Children {
		if c.ID == nodeID {
			current = i
			break
		}
	}
	if current < 0 {
		return updated, false
	}

	moved := parent.Children[current]
	rest := append(parent.Children[:current:current], parent.Children[current+1:]...)
	newIndex = max(0, min(newIndex, len(rest)))

	children := make([]*Node, 0, len(parent.Children))
	children = append(children, rest[:newIndex]...)
	children = append(children, moved)
	children = append(children, rest[newIndex:]...)
	parent.Children = children
	return updated, true
}

// AddChild appends child under the node with parentID, or inserts it at
// index when index is within range. It reports false when the parent is
// missing.
func AddChild(root *Node, parentID string, child *Node, index int) bool {
	parent := Find(root, parentID)
	if parent == nil {
		return false
	}
	if index < 0 || index >= len(parent.Children) {
		parent.Children = append(parent.Children, child)
		return true
	}
	parent.Children = append(parent.Children[:index], append([]*Node{child}, parent.Children[index:]...)...)
	return true
}

// RemoveNode detaches the node with id and its subtree. The root cannot be
// removed.
func RemoveNode(root *Node, id string) bool {
	_, parent := FindWithParent(root, id)
	if parent == nil {
		return false
	}
	for i, c := range parent.Children {
		if c.ID == id {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return true
		}
	}
	return false
}

// Path returns the topics from root down to the node with id, or nil when
// the node is missing.
func Path(root *Node, id string) []string {
	var path []string
	var found bool
	var visit func(n *Node) bool
	visit = func(n *Node) bool {
		path = append(path, n.Topic)
		if n.ID == id {
			found = true
			return true
		}
		for _, c := range n.Children {
			if visit(c) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if root != nil {
		visit(root)
	}
	if !found {
		return nil
	}
	return path
}
