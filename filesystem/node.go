package filesystem

import (
	"slices"

	"github.com/brettbedarf/fme"
	"github.com/puzpuzpuz/xsync/v4"
)

// Node is a directory or file in the virtual tree. A directory exclusively
// owns its children: a node is linked under at most one parent at a time.
type Node struct {
	name     string                    // Name of the node (last part of the path)
	nodeType fme.NodeType              // DirNodeType or FileNodeType
	parent   *Node                     // nil for the root and detached nodes
	children *xsync.Map[string, *Node] // child nodes by name; nil for files
}

// NewNode creates a detached node.
//
// NOTE: Parent node is responsible for adding itself to the returned Node's
// parent ref when linking it as its child (see [Node.AddChild])
func NewNode(name string, nodeType fme.NodeType) *Node {
	n := &Node{
		name:     name,
		nodeType: nodeType,
	}
	if nodeType == fme.DirNodeType {
		n.children = xsync.NewMap[string, *Node]()
	}
	return n
}

func newRootNode() *Node {
	return NewNode(Root, fme.DirNodeType)
}

// Name returns the node's name
func (n *Node) Name() string {
	return n.name
}

func (n *Node) Type() fme.NodeType {
	return n.nodeType
}

func (n *Node) IsDir() bool {
	return n.nodeType == fme.DirNodeType
}

// Parent returns the owning directory, nil for the root or a detached node
func (n *Node) Parent() *Node {
	return n.parent
}

// Path returns the absolute path of the node. Detached nodes report their
// path relative to the topmost attached ancestor.
func (n *Node) Path() string {
	if n.parent == nil {
		return n.name
	}
	pPath := n.parent.Path()
	if pPath == Root {
		return Root + n.name
	}
	return pPath + Root + n.name
}

// AddChild links child under n by the child's name and sets the child's
// parent to n. Any existing child with the same name is replaced, so callers
// check for collisions first.
func (n *Node) AddChild(child *Node) {
	n.children.Store(child.name, child)
	child.parent = n
}

// Child returns a child node by name
func (n *Node) Child(name string) (child *Node, ok bool) {
	if n.children == nil {
		return nil, false
	}
	return n.children.Load(name)
}

// HasChild reports whether n has a child named name
func (n *Node) HasChild(name string) bool {
	_, ok := n.Child(name)
	return ok
}

// RemoveChild unlinks and returns the named child
func (n *Node) RemoveChild(name string) (*Node, bool) {
	if n.children == nil {
		return nil, false
	}
	child, ok := n.children.LoadAndDelete(name)
	if ok {
		child.parent = nil
	}
	return child, ok
}

// Len returns the number of direct children
func (n *Node) Len() int {
	if n.children == nil {
		return 0
	}
	return n.children.Size()
}

// ChildNames returns the names of the direct children in ascending order
func (n *Node) ChildNames() []string {
	names := make([]string, 0, n.Len())
	if n.children != nil {
		n.children.Range(func(name string, _ *Node) bool {
			names = append(names, name)
			return true
		})
	}
	slices.Sort(names)
	return names
}

// SortedChildren returns the direct children in ascending name order
func (n *Node) SortedChildren() []*Node {
	names := n.ChildNames()
	children := make([]*Node, 0, len(names))
	for _, name := range names {
		if ch, ok := n.Child(name); ok {
			children = append(children, ch)
		}
	}
	return children
}

// Clone returns a detached deep copy of the subtree rooted at n, named name.
// An empty name keeps n's own name. The copy shares no nodes with n.
func (n *Node) Clone(name string) *Node {
	if name == "" {
		name = n.name
	}
	c := NewNode(name, n.nodeType)
	if n.children != nil {
		n.children.Range(func(_ string, ch *Node) bool {
			c.AddChild(ch.Clone(""))
			return true
		})
	}
	return c
}

// rename changes the stored name of a detached node
func (n *Node) rename(name string) {
	n.name = name
}

var _ fme.NodeInfo = (*Node)(nil)
