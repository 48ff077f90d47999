package filesystem

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/brettbedarf/fme"
)

// Print renders the whole tree depth-first from the root, one node per line:
//
//	/  [D]
//	|_a  [D]
//	| |_b  [D]
//	| | |_f.txt  [F]
//
// Children are always visited in ascending name order.
func (fs *FileSystem) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	printNode(bw, fs.root, "")
	return bw.Flush()
}

func printNode(w *bufio.Writer, n *Node, prefix string) {
	kind := "  [F]"
	if n.IsDir() {
		kind = "  [D]"
	}

	var nextPrefix string
	if prefix == "" {
		w.WriteString(n.Name() + kind + "\n")
		nextPrefix = "|"
	} else {
		w.WriteString(prefix + "_" + n.Name() + kind + "\n")
		nextPrefix = prefix + " |"
	}

	for _, child := range n.SortedChildren() {
		printNode(w, child, nextPrefix)
	}
}

// SnapshotNode is the JSON-serializable form of a node and its subtree
type SnapshotNode struct {
	Name     string          `json:"name"`
	Type     fme.NodeType    `json:"type"`
	Children []*SnapshotNode `json:"children,omitempty"`
}

// Snapshot returns a detached copy of the tree with children in ascending
// name order.
func (fs *FileSystem) Snapshot() *SnapshotNode {
	return snapshot(fs.root)
}

func snapshot(n *Node) *SnapshotNode {
	s := &SnapshotNode{Name: n.Name(), Type: n.Type()}
	for _, child := range n.SortedChildren() {
		s.Children = append(s.Children, snapshot(child))
	}
	return s
}

// WriteJSON writes the indented snapshot to w
func (fs *FileSystem) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fs.Snapshot())
}
