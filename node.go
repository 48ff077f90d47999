package fme

// NodeType identifies what a node in the virtual tree is, or what a path is
// expected to refer to.
type NodeType string

const (
	// AnyNodeType places no requirement on the referenced node
	AnyNodeType     NodeType = ""
	DirNodeType     NodeType = "dir"
	FileNodeType    NodeType = "file"
	InvalidNodeType NodeType = "invalid" // malformed reference, e.g. a file path with a trailing "/"
)

// String returns the human readable form used in log messages
func (t NodeType) String() string {
	switch t {
	case DirNodeType:
		return "directory"
	case FileNodeType:
		return "file"
	case InvalidNodeType:
		return "invalid"
	default:
		return "item"
	}
}

// NodeInfo provides read-only access to node information for external consumers
type NodeInfo interface {
	// Name returns the node's name (last path component); "/" for the root
	Name() string

	// Type returns DirNodeType or FileNodeType
	Type() NodeType

	// IsDir reports whether the node is a directory
	IsDir() bool
}
