package filesystem

import (
	"strings"

	"github.com/brettbedarf/fme"
	"github.com/brettbedarf/fme/internal/util"
)

// FileSystem is the in-memory tree plus the operations commands resolve to.
// It is owned by a single run loop and is not safe for concurrent mutation.
type FileSystem struct {
	root   *Node // Root of node tree
	logger util.Logger
}

// NewFS creates a tree holding only the root directory. Operations report
// their successful mutations and tolerated no-ops to logger.
func NewFS(logger util.Logger) *FileSystem {
	return &FileSystem{
		root:   newRootNode(),
		logger: util.Component(logger, "filesystem"),
	}
}

// Root returns the root directory node
func (fs *FileSystem) Root() *Node {
	return fs.root
}

// Resolve walks a normalized path from the root and returns the exact node
// it names. See [FileSystem.resolve].
func (fs *FileSystem) Resolve(normalized string) (*Node, error) {
	return fs.resolve(OpResolve, normalized)
}

// Lookup normalizes a raw path and resolves it
func (fs *FileSystem) Lookup(raw string) (*Node, error) {
	return fs.Resolve(NormalizePath(raw))
}

// resolve walks normalized segment by segment. It fails with ErrNotADirectory
// when it has to descend through a file, with ErrNotFound when a segment is
// missing, and with ErrInvalidName when a trailing delimiter lands on a file.
// It never mutates the tree and never returns a partial match.
func (fs *FileSystem) resolve(op, normalized string) (*Node, error) {
	trimmed, trailing := strings.CutSuffix(normalized, Root)
	cur := fs.root

	for _, name := range strings.Split(trimmed, Root) {
		if name == "" {
			continue
		}
		if !cur.IsDir() {
			return nil, newError(op, normalized, ErrNotADirectory, "%s is not a directory", cur.Name())
		}
		child, ok := cur.Child(name)
		if !ok {
			return nil, newError(op, normalized, ErrNotFound, "%s does not contain the item %s", cur.Name(), name)
		}
		cur = child
	}

	if trailing && !cur.IsDir() {
		// Files cannot be referenced with a trailing "/"
		return nil, newError(op, normalized, ErrInvalidName, "the basename %s/ is not a valid file name", cur.Name())
	}
	return cur, nil
}

// resolveDir resolves a parent path and requires it to be a directory
func (fs *FileSystem) resolveDir(op, normalized string) (*Node, error) {
	dir, err := fs.resolve(op, normalized)
	if err != nil {
		return nil, err
	}
	if !dir.IsDir() {
		return nil, newError(op, normalized, ErrNotADirectory, "%s is not a directory", dir.Name())
	}
	return dir, nil
}

// Apply runs a parsed command against the tree. The command's arity must
// already be validated.
func (fs *FileSystem) Apply(cmd fme.Command) error {
	switch cmd.Name {
	case fme.CpCommand:
		return fs.Copy(cmd.Arguments[0], cmd.Arguments[1])
	case fme.MdCommand:
		return fs.MakeDir(cmd.Arguments[0])
	case fme.MfCommand:
		return fs.MakeFile(cmd.Arguments[0])
	case fme.MvCommand:
		return fs.Move(cmd.Arguments[0], cmd.Arguments[1])
	case fme.RmCommand:
		return fs.Remove(cmd.Arguments[0])
	default:
		return &Error{Op: string(cmd.Name), Err: ErrUnsupportedCommand}
	}
}

var _ fme.TreeOperator = (*FileSystem)(nil)
