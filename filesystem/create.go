package filesystem

import (
	"github.com/brettbedarf/fme"
)

// validateCreation confirms a node of type required may be created at info.
// It returns the parent directory to insert into. exists is true when the
// parent already holds a child with that name and ignoreIfExists allowed
// the collision; the caller must then skip the insert.
func (fs *FileSystem) validateCreation(op string, required fme.NodeType, info PathInfo, normalized string,
	ignoreIfExists bool,
) (parent *Node, exists bool, err error) {
	if required == fme.FileNodeType && info.Type == fme.InvalidNodeType {
		// A file can have a basename without "." and a directory one with ".",
		// but "f.txt/" or "f/" is never a file
		return nil, false, newError(op, normalized, ErrInvalidName, "the basename %s/ is not a valid file name", info.Basename)
	}
	if info.IsRoot() {
		return nil, false, newError(op, normalized, ErrAlreadyExists, "the root directory always exists")
	}

	parent, err = fs.resolveDir(op, info.Parent)
	if err != nil {
		return nil, false, err
	}

	if parent.HasChild(info.Basename) {
		if !ignoreIfExists {
			return nil, false, newError(op, normalized, ErrAlreadyExists,
				"parent directory %s already contains %s", info.Parent, info.Basename)
		}
		return parent, true, nil
	}
	return parent, false, nil
}

// MakeDir creates a directory. A name collision is an error.
func (fs *FileSystem) MakeDir(path string) error {
	normalized := NormalizePath(path)
	info := ClassifyPath(normalized, fme.DirNodeType)

	parent, _, err := fs.validateCreation(OpMkdir, fme.DirNodeType, info, normalized, false)
	if err != nil {
		return err
	}

	parent.AddChild(NewNode(info.Basename, fme.DirNodeType))
	fs.logger.Info().Str("path", normalized).Msgf("Directory %s is created.", normalized)
	return nil
}

// MakeFile creates a file. If any item with that name already exists the
// call is a successful no-op.
func (fs *FileSystem) MakeFile(path string) error {
	normalized := NormalizePath(path)
	info := ClassifyPath(normalized, fme.FileNodeType)

	parent, exists, err := fs.validateCreation(OpMkfile, fme.FileNodeType, info, normalized, true)
	if err != nil {
		return err
	}
	if exists {
		fs.logger.Info().Str("path", normalized).
			Msgf("Ignore creation of the file %s because the item with such a name already exists.", normalized)
		return nil
	}

	parent.AddChild(NewNode(info.Basename, fme.FileNodeType))
	fs.logger.Info().Str("path", normalized).Msgf("File %s is created.", normalized)
	return nil
}
