package filesystem

import "github.com/brettbedarf/fme"

// Remove deletes the named file or directory together with its subtree.
// Only the parent is resolved, so a trailing delimiter is accepted for files
// too. The root cannot be removed.
func (fs *FileSystem) Remove(path string) error {
	normalized := NormalizePath(path)
	info := ClassifyPath(normalized, fme.AnyNodeType)

	if info.IsRoot() {
		return newError(OpRemove, normalized, ErrNotFound, "no such item %s, the root directory cannot be removed", normalized)
	}

	parent, err := fs.resolveDir(OpRemove, info.Parent)
	if err != nil {
		return err
	}
	node, ok := parent.Child(info.Basename)
	if !ok {
		return newError(OpRemove, normalized, ErrNotFound, "no such item %s", normalized)
	}

	parent.RemoveChild(info.Basename)
	fs.logger.Info().Str("path", normalized).Str("type", node.Type().String()).
		Msgf("The item %s is removed.", normalized)
	return nil
}
