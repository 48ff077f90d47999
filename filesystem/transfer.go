package filesystem

import "github.com/brettbedarf/fme"

// TransferMode selects between copying and moving a node
type TransferMode int

const (
	CopyMode TransferMode = iota
	MoveMode
)

func (m TransferMode) String() string {
	if m == MoveMode {
		return "move"
	}
	return "copy"
}

func (m TransferMode) op() string {
	if m == MoveMode {
		return OpMove
	}
	return OpCopy
}

// Copy duplicates the source node, recursively for directories, to destination.
// The copy is fully independent of the source.
func (fs *FileSystem) Copy(source, destination string) error {
	return fs.transfer(source, destination, CopyMode)
}

// Move relocates and optionally renames the source node.
func (fs *FileSystem) Move(source, destination string) error {
	return fs.transfer(source, destination, MoveMode)
}

// placement says where a transferred node lands relative to the resolved
// destination parent.
type placement int

const (
	// placeAsNamed inserts into the destination parent under the effective name
	placeAsNamed placement = iota
	// placeInside inserts into the existing same-named directory, keeping the source name
	placeInside
)

type placementKey struct {
	nameDefaulted bool // destination had no basename, the source name is used
	childExists   bool // destination parent already has a child with the effective name
}

// placements decides "mv a/b /c" with an existing /c: b goes inside c rather
// than replacing it. A defaulted name never re-targets; an existing item is
// then a plain collision.
var placements = map[placementKey]placement{
	{nameDefaulted: false, childExists: false}: placeAsNamed,
	{nameDefaulted: false, childExists: true}:  placeInside,
	{nameDefaulted: true, childExists: false}:  placeAsNamed,
	{nameDefaulted: true, childExists: true}:   placeAsNamed,
}

// transfer validates and applies a copy or move. Every check runs before the
// tree is touched, so a failed transfer leaves the tree unchanged.
func (fs *FileSystem) transfer(rawSource, rawDestination string, mode TransferMode) error {
	op := mode.op()
	source, destination := NormalizePath(rawSource), NormalizePath(rawDestination)
	src := ClassifyPath(source, fme.AnyNodeType)
	dst := ClassifyPath(destination, fme.AnyNodeType)
	logger := fs.logger.With().Str("op", op).Str("source", source).Str("destination", destination).Logger()

	if src.IsRoot() {
		return newError(op, source, ErrSelfContainment, "cannot %s the root directory", mode)
	}
	if (src.Parent == dst.Parent && src.Basename == dst.Basename) || (src.Parent == Root && dst.IsRoot()) {
		logger.Debug().Msg("Ignore transfer of the item onto itself.")
		return nil
	}
	if isStrictDescendant(destination, source) {
		return newError(op, source, ErrSelfContainment,
			"the element %s cannot be transferred into own subdirectory %s", source, destination)
	}

	parentS, err := fs.resolveDir(op, src.Parent)
	if err != nil {
		return err
	}
	node, ok := parentS.Child(src.Basename)
	if !ok {
		return newError(op, source, ErrNotFound, "no such %s %s", src.Type, source)
	}

	parentD, err := fs.resolve(op, dst.Parent)
	if err != nil {
		return err
	}

	name, nameDefaulted := dst.Basename, false
	if name == "" {
		// e.g. "mv /d3/d1 /": keep the source name
		name, nameDefaulted = src.Basename, true
	}
	if parentS == parentD && src.Basename == name {
		logger.Debug().Msg("Ignore transfer of the item onto itself.")
		return nil
	}
	if !parentD.IsDir() {
		return newError(op, destination, ErrNotADirectory,
			"cannot %s the item %s in destination %s because destination is not a directory", mode, source, dst.Parent)
	}
	if !node.IsDir() && src.TrailingDelimiter {
		return newError(op, source, ErrInvalidName, "the basename %s/ is not a valid file name", src.Basename)
	}

	existing, exists := parentD.Child(name)
	target := parentD
	switch placements[placementKey{nameDefaulted: nameDefaulted, childExists: exists}] {
	case placeInside:
		target, name = existing, src.Basename
		if !target.IsDir() {
			return newError(op, destination, ErrNotADirectory,
				"cannot %s the item %s in destination %s because destination is not a directory", mode, source, destination)
		}
	case placeAsNamed:
		if !node.IsDir() && dst.TrailingDelimiter && !nameDefaulted {
			return newError(op, destination, ErrInvalidName, "the basename %s/ is not a valid file name", dst.Basename)
		}
	}

	if target.HasChild(name) {
		if node.IsDir() {
			return newError(op, destination, ErrAlreadyExists,
				"cannot %s directory %s in %s because the item %s already exists there", mode, source, target.Path(), name)
		}
		logger.Info().Msgf("Ignore %s of file %s in %s because the item with such a name already exists.",
			mode, source, target.Path())
		return nil
	}

	switch mode {
	case MoveMode:
		parentS.RemoveChild(src.Basename)
		node.rename(name)
		target.AddChild(node)
		logger.Info().Msgf("The %s %s is moved in %s with name %s.", node.Type(), source, target.Path(), name)
	case CopyMode:
		target.AddChild(node.Clone(name))
		logger.Info().Msgf("The %s %s is copied in %s with name %s.", node.Type(), source, target.Path(), name)
	}
	return nil
}
