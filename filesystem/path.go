package filesystem

import (
	"strings"

	"github.com/brettbedarf/fme"
)

const (
	// Delimiter separates path segments
	Delimiter = '/'
	// Root is the normalized path of the root directory
	Root = string(Delimiter)
)

// NormalizePath canonicalizes a raw path argument into an absolute form.
//
// Every segment is trimmed of surrounding whitespace and segments left empty
// are dropped, so "//d1", "/  /d1" and "d1" all become "/d1". A trailing
// delimiter is kept because "/d1/" and "/d1" mean different things to the
// callers. An empty path is the root. Normalization never fails.
func NormalizePath(raw string) string {
	if raw == "" {
		return Root
	}

	parts := strings.Split(raw, Root)
	if len(parts) == 1 {
		// no delimiter at all, relative to root
		return Root + strings.TrimSpace(raw)
	}

	var b strings.Builder
	b.Grow(len(raw) + 1)
	for _, seg := range parts[:len(parts)-1] {
		if seg = strings.TrimSpace(seg); seg != "" {
			b.WriteByte(Delimiter)
			b.WriteString(seg)
		}
	}
	// an empty tail leaves exactly one trailing delimiter
	b.WriteByte(Delimiter)
	b.WriteString(strings.TrimSpace(parts[len(parts)-1]))
	return b.String()
}

// PathInfo is a normalized path split into its parent path and basename
type PathInfo struct {
	Parent            string       // normalized parent path, Root for top level items
	Basename          string       // last component; empty when the path is the root
	Type              fme.NodeType // inferred node type, see [ClassifyPath]
	TrailingDelimiter bool         // the path ended with "/"
}

// IsRoot reports whether the path denotes the root directory
func (p PathInfo) IsRoot() bool {
	return p.Parent == Root && p.Basename == ""
}

// ClassifyPath splits a normalized path into parent and basename and guesses
// the node type.
//
// The guess is a heuristic only: a basename containing "." is taken to be a
// file, anything else a directory. When required is [fme.FileNodeType] and
// the path carries a trailing delimiter the type is [fme.InvalidNodeType],
// since files cannot be referenced as "f.txt/".
func ClassifyPath(normalized string, required fme.NodeType) PathInfo {
	info := PathInfo{Parent: Root, Type: fme.DirNodeType}
	if normalized == "" {
		return info
	}

	trimmed, trailing := strings.CutSuffix(normalized, Root)
	info.TrailingDelimiter = trailing

	switch i := strings.LastIndexByte(trimmed, Delimiter); {
	case i < 0:
		info.Basename = trimmed
	case i == 0:
		info.Basename = trimmed[1:]
	default:
		info.Parent = trimmed[:i]
		info.Basename = trimmed[i+1:]
	}

	switch {
	case trailing && required == fme.FileNodeType:
		info.Type = fme.InvalidNodeType
	case isFilename(info.Basename):
		info.Type = fme.FileNodeType
	default:
		info.Type = fme.DirNodeType
	}
	return info
}

func isFilename(name string) bool {
	return strings.ContainsRune(name, '.')
}

// isStrictDescendant reports whether path lies strictly inside ancestor.
// "/d11/x" is not inside "/d1".
func isStrictDescendant(path, ancestor string) bool {
	base := strings.TrimSuffix(ancestor, Root)
	rest, ok := strings.CutPrefix(path, base+Root)
	return ok && rest != ""
}
