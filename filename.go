// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package lexpath

// SplitFileName splits a path into its directory prefix,
// which keeps the root and the separator that ends it,
// and its final file name component.
// A path that ends in a separator has an empty file name;
// a path with no separators after the root has an empty prefix beyond the root.
// For every path, dir + file returns path unchanged.
func (style Style) SplitFileName(path string) (dir, file string) {
	root, rest := style.SplitDrive(path)
	for i := len(rest) - 1; i >= 0; i-- {
		if style.IsSeparator(rest[i]) {
			return path[:len(root)+i+1], rest[i+1:]
		}
	}
	return root, rest
}

// JoinFileName joins a directory prefix and a file name,
// inserting a separator unless either part is empty
// or dir already ends in one.
// JoinFileName inverts [Style.SplitFileName] exactly.
func (style Style) JoinFileName(dir, file string) string {
	switch {
	case file == "":
		return dir
	case dir == "":
		return file
	case style.IsSeparator(dir[len(dir)-1]):
		return dir + file
	default:
		return dir + string(style.Separator()) + file
	}
}

// DropFileName removes the path's final file name component,
// keeping the directory prefix with its trailing separator.
func (style Style) DropFileName(path string) string {
	dir, _ := style.SplitFileName(path)
	return dir
}

// FileName returns the path's final file name component,
// which is empty when the path ends in a separator.
func (style Style) FileName(path string) string {
	_, file := style.SplitFileName(path)
	return file
}

// SetFileName replaces the path's final file name component.
func (style Style) SetFileName(path, name string) string {
	return style.JoinFileName(style.DropFileName(path), name)
}

// AddFileName appends a file name underneath the path,
// inserting a separator unless the path is empty
// or already ends in one.
func (style Style) AddFileName(path, name string) string {
	if path == "" {
		return name
	}
	if style.IsSeparator(path[len(path)-1]) {
		return path + name
	}
	return path + string(style.Separator()) + name
}

// Directory returns the path's directory portion
// with trailing separators removed.
// Removing the separators never leaves an empty result:
// the directory of "/name" is "/".
func (style Style) Directory(path string) string {
	dir := style.DropFileName(path)
	trimmed := dir
	for len(trimmed) > 0 && style.IsSeparator(trimmed[len(trimmed)-1]) {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if trimmed == "" && dir != "" {
		return dir[:1]
	}
	return trimmed
}

// BaseName returns the path's final file name component
// without its extension.
func (style Style) BaseName(path string) string {
	return style.DropExt(style.FileName(path))
}

// SetBaseName replaces the path's final file name component
// while keeping its extension.
func (style Style) SetBaseName(path, base string) string {
	return style.SetFileName(path, style.AddExt(base, style.Ext(path)))
}

// IsDirPath reports whether the path is syntactically directory-like:
// non-empty and ending in a path separator.
// It never consults the filesystem.
func (style Style) IsDirPath(path string) bool {
	return path != "" && style.IsSeparator(path[len(path)-1])
}
