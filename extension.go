// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package lexpath

import "strings"

// SplitExt splits off the extension
// starting at the last extension separator
// in the path's final file name component.
// The extension includes the separator
// and is empty when the final component does not have one.
// Directory names are never scanned for extension separators.
// For every path, base + ext returns path unchanged.
func (style Style) SplitExt(path string) (base, ext string) {
	file := style.FileName(path)
	for i := len(file) - 1; i >= 0; i-- {
		if IsExtSeparator(file[i]) {
			cut := len(path) - len(file) + i
			return path[:cut], path[cut:]
		}
	}
	return path, ""
}

// SplitExts splits off the whole chain of extensions
// starting at the first extension separator
// in the path's final file name component,
// so "file.tar.gz" splits into "file" and ".tar.gz".
func (style Style) SplitExts(path string) (base, exts string) {
	file := style.FileName(path)
	for i := 0; i < len(file); i++ {
		if IsExtSeparator(file[i]) {
			cut := len(path) - len(file) + i
			return path[:cut], path[cut:]
		}
	}
	return path, ""
}

// Ext returns the path's last extension including its separator,
// or "" if the final file name component does not have one.
func (style Style) Ext(path string) string {
	_, ext := style.SplitExt(path)
	return ext
}

// DropExt removes the path's last extension.
func (style Style) DropExt(path string) string {
	base, _ := style.SplitExt(path)
	return base
}

// DropExts removes the path's whole chain of extensions.
func (style Style) DropExts(path string) string {
	base, _ := style.SplitExts(path)
	return base
}

// AddExt appends an extension to the path.
// If ext is empty, the path is returned unchanged.
// A separator is inserted unless ext already starts with one.
// AddExt inverts [Style.SplitExt] exactly.
func (style Style) AddExt(path, ext string) string {
	switch {
	case ext == "":
		return path
	case IsExtSeparator(ext[0]):
		return path + ext
	default:
		return path + string(ExtSeparator) + ext
	}
}

// SetExt replaces the path's last extension.
func (style Style) SetExt(path, ext string) string {
	return style.AddExt(style.DropExt(path), ext)
}

// HasExt reports whether the path's final file name component
// contains an extension separator.
func (style Style) HasExt(path string) bool {
	return strings.ContainsRune(style.FileName(path), ExtSeparator)
}
