// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package lexpath

import (
	"strings"

	"lexpath.256lights.llc/pkg/internal/xslices"
)

// Normalize canonicalizes the path without consulting the filesystem.
// Separator runs collapse to a single primary separator,
// "." names are dropped,
// and ".." cancels the name before it where one exists
// and stays literal where none does.
// A path that ended in a separator ends in exactly one separator afterward.
// An empty path stays empty.
// Normalize is idempotent.
func (style Style) Normalize(path string) string {
	if path == "" {
		return ""
	}
	root, rest := style.SplitDrive(path)
	root = style.canonicalRoot(root)

	var names []string
	for _, name := range style.splitNames(rest) {
		switch name {
		case ".":
		case "..":
			// Only real names cancel.
			// A ".." that made it to the front of the list stays literal.
			if len(names) > 0 && xslices.Last(names) != ".." {
				names = xslices.Pop(names, 1)
			} else {
				names = append(names, "..")
			}
		default:
			names = append(names, name)
		}
	}

	sep := string(style.Separator())
	normalized := style.JoinDrive(root, strings.Join(names, sep))
	if normalized != "" &&
		style.IsSeparator(path[len(path)-1]) &&
		!style.IsSeparator(normalized[len(normalized)-1]) {
		normalized += sep
	}
	return normalized
}

// canonicalRoot rewrites a root returned by [Style.SplitDrive]
// to use the primary separator with no repeats.
// The leading separator pair of a UNC root is kept as the UNC marker.
func (style Style) canonicalRoot(root string) string {
	if style != Windows {
		return root
	}
	switch {
	case len(root) == 3 && root[1] == ':':
		return root[:2] + `\`
	case len(root) >= 2 && style.IsSeparator(root[0]) && style.IsSeparator(root[1]):
		names := style.splitNames(root[2:])
		canonical := `\\` + strings.Join(names, `\`)
		if len(names) > 0 && style.IsSeparator(root[len(root)-1]) {
			canonical += `\`
		}
		return canonical
	default:
		return root
	}
}
