// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package lexpath

import "strings"

// reservedNameChars are the characters that may not appear
// in a Windows path outside its root.
const reservedNameChars = `:*?><|`

// IsValid reports whether every character in the path
// is acceptable to the style's grammar.
// POSIX places no restrictions, so every path is valid.
// A Windows path is invalid when a reserved character
// such as ':' or '*' appears outside the root.
func (style Style) IsValid(path string) bool {
	if style != Windows {
		return true
	}
	_, rest := style.SplitDrive(path)
	return !strings.ContainsAny(rest, reservedNameChars)
}

// MakeValid replaces every reserved character outside the root
// with an underscore.
// Paths that are already valid are returned unchanged,
// and IsValid(MakeValid(path)) always reports true.
func (style Style) MakeValid(path string) string {
	if style.IsValid(path) {
		return path
	}
	root, rest := style.SplitDrive(path)
	mapped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(reservedNameChars, r) {
			return '_'
		}
		return r
	}, rest)
	return root + mapped
}
