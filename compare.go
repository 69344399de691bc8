// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package lexpath

import (
	"lexpath.256lights.llc/pkg/internal/xslices"
)

// Equal reports whether two paths name the same location
// after normalization:
// a single trailing separator is ignored
// and Windows comparison folds ASCII case.
// The comparison is purely lexical
// and can disagree with what the filesystem considers equal.
func (style Style) Equal(a, b string) bool {
	return style.compareKey(a) == style.compareKey(b)
}

// compareKey reduces a path to the string that [Style.Equal] compares.
// A root that is nothing but a separator keeps it,
// so that "/" does not collapse to the empty path.
func (style Style) compareKey(path string) string {
	key := style.Normalize(path)
	if len(key) > 1 && style.IsSeparator(key[len(key)-1]) {
		key = key[:len(key)-1]
	}
	if style == Windows {
		key = lowerASCII(key)
	}
	return key
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// sameName reports whether two path names compare equal in the style,
// folding ASCII case on Windows.
func (style Style) sameName(a, b string) bool {
	if style == Windows {
		return lowerASCII(a) == lowerASCII(b)
	}
	return a == b
}

// Rel returns the path that reaches target relative to base
// by purely lexical comparison:
// the two are normalized,
// their common leading directories are dropped,
// and each remaining base directory becomes one "..".
// When no relative form exists,
// because either path is relative or the roots differ,
// Rel degrades to returning the normalized target.
// Equal paths yield "".
func (style Style) Rel(base, target string) string {
	normTarget := style.Normalize(target)
	if style.IsRelative(base) || style.IsRelative(target) {
		return normTarget
	}
	baseRoot, baseRest := style.SplitDrive(style.Normalize(base))
	targetRoot, targetRest := style.SplitDrive(normTarget)
	if !style.sameName(baseRoot, targetRoot) {
		return normTarget
	}

	baseDirs := style.splitNames(baseRest)
	targetDirs := style.splitNames(targetRest)
	common := xslices.CommonPrefix(baseDirs, targetDirs, style.sameName)
	parts := make([]string, 0, len(baseDirs)+len(targetDirs)-2*common)
	for range baseDirs[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, targetDirs[common:]...)
	return style.JoinPath(parts...)
}

// Combine joins base and path.
// An absolute path wins and is returned unchanged;
// a relative path is appended to base with a separator as needed.
func (style Style) Combine(base, path string) string {
	if style.IsAbsolute(path) {
		return path
	}
	return style.combineAlways(base, path)
}

// Resolve makes path absolute relative to base and normalizes the result.
func (style Style) Resolve(base, path string) string {
	return style.Normalize(style.Combine(base, path))
}
