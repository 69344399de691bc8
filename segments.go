// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package lexpath

import (
	"iter"
	"slices"
)

// Segments yields the path's segments in order:
// the root (when non-empty) as the first segment,
// then each maximal run of non-separator characters
// together with the run of separators that follows it.
// Every segment except possibly the last ends in a separator.
// Concatenating the segments reproduces the path exactly.
func (style Style) Segments(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		root, rest := style.SplitDrive(path)
		if root != "" && !yield(root) {
			return
		}
		for i := 0; i < len(rest); {
			j := i
			for j < len(rest) && !style.IsSeparator(rest[j]) {
				j++
			}
			for j < len(rest) && style.IsSeparator(rest[j]) {
				j++
			}
			if !yield(rest[i:j]) {
				return
			}
			i = j
		}
	}
}

// SplitPath splits the path into the segments of [Style.Segments].
// An empty path yields nil.
func (style Style) SplitPath(path string) []string {
	return slices.Collect(style.Segments(path))
}

// SplitDirectories splits the path into its directory names:
// the root (when non-empty) kept exactly as written,
// every other segment with its trailing separators removed,
// and empty names dropped.
func (style Style) SplitDirectories(path string) []string {
	root, rest := style.SplitDrive(path)
	if root == "" {
		return style.splitNames(rest)
	}
	return append([]string{root}, style.splitNames(rest)...)
}

// splitNames splits s into its maximal runs of non-separator characters.
// Unlike [Style.SplitDirectories], it does not treat a root specially.
func (style Style) splitNames(s string) []string {
	var names []string
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && !style.IsSeparator(s[j]) {
			j++
		}
		if j > i {
			names = append(names, s[i:j])
		}
		for j < len(s) && style.IsSeparator(s[j]) {
			j++
		}
		i = j
	}
	return names
}

// JoinPath joins any number of path fragments into one path,
// working right to left
// and inserting a separator between adjacent non-empty fragments
// wherever the left fragment does not already end in one.
func (style Style) JoinPath(parts ...string) string {
	joined := ""
	for i := len(parts) - 1; i >= 0; i-- {
		joined = style.combineAlways(parts[i], joined)
	}
	return joined
}

// combineAlways concatenates two path fragments,
// inserting a separator between non-empty halves
// when a does not already end in one.
// Unlike [Style.Combine], it ignores whether b is absolute.
func (style Style) combineAlways(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	case style.IsSeparator(a[len(a)-1]):
		return a + b
	default:
		return a + string(style.Separator()) + b
	}
}
