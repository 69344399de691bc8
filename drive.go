// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package lexpath

// SplitDrive splits a path into its root and everything after the root.
// POSIX roots are a single leading separator.
// Windows roots are a drive marker like "C:" or "C:\",
// or a UNC prefix like `\\server\share\`.
// Paths without a root split into an empty root and the path itself.
// For every path, root + rest returns path unchanged.
func (style Style) SplitDrive(path string) (root, rest string) {
	if style == Windows {
		return splitWindowsDrive(path)
	}
	if len(path) > 0 && path[0] == '/' {
		return path[:1], path[1:]
	}
	return "", path
}

func splitWindowsDrive(path string) (root, rest string) {
	switch {
	case len(path) == 2 && isDriveLetter(path[0]) && path[1] == ':':
		return path, ""
	case len(path) >= 3 && isDriveLetter(path[0]) && path[1] == ':' && Windows.IsSeparator(path[2]):
		return path[:3], path[3:]
	case len(path) >= 2 && Windows.IsSeparator(path[0]) && Windows.IsSeparator(path[1]):
		// UNC: the root runs through the host and share names,
		// ending at the separator that closes the share name.
		seps := 0
		for i := 2; i < len(path); i++ {
			if Windows.IsSeparator(path[i]) {
				seps++
				if seps == 2 {
					return path[:i+1], path[i+1:]
				}
			}
		}
		return path, ""
	default:
		return "", path
	}
}

func isDriveLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// JoinDrive joins a root produced by [Style.SplitDrive] back onto rest.
// Windows inserts a separator between a non-empty root and a non-empty rest
// unless the root already ends in one;
// POSIX concatenates directly.
// For every path, JoinDrive(SplitDrive(path)) returns path unchanged.
func (style Style) JoinDrive(root, rest string) string {
	if style == Windows &&
		root != "" && rest != "" &&
		!style.IsSeparator(root[len(root)-1]) {
		return root + string(style.Separator()) + rest
	}
	return root + rest
}

// IsAbsolute reports whether the path has a non-empty root.
// On Windows this includes bare drive markers like "C:".
func (style Style) IsAbsolute(path string) bool {
	root, _ := style.SplitDrive(path)
	return root != ""
}

// IsRelative reports whether the path has no root.
// It is the negation of [Style.IsAbsolute].
func (style Style) IsRelative(path string) bool {
	return !style.IsAbsolute(path)
}
