// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package lexpath

import "strings"

// SplitSearchPath splits a search path list,
// such as the value of the PATH environment variable,
// on the style's list separator.
// Windows lists may surround entries with double quotes
// to embed the separator;
// the quotes are removed from the returned entries.
// An empty list yields nil.
func (style Style) SplitSearchPath(list string) []string {
	if list == "" {
		return nil
	}
	if style != Windows {
		return strings.Split(list, string(style.ListSeparator()))
	}

	// Split the list respecting quotes, then strip them.
	var entries []string
	start := 0
	quoted := false
	for i := 0; i < len(list); i++ {
		switch c := list[i]; {
		case c == '"':
			quoted = !quoted
		case style.IsListSeparator(c) && !quoted:
			entries = append(entries, list[start:i])
			start = i + 1
		}
	}
	entries = append(entries, list[start:])
	for i, e := range entries {
		entries[i] = strings.ReplaceAll(e, `"`, ``)
	}
	return entries
}
