// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

// Package xslices provides more generic functions in the spirit of the [slices] package.
package xslices

// Last returns the last element in s.
// Last panics if len(s) == 0.
func Last[S ~[]E, E any](s S) E {
	return s[len(s)-1]
}

// Pop sets the last n elements of the slice to zero values
// and returns s[:len(s)-n].
func Pop[S ~[]E, E any](s S, n int) S {
	end := len(s) - n
	clear(s[end:])
	return s[:end]
}

// CommonPrefix returns the length of the longest prefix
// shared by a and b under eq.
func CommonPrefix[S ~[]E, E any](a, b S, eq func(E, E) bool) int {
	n := 0
	for n < len(a) && n < len(b) && eq(a[n], b[n]) {
		n++
	}
	return n
}
