// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

// Package lexpath implements a purely lexical algebra over file path strings.
//
// Every operation is a method on a [Style] value
// that selects between the POSIX and Windows path grammars at runtime,
// so both grammars can be exercised in a single process.
// Nothing in this package touches the filesystem:
// paths are decomposed, recomposed, normalized, and compared as text only.
// Filesystem-backed helpers built on top of this algebra
// live in the pathio package.
package lexpath

import (
	"fmt"
	"runtime"
)

//go:generate go tool stringer -type=Style,Override -linecomment -output=style_string.go

// Style identifies a path grammar.
// The zero value is not a valid style.
type Style int8

const (
	// Posix is the path grammar of Unix-like systems:
	// forward slash separators and a single filesystem root.
	Posix Style = 1 + iota // posix

	// Windows is the path grammar of Windows systems:
	// backslash or forward slash separators
	// with drive letter and UNC roots.
	Windows // windows
)

// Native returns the style of the host operating system.
// Operating systems outside the Windows family use [Posix].
func Native() Style {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// ParseStyle parses a style name as formatted by [Style.String].
func ParseStyle(s string) (Style, error) {
	switch s {
	case "posix":
		return Posix, nil
	case "windows":
		return Windows, nil
	default:
		return 0, fmt.Errorf("parse path style %q: unknown style", s)
	}
}

// Separator returns the style's primary path separator.
func (style Style) Separator() byte {
	if style == Windows {
		return '\\'
	}
	return '/'
}

// ListSeparator returns the separator between paths in a search path list
// such as the PATH environment variable.
func (style Style) ListSeparator() byte {
	if style == Windows {
		return ';'
	}
	return ':'
}

// IsSeparator reports whether c is a path separator in the style's grammar.
// Windows accepts both backslashes and forward slashes.
func (style Style) IsSeparator(c byte) bool {
	return c == '/' || style == Windows && c == '\\'
}

// IsListSeparator reports whether c separates paths in a search path list.
func (style Style) IsListSeparator(c byte) bool {
	return c == style.ListSeparator()
}

// ExtSeparator is the separator between a file name and its extension.
// It is the same in both styles.
const ExtSeparator = '.'

// IsExtSeparator reports whether c is the extension separator.
func IsExtSeparator(c byte) bool {
	return c == ExtSeparator
}

// Override selects the style that path operations use:
// either a forced grammar or whatever [Native] detects.
// The zero value is [UseNative].
type Override int8

const (
	// UseNative selects the style of the host operating system.
	UseNative Override = iota // native

	// ForcePosix selects [Posix] regardless of the host operating system.
	ForcePosix // posix

	// ForceWindows selects [Windows] regardless of the host operating system.
	ForceWindows // windows
)

// ParseOverride parses an override name as formatted by [Override.String].
func ParseOverride(s string) (Override, error) {
	switch s {
	case "native":
		return UseNative, nil
	case "posix":
		return ForcePosix, nil
	case "windows":
		return ForceWindows, nil
	default:
		return 0, fmt.Errorf("parse platform override %q: unknown override", s)
	}
}

// Style resolves the override to a concrete [Style].
func (o Override) Style() Style {
	switch o {
	case ForcePosix:
		return Posix
	case ForceWindows:
		return Windows
	default:
		return Native()
	}
}

// MarshalText implements [encoding.TextMarshaler]
// by returning the override's name.
func (o Override) MarshalText() ([]byte, error) {
	if o < UseNative || o > ForceWindows {
		return nil, fmt.Errorf("marshal platform override: unknown override %d", int8(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]
// by parsing the override's name.
func (o *Override) UnmarshalText(text []byte) error {
	parsed, err := ParseOverride(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
