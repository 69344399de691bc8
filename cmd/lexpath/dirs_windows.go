// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package main

import (
	"iter"
	"os"
)

// systemConfigDirs returns a sequence of configuration directory paths
// in increasing order of preference (i.e. later entries should override earlier entries).
func systemConfigDirs() iter.Seq[string] {
	return func(yield func(string) bool) {
		if dir, err := os.UserConfigDir(); err == nil {
			yield(dir)
		}
	}
}
