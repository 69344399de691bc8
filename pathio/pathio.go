// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

// Package pathio layers filesystem and process-environment helpers
// on top of the lexical path algebra in the lexpath package.
//
// The functions in lexpath never touch the running system;
// everything that does lives here,
// behind small capability interfaces so tests can supply fakes.
// [Local] implements the interfaces against the real operating system.
package pathio

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"lexpath.256lights.llc/pkg"
)

// System is the set of process-environment capabilities
// used by the helpers in this package.
type System interface {
	// Getwd returns the current working directory.
	Getwd() (string, error)
	// LookupEnv retrieves the value of the named environment variable,
	// reporting whether the variable is present in the environment.
	LookupEnv(name string) (string, bool)
	// TempDir returns the directory to use for temporary files.
	TempDir() string
	// ProcessName returns the base name of the running executable.
	ProcessName() string
}

// FS is the set of filesystem capabilities used by the helpers in this package.
// Implementations need not be atomic across calls:
// a path that is absent during one call may exist by the next,
// so callers must tolerate such races.
type FS interface {
	// PathExists reports whether any filesystem object exists at the given path.
	PathExists(path string) bool
	// DirExists reports whether the given path names an existing directory.
	DirExists(path string) bool
	// Mkdir creates a new directory at the given path.
	// The parent directory must already exist.
	Mkdir(path string) error
	// List returns the names of the entries in the named directory.
	List(path string) ([]string, error)
}

// Local implements [System] and [FS] against the real operating system.
// Paths passed to it follow the grammar of [lexpath.Native].
type Local struct{}

var (
	_ System = Local{}
	_ FS     = Local{}
)

func (Local) Getwd() (string, error) { return os.Getwd() }

func (Local) LookupEnv(name string) (string, bool) { return os.LookupEnv(name) }

func (Local) TempDir() string { return os.TempDir() }

func (Local) ProcessName() string {
	if len(os.Args) == 0 {
		return ""
	}
	return lexpath.Native().FileName(os.Args[0])
}

func (Local) PathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (Local) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (Local) Mkdir(path string) error { return os.Mkdir(path, 0o777) }

func (Local) List(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// EnsureDirectory creates the directory named by path
// along with any missing parents,
// walking the normalized directory names from the root down.
// Levels that already exist are left alone.
// A creation failure is surfaced
// unless the level exists by the time of the failure,
// since another process may legitimately create it first.
func EnsureDirectory(fsys FS, style lexpath.Style, path string) error {
	level := ""
	for _, name := range style.SplitDirectories(style.Normalize(path)) {
		level = style.Combine(level, name)
		if fsys.DirExists(level) {
			continue
		}
		if err := fsys.Mkdir(level); err != nil && !fsys.DirExists(level) {
			return fmt.Errorf("ensure directory %s: %w", path, err)
		}
	}
	return nil
}

// DirectoryList returns the names of the subdirectories of path
// in the order the filesystem reports them.
// Entries named "." or ".." are skipped,
// as are entries that are not directories.
func DirectoryList(fsys FS, style lexpath.Style, path string) ([]string, error) {
	entries, err := fsys.List(path)
	if err != nil {
		return nil, fmt.Errorf("list directories in %s: %w", path, err)
	}
	var dirs []string
	for _, name := range entries {
		if name == "." || name == ".." {
			continue
		}
		if fsys.DirExists(style.Combine(path, name)) {
			dirs = append(dirs, name)
		}
	}
	return dirs, nil
}

// Abs makes path absolute by resolving it
// against the current working directory.
// Paths that are already absolute are normalized but otherwise unchanged,
// without consulting the working directory.
func Abs(sys System, style lexpath.Style, path string) (string, error) {
	if style.IsAbsolute(path) {
		return style.Normalize(path), nil
	}
	wd, err := sys.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return style.Resolve(wd, path), nil
}

// SearchPath returns the directories listed
// in the PATH environment variable.
// An unset variable yields no directories, not an error.
func SearchPath(sys System, style lexpath.Style) []string {
	value, ok := sys.LookupEnv("PATH")
	if !ok {
		return nil
	}
	return style.SplitSearchPath(value)
}

// tempAttempts bounds the number of candidate names
// [TempPath] tries before giving up.
const tempAttempts = 100

// TempPath proposes a path for a new temporary file or directory:
// the process name plus a random seed
// under the system's temporary directory,
// optionally carrying the given extension.
// The returned path did not exist when it was checked,
// but another process may create it before the caller does,
// so creation must still handle collisions.
func TempPath(sys System, fsys FS, style lexpath.Style, ext string) (string, error) {
	dir := sys.TempDir()
	prefix := sys.ProcessName()
	if prefix == "" {
		prefix = "tmp"
	}
	for i := 0; i < tempAttempts; i++ {
		seed, err := uuid.NewRandom()
		if err != nil {
			return "", fmt.Errorf("temporary path in %s: %w", dir, err)
		}
		name := style.MakeValid(prefix + "-" + seed.String())
		candidate := style.AddExt(style.Combine(dir, name), ext)
		if !fsys.PathExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("temporary path in %s: too many name collisions", dir)
}
