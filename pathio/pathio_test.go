// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package pathio

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"lexpath.256lights.llc/pkg"
)

type fakeSystem struct {
	wd      string
	wdError error
	env     map[string]string
	tempDir string
	name    string
}

func (sys *fakeSystem) Getwd() (string, error) {
	if sys.wdError != nil {
		return "", sys.wdError
	}
	return sys.wd, nil
}

func (sys *fakeSystem) LookupEnv(name string) (string, bool) {
	value, ok := sys.env[name]
	return value, ok
}

func (sys *fakeSystem) TempDir() string { return sys.tempDir }

func (sys *fakeSystem) ProcessName() string { return sys.name }

type fakeFS struct {
	dirs    map[string]bool
	files   map[string]bool
	entries map[string][]string

	// mkdirErrs fails Mkdir for the given paths.
	// mkdirRaces fails Mkdir but records the directory as existing,
	// as if another process created it concurrently.
	mkdirErrs  map[string]error
	mkdirRaces map[string]bool
	listErrs   map[string]error

	// everything makes PathExists report true for any path.
	everything bool

	mkdirs []string
}

func (fsys *fakeFS) PathExists(path string) bool {
	return fsys.everything || fsys.dirs[path] || fsys.files[path]
}

func (fsys *fakeFS) DirExists(path string) bool { return fsys.dirs[path] }

func (fsys *fakeFS) Mkdir(path string) error {
	if fsys.mkdirRaces[path] {
		fsys.setDir(path)
		return errors.New("file exists")
	}
	if err := fsys.mkdirErrs[path]; err != nil {
		return err
	}
	fsys.setDir(path)
	fsys.mkdirs = append(fsys.mkdirs, path)
	return nil
}

func (fsys *fakeFS) setDir(path string) {
	if fsys.dirs == nil {
		fsys.dirs = make(map[string]bool)
	}
	fsys.dirs[path] = true
}

func (fsys *fakeFS) List(path string) ([]string, error) {
	if err := fsys.listErrs[path]; err != nil {
		return nil, err
	}
	return fsys.entries[path], nil
}

var (
	_ System = new(fakeSystem)
	_ FS     = new(fakeFS)
)

func TestEnsureDirectory(t *testing.T) {
	tests := []struct {
		name       string
		style      lexpath.Style
		fsys       *fakeFS
		path       string
		wantMkdirs []string
		wantError  bool
	}{
		{
			name:       "CreatesMissingLevels",
			style:      lexpath.Posix,
			fsys:       &fakeFS{dirs: map[string]bool{"/": true}},
			path:       "/a/b/c",
			wantMkdirs: []string{"/a", "/a/b", "/a/b/c"},
		},
		{
			name:       "Relative",
			style:      lexpath.Posix,
			fsys:       &fakeFS{},
			path:       "x/y",
			wantMkdirs: []string{"x", "x/y"},
		},
		{
			name:       "NormalizesFirst",
			style:      lexpath.Posix,
			fsys:       &fakeFS{dirs: map[string]bool{"/": true}},
			path:       "/a//b/../c/",
			wantMkdirs: []string{"/a", "/a/c"},
		},
		{
			name:       "AlreadyExists",
			style:      lexpath.Posix,
			fsys:       &fakeFS{dirs: map[string]bool{"/": true, "/a": true, "/a/b": true}},
			path:       "/a/b",
			wantMkdirs: nil,
		},
		{
			name:  "Empty",
			style: lexpath.Posix,
			fsys:  &fakeFS{},
			path:  "",
		},
		{
			name:       "WindowsDrive",
			style:      lexpath.Windows,
			fsys:       &fakeFS{dirs: map[string]bool{`C:\`: true}},
			path:       "C:/users//bill",
			wantMkdirs: []string{`C:\users`, `C:\users\bill`},
		},
		{
			name:  "SurfacesFailure",
			style: lexpath.Posix,
			fsys: &fakeFS{
				dirs:      map[string]bool{"/": true},
				mkdirErrs: map[string]error{"/a": errors.New("permission denied")},
			},
			path:      "/a/b",
			wantError: true,
		},
		{
			name:  "ToleratesConcurrentCreation",
			style: lexpath.Posix,
			fsys: &fakeFS{
				dirs:       map[string]bool{"/": true},
				mkdirRaces: map[string]bool{"/a": true},
			},
			path:       "/a/b",
			wantMkdirs: []string{"/a/b"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := EnsureDirectory(test.fsys, test.style, test.path)
			if test.wantError {
				if err == nil {
					t.Errorf("EnsureDirectory(fsys, %v, %q) = <nil>; want error", test.style, test.path)
				}
				return
			}
			if err != nil {
				t.Errorf("EnsureDirectory(fsys, %v, %q) = %v; want <nil>", test.style, test.path, err)
			}
			if diff := cmp.Diff(test.wantMkdirs, test.fsys.mkdirs); diff != "" {
				t.Errorf("directories created for %q (-want +got):\n%s", test.path, diff)
			}
		})
	}
}

func TestDirectoryList(t *testing.T) {
	tests := []struct {
		name      string
		style     lexpath.Style
		fsys      *fakeFS
		path      string
		want      []string
		wantError bool
	}{
		{
			name:  "FiltersNonDirectories",
			style: lexpath.Posix,
			fsys: &fakeFS{
				entries: map[string][]string{"/srv": {".", "..", "logs", "app.conf", "data"}},
				dirs: map[string]bool{
					"/srv":      true,
					"/srv/logs": true,
					"/srv/data": true,
				},
				files: map[string]bool{"/srv/app.conf": true},
			},
			path: "/srv",
			want: []string{"logs", "data"},
		},
		{
			name:  "Windows",
			style: lexpath.Windows,
			fsys: &fakeFS{
				entries: map[string][]string{`C:\srv`: {"sub"}},
				dirs:    map[string]bool{`C:\srv\sub`: true},
			},
			path: `C:\srv`,
			want: []string{"sub"},
		},
		{
			name:  "Empty",
			style: lexpath.Posix,
			fsys:  &fakeFS{entries: map[string][]string{"/empty": nil}},
			path:  "/empty",
		},
		{
			name:      "ListError",
			style:     lexpath.Posix,
			fsys:      &fakeFS{listErrs: map[string]error{"/missing": errors.New("not found")}},
			path:      "/missing",
			wantError: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := DirectoryList(test.fsys, test.style, test.path)
			if test.wantError {
				if err == nil {
					t.Errorf("DirectoryList(fsys, %v, %q) = %q, <nil>; want error", test.style, test.path, got)
				}
				return
			}
			if err != nil {
				t.Errorf("DirectoryList(fsys, %v, %q) returned %v", test.style, test.path, err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("DirectoryList(fsys, %v, %q) (-want +got):\n%s", test.style, test.path, diff)
			}
		})
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		name      string
		style     lexpath.Style
		sys       *fakeSystem
		path      string
		want      string
		wantError bool
	}{
		{
			name:  "Relative",
			style: lexpath.Posix,
			sys:   &fakeSystem{wd: "/home/bill"},
			path:  "docs/x.txt",
			want:  "/home/bill/docs/x.txt",
		},
		{
			name:  "RelativeWithParent",
			style: lexpath.Posix,
			sys:   &fakeSystem{wd: "/home/bill"},
			path:  "../shared",
			want:  "/home/shared",
		},
		{
			name:  "AbsoluteSkipsGetwd",
			style: lexpath.Posix,
			sys:   &fakeSystem{wdError: errors.New("getwd should not be called")},
			path:  "/x//y/.",
			want:  "/x/y",
		},
		{
			name:  "WindowsRelative",
			style: lexpath.Windows,
			sys:   &fakeSystem{wd: `C:\Users`},
			path:  "bill",
			want:  `C:\Users\bill`,
		},
		{
			name:      "GetwdError",
			style:     lexpath.Posix,
			sys:       &fakeSystem{wdError: errors.New("getwd failed")},
			path:      "x",
			wantError: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Abs(test.sys, test.style, test.path)
			if test.wantError {
				if err == nil {
					t.Errorf("Abs(sys, %v, %q) = %q, <nil>; want error", test.style, test.path, got)
				}
				return
			}
			if err != nil {
				t.Errorf("Abs(sys, %v, %q) returned %v", test.style, test.path, err)
			}
			if got != test.want {
				t.Errorf("Abs(sys, %v, %q) = %q; want %q", test.style, test.path, got, test.want)
			}
		})
	}
}

func TestSearchPath(t *testing.T) {
	tests := []struct {
		name  string
		style lexpath.Style
		sys   *fakeSystem
		want  []string
	}{
		{
			name:  "Unset",
			style: lexpath.Posix,
			sys:   &fakeSystem{},
			want:  nil,
		},
		{
			name:  "Posix",
			style: lexpath.Posix,
			sys:   &fakeSystem{env: map[string]string{"PATH": "/usr/local/bin:/usr/bin::/bin"}},
			want:  []string{"/usr/local/bin", "/usr/bin", "", "/bin"},
		},
		{
			name:  "WindowsQuoted",
			style: lexpath.Windows,
			sys:   &fakeSystem{env: map[string]string{"PATH": `C:\Go\bin;"C:\Program Files;x";D:\tools`}},
			want:  []string{`C:\Go\bin`, `C:\Program Files;x`, `D:\tools`},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := SearchPath(test.sys, test.style)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("SearchPath(sys, %v) (-want +got):\n%s", test.style, diff)
			}
		})
	}
}

func TestTempPath(t *testing.T) {
	t.Run("Posix", func(t *testing.T) {
		sys := &fakeSystem{tempDir: "/tmp", name: "lexpath"}
		got, err := TempPath(sys, &fakeFS{}, lexpath.Posix, "log")
		if err != nil {
			t.Fatal(err)
		}
		if want := "/tmp/lexpath-"; !strings.HasPrefix(got, want) {
			t.Errorf("TempPath = %q; want prefix %q", got, want)
		}
		if got, want := lexpath.Posix.Ext(got), ".log"; got != want {
			t.Errorf("extension = %q; want %q", got, want)
		}
	})

	t.Run("NoExtension", func(t *testing.T) {
		sys := &fakeSystem{tempDir: "/tmp", name: "lexpath"}
		got, err := TempPath(sys, &fakeFS{}, lexpath.Posix, "")
		if err != nil {
			t.Fatal(err)
		}
		if ext := lexpath.Posix.Ext(got); ext != "" {
			t.Errorf("TempPath = %q; want no extension, got %q", got, ext)
		}
	})

	t.Run("SanitizesProcessName", func(t *testing.T) {
		sys := &fakeSystem{tempDir: `C:\Temp`, name: "lex*path"}
		got, err := TempPath(sys, &fakeFS{}, lexpath.Windows, "tmp")
		if err != nil {
			t.Fatal(err)
		}
		if want := `C:\Temp\lex_path-`; !strings.HasPrefix(got, want) {
			t.Errorf("TempPath = %q; want prefix %q", got, want)
		}
		if !lexpath.Windows.IsValid(got) {
			t.Errorf("TempPath = %q; want a valid Windows path", got)
		}
	})

	t.Run("EmptyProcessName", func(t *testing.T) {
		sys := &fakeSystem{tempDir: "/tmp"}
		got, err := TempPath(sys, &fakeFS{}, lexpath.Posix, "")
		if err != nil {
			t.Fatal(err)
		}
		if want := "/tmp/tmp-"; !strings.HasPrefix(got, want) {
			t.Errorf("TempPath = %q; want prefix %q", got, want)
		}
	})

	t.Run("SkipsExisting", func(t *testing.T) {
		sys := &fakeSystem{tempDir: "/tmp", name: "lexpath"}
		fsys := &fakeFS{everything: true}
		if got, err := TempPath(sys, fsys, lexpath.Posix, ""); err == nil {
			t.Errorf("TempPath = %q, <nil>; want error when every candidate exists", got)
		}
	})
}
