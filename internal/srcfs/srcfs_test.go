// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package srcfs

import (
	"testing"

	"github.com/spf13/afero"
)

func TestReadReturnsFileContents(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "Foo.mod", []byte("MODULE Foo; BEGIN END Foo."), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	s := NewWithFS(fs)

	data, err := s.Read("Foo.mod")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "MODULE Foo; BEGIN END Foo." {
		t.Fatalf("Read = %q, want the seeded contents", data)
	}
}

func TestReadMissingFileIsError(t *testing.T) {
	s := NewWithFS(afero.NewMemMapFs())
	if _, err := s.Read("missing.mod"); err == nil {
		t.Fatalf("Read(missing.mod) = nil error, want an error")
	}
}

func TestReadDirectoryIsError(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("adir", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	s := NewWithFS(fs)
	if _, err := s.Read("adir"); err == nil {
		t.Fatalf("Read(adir) = nil error, want an error for a directory")
	}
}

func TestBasenameStripsExtensionAndDirectory(t *testing.T) {
	cases := map[string]string{
		"Foo.mod":           "Foo",
		"/a/b/Bar.m2":       "Bar",
		"noext":             "noext",
		"dir/Sub.def":       "Sub",
	}
	for path, want := range cases {
		if got := Basename(path); got != want {
			t.Errorf("Basename(%q) = %q, want %q", path, got, want)
		}
	}
}
