// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import (
	"context"
	"testing"

	"github.com/spf13/afero"

	"github.com/mdhender/m2parse/internal/srcfs"
)

func TestBatchParseRunsEveryPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	sources := map[string]string{
		"Foo.mod": "MODULE Foo; BEGIN END Foo.",
		"Bar.mod": "MODULE Bar; BEGIN END Bar.",
		"Baz.mod": "MODULE Baz; BEGIN END Oops.", // deliberate end-identifier mismatch
	}
	for path, src := range sources {
		if err := afero.WriteFile(fs, path, []byte(src), 0o644); err != nil {
			t.Fatalf("seed %s: %v", path, err)
		}
	}

	paths := []string{"Foo.mod", "Bar.mod", "Baz.mod"}
	results := BatchParse(context.Background(), paths,
		WithWorkers(2), WithOption(WithSource(srcfs.NewWithFS(fs))))

	if len(results) != len(paths) {
		t.Fatalf("BatchParse returned %d results, want %d", len(results), len(paths))
	}

	byPath := make(map[string]BatchResult, len(results))
	for _, r := range results {
		byPath[r.Path] = r
	}

	for _, path := range paths {
		r, ok := byPath[path]
		if !ok {
			t.Fatalf("no result for %s", path)
		}
		if r.Err != nil {
			t.Fatalf("%s: unexpected error: %v", path, r.Err)
		}
		if r.Result == nil {
			t.Fatalf("%s: nil Result", path)
		}
	}

	if byPath["Baz.mod"].Result.Statistics.SemanticErrorCount == 0 {
		t.Fatalf("Baz.mod: expected a semantic error for its end-identifier mismatch")
	}
	if byPath["Foo.mod"].Result.Status != StatusSuccess {
		t.Fatalf("Foo.mod: status = %v, want StatusSuccess", byPath["Foo.mod"].Result.Status)
	}
}

func TestBatchParseReportsPerPathErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "Foo.mod", []byte("MODULE Foo; BEGIN END Foo."), 0o644); err != nil {
		t.Fatalf("seed Foo.mod: %v", err)
	}

	results := BatchParse(context.Background(), []string{"Foo.mod", "Missing.mod"},
		WithOption(WithSource(srcfs.NewWithFS(fs))))

	var sawMissing bool
	for _, r := range results {
		if r.Path == "Missing.mod" {
			sawMissing = true
			if r.Err == nil {
				t.Fatalf("Missing.mod: expected an error, got nil")
			}
		}
	}
	if !sawMissing {
		t.Fatalf("no result for Missing.mod")
	}
}

func TestWithWorkersClampsBelowOne(t *testing.T) {
	cfg := &batchConfig{}
	WithWorkers(0)(cfg)
	if cfg.workers != 1 {
		t.Fatalf("WithWorkers(0) set workers = %d, want 1", cfg.workers)
	}
}
