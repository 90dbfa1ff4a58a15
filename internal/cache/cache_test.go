// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package cache

import (
	"context"
	"testing"
	"time"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(Config{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestLastDigestOfUnknownPathIsEmpty(t *testing.T) {
	c := openTestCache(t)
	digest, err := c.LastDigest(context.Background(), "Foo.mod")
	if err != nil {
		t.Fatalf("LastDigest: %v", err)
	}
	if digest != "" {
		t.Fatalf("LastDigest(unknown path) = %q, want empty", digest)
	}
}

func TestInsertThenLastDigestReturnsMostRecent(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	if err := c.Insert(ctx, Record{RunID: "r1", Path: "Foo.mod", Digest: "aaa", Status: "ok"}); err != nil {
		t.Fatalf("Insert 1: %v", err)
	}
	if err := c.Insert(ctx, Record{RunID: "r2", Path: "Foo.mod", Digest: "bbb", Status: "ok"}); err != nil {
		t.Fatalf("Insert 2: %v", err)
	}

	digest, err := c.LastDigest(ctx, "Foo.mod")
	if err != nil {
		t.Fatalf("LastDigest: %v", err)
	}
	if digest != "bbb" {
		t.Fatalf("LastDigest = %q, want %q (the most recently inserted)", digest, "bbb")
	}
}

func TestRecentReturnsNewestFirstAcrossPaths(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	records := []Record{
		{RunID: "r1", Path: "A.mod", Digest: "a", Status: "ok", Elapsed: time.Millisecond},
		{RunID: "r2", Path: "B.mod", Digest: "b", Status: "syntax_errors", SyntaxErrors: 2, Elapsed: 2 * time.Millisecond},
		{RunID: "r3", Path: "A.mod", Digest: "a2", Status: "ok", Elapsed: 3 * time.Millisecond},
	}
	for _, r := range records {
		if err := c.Insert(ctx, r); err != nil {
			t.Fatalf("Insert %s: %v", r.RunID, err)
		}
	}

	got, err := c.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent returned %d rows, want 3", len(got))
	}
	if got[0].RunID != "r3" {
		t.Fatalf("Recent[0].RunID = %q, want %q (most recent insert first)", got[0].RunID, "r3")
	}
	if got[0].Elapsed != 3*time.Millisecond {
		t.Fatalf("Recent[0].Elapsed = %v, want 3ms (millisecond round-trip)", got[0].Elapsed)
	}
}

func TestRecentRespectsLimit(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := c.Insert(ctx, Record{RunID: string(rune('a' + i)), Path: "Foo.mod", Digest: "d", Status: "ok"}); err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
	}

	got, err := c.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent(n=2) returned %d rows, want 2", len(got))
	}
}

func TestEnsureDirOnEmptyOrBarePathIsNoop(t *testing.T) {
	if err := EnsureDir(""); err != nil {
		t.Fatalf("EnsureDir(\"\") = %v, want nil", err)
	}
	if err := EnsureDir("m2parse.db"); err != nil {
		t.Fatalf("EnsureDir(bare filename) = %v, want nil", err)
	}
}
