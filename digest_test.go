// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import "testing"

func TestDigestIsDeterministic(t *testing.T) {
	src := []byte("MODULE Foo; BEGIN END Foo.")
	if Digest(src) != Digest(src) {
		t.Fatalf("Digest is not deterministic for the same input")
	}
}

func TestDigestChangesWithContent(t *testing.T) {
	a := Digest([]byte("MODULE Foo; BEGIN END Foo."))
	b := Digest([]byte("MODULE Bar; BEGIN END Bar."))
	if a == b {
		t.Fatalf("Digest collided for different input")
	}
}

func TestDigestOfEmptyInput(t *testing.T) {
	// sha256("") is a well-known constant; verify we're not hashing
	// something else (e.g. a length-prefixed or nil-guarded variant).
	const emptySHA256Hex = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Digest(nil); got != emptySHA256Hex {
		t.Fatalf("Digest(nil) = %q, want %q", got, emptySHA256Hex)
	}
}
