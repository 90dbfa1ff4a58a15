// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package intern

import "testing"

func TestInternReturnsSamePointerForEqualText(t *testing.T) {
	r := NewRepository()
	a := r.Intern("Foo")
	b := r.Intern("Foo")
	if a != b {
		t.Fatalf("Intern returned distinct pointers for identical text")
	}
}

func TestInternReturnsDistinctPointersForDistinctText(t *testing.T) {
	r := NewRepository()
	a := r.Intern("Foo")
	b := r.Intern("Bar")
	if a == b {
		t.Fatalf("Intern returned the same pointer for distinct text")
	}
}

func TestInternNormalizesToNFC(t *testing.T) {
	r := NewRepository()
	// "e" (U+0065) + combining acute accent (U+0301), NFD, vs. the
	// precomposed "é" (NFC) — two byte sequences that must
	// normalize to the same interned pointer.
	decomposed := "é"
	precomposed := "é"

	a := r.Intern(decomposed)
	b := r.Intern(precomposed)
	if a != b {
		t.Fatalf("Intern did not normalize visually-identical forms to the same pointer")
	}
	if a.Text != precomposed {
		t.Fatalf("Intern.Text = %q, want NFC form %q", a.Text, precomposed)
	}
}

func TestInternLenCountsDistinctLexemes(t *testing.T) {
	r := NewRepository()
	r.Intern("Foo")
	r.Intern("Foo")
	r.Intern("Bar")
	if got := r.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}

func TestDefaultRepositoryIsShared(t *testing.T) {
	a := Default.Intern("m2parseDefaultRepoTestToken")
	b := Default.Intern("m2parseDefaultRepoTestToken")
	if a != b {
		t.Fatalf("Default repository did not intern consistently")
	}
}
