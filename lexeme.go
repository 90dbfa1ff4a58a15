// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import "github.com/mdhender/m2parse/internal/intern"

// Lexeme is an interned string reference. Pointer equality on *Lexeme
// is sound as a test for textual equality (spec §3 invariant I5); see
// internal/intern for the repository this type aliases.
type Lexeme = intern.Lexeme

// canonicalBindables holds the interned pointer for each pseudo-
// reserved bindable identifier (spec §9), keyed by its canonical
// uppercase spelling. Populated once at init so bindings.go can
// compare by pointer instead of doing a map lookup per identifier.
var canonicalBindables = func() map[*Lexeme]string {
	m := make(map[*Lexeme]string, len(bindableIdents))
	for _, name := range bindableIdents {
		lx := intern.Default.Intern(name)
		m[lx] = name
	}
	return m
}()

// bindableName reports the canonical name of lx if it is one of the
// recognised bindable identifiers, and ok=true. It relies on pointer
// equality: lx must have come from the same repository
// (internal/intern.Default) that populated canonicalBindables.
func bindableName(lx *Lexeme) (name string, ok bool) {
	name, ok = canonicalBindables[lx]
	return name, ok
}

// internText interns s in the default repository. Used for canonical
// binding names (NEW+, READ*, ...) that are synthesized rather than
// scanned verbatim from source.
func internText(s string) *Lexeme {
	return intern.Default.Intern(s)
}
