// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package intern provides a canonical-pointer string repository.
//
// Two interned strings compare equal as text if and only if they are
// the same *Lexeme pointer (spec §3 "Lexeme", §9 "Interned-identifier
// comparisons"). The repository is process-wide and read-mostly; a
// single-threaded parser context can use the default Repository
// without locking discipline of its own, but the repository guards
// its map with a mutex so that multiple parser contexts in the same
// process (spec §5, "if the interned string repository must be shared
// across multiple concurrent parser contexts, wrap it in an exclusive
// lock at its API boundary") can share one safely.
package intern

import (
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Lexeme is an interned string. Its Text is immutable once created;
// two Lexemes are equal as text if and only if they are the same
// pointer.
type Lexeme struct {
	Text string
}

// Repository is a mutex-guarded intern table.
type Repository struct {
	mu    sync.Mutex
	table map[string]*Lexeme
}

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{table: make(map[string]*Lexeme)}
}

// Intern returns the canonical *Lexeme for s, normalizing s to NFC
// first so that visually-identical Unicode identifiers (e.g. a
// precomposed vs. combining-character accent) intern to the same
// pointer. Repeated calls with equivalent text return the same
// pointer.
func (r *Repository) Intern(s string) *Lexeme {
	normalized := norm.NFC.String(s)

	r.mu.Lock()
	defer r.mu.Unlock()

	if lx, ok := r.table[normalized]; ok {
		return lx
	}
	lx := &Lexeme{Text: normalized}
	r.table[normalized] = lx
	return lx
}

// Len reports how many distinct lexemes have been interned. Mostly
// useful for tests and diagnostics.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.table)
}

// Default is the process-wide repository used when a caller has no
// reason to keep lexemes scoped to a single parse.
var Default = NewRepository()
