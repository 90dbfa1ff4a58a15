// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

// TokenSet is an immutable set of TokenKind values, backed by a bitset
// so membership tests are O(1) regardless of set size. Value semantics:
// two TokenSets with the same members compare equal with ==.
//
// Grounded on the shape of the teacher pack's
// CWBudde-go-dws error_recovery.go SynchronizationSet (a named set of
// token kinds used purely for resync-point membership tests), adapted
// to a bitset since FIRST/FOLLOW sets here are probed on every token.
type TokenSet struct {
	words [2]uint64 // supports up to 128 TokenKind values
}

func bitFor(k TokenKind) (word, bit int) {
	return int(k) / 64, int(k) % 64
}

// NewTokenSet builds a TokenSet from the given kinds.
func NewTokenSet(kinds ...TokenKind) TokenSet {
	var s TokenSet
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// With returns a new TokenSet containing everything in s plus k.
func (s TokenSet) With(k TokenKind) TokenSet {
	w, b := bitFor(k)
	if w < 0 || w >= len(s.words) {
		return s
	}
	s.words[w] |= 1 << uint(b)
	return s
}

// Has reports whether k is a member of s.
func (s TokenSet) Has(k TokenKind) bool {
	w, b := bitFor(k)
	if w < 0 || w >= len(s.words) {
		return false
	}
	return s.words[w]&(1<<uint(b)) != 0
}

// HasToken reports whether tok's kind is a member of s. A nil token is
// never a member.
func (s TokenSet) HasToken(tok *Token) bool {
	if tok == nil {
		return false
	}
	return s.Has(tok.Kind)
}

// Union returns the set union of s and other.
func (s TokenSet) Union(other TokenSet) TokenSet {
	var out TokenSet
	for i := range out.words {
		out.words[i] = s.words[i] | other.words[i]
	}
	return out
}

// Empty reports whether the set has no members.
func (s TokenSet) Empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Kinds returns the members of s in ascending TokenKind order. Intended
// for diagnostics ("expected one of: ...") rather than hot paths.
func (s TokenSet) Kinds() []TokenKind {
	var out []TokenKind
	for k := TokenKind(0); k < numTokenKinds; k++ {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}
