// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import "github.com/mdhender/m2parse/internal/grammar"

// This file is component B (spec §4.B, "Match & Resync"): the
// low-level primitives every production function builds on. Grounded
// on cst_parser.go's match/consume/accept/expect/skipUntilSync family,
// generalized from a single hard-coded sync-token list to the
// FIRST/FOLLOW-parameterized contract spec §4.B requires, and —
// unlike the teacher's stubbed errorExpected (panic("!implemented"))
// — fully implemented: every miss formats and records a Diagnostic
// and bumps Statistics.SyntaxErrorCount.

// expectToken reports whether the lookahead equals expected, without
// consuming it. On a mismatch it emits a syntax error referencing the
// expected token and increments the syntax-error counter (spec §4.B).
func (p *Parser) expectToken(expected TokenKind) bool {
	if p.match(expected) {
		return true
	}
	p.stats.recordSyntaxError(newSyntaxError(p.span(),
		"expected %s, found %s", expected.String(), p.currToken.Kind.String()))
	return false
}

// expectSet is the set-valued analogue of expectToken.
func (p *Parser) expectSet(expected TokenSet) bool {
	if p.matchSet(expected) {
		return true
	}
	p.stats.recordSyntaxError(newSyntaxError(p.span(),
		"expected one of %v, found %s", expected.Kinds(), p.currToken.Kind.String()))
	return false
}

// skipToToken consumes tokens until the lookahead is t or EOF, and
// returns the new lookahead without consuming the terminator. EOF is
// always an unconditional stop (spec §4.B termination guarantee).
func (p *Parser) skipToToken(t TokenKind) *Token {
	for !p.isAtEnd() && !p.match(t) {
		p.advance()
	}
	return p.currToken
}

// skipToSet consumes tokens until the lookahead is a member of set or
// EOF.
func (p *Parser) skipToSet(set TokenSet) *Token {
	for !p.isAtEnd() && !p.matchSet(set) {
		p.advance()
	}
	return p.currToken
}

// skipToTokenOrSet consumes tokens until the lookahead is t, a member
// of set, or EOF.
func (p *Parser) skipToTokenOrSet(t TokenKind, set TokenSet) *Token {
	for !p.isAtEnd() && !p.match(t) && !p.matchSet(set) {
		p.advance()
	}
	return p.currToken
}

// skipToTokenList consumes tokens until the lookahead matches any of
// the given kinds or EOF.
func (p *Parser) skipToTokenList(kinds ...TokenKind) *Token {
	return p.skipToSet(NewTokenSet(kinds...))
}

// recoverMissingTerminal implements spec §4.B's named recovery policy
// for a missing terminal t: emit the diagnostic, then resync to
// FOLLOW(production) ∪ {t}, so the caller's subsequent expect/accept
// of t (if any) can still succeed when t itself is the sync point.
func (p *Parser) recoverMissingTerminal(t TokenKind, production grammar.ProductionID) *Token {
	p.expectToken(t)
	return p.skipToTokenOrSet(t, followSet(production))
}

// recoverMissingFirst implements spec §4.B's recovery policy for a
// missing FIRST-set member: emit a diagnostic and resync to
// FOLLOW(production), leaving an empty-node hole for the caller to
// install.
func (p *Parser) recoverMissingFirst(production grammar.ProductionID, message string) *Token {
	p.stats.recordSyntaxError(newSyntaxError(p.span(), "%s", message))
	return p.skipToSet(followSet(production))
}

// followSet adapts grammar's plain []int FOLLOW table into a
// root-package TokenSet.
func followSet(id grammar.ProductionID) TokenSet {
	var s TokenSet
	for _, k := range grammar.Follow(id) {
		s = s.With(TokenKind(k))
	}
	return s
}

// firstSet adapts grammar's plain []int FIRST table into a
// root-package TokenSet.
func firstSet(id grammar.ProductionID) TokenSet {
	var s TokenSet
	for _, k := range grammar.First(id) {
		s = s.With(TokenKind(k))
	}
	return s
}
