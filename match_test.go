// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import (
	"context"
	"testing"

	"github.com/mdhender/m2parse/internal/grammar"
	"github.com/mdhender/m2parse/internal/intern"
)

func newTestParser(t *testing.T, src string, opts ...ParserOption) *Parser {
	t.Helper()
	lexer := NewScanner(context.Background(), "test.mod", []byte(src), intern.NewRepository(), nil)
	return newParser(context.Background(), lexer, nil, opts...)
}

func TestExpectTokenMatchDoesNotRecordError(t *testing.T) {
	p := newTestParser(t, "MODULE")
	if !p.expectToken(KwMODULE) {
		t.Fatalf("expectToken(KwMODULE) = false, want true")
	}
	if p.stats.SyntaxErrorCount != 0 {
		t.Fatalf("SyntaxErrorCount = %d, want 0", p.stats.SyntaxErrorCount)
	}
}

func TestExpectTokenMismatchRecordsSyntaxError(t *testing.T) {
	p := newTestParser(t, "MODULE")
	if p.expectToken(KwEND) {
		t.Fatalf("expectToken(KwEND) = true, want false")
	}
	if p.stats.SyntaxErrorCount != 1 {
		t.Fatalf("SyntaxErrorCount = %d, want 1", p.stats.SyntaxErrorCount)
	}
	if len(p.stats.Diagnostics) != 1 {
		t.Fatalf("len(Diagnostics) = %d, want 1", len(p.stats.Diagnostics))
	}
}

func TestExpectTokenNeverConsumesOnMismatch(t *testing.T) {
	p := newTestParser(t, "MODULE")
	p.expectToken(KwEND)
	if !p.match(KwMODULE) {
		t.Fatalf("lookahead consumed on a failed expectToken")
	}
}

func TestSkipToTokenStopsBeforeTarget(t *testing.T) {
	p := newTestParser(t, "Foo Bar END")
	tok := p.skipToToken(KwEND)
	if tok.Kind != KwEND {
		t.Fatalf("skipToToken returned %v, want KwEND", tok.Kind)
	}
	if !p.match(KwEND) {
		t.Fatalf("lookahead after skipToToken = %v, want KwEND still pending", p.currToken.Kind)
	}
}

func TestSkipToTokenStopsAtEOF(t *testing.T) {
	p := newTestParser(t, "Foo Bar")
	tok := p.skipToToken(KwEND)
	if tok.Kind != EOF {
		t.Fatalf("skipToToken on input with no KwEND = %v, want EOF", tok.Kind)
	}
}

func TestSkipToSetStopsAtFirstMember(t *testing.T) {
	p := newTestParser(t, "Foo ; Bar")
	tok := p.skipToSet(NewTokenSet(SEMICOLON, KwEND))
	if tok.Kind != SEMICOLON {
		t.Fatalf("skipToSet returned %v, want SEMICOLON", tok.Kind)
	}
}

func TestRecoverMissingTerminalRecordsErrorAndResyncs(t *testing.T) {
	// ConstDefinition's FOLLOW set includes KwEND (see grammar_tables.go),
	// so after a missing ';' the recovery should resync onto the KwEND
	// that follows, since it is not itself the missing terminal.
	p := newTestParser(t, "END")
	p.recoverMissingTerminal(SEMICOLON, grammar.ConstDefinition)
	if p.stats.SyntaxErrorCount != 1 {
		t.Fatalf("SyntaxErrorCount = %d, want 1", p.stats.SyntaxErrorCount)
	}
	if !p.match(KwEND) {
		t.Fatalf("lookahead after recovery = %v, want KwEND (a FOLLOW member)", p.currToken.Kind)
	}
}

func TestRecoverMissingFirstRecordsErrorAndResyncsToFollow(t *testing.T) {
	p := newTestParser(t, "VAR END")
	p.recoverMissingFirst(grammar.ConstDefinition, "expected a constant definition")
	if p.stats.SyntaxErrorCount != 1 {
		t.Fatalf("SyntaxErrorCount = %d, want 1", p.stats.SyntaxErrorCount)
	}
	if !p.match(KwVAR) {
		t.Fatalf("lookahead after recovery = %v, want KwVAR (a FOLLOW member)", p.currToken.Kind)
	}
}

func TestFollowSetAndFirstSetAreNonNilForRegisteredProductions(t *testing.T) {
	if followSet(grammar.ConstDefinition).Empty() {
		t.Fatalf("followSet(ConstDefinition) is empty, want KwEND and friends")
	}
	if firstSet(grammar.ConstDefinition).Empty() {
		t.Fatalf("firstSet(ConstDefinition) is empty, want IDENT")
	}
}

func TestFollowSetOfUnregisteredProductionIsEmpty(t *testing.T) {
	if !followSet(grammar.ProductionID(-1)).Empty() {
		t.Fatalf("followSet(unregistered) is non-empty, want empty")
	}
}
