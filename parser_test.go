// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import (
	"context"
	"testing"

	"github.com/mdhender/m2parse/internal/intern"
)

func TestNewParserPrimesLookahead(t *testing.T) {
	p := newTestParser(t, "MODULE Foo;")
	if p.currToken == nil {
		t.Fatalf("currToken is nil after construction, want the first token primed")
	}
	if p.currToken.Kind != KwMODULE {
		t.Fatalf("currToken.Kind = %v, want KwMODULE", p.currToken.Kind)
	}
}

func TestAdvanceReturnsPreviousTokenAndMovesLookahead(t *testing.T) {
	p := newTestParser(t, "MODULE Foo;")
	first := p.advance()
	if first.Kind != KwMODULE {
		t.Fatalf("advance() returned %v, want KwMODULE", first.Kind)
	}
	if p.currToken.Kind != IDENT {
		t.Fatalf("lookahead after advance = %v, want IDENT", p.currToken.Kind)
	}
}

func TestAdvanceAtEOFIsIdempotent(t *testing.T) {
	p := newTestParser(t, "")
	first := p.advance()
	second := p.advance()
	if first.Kind != EOF || second.Kind != EOF {
		t.Fatalf("advance() at EOF = %v, %v, want EOF, EOF", first.Kind, second.Kind)
	}
	if !p.isAtEnd() {
		t.Fatalf("isAtEnd() = false after exhausting input")
	}
}

func TestAcceptConsumesOnMatch(t *testing.T) {
	p := newTestParser(t, "MODULE Foo;")
	tok := p.accept(KwMODULE)
	if tok == nil {
		t.Fatalf("accept(KwMODULE) = nil, want the token")
	}
	if p.currToken.Kind != IDENT {
		t.Fatalf("lookahead after accept = %v, want IDENT", p.currToken.Kind)
	}
}

func TestAcceptDoesNotConsumeOnMismatch(t *testing.T) {
	p := newTestParser(t, "MODULE Foo;")
	tok := p.accept(KwEND)
	if tok != nil {
		t.Fatalf("accept(KwEND) = %+v, want nil", tok)
	}
	if p.currToken.Kind != KwMODULE {
		t.Fatalf("lookahead consumed on a failed accept")
	}
}

func TestAcceptOneOfMatchesAnyListedKind(t *testing.T) {
	p := newTestParser(t, "Foo")
	tok := p.acceptOneOf(KwEND, IDENT)
	if tok == nil || tok.Kind != IDENT {
		t.Fatalf("acceptOneOf(KwEND, IDENT) = %+v, want an IDENT token", tok)
	}
}

func TestMatchSetReflectsMembership(t *testing.T) {
	p := newTestParser(t, "MODULE")
	if !p.matchSet(NewTokenSet(KwMODULE, KwIMPLEMENTATION)) {
		t.Fatalf("matchSet(...) = false, want true (KwMODULE is a member)")
	}
	if p.matchSet(NewTokenSet(KwEND)) {
		t.Fatalf("matchSet(...) = true, want false (KwMODULE is not a member)")
	}
}

func TestRecursionLimitPanicsWithSentinel(t *testing.T) {
	p := newTestParser(t, "", WithRecursionLimit(2))

	var caught any
	func() {
		defer func() { caught = recover() }()
		p.enter()
		p.enter()
		p.enter() // exceeds the limit of 2
	}()

	if caught != errRecursionLimit {
		t.Fatalf("recover() = %v, want errRecursionLimit", caught)
	}
}

func TestRecursionLimitZeroMeansUnlimited(t *testing.T) {
	p := newTestParser(t, "")
	for i := 0; i < 1000; i++ {
		p.enter()
	}
	for i := 0; i < 1000; i++ {
		p.exit()
	}
	if p.depth != 0 {
		t.Fatalf("depth after balanced enter/exit = %d, want 0", p.depth)
	}
}

func TestModuleKindString(t *testing.T) {
	cases := map[ModuleKind]string{
		UnknownModule:        "UnknownModule",
		InterfaceModule:      "InterfaceModule",
		ImplementationModule: "ImplementationModule",
		ProgramModule:        "ProgramModule",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("ModuleKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusSuccess:           "SUCCESS",
		StatusInvalidReference:  "INVALID_REFERENCE",
		StatusInvalidPathname:   "INVALID_PATHNAME",
		StatusInvalidSourcetype: "INVALID_SOURCETYPE",
		StatusAllocationFailed:  "ALLOCATION_FAILED",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}

func TestStatisticsOutcome(t *testing.T) {
	cases := []struct {
		name  string
		stats Statistics
		want  string
	}{
		{"clean", Statistics{}, "ok"},
		{"warning only", Statistics{WarningCount: 1}, "warnings"},
		{"syntax error", Statistics{SyntaxErrorCount: 1}, "syntax errors"},
		{"semantic error outranks syntax error", Statistics{SyntaxErrorCount: 1, SemanticErrorCount: 1}, "semantic errors"},
	}
	for _, c := range cases {
		if got := c.stats.Outcome(); got != c.want {
			t.Errorf("%s: Outcome() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestScanIsTheOnlyLexerCall(t *testing.T) {
	// newParser should have already pulled exactly one token via scan();
	// confirm the lexer's EOF token is cached rather than re-requested.
	lexer := NewScanner(context.Background(), "test.mod", []byte(""), intern.NewRepository(), nil)
	p := newParser(context.Background(), lexer, nil)
	if p.eofToken == nil {
		t.Fatalf("eofToken not cached after priming on empty input")
	}
	first := p.scan()
	if first != p.eofToken {
		t.Fatalf("scan() after EOF returned a different token instance")
	}
}
