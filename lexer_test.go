// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import (
	"context"
	"testing"

	"github.com/mdhender/m2parse/internal/intern"
)

func scanAll(t *testing.T, src string) []*Token {
	t.Helper()
	repo := intern.NewRepository()
	s := NewScanner(context.Background(), "test.mod", []byte(src), repo, nil)
	var toks []*Token
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
		if len(toks) > len(src)+2 {
			t.Fatalf("scanner did not reach EOF within a bounded number of tokens")
		}
	}
}

func kinds(toks []*Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks := scanAll(t, ": := :: = == # <= >= .. .")
	got := kinds(toks)
	want := []TokenKind{COLON, ASSIGN, DCOLON, EQUAL, EQEQ, HASH, LE, GE, DOTDOT, DOT, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d tokens %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanKeywordsAreNotIdentifiers(t *testing.T) {
	toks := scanAll(t, "MODULE Foo BEGIN END")
	got := kinds(toks)
	want := []TokenKind{KwMODULE, IDENT, KwBEGIN, KwEND, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d tokens %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if toks[1].Lexeme == nil || toks[1].Lexeme.Text != "Foo" {
		t.Errorf("IDENT token lexeme = %+v, want text %q", toks[1].Lexeme, "Foo")
	}
}

func TestScanIntAndRealLiterals(t *testing.T) {
	toks := scanAll(t, "123 3.14 0FFH")
	got := kinds(toks)
	want := []TokenKind{INTLITERAL, REALLITERAL, INTLITERAL, EOF}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanStringAndCharLiterals(t *testing.T) {
	toks := scanAll(t, `"hello" 'x'`)
	if toks[0].Kind != STRINGLITERAL {
		t.Errorf("first token kind = %v, want STRINGLITERAL", toks[0].Kind)
	}
	if toks[0].Lexeme.Text != "hello" {
		t.Errorf("string literal text = %q, want %q", toks[0].Lexeme.Text, "hello")
	}
	if toks[1].Kind != CHARLITERAL {
		t.Errorf("second token kind = %v, want CHARLITERAL", toks[1].Kind)
	}
	if toks[1].Lexeme.Text != "x" {
		t.Errorf("char literal text = %q, want %q", toks[1].Lexeme.Text, "x")
	}
}

func TestScanSkipsNestedComments(t *testing.T) {
	toks := scanAll(t, "(* outer (* inner *) still-outer *) MODULE")
	got := kinds(toks)
	want := []TokenKind{KwMODULE, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d tokens %v (comment not fully skipped)", len(got), got, len(want), want)
	}
}

func TestScanRepeatsEOFAfterEndOfInput(t *testing.T) {
	repo := intern.NewRepository()
	s := NewScanner(context.Background(), "empty.mod", []byte(""), repo, nil)
	first := s.Scan()
	second := s.Scan()
	if first.Kind != EOF || second.Kind != EOF {
		t.Fatalf("Scan() on empty input = %v, %v, want EOF, EOF", first.Kind, second.Kind)
	}
}

func TestScanTracksLineAndColumn(t *testing.T) {
	toks := scanAll(t, "MODULE\nFoo")
	if toks[0].Line != 1 {
		t.Errorf("MODULE line = %d, want 1", toks[0].Line)
	}
	if toks[1].Line != 2 {
		t.Errorf("Foo line = %d, want 2", toks[1].Line)
	}
	if toks[1].Column != 1 {
		t.Errorf("Foo column = %d, want 1", toks[1].Column)
	}
}

func TestScannerLineCount(t *testing.T) {
	repo := intern.NewRepository()
	src := "MODULE Foo;\nBEGIN\nEND Foo.\n"
	s := NewScanner(context.Background(), "test.mod", []byte(src), repo, nil)
	for {
		if s.Scan().Kind == EOF {
			break
		}
	}
	if got := s.LineCount(); got < 3 {
		t.Errorf("LineCount() = %d, want at least 3", got)
	}
}
