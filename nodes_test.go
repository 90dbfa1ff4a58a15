// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import (
	"errors"
	"testing"
)

func TestEmptyNodeIsSingleton(t *testing.T) {
	a := emptyNode()
	b := emptyNode()
	if a != b {
		t.Fatalf("emptyNode() returned distinct instances")
	}
	if !a.IsEmpty() {
		t.Fatalf("IsEmpty() = false for the empty node singleton")
	}
	if a.Kind() != EMPTY {
		t.Fatalf("Kind() = %v, want EMPTY", a.Kind())
	}
}

func TestNilNodeBehavesLikeEmptyNodeForAccessors(t *testing.T) {
	var n *Node
	if n.Kind() != INVALID {
		t.Fatalf("nil.Kind() = %v, want INVALID", n.Kind())
	}
	if n.Span() != (Span{}) {
		t.Fatalf("nil.Span() = %+v, want zero Span", n.Span())
	}
	if n.Children() != nil {
		t.Fatalf("nil.Children() = %v, want nil", n.Children())
	}
	if n.Lexeme() != nil {
		t.Fatalf("nil.Lexeme() != nil")
	}
	if n.Text() != "" {
		t.Fatalf("nil.Text() = %q, want empty", n.Text())
	}
	if n.Errors() != nil {
		t.Fatalf("nil.Errors() != nil")
	}
}

func TestChildOutOfRangeReturnsEmptyNode(t *testing.T) {
	n := node(FILE, terminal(IDENTNODE, nil))
	if got := n.Child(5); !got.IsEmpty() {
		t.Fatalf("Child(out of range) = %+v, want the empty node", got)
	}
	if got := n.Child(-1); !got.IsEmpty() {
		t.Fatalf("Child(-1) = %+v, want the empty node", got)
	}
}

func TestNodeReplacesNilChildrenWithEmptyNode(t *testing.T) {
	n := node(FILE, nil, nil)
	if len(n.Children()) != 2 {
		t.Fatalf("len(Children()) = %d, want 2", len(n.Children()))
	}
	for i, c := range n.Children() {
		if !c.IsEmpty() {
			t.Errorf("child %d = %+v, want the empty node", i, c)
		}
	}
}

func TestTerminalWithNilTokenReturnsEmptyNode(t *testing.T) {
	if got := terminal(IDENTNODE, nil); !got.IsEmpty() {
		t.Fatalf("terminal(kind, nil) = %+v, want the empty node", got)
	}
}

func TestIdentNodeNeverReturnsTheEmptySingleton(t *testing.T) {
	n := identNode("ASC")
	if n.IsEmpty() {
		t.Fatalf("identNode(%q).IsEmpty() = true, want false", "ASC")
	}
	if n.Kind() != IDENTNODE {
		t.Fatalf("Kind() = %v, want IDENTNODE", n.Kind())
	}
	if n.Text() != "ASC" {
		t.Fatalf("Text() = %q, want %q", n.Text(), "ASC")
	}
}

func TestBadNodeRecordsErrorAndSpan(t *testing.T) {
	err := errors.New("unexpected token")
	skipped := []*Token{
		{Position: Position{Line: 1, Column: 1, Start: 0}, End: 3, Kind: IDENT},
		{Position: Position{Line: 1, Column: 5, Start: 4}, End: 7, Kind: IDENT},
	}
	n := badNode(skipped, err)
	if n.Kind() != BAD {
		t.Fatalf("Kind() = %v, want BAD", n.Kind())
	}
	if len(n.Errors()) != 1 {
		t.Fatalf("len(Errors()) = %d, want 1", len(n.Errors()))
	}
	if n.Span().Start != 0 || n.Span().End != 7 {
		t.Fatalf("Span() = %+v, want a span covering all skipped tokens", n.Span())
	}
}

func TestListNodeMergesSpansAcrossChildren(t *testing.T) {
	a := terminal(IDENTNODE, &Token{Position: Position{Line: 1, Column: 1, Start: 0}, End: 3, Kind: IDENT})
	b := terminal(IDENTNODE, &Token{Position: Position{Line: 1, Column: 5, Start: 4}, End: 7, Kind: IDENT})
	n := listNode(CONSTDEFLIST, []*Node{a, b})
	if n.Span().Start != 0 || n.Span().End != 7 {
		t.Fatalf("Span() = %+v, want {Start:0 End:7}", n.Span())
	}
	if len(n.Children()) != 2 {
		t.Fatalf("len(Children()) = %d, want 2", len(n.Children()))
	}
}
