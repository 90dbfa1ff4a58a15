// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import "github.com/mdhender/m2parse/internal/grammar"

// Expressions (spec §4.C.6): three-level left-associative precedence.
//
//	L1 (relational, non-chaining): = # < <= > >= == IN   -- at most one per expression
//	L2 (additive):                 + - OR &
//	L3 (multiplicative):           * / DIV MOD AND
//
// Unary minus is a prefix at the simpleExpression level, binding to
// the following factor only. NOT is a prefix at the simpleTerm level.
// Type conversion '::' is postfix at the factor level and binds
// tighter than every binary operator. Parenthesised expressions reset
// precedence.

var relOps = NewTokenSet(EQUAL, HASH, LT, LE, GT, GE, EQEQ, KwIN)
var addOps = NewTokenSet(PLUS, MINUS, KwOR, AMP)
var mulOps = NewTokenSet(STAR, SLASH, KwDIV, KwMOD, KwAND)

// parseExpression parses L1: a simpleExpression optionally followed by
// exactly one relational operator and a second simpleExpression.
func (p *Parser) parseExpression() *Node {
	p.enter()
	defer p.exit()

	left := p.parseSimpleExpression()
	if !p.matchSet(relOps) {
		return left
	}
	opTok := p.advance()
	right := p.parseSimpleExpression()
	return node(RELOP, terminal(IDENTNODE, opTok), left, right)
}

// parseSimpleExpression parses L2: one or more terms chained by
// additive operators. A leading unary minus applies to the first
// factor only; the rest of that first term's multiplicative chain
// then continues with the negated factor as its left operand.
func (p *Parser) parseSimpleExpression() *Node {
	var left *Node
	if p.match(MINUS) {
		p.advance()
		left = node(UNARYMINUS, p.parseFactor())
		for p.matchSet(mulOps) {
			opTok := p.advance()
			right := p.parseFactor()
			left = node(MULOP, terminal(IDENTNODE, opTok), left, right)
		}
	} else {
		left = p.parseTerm()
	}
	for p.matchSet(addOps) {
		opTok := p.advance()
		right := p.parseTerm()
		left = node(ADDOP, terminal(IDENTNODE, opTok), left, right)
	}
	return left
}

// parseTerm parses L3: an optional leading NOT, then one or more
// factors chained by multiplicative operators.
func (p *Parser) parseTerm() *Node {
	var not *Token
	if p.match(KwNOT) {
		not = p.advance()
	}
	left := p.parseFactor()
	if not != nil {
		left = node(NOTOP, left)
	}
	for p.matchSet(mulOps) {
		opTok := p.advance()
		right := p.parseFactor()
		left = node(MULOP, terminal(IDENTNODE, opTok), left, right)
	}
	return left
}

// parseFactor parses a primary expression, then zero or more postfix
// '::' type-conversion operators (binds tighter than any binary
// operator, since it is applied here before returning to the caller's
// chaining loop).
func (p *Parser) parseFactor() *Node {
	var primary *Node
	switch {
	case p.match(INTLITERAL):
		primary = terminal(INTVAL, p.advance())
	case p.match(REALLITERAL):
		primary = terminal(REALVAL, p.advance())
	case p.match(STRINGLITERAL):
		primary = terminal(STRVAL, p.advance())
	case p.match(CHARLITERAL):
		primary = terminal(CHARVAL, p.advance())
	case p.match(LPAREN):
		p.advance()
		inner := p.parseExpression()
		p.expectToken(RPAREN)
		p.accept(RPAREN)
		primary = node(PARENEXPR, inner)
	case p.match(IDENT):
		primary = p.parseSourceDesignator()
	default:
		p.recoverMissingFirst(grammar.Factor, "expected an expression")
		return emptyNode()
	}

	for p.match(DCOLON) {
		p.advance()
		typ := p.parseQualident()
		primary = node(TYPECONV, primary, typ)
	}
	return primary
}
