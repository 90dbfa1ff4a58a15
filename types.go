// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import "github.com/mdhender/m2parse/internal/grammar"

// Types (spec §4.C.4). The grammar for `type` depends on module kind
// only at two points (component D): OPAQUE is legal only in
// interface modules, and POINTER TO dispatches to the determinate or
// private form depending on whether the enclosing module is an
// implementation module. Every other type form is module-kind
// independent.

// parseType dispatches on the lookahead to one of the ten type forms
// spec §4.C.4 enumerates. OPAQUE is dispatched in every module kind;
// outside an interface module parseOpaqueType reports it as a
// semantic error rather than panicking, staying true to "never
// throws."
func (p *Parser) parseType() *Node {
	switch {
	case p.match(KwALIAS):
		return p.parseAliasType()
	case p.match(KwARRAY):
		return p.parseArrayType()
	case p.match(KwRECORD):
		return p.parseRecordType()
	case p.match(KwSET):
		return p.parseSetType()
	case p.match(KwPROCEDURE):
		return p.parseProcType()
	case p.match(KwOPAQUE):
		return p.parseOpaqueType()
	case p.match(KwPOINTER):
		return p.parsePointerTypeDispatch()
	case p.match(LBRACKET):
		return p.parseSubrangeType()
	case p.match(LPAREN):
		return p.parseDerivedOrEnumType()
	default:
		p.recoverMissingFirst(grammar.Type, "expected a type")
		return emptyNode()
	}
}

func (p *Parser) parseAliasType() *Node {
	p.advance() // ALIAS
	target := p.parseQualident()
	return node(ALIASTYPE, target)
}

func (p *Parser) parseArrayType() *Node {
	p.advance() // ARRAY
	bounds := p.parseExprList()
	p.expectToken(KwOF)
	p.accept(KwOF)
	elem := p.parseType()
	return node(ARRAYTYPE, bounds, elem)
}

func (p *Parser) parseExprList() *Node {
	var fifo []*Node
	fifo = append(fifo, p.parseExpression())
	for p.accept(COMMA) != nil {
		fifo = append(fifo, p.parseExpression())
	}
	return listNode(EXPRLIST, fifo)
}

func (p *Parser) parseRecordType() *Node {
	p.advance() // RECORD
	var fields []*Node
	for !p.match(KwEND) && !p.isAtEnd() {
		fields = append(fields, p.parseFieldDecl())
		if !p.match(KwEND) {
			p.expectToken(SEMICOLON)
			p.accept(SEMICOLON)
		}
	}
	p.expectToken(KwEND)
	p.accept(KwEND)
	return node(RECORDTYPE, listNode(FIELDLIST, fields))
}

func (p *Parser) parseFieldDecl() *Node {
	names := p.parseIdentList()
	p.expectToken(COLON)
	p.accept(COLON)
	typ := p.parseType()
	return node(FIELDDECL, names, typ)
}

func (p *Parser) parseSetType() *Node {
	p.advance() // SET
	p.expectToken(KwOF)
	p.accept(KwOF)
	base := p.parseType()
	return node(SETTYPE, base)
}

func (p *Parser) parseProcType() *Node {
	p.advance() // PROCEDURE
	params := emptyNode()
	if p.match(LPAREN) {
		params = p.parseProcTypeParams()
	}
	result := emptyNode()
	if p.accept(COLON) != nil {
		result = p.parseQualident()
	}
	return node(PROCTYPE, params, result)
}

// parseProcTypeParams parses the unnamed parameter-type list used in a
// PROCEDURE type (as opposed to a procedure heading's named formal
// parameters): `'(' (type (',' type)*)? ')'`.
func (p *Parser) parseProcTypeParams() *Node {
	p.advance() // '('
	var fifo []*Node
	if !p.match(RPAREN) {
		fifo = append(fifo, p.parseType())
		for p.accept(COMMA) != nil {
			fifo = append(fifo, p.parseType())
		}
	}
	p.expectToken(RPAREN)
	p.accept(RPAREN)
	return listNode(FORMALPARAMS, fifo)
}

func (p *Parser) parseOpaqueType() *Node {
	tok := p.currToken
	p.advance() // OPAQUE
	if !p.allowsOpaqueType() {
		p.stats.recordSemanticError(newSemanticError(spanFromToken(tok),
			"OPAQUE is only permitted in an interface module"))
	}
	return node(OPAQUETYPE)
}

// parsePointerType is the determinate POINTER TO form used by
// interface and program modules: `POINTER TO type`.
func (p *Parser) parsePointerType() *Node {
	p.advance() // POINTER
	p.expectToken(KwTO)
	p.accept(KwTO)
	target := p.parseType()
	return node(POINTERTYPE, target)
}

// parsePrivatePointerType is the indeterminate form implementation
// modules see: `POINTER TO (id | RECORD ...)`.
func (p *Parser) parsePrivatePointerType() *Node {
	p.advance() // POINTER
	p.expectToken(KwTO)
	p.accept(KwTO)
	var target *Node
	if p.match(KwRECORD) {
		target = p.parseRecordType()
	} else {
		tok := p.expect(IDENT)
		target = terminal(IDENTNODE, tok)
	}
	return node(PRIVATEPOINTERTYPE, target)
}

// parseDerivedOrEnumType disambiguates `(` id `)` (a derived type,
// i.e. a parenthesised base-type reference used for subranges built
// on an existing ordinal type) from `((` ... `))` (an enumeration
// literal list), per spec §4.C.4's table.
func (p *Parser) parseDerivedOrEnumType() *Node {
	p.advance() // '('
	if p.match(LPAREN) {
		return p.parseEnumTypeBody()
	}
	base := p.parseQualident()
	p.expectToken(RPAREN)
	p.accept(RPAREN)
	return node(DERIVEDTYPE, base)
}

func (p *Parser) parseEnumTypeBody() *Node {
	p.advance() // second '('
	names := p.parseIdentList()
	p.expectToken(RPAREN)
	p.accept(RPAREN)
	p.expectToken(RPAREN)
	p.accept(RPAREN)
	return node(ENUMTYPE, names)
}

func (p *Parser) parseSubrangeType() *Node {
	p.advance() // '['
	lo := p.parseExpression()
	p.expectToken(DOTDOT)
	p.accept(DOTDOT)
	hi := p.parseExpression()
	p.expectToken(RBRACKET)
	p.accept(RBRACKET)
	return node(SUBRANGETYPE, lo, hi)
}

// parseQualident parses `ident ('.' ident)*` — a (possibly
// module-qualified) type or constant reference.
func (p *Parser) parseQualident() *Node {
	tok := p.expect(IDENT)
	n := terminal(IDENTNODE, tok)
	if !p.match(DOT) {
		return n
	}
	var fifo []*Node
	fifo = append(fifo, n)
	for p.accept(DOT) != nil {
		tok := p.expect(IDENT)
		fifo = append(fifo, terminal(IDENTNODE, tok))
	}
	return listNode(QUALIDENT, fifo)
}
