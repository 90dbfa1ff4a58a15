// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import "github.com/mdhender/m2parse/internal/grammar"

// Definition / Declaration lists (spec §4.C.3, §4.E): const/type/var
// crossed with definition/declaration are six grammatically parallel
// productions. Each is `parseList` with a descriptor naming the
// element parser, the FOLLOW-set production, and the list-node kind —
// the only difference between "definition" and "declaration" forms is
// which descriptor gets used, selected by module kind: interface
// modules see definitions (signature-only, no initializer needed for
// opaque-backed types), every other module kind sees declarations.

// parseConstGroup parses one `CONST` section's run of
// `ident = expression ;` elements.
func (p *Parser) parseConstGroup() *Node {
	d := listDescriptor{element: (*Parser).parseConstElement, follow: grammar.ConstDeclaration, kind: CONSTDECLLIST}
	if p.moduleKind == InterfaceModule {
		d = listDescriptor{element: (*Parser).parseConstElement, follow: grammar.ConstDefinition, kind: CONSTDEFLIST}
	}
	return parseList(p, d)
}

func (p *Parser) parseConstElement() *Node {
	nameTok := p.expect(IDENT)
	nameNode := terminal(IDENTNODE, nameTok)
	p.expectToken(EQUAL)
	p.accept(EQUAL)
	value := p.parseExpression()
	return node(CONST, nameNode, value)
}

// parseTypeGroup parses one `TYPE` section's run of
// `ident = type ;` elements.
func (p *Parser) parseTypeGroup() *Node {
	d := listDescriptor{element: (*Parser).parseTypeElement, follow: grammar.TypeDeclaration, kind: TYPEDECLLIST}
	if p.moduleKind == InterfaceModule {
		d = listDescriptor{element: (*Parser).parseTypeElement, follow: grammar.TypeDefinition, kind: TYPEDEFLIST}
	}
	return parseList(p, d)
}

func (p *Parser) parseTypeElement() *Node {
	nameTok := p.expect(IDENT)
	nameNode := terminal(IDENTNODE, nameTok)
	if p.accept(EQUAL) == nil {
		// a bare "ident;" names an opaque type in an interface module;
		// elsewhere it is a missing '=' that recovery below will flag.
		if p.moduleKind != InterfaceModule {
			p.expectToken(EQUAL)
		}
		return node(TYPEDEF, nameNode, emptyNode())
	}
	typ := p.parseType()
	return node(TYPEDEF, nameNode, typ)
}

// parseVarGroup parses one `VAR` section's run of
// `identList : type ;` elements.
func (p *Parser) parseVarGroup() *Node {
	d := listDescriptor{element: (*Parser).parseVarElement, follow: grammar.VarDeclaration, kind: VARDECLLIST}
	if p.moduleKind == InterfaceModule {
		d = listDescriptor{element: (*Parser).parseVarElement, follow: grammar.VarDefinition, kind: VARDEFLIST}
	}
	return parseList(p, d)
}

func (p *Parser) parseVarElement() *Node {
	names := p.parseIdentList()
	p.expectToken(COLON)
	p.accept(COLON)
	typ := p.parseType()
	return node(VARDECL, names, typ)
}

// parseIdentList parses `ident (',' ident)*`. A repeated identifier is
// a semantic error (spec's Failure Semantics table): the diagnostic is
// recorded against the repeat and the duplicate is dropped from the
// resulting list rather than appended a second time. Identifiers are
// compared by their interned lexeme pointer (spec invariant I5), not
// by text.
func (p *Parser) parseIdentList() *Node {
	var fifo []*Node
	seen := make(map[*Lexeme]bool)
	for {
		tok := p.expect(IDENT)
		switch {
		case tok == nil:
			fifo = append(fifo, emptyNode())
		case tok.Lexeme != nil && seen[tok.Lexeme]:
			p.stats.recordSemanticError(newSemanticError(spanFromToken(tok),
				"duplicate identifier %q in identifier list", tok.Lexeme.Text))
		default:
			if tok.Lexeme != nil {
				seen[tok.Lexeme] = true
			}
			fifo = append(fifo, terminal(IDENTNODE, tok))
		}
		if p.accept(COMMA) == nil {
			break
		}
	}
	return listNode(IDENTLIST, fifo)
}

// parseProcedure parses a PROCEDURE definition (interface modules:
// header only) or declaration (implementation/program modules: header
// plus body), per spec §4.C.3/§4.D.
func (p *Parser) parseProcedure() *Node {
	header := p.parseProcedureHeading()
	if p.moduleKind == InterfaceModule {
		p.expectToken(SEMICOLON)
		p.accept(SEMICOLON)
		return node(PROCDEF, header)
	}
	p.expectToken(SEMICOLON)
	p.accept(SEMICOLON)
	body := p.parseBlock()
	p.expectToken(KwEND)
	p.accept(KwEND)
	endTok := p.expect(IDENT)
	p.checkProcedureEndMatch(header, endTok)
	p.expectToken(SEMICOLON)
	p.accept(SEMICOLON)
	return node(PROCDECL, header, body)
}

func (p *Parser) checkProcedureEndMatch(header *Node, endTok *Token) {
	if endTok == nil || endTok.Lexeme == nil {
		return
	}
	nameNode := header.Child(0)
	if nameNode.IsEmpty() || nameNode.Text() == "" {
		return
	}
	if nameNode.Text() != endTok.Lexeme.Text {
		p.stats.recordSemanticError(newSemanticError(spanFromToken(endTok),
			"closing identifier %q does not match procedure name %q", endTok.Lexeme.Text, nameNode.Text()))
	}
}

// parseProcedureHeading parses `PROCEDURE ident formalParams? (':' type)?`.
func (p *Parser) parseProcedureHeading() *Node {
	p.expectToken(KwPROCEDURE)
	p.advance()
	nameTok := p.expect(IDENT)
	nameNode := terminal(IDENTNODE, nameTok)

	params := emptyNode()
	if p.match(LPAREN) {
		params = p.parseFormalParams()
	}
	result := emptyNode()
	if p.accept(COLON) != nil {
		result = p.parseType()
	}
	return node(PROCHEADER, nameNode, params, result)
}

// parseFormalParams parses `'(' (formalParam (';' formalParam)*)? ')'`.
func (p *Parser) parseFormalParams() *Node {
	p.expectToken(LPAREN)
	p.advance()
	var fifo []*Node
	for !p.match(RPAREN) && !p.isAtEnd() {
		fifo = append(fifo, p.parseFormalParam())
		if !p.match(RPAREN) {
			p.expectToken(SEMICOLON)
			p.accept(SEMICOLON)
		}
	}
	p.expectToken(RPAREN)
	p.accept(RPAREN)
	return listNode(FORMALPARAMS, fifo)
}

// parseFormalParam parses `VAR? identList ':' type`.
func (p *Parser) parseFormalParam() *Node {
	isVar := emptyNode()
	if p.accept(KwVAR) != nil {
		isVar = node(IDENTNODE) // non-empty marker: VAR present
	}
	names := p.parseIdentList()
	p.expectToken(COLON)
	p.accept(COLON)
	typ := p.parseType()
	return node(FORMALPARAM, isVar, names, typ)
}
