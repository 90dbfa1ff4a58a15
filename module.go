// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

// Start & Modules (spec §4.C.1). Three module forms are mutually
// exclusive and resolved by the opening keyword: INTERFACE MODULE,
// IMPLEMENTATION MODULE, or plain MODULE (a program module). The
// module-kind tag is set before any child production runs, since
// type/pointerType/block all gate on it (component D).

// parseCompilationUnit is the single entry point spec §4.C calls
// "module entry" — the only production allowed to accept any
// start-symbol token as its lookahead rather than a FIRST-set member.
func parseCompilationUnit(p *Parser) *Node {
	switch {
	case p.match(KwINTERFACE):
		return p.parseInterfaceModule()
	case p.match(KwIMPLEMENTATION):
		return p.parseImplementationModule()
	case p.match(KwMODULE):
		return p.parseProgramModule()
	default:
		p.stats.recordSyntaxError(newSyntaxError(p.span(),
			"expected INTERFACE MODULE, IMPLEMENTATION MODULE, or MODULE, found %s", p.currToken.Kind.String()))
		p.skipToSet(NewTokenSet(EOF))
		return emptyNode()
	}
}

func (p *Parser) parseInterfaceModule() *Node {
	p.moduleKind = InterfaceModule
	p.expectToken(KwINTERFACE)
	p.advance()
	return p.parseModuleBody(INTERFACE)
}

func (p *Parser) parseImplementationModule() *Node {
	p.moduleKind = ImplementationModule
	p.expectToken(KwIMPLEMENTATION)
	p.advance()
	return p.parseModuleBody(IMPMOD)
}

func (p *Parser) parseProgramModule() *Node {
	p.moduleKind = ProgramModule
	return p.parseModuleBody(PGMMOD)
}

// checkSuffixConvention implements spec §6's file-convention check: by
// convention a ".def" source holds an interface module and a ".mod"
// source holds an implementation or program module. A mismatch is a
// semantic diagnostic, not a parse failure — the source's actual
// content, not its file name, is authoritative. Other suffixes (or no
// suffix at all) carry no convention and are never flagged.
func (p *Parser) checkSuffixConvention() {
	switch p.suffix {
	case "def":
		if p.moduleKind != InterfaceModule {
			p.stats.recordSemanticError(newSemanticError(p.span(),
				"file suffix %q conventionally holds an interface module, found %s", "."+p.suffix, p.moduleKind))
		}
	case "mod":
		if p.moduleKind == InterfaceModule {
			p.stats.recordSemanticError(newSemanticError(p.span(),
				"file suffix %q conventionally holds an implementation or program module, found %s", "."+p.suffix, p.moduleKind))
		}
	}
}

// parseModuleBody parses the part common to all three module forms
// once the leading qualifier keyword (if any) has been consumed and
// moduleKind has been set: `MODULE ident ';' importList?
// definitionsOrDeclarations block END ident '.'`.
//
// The identifier at MODULE and at END must match; a mismatch is a
// semantic error (spec §4.C.1), not syntactic, and parsing continues
// either way. The opening identifier must also equal the source
// basename; driver.go supplies p.basename for that check.
func (p *Parser) parseModuleBody(kind NodeKind) *Node {
	p.checkSuffixConvention()

	p.expectToken(KwMODULE)
	p.advance()

	nameTok := p.expect(IDENT)
	nameNode := terminal(IDENTNODE, nameTok)

	p.expectToken(SEMICOLON)
	p.accept(SEMICOLON)

	imports := p.parseImportListOpt()
	body := p.parseDeclarationsAndBlock()

	p.expectToken(KwEND)
	p.accept(KwEND)

	endTok := p.expect(IDENT)
	endNode := terminal(IDENTNODE, endTok)
	p.checkEndIdentifierMatch(nameTok, endTok)
	p.checkBasenameMatch(nameTok)

	p.expectToken(DOT)
	p.accept(DOT)

	return node(kind, nameNode, imports, body, endNode)
}

// expect is the Accept-or-error_expected variant used throughout the
// production functions: it consumes and returns the lookahead if it
// matches kind, otherwise records a syntax error through expectToken
// and returns nil without consuming or skipping any token.
func (p *Parser) expect(kind TokenKind) *Token {
	if tok := p.accept(kind); tok != nil {
		return tok
	}
	p.expectToken(kind)
	return nil
}

// checkEndIdentifierMatch implements spec §4.C.1's closing-identifier
// semantic check: the identifier at END must equal the identifier
// after MODULE.
func (p *Parser) checkEndIdentifierMatch(open, close *Token) {
	if open == nil || close == nil || open.Lexeme == nil || close.Lexeme == nil {
		return
	}
	if open.Lexeme != close.Lexeme {
		p.stats.recordSemanticError(newSemanticError(spanFromToken(close),
			"closing identifier %q does not match opening identifier %q", close.Lexeme.Text, open.Lexeme.Text))
	}
}

// checkBasenameMatch implements spec §4.C.1's identifier-filename
// check: the module's name must equal the source file's basename
// (without extension), set by driver.go on Parser.basename.
func (p *Parser) checkBasenameMatch(nameTok *Token) {
	if nameTok == nil || nameTok.Lexeme == nil || p.basename == "" {
		return
	}
	if nameTok.Lexeme.Text != p.basename {
		p.stats.recordSemanticError(newSemanticError(spanFromToken(nameTok),
			"module name %q does not match file name %q", nameTok.Lexeme.Text, p.basename))
	}
}

// parseDeclarationsAndBlock parses the const/type/var
// definition-or-declaration groups (in any order, any number of
// times, per the dialect grammar) followed by procedure
// definitions/declarations, then — for implementation and program
// modules — the module's statement part, dispatching block vs
// privateBlock per component D. The result is a single BLOCK (or
// PRIVATEBLOCK) node whose children are the declarations in source
// order, followed by the statement sequence.
//
// Interface modules never reach parseBlockDispatch at all: real
// Modula-2 interface/definition modules have no executable body (spec
// §4.C.1, §8), so once their declaration groups run out the result is
// either the empty node (no declarations) or a DECLLIST wrapping just
// the declarations, with no statement-sequence child.
func (p *Parser) parseDeclarationsAndBlock() *Node {
	var decls []*Node
	for {
		switch {
		case p.match(KwCONST):
			p.advance()
			decls = append(decls, p.parseConstGroup())
		case p.match(KwTYPE):
			p.advance()
			decls = append(decls, p.parseTypeGroup())
		case p.match(KwVAR):
			p.advance()
			decls = append(decls, p.parseVarGroup())
		case p.match(KwPROCEDURE):
			decls = append(decls, p.parseProcedure())
		case p.moduleKind == InterfaceModule:
			if len(decls) == 0 {
				return emptyNode()
			}
			return listNode(DECLLIST, decls)
		default:
			stmts := p.parseBlockDispatch()
			kind := BLOCK
			if p.moduleKind == ImplementationModule {
				kind = PRIVATEBLOCK
				if len(decls) == 0 && stmts.IsEmpty() {
					p.stats.recordWarning(newWarning(p.span(),
						"empty implementation module: no declarations and no initialisation body"))
				}
			}
			decls = append(decls, stmts)
			return listNode(kind, decls)
		}
	}
}

// parseBlock parses the mandatory statement part: `BEGIN
// statementSequence`. Program modules always require it; interface
// modules never reach it at all (component D, spec §4.C.1).
func (p *Parser) parseBlock() *Node {
	p.expectToken(KwBEGIN)
	p.accept(KwBEGIN)
	return p.parseStatementSequence()
}

// parsePrivateBlock parses implementation modules' optional statement
// part: BEGIN may be entirely absent, in which case the module has no
// initialisation body.
func (p *Parser) parsePrivateBlock() *Node {
	if p.accept(KwBEGIN) == nil {
		return emptyNode()
	}
	return p.parseStatementSequence()
}
