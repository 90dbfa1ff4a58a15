// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

// Imports (spec §4.C.2): `IMPORT id ('+')? (',' id ('+')? )* ';'`. The
// '+' suffix marks re-export; plain imports and re-exports are
// collected into two distinct list-nodes rather than one list tagged
// per-element, so downstream consumers never have to filter.

// parseImportListOpt parses zero or more `IMPORT ...;` clauses (the
// dialect allows several IMPORT statements in a row) and returns a
// single IMPORTLIST node of two children: the plain-import list and
// the re-export list, each built from its own FIFO.
func (p *Parser) parseImportListOpt() *Node {
	var plain, reexport []*Node
	for p.match(KwIMPORT) {
		p.advance()
		p.parseOneImportClause(&plain, &reexport)
		p.expectToken(SEMICOLON)
		p.accept(SEMICOLON)
	}
	return node(IMPORTLIST, listNode(IDENTLIST, plain), listNode(REEXPORTLIST, reexport))
}

// parseOneImportClause parses `id ('+')? (',' id ('+')? )*` and
// appends each identifier to plain or reexport depending on whether it
// was suffixed with '+'.
func (p *Parser) parseOneImportClause(plain, reexport *[]*Node) {
	for {
		tok := p.expect(IDENT)
		idNode := terminal(IDENTNODE, tok)
		if p.accept(PLUS) != nil {
			*reexport = append(*reexport, idNode)
		} else {
			*plain = append(*plain, idNode)
		}
		if p.accept(COMMA) == nil {
			return
		}
	}
}
