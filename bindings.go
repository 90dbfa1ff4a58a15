// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

// Binding specifier (spec §4.C.5): `bindingSpecifier := NEW ('+'|'#')?
// | READ '*'? | WRITE '#'? | RETAIN | RELEASE | bindableIdent`. The
// canonical binding target is mapped to one of the enumerated
// "bindable" identifier names; an unrecognised identifier in binding
// position is a semantic error with an empty lexeme recorded.

// parseBindingSpec parses `'[' bindingSpecifier ']'` and returns a
// BINDINGSPEC node carrying the canonical binding name as its lexeme
// text (via a synthesized terminal), since the binding's identity —
// not its source span — is what downstream consumers need.
func (p *Parser) parseBindingSpec() *Node {
	p.expectToken(LBRACKET)
	p.advance()
	name := p.parseBindingSpecifier()
	p.expectToken(RBRACKET)
	p.accept(RBRACKET)
	return node(BINDINGSPEC, name)
}

func (p *Parser) parseBindingSpecifier() *Node {
	switch {
	case p.match(KwNEW):
		tok := p.advance()
		switch {
		case p.accept(PLUS) != nil:
			return synthIdent("NEW+", tok)
		case p.accept(HASH) != nil:
			return synthIdent("NEW#", tok)
		default:
			return synthIdent("NEW", tok)
		}
	case p.match(KwREAD):
		tok := p.advance()
		if p.accept(STAR) != nil {
			return synthIdent("READ*", tok)
		}
		return synthIdent("READ", tok)
	case p.match(KwWRITE):
		tok := p.advance()
		if p.accept(HASH) != nil {
			return synthIdent("WRITE#", tok)
		}
		return synthIdent("WRITE", tok)
	case p.match(KwRETAIN):
		tok := p.advance()
		return synthIdent("RETAIN", tok)
	case p.match(KwRELEASE):
		tok := p.advance()
		return synthIdent("RELEASE", tok)
	case p.match(IDENT):
		tok := p.advance()
		if name, ok := bindableName(tok.Lexeme); ok {
			return synthIdent(name, tok)
		}
		p.stats.recordSemanticError(newSemanticError(spanFromToken(tok),
			"%q is not a recognised binding identifier", tok.Lexeme.Text))
		return terminal(IDENTNODE, nil)
	default:
		p.stats.recordSyntaxError(newSyntaxError(p.span(), "expected a binding specifier"))
		return emptyNode()
	}
}

// synthIdent builds a terminal node carrying canonical as its lexeme
// text, anchored at tok's span, for binding forms (NEW+, READ*, ...)
// that have no single source token to carry the full canonical name.
func synthIdent(canonical string, tok *Token) *Node {
	n := terminal(IDENTNODE, tok)
	n.lexeme = internText(canonical)
	return n
}
