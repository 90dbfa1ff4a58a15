// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

// Designators (spec §4.C.7). Three flavours share a common skeleton
// `qualident ( tail )?`:
//
//	source designator (r-value): tail ∈ { '(' arglist ')', derefTail, bracketTail }
//	target designator (l-value): tail ∈ { derefTargetTail, bracketTargetTail } -- no call
//	plain designator (NEW/READ/RETAIN/RELEASE): tail ∈ { derefTail, subscriptTail }
//
// Deref ('^') may repeat. Subscript brackets contain one expression
// (or, in target form only, "expr .. expr" for slice assignment).

// parseSourceDesignator parses an r-value designator: a qualident
// followed by any mix of deref, subscript/slice, and call tails.
func (p *Parser) parseSourceDesignator() *Node {
	base := p.parseQualident()
	d := node(DESIGNATOR, base)
	for {
		switch {
		case p.match(CARET):
			p.advance()
			d = node(DEREF, d)
		case p.match(LBRACKET):
			d = p.parseSubscriptOrSlice(d, false)
		case p.match(LPAREN):
			d = p.parseCallTail(d)
		default:
			return d
		}
	}
}

// parseTargetDesignator parses an l-value designator: a qualident
// followed by deref and subscript/slice tails only — never a call.
func (p *Parser) parseTargetDesignator() *Node {
	base := p.parseQualident()
	d := node(DESIGNATOR, base)
	for {
		switch {
		case p.match(CARET):
			p.advance()
			d = node(DEREF, d)
		case p.match(LBRACKET):
			d = p.parseSubscriptOrSlice(d, true)
		default:
			return d
		}
	}
}

// parsePlainDesignator parses the form used as the operand of NEW,
// READ, RETAIN, RELEASE: a qualident followed by deref and subscript
// tails (no slice, no call).
func (p *Parser) parsePlainDesignator() *Node {
	base := p.parseQualident()
	d := node(DESIGNATOR, base)
	for {
		switch {
		case p.match(CARET):
			p.advance()
			d = node(DEREF, d)
		case p.match(LBRACKET):
			d = p.parseSubscriptOrSlice(d, false)
		default:
			return d
		}
	}
}

// parseSubscriptOrSlice parses `'[' expr (('..' expr) | ) ']'`. The
// two-expression form (a slice) is only legal when allowSlice is true,
// i.e. in target-designator position (spec §4.C.7).
func (p *Parser) parseSubscriptOrSlice(d *Node, allowSlice bool) *Node {
	p.advance() // '['
	first := p.parseExpression()
	if p.match(DOTDOT) {
		p.advance()
		second := p.parseExpression()
		p.expectToken(RBRACKET)
		p.accept(RBRACKET)
		if !allowSlice {
			p.stats.recordSyntaxError(newSyntaxError(d.Span(), "slice subscript is only valid in an assignment target"))
		}
		return node(SLICE, d, first, second)
	}
	p.expectToken(RBRACKET)
	p.accept(RBRACKET)
	return node(SUBSCRIPT, d, first)
}

// parseCallTail parses `'(' arglist? ')'`.
func (p *Parser) parseCallTail(d *Node) *Node {
	p.advance() // '('
	args := emptyNode()
	if !p.match(RPAREN) {
		args = p.parseExprListAsArgList()
	}
	p.expectToken(RPAREN)
	p.accept(RPAREN)
	return node(CALL, d, args)
}

// parseExprListAsArgList parses a comma-separated argument list,
// tagged ARGLIST rather than EXPRLIST so callers can tell an array
// bound list from a call's arguments.
func (p *Parser) parseExprListAsArgList() *Node {
	var fifo []*Node
	fifo = append(fifo, p.parseExpression())
	for p.accept(COMMA) != nil {
		fifo = append(fifo, p.parseExpression())
	}
	return listNode(ARGLIST, fifo)
}
