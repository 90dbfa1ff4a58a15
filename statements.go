// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

// Statements (spec §4.C.8): a dispatch switch on lookahead selects one
// of fifteen forms. parseStatementSequence calls parseStatement for
// any lookahead that is not a sequence terminator, so a token outside
// FIRST(statement) reaches the default branch, which ends in a
// syntax-error fallback rather than a panic, in keeping with "never
// throws."

// parseStatementSequence parses `statement (';' statement)*` up to
// (not including) the caller's terminator (END, ELSE, ELSIF, UNTIL).
// The sequence may be empty — checking for the terminator before ever
// calling parseStatement is what lets "BEGIN END" parse as a block
// with a zero-length STMTSEQ rather than a spurious "expected a
// statement" syntax error.
func (p *Parser) parseStatementSequence() *Node {
	var fifo []*Node
	for !p.matchOneOf(KwEND, KwELSE, KwELSIF, KwUNTIL) && !p.isAtEnd() {
		fifo = append(fifo, p.parseStatement())
		if p.accept(SEMICOLON) == nil {
			break
		}
	}
	return listNode(STMTSEQ, fifo)
}

func (p *Parser) parseStatement() *Node {
	p.enter()
	defer p.exit()

	switch {
	case p.match(KwNEW):
		return p.parseNewStatement()
	case p.match(KwRETAIN):
		return p.parseRetainOrReleaseStatement(RETAINSTMT)
	case p.match(KwRELEASE):
		return p.parseRetainOrReleaseStatement(RELEASESTMT)
	case p.match(KwCOPY):
		return p.parseCopyStatement()
	case p.match(KwREAD):
		return p.parseReadStatement()
	case p.match(KwWRITE):
		return p.parseWriteStatement()
	case p.match(KwIF):
		return p.parseIfStatement()
	case p.match(KwCASE):
		return p.parseCaseStatement()
	case p.match(KwLOOP):
		return p.parseLoopStatement()
	case p.match(KwWHILE):
		return p.parseWhileStatement()
	case p.match(KwREPEAT):
		return p.parseRepeatStatement()
	case p.match(KwFOR):
		return p.parseForStatement()
	case p.match(KwEXIT):
		p.advance()
		return node(EXITSTMT)
	case p.match(KwNOP):
		p.advance()
		return node(NOPSTMT)
	case p.match(IDENT):
		return p.parseUpdateOrProcCall()
	default:
		p.stats.recordSyntaxError(newSyntaxError(p.span(), "expected a statement, found %s", p.currToken.Kind.String()))
		p.skipToSet(NewTokenSet(SEMICOLON, KwEND, KwELSE, KwELSIF, KwUNTIL))
		return emptyNode()
	}
}

// parseOptionalChannelPrefix parses READ/WRITE's optional `@ designator
// ':'` channel prefix.
func (p *Parser) parseOptionalChannelPrefix() *Node {
	if p.accept(AT) == nil {
		return emptyNode()
	}
	d := p.parsePlainDesignator()
	p.expectToken(COLON)
	p.accept(COLON)
	return d
}

func (p *Parser) parseNewStatement() *Node {
	p.advance() // NEW
	binding := emptyNode()
	if p.match(LBRACKET) {
		binding = p.parseBindingSpec()
	}
	target := p.parsePlainDesignator()
	return node(NEWSTMT, binding, target)
}

func (p *Parser) parseRetainOrReleaseStatement(kind NodeKind) *Node {
	p.advance()
	target := p.parsePlainDesignator()
	return node(kind, target)
}

func (p *Parser) parseCopyStatement() *Node {
	p.advance() // COPY
	src := p.parseSourceDesignator()
	p.expectToken(KwTO)
	p.accept(KwTO)
	dst := p.parseTargetDesignator()
	return node(COPYSTMT, src, dst)
}

func (p *Parser) parseReadStatement() *Node {
	p.advance() // READ
	channel := p.parseOptionalChannelPrefix()
	var fifo []*Node
	fifo = append(fifo, p.parsePlainDesignator())
	for p.accept(COMMA) != nil {
		fifo = append(fifo, p.parsePlainDesignator())
	}
	return node(READSTMT, channel, listNode(ARGLIST, fifo))
}

func (p *Parser) parseWriteStatement() *Node {
	p.advance() // WRITE
	channel := p.parseOptionalChannelPrefix()
	if p.match(HASH) {
		return node(WRITESTMT, channel, p.parseFormattedWrite())
	}
	var fifo []*Node
	fifo = append(fifo, p.parseExpression())
	for p.accept(COMMA) != nil {
		fifo = append(fifo, p.parseExpression())
	}
	return node(WRITESTMT, channel, listNode(ARGLIST, fifo))
}

// parseFormattedWrite parses `'#' '(' expr (',' expr)* ')'`: the first
// argument is the format string, the rest are its substitutions.
func (p *Parser) parseFormattedWrite() *Node {
	p.advance() // '#'
	p.expectToken(LPAREN)
	p.accept(LPAREN)
	var fifo []*Node
	fifo = append(fifo, p.parseExpression())
	for p.accept(COMMA) != nil {
		fifo = append(fifo, p.parseExpression())
	}
	p.expectToken(RPAREN)
	p.accept(RPAREN)
	return node(FORMATWRITE, listNode(ARGLIST, fifo))
}

func (p *Parser) parseIfStatement() *Node {
	p.advance() // IF
	cond := p.parseExpression()
	p.expectToken(KwTHEN)
	p.accept(KwTHEN)
	then := p.parseStatementSequence()

	var elifs []*Node
	for p.match(KwELSIF) {
		p.advance()
		elifCond := p.parseExpression()
		p.expectToken(KwTHEN)
		p.accept(KwTHEN)
		elifBody := p.parseStatementSequence()
		elifs = append(elifs, node(ELIFCLAUSE, elifCond, elifBody))
	}

	elseBody := emptyNode()
	if p.accept(KwELSE) != nil {
		elseBody = p.parseStatementSequence()
	}

	p.expectToken(KwEND)
	p.accept(KwEND)
	return node(IFSTMT, cond, then, listNode(ELIFLIST, elifs), elseBody)
}

func (p *Parser) parseCaseStatement() *Node {
	p.advance() // CASE
	selector := p.parseExpression()
	p.expectToken(KwOF)
	p.accept(KwOF)

	var branches []*Node
	p.expectToken(BAR)
	for p.accept(BAR) != nil {
		labels := p.parseExprList()
		p.expectToken(COLON)
		p.accept(COLON)
		body := p.parseStatementSequence()
		branches = append(branches, node(CASEBRANCH, labels, body))
		if !p.match(BAR) {
			break
		}
	}

	elseBody := emptyNode()
	if p.accept(KwELSE) != nil {
		elseBody = p.parseStatementSequence()
	}

	p.expectToken(KwEND)
	p.accept(KwEND)
	return node(CASESTMT, selector, listNode(CASELIST, branches), elseBody)
}

func (p *Parser) parseLoopStatement() *Node {
	p.advance() // LOOP
	body := p.parseStatementSequence()
	p.expectToken(KwEND)
	p.accept(KwEND)
	return node(LOOPSTMT, body)
}

func (p *Parser) parseWhileStatement() *Node {
	p.advance() // WHILE
	cond := p.parseExpression()
	p.expectToken(KwDO)
	p.accept(KwDO)
	body := p.parseStatementSequence()
	p.expectToken(KwEND)
	p.accept(KwEND)
	return node(WHILESTMT, cond, body)
}

func (p *Parser) parseRepeatStatement() *Node {
	p.advance() // REPEAT
	body := p.parseStatementSequence()
	p.expectToken(KwUNTIL)
	p.accept(KwUNTIL)
	cond := p.parseExpression()
	return node(REPEATSTMT, body, cond)
}

// parseForStatement parses `FOR accessor ('--')? (',' value)? IN
// iterableExpr DO ... END`. The descender suffix '--' selects
// descending iteration. The direction is recorded as an identifier
// node with text ASC or DESC, placed as the third of FORSTMT's five
// children (accessor, value, direction, iterable, body); it does not
// wrap the accessor, value and iterable.
func (p *Parser) parseForStatement() *Node {
	p.advance() // FOR
	accessorTok := p.expect(IDENT)
	accessor := terminal(IDENTNODE, accessorTok)

	direction := KwASC
	if p.match(MINUS) {
		p.advance()
		p.expectToken(MINUS)
		p.accept(MINUS)
		direction = KwDESC
	}

	value := emptyNode()
	if p.accept(COMMA) != nil {
		valueTok := p.expect(IDENT)
		value = terminal(IDENTNODE, valueTok)
	}

	p.expectToken(KwIN)
	p.accept(KwIN)
	iterable := p.parseExpression()

	p.expectToken(KwDO)
	p.accept(KwDO)
	body := p.parseStatementSequence()
	p.expectToken(KwEND)
	p.accept(KwEND)

	dirName := "ASC"
	if direction == KwDESC {
		dirName = "DESC"
	}
	dirNode := identNode(dirName)

	return node(FORSTMT, accessor, value, dirNode, iterable, body)
}

// parseUpdateOrProcCall resolves spec §9 Open Question 2: a
// target designator never parses a call-tail, so peeking one
// designator and then branching on ':=' versus a bare call
// disambiguates updateOrProcCall without backtracking. If the
// lookahead is neither, it is a syntax error resynced to
// FOLLOW(statement).
func (p *Parser) parseUpdateOrProcCall() *Node {
	d := p.parseSourceDesignator()
	if p.accept(ASSIGN) != nil {
		value := p.parseExpression()
		return node(ASSIGNSTMT, d, value)
	}
	if d.Kind() == CALL {
		return node(CALLSTMT, d)
	}
	p.stats.recordSyntaxError(newSyntaxError(d.Span(), "expected ':=' or a procedure call"))
	p.skipToSet(NewTokenSet(SEMICOLON, KwEND, KwELSE, KwELSIF, KwUNTIL))
	return node(CALLSTMT, d)
}
