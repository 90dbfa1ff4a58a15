// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import "github.com/mdhender/m2parse/internal/grammar"

// Component E (spec §4.E): the generic list parser. Six grammatically
// parallel productions — const/type/var crossed with
// definition/declaration — collapse into this single routine driven
// by a descriptor, instead of ~300 lines of near-duplicate code (spec
// §4, key production group 3).

// listDescriptor names everything parseList needs to parse one
// instance of the `E ';' (E ';')*` pattern: how to parse one element,
// which production's FOLLOW set governs resync, and what list kind to
// tag the result with.
type listDescriptor struct {
	element func(p *Parser) *Node
	follow  grammar.ProductionID
	kind    NodeKind
}

// parseList parses one or more elements, each terminated by ';', with
// resync to {';'} ∪ FOLLOW(d.follow) on a missing semicolon. It is
// called only once the caller has confirmed the lookahead is in
// FIRST(element) (IDENT, for every instance of this pattern in the
// grammar).
func parseList(p *Parser, d listDescriptor) *Node {
	var fifo []*Node
	follow := followSet(d.follow)
	resync := follow.With(SEMICOLON)

	for p.match(IDENT) {
		fifo = append(fifo, d.element(p))
		if p.accept(SEMICOLON) == nil {
			p.recoverMissingTerminal(SEMICOLON, d.follow)
			if !p.match(SEMICOLON) {
				break
			}
			p.advance()
		}
		if !p.match(IDENT) && !p.matchSet(follow) {
			p.skipToSet(resync)
		}
	}
	return listNode(d.kind, fifo)
}
