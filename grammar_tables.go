// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import "github.com/mdhender/m2parse/internal/grammar"

// This file populates internal/grammar's FIRST/FOLLOW tables with this
// dialect's actual token kinds (spec §4.B, §9.2). grammar itself knows
// nothing about TokenKind — it is kept free of a root-package import to
// avoid a cycle — so the root package registers the tables once, from
// an init(), using its own TokenKind constants cast to int.

func ints(kinds ...TokenKind) []int {
	out := make([]int, len(kinds))
	for i, k := range kinds {
		out[i] = int(k)
	}
	return out
}

func init() {
	grammar.Register(grammar.CompilationUnit,
		ints(KwINTERFACE, KwIMPLEMENTATION, KwMODULE),
		ints(EOF))

	grammar.Register(grammar.ImportList,
		ints(KwIMPORT),
		ints(KwCONST, KwTYPE, KwVAR, KwPROCEDURE, KwBEGIN, KwEND))

	grammar.Register(grammar.ConstDefinition,
		ints(IDENT),
		ints(KwTYPE, KwVAR, KwPROCEDURE, KwBEGIN, KwEND))
	grammar.Register(grammar.ConstDeclaration,
		ints(IDENT),
		ints(KwTYPE, KwVAR, KwPROCEDURE, KwBEGIN, KwEND))

	grammar.Register(grammar.TypeDefinition,
		ints(IDENT),
		ints(KwCONST, KwVAR, KwPROCEDURE, KwBEGIN, KwEND))
	grammar.Register(grammar.TypeDeclaration,
		ints(IDENT),
		ints(KwCONST, KwVAR, KwPROCEDURE, KwBEGIN, KwEND))

	grammar.Register(grammar.VarDefinition,
		ints(IDENT),
		ints(KwCONST, KwTYPE, KwPROCEDURE, KwBEGIN, KwEND))
	grammar.Register(grammar.VarDeclaration,
		ints(IDENT),
		ints(KwCONST, KwTYPE, KwPROCEDURE, KwBEGIN, KwEND))

	grammar.Register(grammar.Type,
		ints(KwALIAS, KwARRAY, KwRECORD, KwSET, KwPROCEDURE, KwOPAQUE, KwPOINTER, LPAREN, LBRACKET, IDENT),
		ints(SEMICOLON))

	grammar.Register(grammar.FieldList,
		ints(IDENT),
		ints(KwEND, SEMICOLON))

	grammar.Register(grammar.FormalParams,
		ints(LPAREN),
		ints(COLON, SEMICOLON, KwEND))

	grammar.Register(grammar.ProcedureHeading,
		ints(KwPROCEDURE),
		ints(SEMICOLON))

	grammar.Register(grammar.BindingSpecifier,
		ints(LBRACKET),
		ints(RBRACKET))

	grammar.Register(grammar.Expression,
		ints(IDENT, INTLITERAL, REALLITERAL, STRINGLITERAL, CHARLITERAL, LPAREN, MINUS, KwNOT),
		ints(RPAREN, RBRACKET, COMMA, SEMICOLON, KwTHEN, KwDO, KwOF, DOTDOT, KwEND, KwUNTIL, BAR, KwELSE, KwELSIF))

	grammar.Register(grammar.SimpleExpression,
		ints(IDENT, INTLITERAL, REALLITERAL, STRINGLITERAL, CHARLITERAL, LPAREN, MINUS, KwNOT),
		ints(EQUAL, HASH, LT, LE, GT, GE, EQEQ, KwIN,
			RPAREN, RBRACKET, COMMA, SEMICOLON, KwTHEN, KwDO, KwOF, DOTDOT, KwEND, KwUNTIL, BAR, KwELSE, KwELSIF))

	grammar.Register(grammar.Term,
		ints(IDENT, INTLITERAL, REALLITERAL, STRINGLITERAL, CHARLITERAL, LPAREN, MINUS, KwNOT),
		ints(PLUS, MINUS, KwOR, AMP,
			EQUAL, HASH, LT, LE, GT, GE, EQEQ, KwIN,
			RPAREN, RBRACKET, COMMA, SEMICOLON, KwTHEN, KwDO, KwOF, DOTDOT, KwEND, KwUNTIL, BAR, KwELSE, KwELSIF))

	grammar.Register(grammar.Factor,
		ints(IDENT, INTLITERAL, REALLITERAL, STRINGLITERAL, CHARLITERAL, LPAREN, MINUS, KwNOT),
		ints(STAR, SLASH, KwDIV, KwMOD, KwAND, DCOLON,
			PLUS, MINUS, KwOR, AMP,
			EQUAL, HASH, LT, LE, GT, GE, EQEQ, KwIN,
			RPAREN, RBRACKET, COMMA, SEMICOLON, KwTHEN, KwDO, KwOF, DOTDOT, KwEND, KwUNTIL, BAR, KwELSE, KwELSIF))

	grammar.Register(grammar.Designator,
		ints(IDENT),
		ints(ASSIGN, SEMICOLON, COMMA, RPAREN, RBRACKET, KwDO, KwTHEN, KwOF, KwEND, COLON))

	grammar.Register(grammar.Block,
		ints(KwBEGIN, KwEND),
		ints(DOT, SEMICOLON, IDENT))

	grammar.Register(grammar.Statement,
		ints(KwNEW, KwRETAIN, KwRELEASE, KwCOPY, KwREAD, KwWRITE,
			KwIF, KwCASE, KwLOOP, KwWHILE, KwREPEAT, KwFOR, KwEXIT, KwNOP, IDENT),
		ints(SEMICOLON, KwEND, KwELSE, KwELSIF, KwUNTIL))

	grammar.Register(grammar.StatementSequence,
		ints(KwNEW, KwRETAIN, KwRELEASE, KwCOPY, KwREAD, KwWRITE,
			KwIF, KwCASE, KwLOOP, KwWHILE, KwREPEAT, KwFOR, KwEXIT, KwNOP, IDENT),
		ints(KwEND, KwELSE, KwELSIF, KwUNTIL))

	grammar.Register(grammar.IfStatement,
		ints(KwIF),
		ints(SEMICOLON, KwEND, KwELSE, KwELSIF, KwUNTIL))

	grammar.Register(grammar.CaseStatement,
		ints(KwCASE),
		ints(SEMICOLON, KwEND, KwELSE, KwELSIF, KwUNTIL))

	grammar.Register(grammar.ForStatement,
		ints(KwFOR),
		ints(SEMICOLON, KwEND, KwELSE, KwELSIF, KwUNTIL))

	grammar.Register(grammar.WhileStatement,
		ints(KwWHILE),
		ints(SEMICOLON, KwEND, KwELSE, KwELSIF, KwUNTIL))

	grammar.Register(grammar.RepeatStatement,
		ints(KwREPEAT),
		ints(SEMICOLON, KwEND, KwELSE, KwELSIF, KwUNTIL))

	grammar.Register(grammar.LoopStatement,
		ints(KwLOOP),
		ints(SEMICOLON, KwEND, KwELSE, KwELSIF, KwUNTIL))

	grammar.Register(grammar.ReadStatement,
		ints(KwREAD),
		ints(SEMICOLON, KwEND, KwELSE, KwELSIF, KwUNTIL))

	grammar.Register(grammar.WriteStatement,
		ints(KwWRITE),
		ints(SEMICOLON, KwEND, KwELSE, KwELSIF, KwUNTIL))
}
