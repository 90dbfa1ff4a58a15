// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

// TokenKind enumerates the lexical categories the lexer produces.
//
// Keyword kinds are resolved by the lexer from plain identifier text;
// everything else that looks like a reserved word but isn't one of the
// keywords below (COLLATION, CAST, CAPACITY, TLIMIT, ADDRESS, OCTETSEQ)
// stays an IDENT and is recognised positionally by the parser via
// interned-pointer comparison (spec §9, "Interned-identifier
// comparisons").
type TokenKind int

const (
	ILLEGAL TokenKind = iota
	EOF

	IDENT
	INTLITERAL
	REALLITERAL
	STRINGLITERAL
	CHARLITERAL

	SEMICOLON // ;
	COMMA     // ,
	COLON     // :
	DOT       // .
	DOTDOT    // ..
	ASSIGN    // :=
	EQUAL     // =
	HASH      // #  (not-equal operator, WRITE suffix, binding '#')
	LT        // <
	LE        // <=
	GT        // >
	GE        // >=
	EQEQ      // ==
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	CARET     // ^
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	AMP       // &
	BAR       // |
	DCOLON    // ::
	AT        // @

	KwMODULE
	KwINTERFACE
	KwIMPLEMENTATION
	KwIMPORT
	KwEND
	KwCONST
	KwTYPE
	KwVAR
	KwPROCEDURE
	KwBEGIN
	KwIF
	KwTHEN
	KwELSIF
	KwELSE
	KwCASE
	KwOF
	KwLOOP
	KwWHILE
	KwDO
	KwREPEAT
	KwUNTIL
	KwFOR
	KwIN
	KwTO
	KwBY
	KwEXIT
	KwRETURN
	KwNEW
	KwRETAIN
	KwRELEASE
	KwREAD
	KwWRITE
	KwCOPY
	KwPOINTER
	KwARRAY
	KwRECORD
	KwSET
	KwOPAQUE
	KwALIAS
	KwNOT
	KwAND
	KwOR
	KwDIV
	KwMOD
	KwASC
	KwDESC
	KwNOP

	numTokenKinds
)

var tokenKindNames = [...]string{
	ILLEGAL:          "ILLEGAL",
	EOF:              "EOF",
	IDENT:            "IDENT",
	INTLITERAL:       "INTLITERAL",
	REALLITERAL:      "REALLITERAL",
	STRINGLITERAL:    "STRINGLITERAL",
	CHARLITERAL:      "CHARLITERAL",
	SEMICOLON:        ";",
	COMMA:            ",",
	COLON:            ":",
	DOT:              ".",
	DOTDOT:           "..",
	ASSIGN:           ":=",
	EQUAL:            "=",
	HASH:             "#",
	LT:               "<",
	LE:               "<=",
	GT:               ">",
	GE:               ">=",
	EQEQ:             "==",
	LPAREN:           "(",
	RPAREN:           ")",
	LBRACKET:         "[",
	RBRACKET:         "]",
	CARET:            "^",
	PLUS:             "+",
	MINUS:            "-",
	STAR:             "*",
	SLASH:            "/",
	AMP:              "&",
	BAR:              "|",
	DCOLON:           "::",
	AT:               "@",
	KwMODULE:         "MODULE",
	KwINTERFACE:      "INTERFACE",
	KwIMPLEMENTATION: "IMPLEMENTATION",
	KwIMPORT:         "IMPORT",
	KwEND:            "END",
	KwCONST:          "CONST",
	KwTYPE:           "TYPE",
	KwVAR:            "VAR",
	KwPROCEDURE:      "PROCEDURE",
	KwBEGIN:          "BEGIN",
	KwIF:             "IF",
	KwTHEN:           "THEN",
	KwELSIF:          "ELSIF",
	KwELSE:           "ELSE",
	KwCASE:           "CASE",
	KwOF:             "OF",
	KwLOOP:           "LOOP",
	KwWHILE:          "WHILE",
	KwDO:             "DO",
	KwREPEAT:         "REPEAT",
	KwUNTIL:          "UNTIL",
	KwFOR:            "FOR",
	KwIN:             "IN",
	KwTO:             "TO",
	KwBY:             "BY",
	KwEXIT:           "EXIT",
	KwRETURN:         "RETURN",
	KwNEW:            "NEW",
	KwRETAIN:         "RETAIN",
	KwRELEASE:        "RELEASE",
	KwREAD:           "READ",
	KwWRITE:          "WRITE",
	KwCOPY:           "COPY",
	KwPOINTER:        "POINTER",
	KwARRAY:          "ARRAY",
	KwRECORD:         "RECORD",
	KwSET:            "SET",
	KwOPAQUE:         "OPAQUE",
	KwALIAS:          "ALIAS",
	KwNOT:            "NOT",
	KwAND:            "AND",
	KwOR:             "OR",
	KwDIV:            "DIV",
	KwMOD:            "MOD",
	KwASC:            "ASC",
	KwDESC:           "DESC",
	KwNOP:            "NOP",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) && tokenKindNames[k] != "" {
		return tokenKindNames[k]
	}
	return "UNKNOWN"
}

// keywords maps the canonical uppercase spelling of a reserved word to
// its TokenKind. The lexer looks up every scanned identifier here;
// anything absent stays IDENT.
var keywords = map[string]TokenKind{
	"MODULE":         KwMODULE,
	"INTERFACE":      KwINTERFACE,
	"IMPLEMENTATION": KwIMPLEMENTATION,
	"IMPORT":         KwIMPORT,
	"END":            KwEND,
	"CONST":          KwCONST,
	"TYPE":           KwTYPE,
	"VAR":            KwVAR,
	"PROCEDURE":      KwPROCEDURE,
	"BEGIN":          KwBEGIN,
	"IF":             KwIF,
	"THEN":           KwTHEN,
	"ELSIF":          KwELSIF,
	"ELSE":           KwELSE,
	"CASE":           KwCASE,
	"OF":             KwOF,
	"LOOP":           KwLOOP,
	"WHILE":          KwWHILE,
	"DO":             KwDO,
	"REPEAT":         KwREPEAT,
	"UNTIL":          KwUNTIL,
	"FOR":            KwFOR,
	"IN":             KwIN,
	"TO":             KwTO,
	"BY":             KwBY,
	"EXIT":           KwEXIT,
	"RETURN":         KwRETURN,
	"NEW":            KwNEW,
	"RETAIN":         KwRETAIN,
	"RELEASE":        KwRELEASE,
	"READ":           KwREAD,
	"WRITE":          KwWRITE,
	"COPY":           KwCOPY,
	"POINTER":        KwPOINTER,
	"ARRAY":          KwARRAY,
	"RECORD":         KwRECORD,
	"SET":            KwSET,
	"OPAQUE":         KwOPAQUE,
	"ALIAS":          KwALIAS,
	"NOT":            KwNOT,
	"AND":            KwAND,
	"OR":             KwOR,
	"DIV":            KwDIV,
	"MOD":            KwMOD,
	"ASC":            KwASC,
	"DESC":           KwDESC,
	"NOP":            KwNOP,
}

// bindableIdents lists the pseudo-reserved identifiers recognised only
// inside a binding specifier bracket (spec §4.C.5, §9). They are never
// keywords; the parser recognises them by interned pointer equality
// once a canonical lexeme has been looked up for each name below (see
// internal/intern and bindings.go).
var bindableIdents = []string{
	"COLLATION",
	"TLIMIT",
	"CAST",
	"CAPACITY",
	"ADDRESS",
	"OCTETSEQ",
}
