// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package grammar holds per-production FIRST/FOLLOW metadata for the
// parser's panic-mode recovery. Every resync call in the parser names a
// ProductionID rather than hard-coding a token list, so the sets live
// in exactly one place and can be audited against the grammar as a
// unit (spec §4.B, §9.2: "the port must derive FIRST/FOLLOW tables
// mechanically from the grammar; embedding them ad hoc invites
// drift").
//
// The sets are hand-derived from the dialect grammar in spec.md §4.C.
// This package holds only the empty tables; the root package's
// grammar_tables.go fills them through Register from an init(). They
// are expressed directly as token-kind lists rather than generated,
// since the grammar is fixed and small enough that generation would
// add a build step without reducing drift risk.
package grammar

// ProductionID names a grammar production whose FOLLOW set governs a
// resync point. Values correspond 1:1 to the productions named in
// spec §4.C.1-8.
type ProductionID int

const (
	InvalidProduction ProductionID = iota
	CompilationUnit
	ImportList
	ConstDefinition
	ConstDeclaration
	TypeDefinition
	TypeDeclaration
	VarDefinition
	VarDeclaration
	Type
	FieldList
	FormalParams
	ProcedureHeading
	BindingSpecifier
	Expression
	SimpleExpression
	Term
	Factor
	Designator
	Block
	Statement
	StatementSequence
	IfStatement
	CaseStatement
	ForStatement
	WhileStatement
	RepeatStatement
	LoopStatement
	ReadStatement
	WriteStatement

	numProductions
)

// TokenKind is the plain-int form in which grammar stores the root
// package's token kinds, so grammar has no import cycle back to it.
// The root package registers its sets as []TokenKind lists and turns
// a looked-up list back into its own TokenSet in match.go.
type TokenKind = int

var firstSets = map[ProductionID][]TokenKind{}
var followSets = map[ProductionID][]TokenKind{}

// Register installs the FIRST and/or FOLLOW set for a production. The
// root package calls this from an init() so the token-kind constants
// (owned by the root package, not grammar) populate these tables
// without grammar importing the root package.
func Register(id ProductionID, first, follow []TokenKind) {
	if first != nil {
		firstSets[id] = first
	}
	if follow != nil {
		followSets[id] = follow
	}
}

// First returns the registered FIRST set for id, or nil if none was
// registered.
func First(id ProductionID) []TokenKind {
	return firstSets[id]
}

// Follow returns the registered FOLLOW set for id, or nil if none was
// registered.
func Follow(id ProductionID) []TokenKind {
	return followSets[id]
}

func (id ProductionID) String() string {
	if id >= 0 && int(id) < len(productionNames) && productionNames[id] != "" {
		return productionNames[id]
	}
	return "InvalidProduction"
}

var productionNames = [...]string{
	InvalidProduction: "InvalidProduction",
	CompilationUnit:   "CompilationUnit",
	ImportList:        "ImportList",
	ConstDefinition:   "ConstDefinition",
	ConstDeclaration:  "ConstDeclaration",
	TypeDefinition:    "TypeDefinition",
	TypeDeclaration:   "TypeDeclaration",
	VarDefinition:     "VarDefinition",
	VarDeclaration:    "VarDeclaration",
	Type:              "Type",
	FieldList:         "FieldList",
	FormalParams:      "FormalParams",
	ProcedureHeading:  "ProcedureHeading",
	BindingSpecifier:  "BindingSpecifier",
	Expression:        "Expression",
	SimpleExpression:  "SimpleExpression",
	Term:              "Term",
	Factor:            "Factor",
	Designator:        "Designator",
	Block:             "Block",
	Statement:         "Statement",
	StatementSequence: "StatementSequence",
	IfStatement:       "IfStatement",
	CaseStatement:     "CaseStatement",
	ForStatement:      "ForStatement",
	WhileStatement:    "WhileStatement",
	RepeatStatement:   "RepeatStatement",
	LoopStatement:     "LoopStatement",
	ReadStatement:     "ReadStatement",
	WriteStatement:    "WriteStatement",
}
