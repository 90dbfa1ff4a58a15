// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

// Component D (spec §4.D): context-driven dispatch. The type,
// pointerType and block productions gate on Parser.moduleKind through
// the predicates and dispatchers in this file. The definition versus
// declaration choice for declaration groups, type elements and
// procedures checks moduleKind directly in declarations.go and
// module.go instead. Grounded on the pack's CWBudde-style
// single-seam recovery pattern (error_recovery.go's ErrorRecovery),
// generalized here to dispatch rather than recovery.

// allowsOpaqueType reports whether OPAQUE is a legal type form for the
// current module kind. Per spec §4.C.4, OPAQUE is allowed only in
// interface modules. parseType dispatches OPAQUE in every module kind,
// and parseOpaqueType calls this check and records a semantic error
// when it fails.
func (p *Parser) allowsOpaqueType() bool {
	return p.moduleKind == InterfaceModule
}

// parsePointerTypeDispatch implements the determinate/indeterminate
// split spec §4.C.4 describes for POINTER TO: interface and program
// modules see the "determinate" pointer form; implementation modules
// see "POINTER TO (id | RECORD ...)", i.e. the private/indeterminate
// form.
func (p *Parser) parsePointerTypeDispatch() *Node {
	if p.moduleKind == ImplementationModule {
		return p.parsePrivatePointerType()
	}
	return p.parsePointerType()
}

// parseBlockDispatch implements the block/privateBlock split between
// implementation and program modules: program modules require the
// block's BEGIN...statementSequence to be present; implementation
// modules permit an absent initialisation body. It is never called
// for interface modules — parseDeclarationsAndBlock returns before
// reaching this dispatch for that module kind, since interface
// modules have no executable body at all (spec §4.C.1).
func (p *Parser) parseBlockDispatch() *Node {
	if p.moduleKind == ImplementationModule {
		return p.parsePrivateBlock()
	}
	return p.parseBlock()
}
