// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

// Statistics aggregates the counters a parse run produces (spec §5).
// Plain ints, not sync/atomic: the parser is strictly single-threaded
// per run (spec §5, "the core is single-threaded; no field here is
// ever written from more than one goroutine").
type Statistics struct {
	WarningCount      int
	SyntaxErrorCount  int
	SemanticErrorCount int
	LineCount         int

	Diagnostics []Diagnostic
}

// recordWarning appends a warning diagnostic and bumps WarningCount.
func (s *Statistics) recordWarning(d Diagnostic) {
	s.WarningCount++
	s.Diagnostics = append(s.Diagnostics, d)
}

// recordSyntaxError appends a syntax-error diagnostic and bumps
// SyntaxErrorCount.
func (s *Statistics) recordSyntaxError(d Diagnostic) {
	s.SyntaxErrorCount++
	s.Diagnostics = append(s.Diagnostics, d)
}

// recordSemanticError appends a semantic-error diagnostic and bumps
// SemanticErrorCount.
func (s *Statistics) recordSemanticError(d Diagnostic) {
	s.SemanticErrorCount++
	s.Diagnostics = append(s.Diagnostics, d)
}

// HasErrors reports whether the run produced any syntax or semantic
// error.
func (s *Statistics) HasErrors() bool {
	return s.SyntaxErrorCount > 0 || s.SemanticErrorCount > 0
}

// Outcome summarizes the counters into the four-way label CLI, cache,
// and dashboard callers display ("semantic errors" / "syntax errors" /
// "warnings" / "ok"). This is a reporting convenience only — it is
// deliberately not Status: spec §6/§7 keep a driver-level Status
// (path/allocation outcomes) and parse-level findings (these counters)
// strictly separate, and Outcome reports the latter.
func (s *Statistics) Outcome() string {
	switch {
	case s.SemanticErrorCount > 0:
		return "semantic errors"
	case s.SyntaxErrorCount > 0:
		return "syntax errors"
	case s.WarningCount > 0:
		return "warnings"
	default:
		return "ok"
	}
}
