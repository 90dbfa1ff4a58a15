// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Diagnostic represents a single syntax or semantic finding, with a
// span in the original source (spec §7). Diagnostics are never Go
// errors: the parser never aborts on one, it records it and keeps
// going (spec §4, "Errors: emits diagnostics and continues; never
// throws").
type Diagnostic struct {
	Severity slog.Level // slog.LevelError for syntax/semantic errors, slog.LevelWarn for warnings
	Message  string
	Span     Span
	Notes    []string
}

// newSyntaxError builds a syntax-error Diagnostic at span, formatting
// message from format/args.
func newSyntaxError(span Span, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: slog.LevelError, Message: fmt.Sprintf(format, args...), Span: span}
}

// newSemanticError builds a semantic-error Diagnostic at span. Spec §4
// distinguishes semantic mismatches (end-identifier/basename checks)
// from syntactic ones; both share the Diagnostic shape but are counted
// separately in Statistics.
func newSemanticError(span Span, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: slog.LevelError, Message: fmt.Sprintf(format, args...), Span: span}
}

// newWarning builds a warning Diagnostic at span.
func newWarning(span Span, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: slog.LevelWarn, Message: fmt.Sprintf(format, args...), Span: span}
}

// PrintDiagnostic writes a one-finding, file:line:column-prefixed
// report to w, followed by the offending source line and a caret
// underline. It assumes a single-line span; multi-line spans print the
// span's starting line only.
func PrintDiagnostic(w io.Writer, diag Diagnostic, filename string, src []byte) {
	span := diag.Span
	severity := "error"
	if diag.Severity == slog.LevelWarn {
		severity = "warning"
	}
	_, _ = fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
		filename, span.Line, span.Column, severity, diag.Message)

	line := findLine(src, span.Start, span.End)
	_, _ = fmt.Fprintf(w, "    %s\n", line)

	caretCount := runeColumnOffset(span.Column-1, line)
	_, _ = fmt.Fprintf(w, "    %s^\n", strings.Repeat(" ", caretCount))

	for _, note := range diag.Notes {
		_, _ = fmt.Fprintf(w, "    note: %s\n", note)
	}
}

// findLine returns the line containing the start byte, searching
// backward for the preceding newline and forward for the next one (or
// end). The returned slice excludes the newline itself.
func findLine(src []byte, start, end int) []byte {
	if start >= len(src) {
		return []byte{}
	}
	if end > len(src) {
		end = len(src)
	}

	lineStart := 0
	for i := start; i >= 0; i-- {
		if src[i] == '\n' {
			lineStart = i + 1
			break
		}
	}

	lineEnd := end
	for i := lineStart; i < end; i++ {
		if src[i] == '\n' {
			lineEnd = i
			break
		}
	}

	return src[lineStart:lineEnd]
}

// runeColumnOffset returns the number of bytes taken by the first
// column runes of b (or by all of b, if it holds fewer runes), so the
// caret underline lines up under multi-byte UTF-8 identifiers.
func runeColumnOffset(column int, b []byte) (offset int) {
	for column > 0 && len(b) != 0 {
		_, w := utf8.DecodeRune(b)
		offset += w
		b = b[w:]
		column--
	}
	return offset
}
