// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package templates renders the read-only diagnostics dashboard (spec
// SPEC_FULL.md's web surface). Grounded on the teacher's
// web/templates call sites (web/handlers/units.go and friends call
// templates.UnitsPageWithData(...).Render(ctx, w)) — this package
// supplies the same templ.Component shape, hand-built against
// github.com/a-h/templ's runtime interface rather than emitted by the
// templ code generator, since no .templ sources were part of the
// retrieved teacher pack.
package templates

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"

	"github.com/mdhender/m2parse/internal/cache"
)

// page wraps body in the dashboard's shared chrome: title bar and a
// minimal stylesheet. Every exported component in this package renders
// through page so the dashboard has one consistent layout, the same
// role the teacher's templates.Layout plays for web/handlers.
func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html><html><head><meta charset=\"utf-8\">"+
			"<title>"+templ.EscapeString(title)+"</title>"+
			"<style>body{font-family:monospace;margin:2rem}table{border-collapse:collapse}"+
			"td,th{border:1px solid #ccc;padding:.25rem .5rem;text-align:left}"+
			".err{color:#b00}.warn{color:#a60}.ok{color:#070}</style></head><body>"+
			"<h1>"+templ.EscapeString(title)+"</h1>"); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// Login renders the password-gate form. next is the path to redirect
// to after a successful login; failed indicates a just-rejected
// attempt.
func Login(next string, failed bool) templ.Component {
	return page("m2parse — sign in", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if failed {
			if _, err := io.WriteString(w, `<p class="err">invalid credentials</p>`); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<form method="post" action="/login">
<input type="hidden" name="next" value="%s">
<p><label>Password <input type="password" name="password" autofocus></label></p>
<p><button type="submit">Sign in</button></p>
</form>`, templ.EscapeString(next))
		return err
	}))
}

// Dashboard renders the run-history table: the most recent parse runs
// recorded in internal/cache, newest first.
func Dashboard(records []cache.Record) templ.Component {
	return page("m2parse — recent runs", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(records) == 0 {
			_, err := io.WriteString(w, "<p>No parse runs recorded yet.</p>")
			return err
		}
		if _, err := io.WriteString(w, "<table><thead><tr>"+
			"<th>run</th><th>path</th><th>status</th><th>errors</th><th>warnings</th>"+
			"<th>lines</th><th>elapsed</th></tr></thead><tbody>"); err != nil {
			return err
		}
		for _, r := range records {
			statusClass := "ok"
			if r.SyntaxErrors > 0 || r.SemanticErrors > 0 {
				statusClass = "err"
			} else if r.Warnings > 0 {
				statusClass = "warn"
			}
			_, err := fmt.Fprintf(w, `<tr>
<td><a href="/runs/%s">%s</a></td><td>%s</td><td class="%s">%s</td>
<td>%d</td><td>%d</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(r.RunID), templ.EscapeString(shortID(r.RunID)),
				templ.EscapeString(r.Path), statusClass, templ.EscapeString(r.Status),
				r.SyntaxErrors+r.SemanticErrors, r.Warnings,
				humanize.Comma(int64(r.LineCount)), r.Elapsed.Round(time.Millisecond))
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody></table>")
		return err
	}))
}

// DiagnosticRow is one printable finding, shaped for DiagnosticsTable
// without pulling the root package's Diagnostic type into this
// package (avoids a templates -> m2parse -> templates import cycle,
// since a future m2parse component could want to render a dashboard
// link).
type DiagnosticRow struct {
	Severity string
	Line     int
	Column   int
	Message  string
}

// DiagnosticsTable renders one run's findings.
func DiagnosticsTable(path string, rows []DiagnosticRow) templ.Component {
	return page("m2parse — "+path, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(rows) == 0 {
			_, err := io.WriteString(w, "<p>No diagnostics. Clean parse.</p>")
			return err
		}
		if _, err := io.WriteString(w, "<table><thead><tr><th>severity</th><th>line</th><th>column</th><th>message</th></tr></thead><tbody>"); err != nil {
			return err
		}
		for _, d := range rows {
			class := "err"
			if d.Severity == "warning" {
				class = "warn"
			}
			_, err := fmt.Fprintf(w, `<tr class="%s"><td>%s</td><td>%d</td><td>%d</td><td>%s</td></tr>`,
				class, templ.EscapeString(d.Severity), d.Line, d.Column, templ.EscapeString(d.Message))
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody></table>")
		return err
	}))
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
