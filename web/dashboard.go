// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package web

import (
	"log/slog"
	"net/http"

	"github.com/mdhender/m2parse"
	"github.com/mdhender/m2parse/internal/cache"
	"github.com/mdhender/m2parse/web/templates"
)

// Handlers serves the read-only diagnostics dashboard: recent parse
// runs from internal/cache, a by-run diagnostics view, and the
// password gate in front of both. Grounded on the teacher's
// web/handlers.Handlers, which holds the same shape of dependencies
// (a store and a session store) for its turn-report dashboard.
type Handlers struct {
	cache    *cache.Cache
	gate     *PasswordGate
	sessions *SessionStore
	logger   *slog.Logger
}

// NewHandlers wires a dashboard against c (history) and gate (the
// password prompt in front of it).
func NewHandlers(c *cache.Cache, gate *PasswordGate, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{cache: c, gate: gate, sessions: NewSessionStore(), logger: logger}
}

// Routes registers this dashboard's handlers on mux.
func (h *Handlers) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", h.Index)
	mux.HandleFunc("GET /login", h.LoginForm)
	mux.HandleFunc("POST /login", h.LoginSubmit)
	mux.HandleFunc("POST /logout", h.Logout)
	mux.HandleFunc("GET /runs", h.Runs)
	mux.HandleFunc("GET /runs/{id}", h.RunDetail)
	mux.HandleFunc("POST /parse", h.ParseNow)
}

func (h *Handlers) authenticated(r *http.Request) bool {
	if h.gate.Disabled() {
		return true
	}
	return SessionFromRequest(r, h.sessions) != nil
}

// Index redirects to the runs list, or to the login form if the
// dashboard is gated and no session is present.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	if !h.authenticated(r) {
		http.Redirect(w, r, "/login?next=/runs", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/runs", http.StatusSeeOther)
}

// LoginForm renders the password prompt.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get("next")
	if next == "" {
		next = "/runs"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Login(next, false).Render(r.Context(), w); err != nil {
		h.logger.Error("render login", "error", err)
	}
}

// LoginSubmit checks the posted password against the gate and, on
// success, starts a session and redirects to next.
func (h *Handlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	next := r.FormValue("next")
	if next == "" {
		next = "/runs"
	}
	if !h.gate.Check(r.FormValue("password")) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnauthorized)
		if err := templates.Login(next, true).Render(r.Context(), w); err != nil {
			h.logger.Error("render login", "error", err)
		}
		return
	}
	session := h.sessions.Create()
	SetSessionCookie(w, session)
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// Logout ends the caller's session.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if session := SessionFromRequest(r, h.sessions); session != nil {
		h.sessions.Delete(session.ID)
	}
	ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Runs lists the most recent recorded parse runs.
func (h *Handlers) Runs(w http.ResponseWriter, r *http.Request) {
	if !h.authenticated(r) {
		http.Redirect(w, r, "/login?next=/runs", http.StatusSeeOther)
		return
	}
	records, err := h.cache.Recent(r.Context(), 50)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Dashboard(records).Render(r.Context(), w); err != nil {
		h.logger.Error("render dashboard", "error", err)
	}
}

// RunDetail re-parses the path recorded under run id and renders its
// diagnostics. The cache stores outcomes, not diagnostics (spec §3's
// digest is for change detection, not a findings archive), so a
// detail view re-parses on demand.
func (h *Handlers) RunDetail(w http.ResponseWriter, r *http.Request) {
	if !h.authenticated(r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	id := r.PathValue("id")
	records, err := h.cache.Recent(r.Context(), 200)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	var path string
	for _, rec := range records {
		if rec.RunID == id {
			path = rec.Path
			break
		}
	}
	if path == "" {
		http.NotFound(w, r)
		return
	}
	h.renderParse(w, r, path)
}

// ParseNow re-parses the path given in the posted form and renders its
// diagnostics, recording the outcome in the cache.
func (h *Handlers) ParseNow(w http.ResponseWriter, r *http.Request) {
	if !h.authenticated(r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	path := r.FormValue("path")
	if path == "" {
		http.Error(w, "missing path", http.StatusBadRequest)
		return
	}
	h.renderParse(w, r, path)
}

func (h *Handlers) renderParse(w http.ResponseWriter, r *http.Request, path string) {
	result, err := m2parse.Parse(r.Context(), path, m2parse.WithLogger(h.logger))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.cache.Insert(r.Context(), cache.Record{
		RunID:          result.RunID,
		Path:           result.Path,
		Digest:         result.Digest,
		Status:         result.Statistics.Outcome(),
		SyntaxErrors:   result.Statistics.SyntaxErrorCount,
		SemanticErrors: result.Statistics.SemanticErrorCount,
		Warnings:       result.Statistics.WarningCount,
		LineCount:      result.Statistics.LineCount,
		Elapsed:        result.Elapsed,
	}); err != nil {
		h.logger.Error("record parse run", "error", err)
	}

	rows := make([]templates.DiagnosticRow, 0, len(result.Statistics.Diagnostics))
	for _, d := range result.Statistics.Diagnostics {
		severity := "error"
		if d.Severity == slog.LevelWarn {
			severity = "warning"
		}
		rows = append(rows, templates.DiagnosticRow{
			Severity: severity,
			Line:     d.Span.Line,
			Column:   d.Span.Column,
			Message:  d.Message,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.DiagnosticsTable(path, rows).Render(r.Context(), w); err != nil {
		h.logger.Error("render diagnostics", "error", err)
	}
}
