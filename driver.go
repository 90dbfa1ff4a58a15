// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mdhender/phrases/v2"

	"github.com/mdhender/m2parse/internal/intern"
	"github.com/mdhender/m2parse/internal/srcfs"
)

// Component G (spec §4.G): the driver. Steps: validate path → allocate
// context → open lexer → parse start symbol → wrap the module AST in
// (FILE (FNAME ...) (KEY digest) moduleNode) → finalize LineCount from
// the lexer → release lexer → return.

// Result is everything a Parse call produces: the wrapped AST, the
// run's statistics, its overall status, and identifying metadata for
// callers that log or cache it (internal/cache, web).
type Result struct {
	RunID      string
	Path       string
	Digest     string
	Root       *Node
	Statistics Statistics
	Status     Status
	Elapsed    time.Duration
}

// Option configures a Parse call. Distinct from ParserOption so
// driver-level knobs (filesystem, run label) stay separate from
// grammar-level ones (max errors, recursion limit) — spec's ambient
// functional-options convention, grounded on parsers/config.go.
type Option func(*driverConfig)

type driverConfig struct {
	fs          sourceReader
	logger      *slog.Logger
	repo        *intern.Repository
	parserOpts  []ParserOption
	runLabel    string
}

type sourceReader interface {
	Read(path string) ([]byte, error)
}

// StatusError wraps a driver-level Status with the error that produced
// it, letting Parse report a typed status code for a path/allocation
// failure while keeping Go's idiomatic (*Result, error) return shape
// (spec §6 names four failure codes beyond SUCCESS, all driver-level,
// never parse-level). Callers that care which of the four occurred use
// errors.As; callers that only care that Parse failed just check err.
type StatusError struct {
	Status Status
	Path   string
	Err    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("parse %s: %s: %v", e.Path, e.Status, e.Err)
}

func (e *StatusError) Unwrap() error { return e.Err }

// statusForReadError maps one of srcfs.Read's four sentinel errors onto
// its spec §6 status code.
func statusForReadError(err error) Status {
	switch {
	case errors.Is(err, srcfs.ErrInvalidReference):
		return StatusInvalidReference
	case errors.Is(err, srcfs.ErrInvalidPathname):
		return StatusInvalidPathname
	case errors.Is(err, srcfs.ErrInvalidSourcetype):
		return StatusInvalidSourcetype
	default:
		return StatusAllocationFailed
	}
}

// WithSource overrides the filesystem Parse reads from (an
// srcfs.Source, typically srcfs.NewWithFS(afero.NewMemMapFs()) in
// tests).
func WithSource(src sourceReader) Option {
	return func(c *driverConfig) { c.fs = src }
}

// WithLogger overrides the *slog.Logger used for this run.
func WithLogger(logger *slog.Logger) Option {
	return func(c *driverConfig) { c.logger = logger }
}

// WithInternRepository overrides the interned-string repository
// (defaults to the shared intern.Default, so Parse calls that do not
// set one all intern into the same repository).
func WithInternRepository(repo *intern.Repository) Option {
	return func(c *driverConfig) { c.repo = repo }
}

// WithParserOptions forwards options to the underlying Parser
// (WithMaxErrors, WithRecursionLimit).
func WithParserOptions(opts ...ParserOption) Option {
	return func(c *driverConfig) { c.parserOpts = append(c.parserOpts, opts...) }
}

// Parse validates path, reads its contents, parses the compilation
// unit it contains, and returns the wrapped AST plus run statistics.
// It never returns an error for a malformed program — only for a
// path/filesystem failure, per spec §4.A's "only allocation and
// path-validation failures become Go errors."
func Parse(ctx context.Context, path string, opts ...Option) (*Result, error) {
	start := time.Now()

	cfg := &driverConfig{
		fs:     srcfs.New(),
		logger: slog.Default(),
		repo:   intern.Default,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	runID := uuid.New().String()
	cfg.runLabel = phrases.Generate(3)
	logger := cfg.logger.With("run_id", runID, "run_label", cfg.runLabel, "path", path)

	src, err := cfg.fs.Read(path)
	if err != nil {
		return nil, &StatusError{Status: statusForReadError(err), Path: path, Err: err}
	}

	digest := Digest(src)
	basename := srcfs.Basename(path)
	suffix := srcfs.Suffix(path)

	scanner := NewScanner(ctx, path, src, cfg.repo, logger)
	p := newParser(ctx, scanner, logger, cfg.parserOpts...)
	p.path = path
	p.basename = basename
	p.suffix = suffix

	root := runParseRecoveringPanics(p)

	p.stats.LineCount = scanner.LineCount()

	wrapped := node(FILE,
		node(FNAME, identNode(path)),
		node(KEY, identNode(digest)),
		root,
	)

	logger.Info("parse complete",
		"status", StatusSuccess.String(),
		"outcome", p.stats.Outcome(),
		"syntax_errors", p.stats.SyntaxErrorCount,
		"semantic_errors", p.stats.SemanticErrorCount,
		"warnings", p.stats.WarningCount,
		"lines", p.stats.LineCount,
		"elapsed", time.Since(start).String())

	return &Result{
		RunID:      runID,
		Path:       path,
		Digest:     digest,
		Root:       wrapped,
		Statistics: p.stats,
		Status:     StatusSuccess,
		Elapsed:    time.Since(start),
	}, nil
}

// runParseRecoveringPanics calls parseCompilationUnit and converts the
// recursion-limit sentinel panic (see Parser.enter) into a syntax
// error plus an empty AST, instead of letting it escape Parse — spec
// §4.A's "never throws" applies to every caller of Parse, not just the
// ordinary error paths.
func runParseRecoveringPanics(p *Parser) (root *Node) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*recursionLimitError); ok {
				p.stats.recordSyntaxError(newSyntaxError(p.span(), "input nested too deeply; aborting this module"))
				root = emptyNode()
				return
			}
			panic(r)
		}
	}()
	return parseCompilationUnit(p)
}
