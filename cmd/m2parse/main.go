// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Command m2parse is the CLI front end for the parser: lex a file,
// parse it and print its statistics, or serve the read-only dashboard
// over HTTP. Grounded on the teacher's cmd/tnrpt/main.go (persistent
// logging flags, cobra root/subcommand shape) and cmd/lexer/main.go
// (the token-dump loop cmdLex adapts).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mdhender/m2parse"
	"github.com/mdhender/m2parse/internal/cache"
	"github.com/mdhender/m2parse/internal/intern"
	"github.com/mdhender/m2parse/web"
)

func main() {
	var debug, quiet, verbose, logWithShortfile, logWithTimestamp bool

	cmdRoot := &cobra.Command{
		Use:   "m2parse",
		Short: "Modula-2 syntactic-analysis toolkit",
		Long:  `m2parse lexes and parses a bootstrap Modula-2 dialect, and serves a read-only dashboard over past runs.`,
	}
	cmdRoot.PersistentFlags().BoolVar(&debug, "debug", false, "log debugging information")
	cmdRoot.PersistentFlags().BoolVar(&quiet, "quiet", false, "log less information")
	cmdRoot.PersistentFlags().BoolVar(&verbose, "verbose", false, "log more information")
	cmdRoot.PersistentFlags().BoolVar(&logWithShortfile, "log-with-shortfile", true, "log with short file name")
	cmdRoot.PersistentFlags().BoolVar(&logWithTimestamp, "log-with-timestamp", false, "log with timestamp")

	logger := func() *slog.Logger {
		level := slog.LevelInfo
		switch {
		case debug:
			level = slog.LevelDebug
		case verbose:
			level = slog.LevelInfo
		case quiet:
			level = slog.LevelError
		}
		opts := &slog.HandlerOptions{Level: level, AddSource: logWithShortfile}
		handler := slog.NewTextHandler(os.Stderr, opts)
		l := slog.New(handler)
		if !logWithTimestamp {
			return l
		}
		return l.With("ts", time.Now().Format(time.RFC3339))
	}

	cmdRoot.AddCommand(cmdLex(&logger))
	cmdRoot.AddCommand(cmdParse(&logger))
	cmdRoot.AddCommand(cmdServe(&logger))
	cmdRoot.AddCommand(cmdVersion())

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdLex(logger *func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:          "lex <file>",
		Short:        "scan a source file and dump its tokens",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			input, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			s := m2parse.NewScanner(context.Background(), path, input, intern.Default, (*logger)())
			for i := 0; i < len(input)+1; i++ {
				tok := s.Scan()
				text := ""
				if tok.Lexeme != nil {
					text = tok.Lexeme.Text
				}
				fmt.Printf("%s:%d:%d: %-5d %-20s %q\n", path, tok.Line, tok.Column, i, tok.Kind, text)
				if tok.Kind == m2parse.EOF {
					break
				}
			}
			return nil
		},
	}
}

func cmdParse(logger *func() *slog.Logger) *cobra.Command {
	var cachePath string
	cmd := &cobra.Command{
		Use:          "parse <file>",
		Short:        "parse a source file and print its statistics",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			l := (*logger)()

			result, err := m2parse.Parse(context.Background(), path, m2parse.WithLogger(l))
			if err != nil {
				return err
			}

			fmt.Printf("%s: %s (run %s)\n", path, result.Statistics.Outcome(), result.RunID)
			fmt.Printf("  lines: %s  warnings: %d  syntax errors: %d  semantic errors: %d  elapsed: %s\n",
				humanize.Comma(int64(result.Statistics.LineCount)),
				result.Statistics.WarningCount, result.Statistics.SyntaxErrorCount,
				result.Statistics.SemanticErrorCount, result.Elapsed.Round(time.Millisecond))
			src, _ := os.ReadFile(path)
			for _, d := range result.Statistics.Diagnostics {
				m2parse.PrintDiagnostic(os.Stdout, d, path, src)
			}

			if cachePath != "" {
				if err := cache.EnsureDir(cachePath); err != nil {
					return fmt.Errorf("cache: %w", err)
				}
				c, err := cache.Open(cache.Config{Path: cachePath})
				if err != nil {
					return fmt.Errorf("cache: %w", err)
				}
				defer c.Close()

				prior, err := c.LastDigest(context.Background(), path)
				if err != nil {
					return fmt.Errorf("cache: %w", err)
				}
				if prior != "" {
					if prior == result.Digest {
						fmt.Printf("  digest unchanged since last recorded run\n")
					} else {
						fmt.Printf("  digest changed since last recorded run\n")
					}
				}

				err = c.Insert(context.Background(), cache.Record{
					RunID:          result.RunID,
					Path:           result.Path,
					Digest:         result.Digest,
					Status:         result.Statistics.Outcome(),
					SyntaxErrors:   result.Statistics.SyntaxErrorCount,
					SemanticErrors: result.Statistics.SemanticErrorCount,
					Warnings:       result.Statistics.WarningCount,
					LineCount:      result.Statistics.LineCount,
					Elapsed:        result.Elapsed,
				})
				if err != nil {
					return fmt.Errorf("cache: %w", err)
				}
			}

			if result.Statistics.HasErrors() {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cachePath, "cache", "", "record this run's digest and outcome to a sqlite cache at this path")
	return cmd
}

func cmdServe(logger *func() *slog.Logger) *cobra.Command {
	var addr, cachePath, password string
	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "serve the read-only parse-run dashboard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := (*logger)()

			if cachePath == "" {
				cachePath = "m2parse.db"
			}
			if err := cache.EnsureDir(cachePath); err != nil {
				return fmt.Errorf("cache: %w", err)
			}
			c, err := cache.Open(cache.Config{Path: cachePath})
			if err != nil {
				return fmt.Errorf("cache: %w", err)
			}
			defer c.Close()

			gate, err := web.NewPasswordGate(password)
			if err != nil {
				return fmt.Errorf("password gate: %w", err)
			}
			if gate.Disabled() {
				l.Warn("serve: no --password set; dashboard is unauthenticated")
			}

			handlers := web.NewHandlers(c, gate, l)
			mux := http.NewServeMux()
			handlers.Routes(mux)

			l.Info("serve: listening", "addr", addr)
			return http.ListenAndServe(addr, mux)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().StringVar(&cachePath, "cache", "", "sqlite database backing the dashboard (default m2parse.db)")
	cmd.Flags().StringVar(&password, "password", "", "password gating the dashboard (empty disables the gate)")
	return cmd
}

func cmdVersion() *cobra.Command {
	var buildInfo bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "display the application's version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if buildInfo {
				fmt.Println(m2parse.Version().String())
				return nil
			}
			fmt.Println(m2parse.Version().Core())
			return nil
		},
	}
	cmd.Flags().BoolVar(&buildInfo, "build-info", false, "show full build information")
	return cmd
}
