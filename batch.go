// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package m2parse

import (
	"context"
	"log/slog"
	"sync"
)

// BatchResult pairs one path's outcome with the path itself. Workers
// finish in any order, but BatchParse stores each result at its input
// path's index, so results[i] belongs to paths[i].
type BatchResult struct {
	Path   string
	Result *Result
	Err    error
}

// BatchOption configures BatchParse.
type BatchOption func(*batchConfig)

type batchConfig struct {
	workers int
	logger  *slog.Logger
	opts    []Option
}

// WithWorkers sets the number of concurrent parse workers (default 4).
// A count below 1 is treated as 1.
func WithWorkers(n int) BatchOption {
	return func(c *batchConfig) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithBatchLogger sets the *slog.Logger BatchParse itself logs
// through. It is not passed on to the Parse calls: each run logs
// through slog.Default() unless WithOption(WithLogger(...)) sets one.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(c *batchConfig) { c.logger = logger }
}

// WithOption forwards opt to every Parse call BatchParse makes.
func WithOption(opt Option) BatchOption {
	return func(c *batchConfig) { c.opts = append(c.opts, opt) }
}

// BatchParse parses every path in paths concurrently across a fixed
// worker pool, returning one BatchResult per path. Grounded on the
// teacher's pipelines/stages.WorkerService — the same claim/execute
// shape, simplified from a database-backed job queue down to an
// in-memory channel of paths, since a batch of command-line arguments
// needs no persistent claim semantics.
//
// BatchParse never returns an error itself: a single path's read or
// validation failure becomes that path's BatchResult.Err, and the
// batch continues (spec §4.A's never-throws contract extended to the
// batch as a whole, not just a single parse).
func BatchParse(ctx context.Context, paths []string, opts ...BatchOption) []BatchResult {
	cfg := &batchConfig{workers: 4, logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	type job struct {
		index int
		path  string
	}
	jobs := make(chan job)
	results := make([]BatchResult, len(paths))

	var wg sync.WaitGroup
	for w := 0; w < cfg.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range jobs {
				cfg.logger.Debug("batch worker claimed path", "worker", workerID, "path", j.path)
				result, err := Parse(ctx, j.path, cfg.opts...)
				results[j.index] = BatchResult{Path: j.path, Result: result, Err: err}
			}
		}(w)
	}

	go func() {
		defer close(jobs)
		for i, path := range paths {
			select {
			case jobs <- job{index: i, path: path}:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return results
}
