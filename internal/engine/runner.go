package engine

import (
	"context"
	"os"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/smykla-skalski/adoclint/internal/validation"
	"github.com/smykla-skalski/adoclint/pkg/config"
	"github.com/smykla-skalski/adoclint/pkg/logger"
)

// Runner validates independent documents in parallel. Each document gets its
// own context and result; the merged result preserves input order, so runs
// are deterministic regardless of scheduling.
type Runner struct {
	validator *DocumentValidator
	parser    Parser
	log       logger.Logger
	pool      *semaphore.Weighted
}

// NewRunner creates a Runner. maxWorkers <= 0 defaults to the CPU count.
func NewRunner(
	validator *DocumentValidator,
	parser Parser,
	log logger.Logger,
	maxWorkers int,
) *Runner {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	return &Runner{
		validator: validator,
		parser:    parser,
		log:       log,
		pool:      semaphore.NewWeighted(int64(maxWorkers)),
	}
}

// Run validates the documents at the given paths and merges their results in
// input order. Files that cannot be read or parsed produce an error-severity
// finding rather than aborting the run; only context cancellation stops it.
func (r *Runner) Run(ctx context.Context, paths []string) *validation.Result {
	if len(paths) == 0 {
		return validation.NewResultBuilder().Build()
	}

	// A single document needs no goroutine overhead.
	if len(paths) == 1 {
		return r.runOne(paths[0])
	}

	results := make([]*validation.Result, len(paths))

	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)

		go func(i int, path string) {
			defer wg.Done()

			if err := r.pool.Acquire(ctx, 1); err != nil {
				// Context cancelled.
				return
			}
			defer r.pool.Release(1)

			results[i] = r.runOne(path)
		}(i, path)
	}

	wg.Wait()

	return validation.Merge(results...)
}

// runOne reads, parses, and validates a single document.
func (r *Runner) runOne(path string) *validation.Result {
	r.log.Debug("validating document", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return failedResult(path, "document.read", err)
	}

	doc, err := r.parser.Parse(path, src)
	if err != nil {
		return failedResult(path, "document.parse", err)
	}

	return r.validator.Validate(path, doc)
}

// failedResult wraps a read or parse failure as a single error finding so a
// bad file does not hide results for the good ones.
func failedResult(path, ruleID string, err error) *validation.Result {
	return validation.NewResultBuilder().Add(validation.Message{
		Severity: config.SeverityError,
		RuleID:   ruleID,
		Text:     err.Error(),
		Location: validation.Location{Path: path, Line: 1},
	}).Build()
}
