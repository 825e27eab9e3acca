package analyzer

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/logger"
)

const (
	DefaultBatchConcurrency = 4
	DefaultBatchTimeout     = 60 * time.Second
)

// BatchOptions bounds a batch analysis. Zero values select the defaults.
type BatchOptions struct {
	Concurrency int
	Timeout     time.Duration
}

// Result is the outcome of analyzing one entry of a batch. Exactly one of
// Analysis and Err is set.
type Result struct {
	Entry    health.JournalEntry
	Analysis *Analysis
	Err      error
}

// OK reports whether the entry was analyzed.
func (r Result) OK() bool {
	return r.Err == nil && r.Analysis != nil
}

// AnalyzeBatch analyzes entries concurrently. Results are index-aligned
// with entries; a failed entry never aborts the others.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, entries []health.JournalEntry, opts BatchOptions) []Result {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultBatchConcurrency
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultBatchTimeout
	}

	results := make([]Result, len(entries))

	var g errgroup.Group
	g.SetLimit(opts.Concurrency)

	for i, entry := range entries {
		g.Go(func() error {
			results[i] = a.analyzeOne(ctx, entry, opts.Timeout)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (a *Analyzer) analyzeOne(ctx context.Context, entry health.JournalEntry, timeout time.Duration) Result {
	if err := ctx.Err(); err != nil {
		return Result{Entry: entry, Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	analysis, err := a.Analyze(callCtx, entry.Content)
	if err != nil {
		logger.Warn("entry analysis failed", "entry", entry.ID, "error", err)
		return Result{Entry: entry, Err: err}
	}
	return Result{Entry: entry, Analysis: &analysis}
}

// Succeeded returns the successful results, keeping their order.
func Succeeded(results []Result) []Result {
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if r.OK() {
			out = append(out, r)
		}
	}
	return out
}
