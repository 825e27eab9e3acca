package journal

import (
	"context"

	"github.com/gupta19esha/HealthScribeGPT/pkg/analyzer"
	"github.com/gupta19esha/HealthScribeGPT/pkg/logger"
	"github.com/gupta19esha/HealthScribeGPT/pkg/report"
)

// DefaultAnalyticsCount is how many recent entries Analytics looks at by
// default.
const DefaultAnalyticsCount = 7

// Report generates the report for period ending now.
func (s *Service) Report(ctx context.Context, period report.Period) report.Report {
	in := report.Input{
		Entries: s.store.Entries.Get(ctx),
		Goals:   s.store.Goals.Get(ctx),
		Habits:  s.store.Habits.Get(ctx),
		Meals:   s.store.Meals.Get(ctx),
	}
	return report.Generate(in, period, s.now())
}

// Analytics analyzes the count newest entries with the model and summarizes
// the results. It fails with analyzer.ErrNoResults when no entry could be
// analyzed.
func (s *Service) Analytics(ctx context.Context, count int) (analyzer.Summary, error) {
	if count <= 0 {
		count = DefaultAnalyticsCount
	}
	entries := s.RecentEntries(ctx, count)
	results := s.analyzer.AnalyzeBatch(ctx, entries, s.batch)

	summary, err := analyzer.Summarize(results)
	if err != nil {
		logger.Warn("analytics produced no results", "entries", len(entries))
		return analyzer.Summary{}, err
	}
	logger.Info("analytics complete", "analyzed", summary.Analyzed, "failed", summary.Failed)
	return summary, nil
}
