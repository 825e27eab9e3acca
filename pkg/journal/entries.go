package journal

import (
	"context"
	"strings"

	"github.com/gupta19esha/HealthScribeGPT/pkg/analyzer"
	"github.com/gupta19esha/HealthScribeGPT/pkg/extract"
	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/logger"
)

// CreateEntry stores a new entry with metrics derived from content. With
// useAnalyzer set the model is asked first; when it cannot answer, the
// local extractor is used instead.
func (s *Service) CreateEntry(ctx context.Context, content string, useAnalyzer bool) (health.JournalEntry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return health.JournalEntry{}, ErrEmptyContent
	}

	now := s.now()
	metrics := extract.Extract(content)
	if useAnalyzer {
		analysis, err := s.analyzer.Analyze(ctx, content)
		if err != nil {
			logger.Warn("analyzer unavailable, using extracted metrics", "error", err)
		} else {
			metrics = analysis.Metrics
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := health.JournalEntry{
		ID:      s.newID(now),
		Date:    health.FormatTimestamp(now),
		Content: content,
		Metrics: &metrics,
	}
	if _, err := s.store.Entries.Add(ctx, entry); err != nil {
		return health.JournalEntry{}, err
	}

	logger.Info("entry created", "id", entry.ID, "sleep", metrics.Sleep, "exercise", metrics.Exercise, "mood", metrics.Mood)
	return entry, nil
}

// ListEntries returns all entries, newest first.
func (s *Service) ListEntries(ctx context.Context) []health.JournalEntry {
	return s.store.Entries.Get(ctx)
}

// RecentEntries returns at most n of the newest entries.
func (s *Service) RecentEntries(ctx context.Context, n int) []health.JournalEntry {
	entries := s.ListEntries(ctx)
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// AnalyzeText runs the model analysis for content without storing anything.
func (s *Service) AnalyzeText(ctx context.Context, content string) (analyzer.Analysis, error) {
	return s.analyzer.Analyze(ctx, content)
}

// LocalAnalysis analyzes content with the extractor and the canned
// insight text, without calling the model.
func LocalAnalysis(content string) analyzer.Analysis {
	m := extract.Extract(content)
	return analyzer.Analysis{
		Metrics:     m,
		Insights:    extract.Insights(m),
		Suggestions: extract.Suggestions(m),
	}
}
