package tui

import (
	"context"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/journal"
	"github.com/gupta19esha/HealthScribeGPT/pkg/report"

	tea "github.com/charmbracelet/bubbletea"
)

type entriesMsg []health.JournalEntry

type reportMsg report.Report

type waterMsg int

type entryCreatedMsg health.JournalEntry

// loadEntries lists all entries, newest first.
func loadEntries(svc *journal.Service) tea.Cmd {
	return func() tea.Msg {
		return entriesMsg(svc.ListEntries(context.Background()))
	}
}

// loadReport builds the report for period.
func loadReport(svc *journal.Service, period report.Period) tea.Cmd {
	return func() tea.Msg {
		return reportMsg(svc.Report(context.Background(), period))
	}
}

func loadWater(svc *journal.Service) tea.Cmd {
	return func() tea.Msg {
		return waterMsg(svc.WaterIntake(context.Background()))
	}
}

// createEntry stores a new entry. The remote analyzer is only used when
// useAnalyzer is set; otherwise metrics come from local extraction.
func createEntry(svc *journal.Service, content string, useAnalyzer bool) tea.Cmd {
	return func() tea.Msg {
		entry, err := svc.CreateEntry(context.Background(), content, useAnalyzer)
		if err != nil {
			return err
		}
		return entryCreatedMsg(entry)
	}
}

func adjustWater(svc *journal.Service, delta int) tea.Cmd {
	return func() tea.Msg {
		ml, err := svc.AdjustWater(context.Background(), delta)
		if err != nil {
			return err
		}
		return waterMsg(ml)
	}
}
