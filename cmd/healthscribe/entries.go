package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gupta19esha/HealthScribeGPT/pkg/analyzer"
	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/journal"

	"github.com/spf13/cobra"
)

var (
	useAnalyzerFlag bool
	limitFlag       int
	localFlag       bool
	jsonFlag        bool
	countFlag       int
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Manage journal entries",
	Long:  `Write journal entries and list them with their extracted health metrics.`,
}

var addEntryCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Write a new journal entry",
	Long: `Store a new journal entry. Sleep, exercise, mood, energy and symptoms are
extracted from the text locally. With --ai the OpenAI analyzer is asked first
and local extraction is used when it is unavailable.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		entry, err := svc.CreateEntry(cmd.Context(), strings.Join(args, " "), useAnalyzerFlag)
		if errors.Is(err, journal.ErrEmptyContent) {
			return errors.New("entry text is required")
		}
		if err != nil {
			return fmt.Errorf("failed to create entry: %w", err)
		}

		printEntry(entry)
		return nil
	},
}

var listEntriesCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		entries := svc.RecentEntries(cmd.Context(), limitFlag)
		if jsonFlag {
			return printJSON(os.Stdout, entries)
		}
		if len(entries) == 0 {
			fmt.Println("No entries found.")
			return nil
		}

		fmt.Printf("Entries (%d):\n", len(entries))
		fmt.Println("------------------------------------------------------------")
		for _, entry := range entries {
			m := entry.MetricsOrDefault()
			fmt.Printf("ID: %d\n", entry.ID)
			fmt.Printf("Date: %s\n", entry.Date)
			fmt.Printf("Metrics: sleep %sh, exercise %smin, mood %s, energy %s\n",
				formatNumber(m.Sleep), formatNumber(m.Exercise), m.Mood, m.Energy)
			fmt.Printf("Content: %s\n", entry.Content)
			fmt.Println("------------------------------------------------------------")
		}
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze text without storing it",
	Long: `Send text to the OpenAI analyzer and print the metrics, insights and
suggestions it returns. With --local the built-in extractor is used instead and
no network call is made.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		var analysis analyzer.Analysis
		if localFlag {
			analysis = journal.LocalAnalysis(text)
		} else {
			a := analyzer.New(analyzer.NewOpenAIProvider(cfg.OpenAI))
			var err error
			analysis, err = a.Analyze(cmd.Context(), text)
			if err != nil {
				return err
			}
		}

		if jsonFlag {
			return printJSON(os.Stdout, analysis)
		}
		printMetrics(analysis.Metrics)
		printList("Insights", analysis.Insights)
		printList("Suggestions", analysis.Suggestions)
		return nil
	},
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Summarize recent entries with the OpenAI analyzer",
	Long: `Analyze the most recent entries concurrently and summarize sleep, mood and
symptom trends across them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		summary, err := svc.Analytics(cmd.Context(), countFlag)
		if err != nil {
			return err
		}
		if jsonFlag {
			return printJSON(os.Stdout, summary)
		}

		fmt.Printf("Analyzed: %d (failed: %d)\n\n", summary.Analyzed, summary.Failed)
		fmt.Println("Sleep:")
		for _, p := range summary.Sleep.Data {
			fmt.Printf("  %-8s %sh (quality %d)\n", p.Date, formatNumber(p.Hours), p.Quality)
		}
		fmt.Printf("  Average: %sh, best: %sh, pattern: %s\n\n",
			formatNumber(summary.Sleep.AverageHours), formatNumber(summary.Sleep.BestSleep), summary.Sleep.Pattern)

		fmt.Println("Mood:")
		for _, p := range summary.Mood.Data {
			fmt.Printf("  %-8s %s / %s energy\n", p.Date, p.Mood, p.Energy)
		}
		fmt.Printf("  Predominant: %s\n\n", summary.Mood.Predominant)

		fmt.Println("Symptoms:")
		if len(summary.Symptoms.Data) == 0 {
			fmt.Println("  none")
		}
		for _, s := range summary.Symptoms.Data {
			fmt.Printf("  %s: %d\n", s.Name, s.Count)
		}
		return nil
	},
}

func initEntriesCmd() {
	addEntryCmd.Flags().BoolVar(&useAnalyzerFlag, "ai", false, "Use the OpenAI analyzer for metrics")
	listEntriesCmd.Flags().IntVar(&limitFlag, "limit", -1, "Show at most this many entries (negative for all)")
	listEntriesCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON")

	analyzeCmd.Flags().BoolVar(&localFlag, "local", false, "Use the built-in extractor instead of the OpenAI analyzer")
	analyzeCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON")

	analyticsCmd.Flags().IntVar(&countFlag, "count", journal.DefaultAnalyticsCount, "Number of recent entries to analyze")
	analyticsCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON")

	entriesCmd.AddCommand(addEntryCmd, listEntriesCmd)
}

func printEntry(entry health.JournalEntry) {
	fmt.Println("Entry Details:")
	fmt.Printf("ID:       %d\n", entry.ID)
	fmt.Printf("Date:     %s\n", entry.Date)
	printMetrics(entry.MetricsOrDefault())
	fmt.Println("\nContent:")
	fmt.Println("------------------------------------------------------------")
	fmt.Println(entry.Content)
	fmt.Println("------------------------------------------------------------")
}

func printMetrics(m health.Metrics) {
	symptoms := "none"
	if len(m.Symptoms) > 0 {
		symptoms = strings.Join(m.Symptoms, ", ")
	}
	fmt.Printf("Sleep:    %s hours\n", formatNumber(m.Sleep))
	fmt.Printf("Exercise: %s minutes\n", formatNumber(m.Exercise))
	fmt.Printf("Mood:     %s\n", m.Mood)
	fmt.Printf("Energy:   %s\n", m.Energy)
	fmt.Printf("Symptoms: %s\n", symptoms)
}

func printList(title string, items []string) {
	fmt.Printf("\n%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}
