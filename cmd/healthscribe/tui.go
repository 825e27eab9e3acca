package main

import (
	"path/filepath"

	"github.com/gupta19esha/HealthScribeGPT/pkg/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Show the terminal dashboard",
	Long: `Display an interactive dashboard with the health report, the journal entries
and their extracted metrics. New entries can be written from the dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, dbConn, path, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		return tui.ShowTUI(svc, tui.Options{
			DBFile:      filepath.Base(path),
			UseAnalyzer: useAnalyzerFlag,
		})
	},
}

func init() {
	tuiCmd.Flags().BoolVar(&useAnalyzerFlag, "ai", false, "Use the OpenAI analyzer for new entries")
}
