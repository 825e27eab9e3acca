package main

import (
	"fmt"
	"os"

	"github.com/gupta19esha/HealthScribeGPT/pkg/report"

	"github.com/spf13/cobra"
)

var periodFlag string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the health report for a trailing period",
	Long: `Aggregate entries, goals, habits and meals over the last week, month or
quarter into a health score with sleep and exercise analysis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := report.ParsePeriod(periodFlag)
		if err != nil {
			return err
		}

		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		r := svc.Report(cmd.Context(), period)
		if jsonFlag {
			return printJSON(os.Stdout, r)
		}

		fmt.Printf("Health report (%s): %s to %s\n", r.Period, r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
		fmt.Println("------------------------------------------------------------")
		fmt.Printf("Health score:    %d\n", r.HealthScore)
		fmt.Printf("Entries:         %d\n", r.Overview.TotalEntries)
		fmt.Printf("Completed goals: %d\n", r.Overview.CompletedGoals)
		fmt.Printf("Active habits:   %d\n", r.Overview.ActiveHabits)
		fmt.Printf("Avg calories:    %d\n", r.Overview.AvgCalories)

		fmt.Println("\nSleep:")
		fmt.Printf("  Average %sh, consistency %d%%\n", formatNumber(r.SleepAnalysis.Average), r.SleepAnalysis.Consistency)
		for _, line := range r.SleepAnalysis.Insights {
			fmt.Printf("  - %s\n", line)
		}

		fmt.Println("\nExercise:")
		fmt.Printf("  Weekly average %d min, most active %s, consistency %d%%\n",
			r.ExerciseAnalysis.WeeklyAverage, r.ExerciseAnalysis.MostActiveDay, r.ExerciseAnalysis.Consistency)
		for _, line := range r.ExerciseAnalysis.Insights {
			fmt.Printf("  - %s\n", line)
		}
		return nil
	},
}

func initReportCmd() {
	reportCmd.Flags().StringVar(&periodFlag, "period", string(report.DefaultPeriod), "Report period (week, month, quarter)")
	reportCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON")
}
