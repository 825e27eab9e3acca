package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"

	"github.com/spf13/cobra"
)

var (
	categoryFlag   string
	targetDateFlag string
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Manage health goals",
}

var addGoalCmd = &cobra.Command{
	Use:   "add [goal]",
	Short: "Add a health goal",
	Long: fmt.Sprintf(`Add a health goal with an optional category (%s) and target date
in YYYY-MM-DD form.`, strings.Join(health.Categories, ", ")),
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		var target *string
		if targetDateFlag != "" {
			target = &targetDateFlag
		}
		goal, err := svc.AddGoal(cmd.Context(), strings.Join(args, " "), categoryFlag, target)
		if err != nil {
			return fmt.Errorf("failed to add goal: %w", err)
		}
		printGoal(goal)
		return nil
	},
}

var listGoalsCmd = &cobra.Command{
	Use:   "list",
	Short: "List health goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		goals := svc.ListGoals(cmd.Context())
		if jsonFlag {
			return printJSON(os.Stdout, goals)
		}
		if len(goals) == 0 {
			fmt.Println("No goals found.")
			return nil
		}
		for _, goal := range goals {
			printGoal(goal)
		}
		return nil
	},
}

var toggleGoalCmd = &cobra.Command{
	Use:   "toggle [goal-id]",
	Short: "Mark a goal complete or incomplete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		goal, err := svc.ToggleGoal(cmd.Context(), id)
		if err != nil {
			return err
		}
		printGoal(goal)
		return nil
	},
}

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Manage daily habits",
}

var addHabitCmd = &cobra.Command{
	Use:   "add [habit]",
	Short: "Add a daily habit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		habit, err := svc.AddHabit(cmd.Context(), strings.Join(args, " "), categoryFlag)
		if err != nil {
			return fmt.Errorf("failed to add habit: %w", err)
		}
		printHabit(habit)
		return nil
	},
}

var listHabitsCmd = &cobra.Command{
	Use:   "list",
	Short: "List daily habits with their streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		habits := svc.ListHabits(cmd.Context())
		if jsonFlag {
			return printJSON(os.Stdout, habits)
		}
		if len(habits) == 0 {
			fmt.Println("No habits found.")
			return nil
		}
		for _, habit := range habits {
			printHabit(habit)
		}
		return nil
	},
}

var checkHabitCmd = &cobra.Command{
	Use:   "check [habit-id]",
	Short: "Check in a habit for today",
	Long:  `Record today's check-in. A second check-in on the same day changes nothing.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		habit, checked, err := svc.CheckHabit(cmd.Context(), id)
		if err != nil {
			return err
		}
		if !checked {
			fmt.Println("Already checked in today.")
		}
		printHabit(habit)
		return nil
	},
}

func initGoalsCmd() {
	addGoalCmd.Flags().StringVar(&categoryFlag, "category", "health", "Goal category")
	addGoalCmd.Flags().StringVar(&targetDateFlag, "target", "", "Target date (YYYY-MM-DD)")
	listGoalsCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON")

	goalsCmd.AddCommand(addGoalCmd, listGoalsCmd, toggleGoalCmd)
}

func initHabitsCmd() {
	addHabitCmd.Flags().StringVar(&categoryFlag, "category", "health", "Habit category")
	listHabitsCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON")

	habitsCmd.AddCommand(addHabitCmd, listHabitsCmd, checkHabitCmd)
}

func printGoal(goal health.Goal) {
	status := " "
	if goal.Completed {
		status = "x"
	}
	target := ""
	if goal.TargetDate != nil {
		target = " (by " + *goal.TargetDate + ")"
	}
	fmt.Printf("[%s] %d  %s  #%s%s\n", status, goal.ID, goal.Content, goal.Category, target)
}

func printHabit(habit health.Habit) {
	last := "never"
	if habit.LastChecked != nil {
		last = *habit.LastChecked
	}
	fmt.Printf("%d  %s  #%s  streak %d, last checked %s\n", habit.ID, habit.Content, habit.Category, habit.Streak, last)
}
