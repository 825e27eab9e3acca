package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gupta19esha/HealthScribeGPT/pkg/health"
	"github.com/gupta19esha/HealthScribeGPT/pkg/journal"

	"github.com/spf13/cobra"
)

var (
	mealTypeFlag string
	caloriesFlag float64
	dateFlag     string
)

var mealsCmd = &cobra.Command{
	Use:   "meals",
	Short: "Log meals and review daily calories",
}

var addMealCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Log a meal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		meal, err := svc.AddMeal(cmd.Context(), journal.NewMeal{
			Type:        health.MealType(mealTypeFlag),
			Description: strings.Join(args, " "),
			Calories:    caloriesFlag,
			Date:        dateFlag,
		})
		if err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}
		printMeal(meal)
		return nil
	},
}

var listMealsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the meals of one day (today by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		date := dateFlag
		if date == "" {
			date = journal.Today(svc.Now())
		}
		meals, total := svc.MealsForDate(cmd.Context(), date)
		if jsonFlag {
			return printJSON(os.Stdout, map[string]interface{}{
				"date":          date,
				"meals":         meals,
				"totalCalories": total,
			})
		}

		fmt.Printf("Meals on %s:\n", date)
		for _, mealType := range health.MealTypes {
			for _, meal := range meals {
				if meal.Type == mealType {
					printMeal(meal)
				}
			}
		}
		fmt.Printf("Total calories: %s\n", formatNumber(total))
		return nil
	},
}

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Show today's water intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		fmt.Printf("Water intake: %d ml\n", svc.WaterIntake(cmd.Context()))
		return nil
	},
}

var addWaterCmd = &cobra.Command{
	Use:   "add [ml]",
	Short: "Add (or with a negative amount, remove) water in ml",
	Long: fmt.Sprintf(`Adjust the water tracker. Without an argument one glass of %d ml is added.
The total never drops below zero.`, journal.WaterStep),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta := journal.WaterStep
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			delta = v
		}

		svc, dbConn, _, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		ml, err := svc.AdjustWater(cmd.Context(), delta)
		if err != nil {
			return err
		}
		fmt.Printf("Water intake: %d ml\n", ml)
		return nil
	},
}

func initNutritionCmd() {
	addMealCmd.Flags().StringVar(&mealTypeFlag, "type", string(health.MealBreakfast), "Meal type (breakfast, lunch, dinner, snack)")
	addMealCmd.Flags().Float64Var(&caloriesFlag, "calories", 0, "Calories")
	addMealCmd.Flags().StringVar(&dateFlag, "date", "", "Meal date (YYYY-MM-DD, defaults to today)")
	listMealsCmd.Flags().StringVar(&dateFlag, "date", "", "Day to list (YYYY-MM-DD, defaults to today)")
	listMealsCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print JSON")

	mealsCmd.AddCommand(addMealCmd, listMealsCmd)
	waterCmd.AddCommand(addWaterCmd)
}

func printMeal(meal health.Meal) {
	fmt.Printf("%d  %-9s %s  %s kcal  (%s)\n", meal.ID, meal.Type, meal.Description, formatNumber(meal.Calories), meal.Date)
}
