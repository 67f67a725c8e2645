package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fareline/fareline/internal/calc"
	"github.com/fareline/fareline/internal/cli"
	"github.com/fareline/fareline/internal/config"
	"github.com/fareline/fareline/internal/model"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Break a monthly goal into daily and hourly targets",
		Long: `Break a monthly earnings goal into the daily target and the hourly
rates required to hit it.

The all-in rate spreads the daily target over every on-app hour; the
active rate spreads it over non-idle hours only, which is the number a
ride actually has to pay for. A per-ride threshold table shows what the
smallest acceptable fare looks like at three daily ride volumes.`,
		RunE: runPlan,
	}

	// Flags
	cmd.Flags().Float64P("goal", "g", 1600, "Monthly earnings goal in dollars")
	cmd.Flags().Float64("days", 30, "Working days in the month")
	cmd.Flags().Float64("hours", 6, "On-app hours per day")
	cmd.Flags().Float64("idle", 30, "Idle time as a percentage of on-app time")
	cmd.Flags().Bool("json", false, "Print the result as JSON")

	// Bind to viper
	_ = viper.BindPFlag(config.KeyMonthlyGoal, cmd.Flags().Lookup("goal"))
	_ = viper.BindPFlag(config.KeyDaysInMonth, cmd.Flags().Lookup("days"))
	_ = viper.BindPFlag(config.KeyHoursPerDay, cmd.Flags().Lookup("hours"))
	_ = viper.BindPFlag(config.KeyIdlePercent, cmd.Flags().Lookup("idle"))
	_ = viper.BindPFlag("plan.json", cmd.Flags().Lookup("json"))

	return cmd
}

func runPlan(_ *cobra.Command, _ []string) error {
	in := model.PlannerInput{
		EarningsGoal: config.MonthlyGoal(),
		DaysInMonth:  config.DaysInMonth(),
		HoursPerDay:  config.HoursPerDay(),
		IdlePercent:  config.IdlePercent(),
	}

	result := calc.Plan(in)

	if viper.GetBool("plan.json") {
		return printJSON(result)
	}

	content := strings.Join([]string{
		fmt.Sprintf("Monthly goal:   %s over %.0f days", cli.FormatUSDWhole(in.EarningsGoal), calc.SanitizeDays(in.DaysInMonth)),
		fmt.Sprintf("Daily target:   %s", cli.FormatUSD(result.DailyTarget)),
		fmt.Sprintf("Effective time: %.1f of %.1f hours active", result.EffectiveHours, in.HoursPerDay),
		"",
		fmt.Sprintf("All-in rate:    %s", cli.FormatRate(result.DollarsPerHourAllIn, "hr")),
		fmt.Sprintf("Active rate:    %s", cli.FormatRate(result.DollarsPerHourActive, "hr")),
		fmt.Sprintf("Active minute:  %s", cli.FormatRate(result.PerMinuteActive, "min")),
	}, "\n")

	fmt.Println(cli.RenderBox("Monthly Plan", content)) //nolint:forbidigo // User-facing output
	fmt.Println()                                       //nolint:forbidigo // User-facing output

	fmt.Println(cli.FormatTitle("Per-Ride Thresholds")) //nolint:forbidigo // User-facing output
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Pace"),
		cli.HeaderStyle.Render("Rides/day"),
		cli.HeaderStyle.Render("Floor"),
		cli.HeaderStyle.Render("Min fare"),
		cli.HeaderStyle.Render("Max trip"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 8),
		strings.Repeat("-", 9),
		strings.Repeat("-", 8),
		strings.Repeat("-", 8),
		strings.Repeat("-", 8))
	for _, row := range result.Brackets {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			row.Label,
			row.Rides,
			cli.FormatRate(row.PerMileFloor, "mi"),
			cli.FormatUSD(row.MinPerRide),
			cli.FormatMiles(row.MaxMiles))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	return nil
}
