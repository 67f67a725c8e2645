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
	"github.com/fareline/fareline/internal/model"
)

func estimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Project what a schedule is worth",
		Long: `Project daily and monthly earnings for a schedule.

The floor projection prices every active minute at the base rate. The
blended projection scales a fixed short/medium/long ride mix to fill
your active time, with short rides paying a small per-minute premium
and long rides a small discount.`,
		RunE: runEstimate,
	}

	// Flags
	cmd.Flags().Float64("hours", 6, "On-app hours per day")
	cmd.Flags().Float64("days", 25, "Working days per month")
	cmd.Flags().Bool("json", false, "Print the result as JSON")

	// Bind to viper
	_ = viper.BindPFlag("estimate.hours", cmd.Flags().Lookup("hours"))
	_ = viper.BindPFlag("estimate.days", cmd.Flags().Lookup("days"))
	_ = viper.BindPFlag("estimate.json", cmd.Flags().Lookup("json"))

	return cmd
}

func runEstimate(_ *cobra.Command, _ []string) error {
	in := model.EstimatorInput{
		HoursPerDay:  viper.GetFloat64("estimate.hours"),
		DaysPerMonth: viper.GetFloat64("estimate.days"),
	}

	result := calc.Estimate(in)

	if viper.GetBool("estimate.json") {
		return printJSON(result)
	}

	fmt.Println(cli.FormatTitle("Ride Mix")) //nolint:forbidigo // User-facing output
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Avg length"),
		cli.HeaderStyle.Render("Rides/day"),
		cli.HeaderStyle.Render("Rate"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 8),
		strings.Repeat("-", 10),
		strings.Repeat("-", 9),
		strings.Repeat("-", 9))
	for _, c := range result.Categories {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\n",
			c.Name,
			cli.FormatMinutes(c.AvgMinutes),
			c.Rides,
			cli.FormatRate(c.PerMinuteRate, "min"))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	fmt.Println() //nolint:forbidigo // User-facing output

	content := strings.Join([]string{
		fmt.Sprintf("Active time:     %s per day", cli.FormatMinutes(result.ActiveMinutesPerDay)),
		fmt.Sprintf("Blended rate:    %s", cli.FormatRate(result.BlendedPerHour, "hr")),
		"",
		fmt.Sprintf("Daily floor:     %s", cli.FormatUSD(result.DailyFloor)),
		fmt.Sprintf("Daily blended:   %s", cli.FormatUSD(result.DailyBlended)),
		fmt.Sprintf("Monthly floor:   %s", cli.FormatUSDWhole(result.MonthlyFloor)),
		fmt.Sprintf("Monthly blended: %s", cli.FormatUSDWhole(result.MonthlyBlended)),
	}, "\n")

	fmt.Println(cli.RenderBox("Projection", content)) //nolint:forbidigo // User-facing output

	return nil
}
