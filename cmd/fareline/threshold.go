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

func thresholdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "threshold",
		Short: "Check a ride offer against your rate floors",
		Long: `Check an incoming offer against your per-minute and per-mile floors.

Each floor produces its own minimum acceptable fare, rounded up to the
cent in your favor. The larger of the two is the binding minimum; an
offer that matches it exactly is still worth taking.`,
		RunE: runThreshold,
	}

	// Flags
	cmd.Flags().Float64P("minutes", "m", 0, "Estimated trip minutes")
	cmd.Flags().Float64P("miles", "d", 0, "Estimated trip miles")
	cmd.Flags().Float64P("offer", "o", 0, "Offer amount in dollars")
	cmd.Flags().Float64("per-minute", 0.60, "Per-minute floor in dollars")
	cmd.Flags().Float64("per-mile", 1.70, "Per-mile floor in dollars")
	cmd.Flags().Bool("json", false, "Print the result as JSON")

	// Bind to viper
	_ = viper.BindPFlag("threshold.minutes", cmd.Flags().Lookup("minutes"))
	_ = viper.BindPFlag("threshold.miles", cmd.Flags().Lookup("miles"))
	_ = viper.BindPFlag("threshold.offer", cmd.Flags().Lookup("offer"))
	_ = viper.BindPFlag(config.KeyPerMinuteFloor, cmd.Flags().Lookup("per-minute"))
	_ = viper.BindPFlag(config.KeyPerMileFloor, cmd.Flags().Lookup("per-mile"))
	_ = viper.BindPFlag("threshold.json", cmd.Flags().Lookup("json"))

	return cmd
}

func runThreshold(_ *cobra.Command, _ []string) error {
	in := model.ThresholdInput{
		Minutes:        viper.GetFloat64("threshold.minutes"),
		Miles:          viper.GetFloat64("threshold.miles"),
		Offer:          viper.GetFloat64("threshold.offer"),
		PerMinuteFloor: config.PerMinuteFloor(),
		PerMileFloor:   config.PerMileFloor(),
	}

	result := calc.Threshold(in)

	if viper.GetBool("threshold.json") {
		return printJSON(result)
	}

	fmt.Println(cli.FormatTitle("Offer Check")) //nolint:forbidigo // User-facing output
	fmt.Println()                               //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Check"),
		cli.HeaderStyle.Render("Minimum"),
		cli.HeaderStyle.Render("Verdict"))
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		strings.Repeat("-", 24),
		strings.Repeat("-", 8),
		strings.Repeat("-", 8))
	fmt.Fprintf(w, "Time (%s × %s)\t%s\t%s\n",
		cli.FormatMinutes(in.Minutes),
		cli.FormatRate(in.PerMinuteFloor, "min"),
		cli.FormatUSD(result.MinByTime),
		cli.FormatVerdict(result.TimeDecision))
	fmt.Fprintf(w, "Miles (%s × %s)\t%s\t%s\n",
		cli.FormatMiles(in.Miles),
		cli.FormatRate(in.PerMileFloor, "mi"),
		cli.FormatUSD(result.MinByMiles),
		cli.FormatVerdict(result.MilesDecision))
	fmt.Fprintf(w, "Combined (%s binds)\t%s\t%s\n",
		result.Binding,
		cli.FormatUSD(result.MinCombined),
		cli.FormatVerdict(result.CombinedDecision))
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	fmt.Println() //nolint:forbidigo // User-facing output
	summary := fmt.Sprintf("Offer %s vs minimum %s  %s",
		cli.FormatUSD(in.Offer),
		cli.FormatUSD(result.MinCombined),
		cli.FormatVerdict(result.CombinedDecision))
	fmt.Println(summary) //nolint:forbidigo // User-facing output

	return nil
}
