package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	site "github.com/goliatone/go-agency-site"
	"github.com/goliatone/go-agency-site/internal/estimate"
)

func newEstimateCommand(root *rootOptions) *cobra.Command {
	var (
		msg    site.EstimateCommand
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Compute a project estimate",
		Example: `  agency-site estimate --type web --scale advanced --feature web_feature2 --feature web_feature5
  agency-site estimate --type combined --scale custom --priority 3 --support standard --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, _, err := root.newModule(nil)
			if err != nil {
				return err
			}
			defer module.Close()

			var result *estimate.Estimate
			msg.OnComplete = func(e *estimate.Estimate) { result = e }
			if err := module.EstimateHandler().Execute(cmd.Context(), msg); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}
			printEstimate(out, result)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&msg.ProjectType, "type", "web", "project type (chatbot, automation, web, combined)")
	flags.StringVar(&msg.Scale, "scale", "basic", "project scale (basic, advanced, custom or small, medium, large)")
	flags.StringSliceVar(&msg.Features, "feature", nil, "feature id, repeatable")
	flags.IntVar(&msg.TimelinePriority, "priority", 1, "timeline priority (1 normal, 2 fast, 3 rush)")
	flags.StringVar(&msg.SupportPlan, "support", "none", "support plan (none, basic, standard, premium)")
	flags.BoolVar(&asJSON, "json", false, "print the estimate as JSON")
	return cmd
}

func printEstimate(w io.Writer, e *estimate.Estimate) {
	features := "-"
	if len(e.Features) > 0 {
		features = strings.Join(e.Features, ", ")
	}
	fmt.Fprintf(w, "project:   %s (%s)\n", e.ProjectType, e.Scale)
	fmt.Fprintf(w, "features:  %s\n", features)
	fmt.Fprintf(w, "base:      %.2f %s\n", e.BasePrice, e.Currency)
	fmt.Fprintf(w, "features:  %.2f %s\n", e.FeaturesCost, e.Currency)
	fmt.Fprintf(w, "rush:      x%.2f\n", e.RushMultiplier)
	fmt.Fprintf(w, "total:     %.2f %s\n", e.Total, e.Currency)
	fmt.Fprintf(w, "range:     %d - %d %s\n", e.PriceRange.Min, e.PriceRange.Max, e.Currency)
	fmt.Fprintf(w, "weeks:     %d - %d\n", e.Weeks.Min, e.Weeks.Max)
	if e.MonthlySupport > 0 {
		fmt.Fprintf(w, "support:   %s, %.2f %s/month\n", e.SupportPlan, e.MonthlySupport, e.Currency)
	}
}
