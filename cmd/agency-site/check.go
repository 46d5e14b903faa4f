package main

import (
	"fmt"

	"github.com/spf13/cobra"

	site "github.com/goliatone/go-agency-site"
)

func newCheckCommand(root *rootOptions) *cobra.Command {
	var kinds []string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Lint the content tree",
		Long: `Reports files with malformed front matter, a missing title, a slug that
is not normalized, or no counterpart in one of the configured locales.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, cfg, err := root.newModule(nil)
			if err != nil {
				return err
			}
			defer module.Close()

			var report *site.CheckReport
			err = module.CheckHandler().Execute(cmd.Context(), site.CheckContentCommand{
				Kinds:      kinds,
				Locales:    cfg.Content.NormalizedLocales(),
				OnComplete: func(r *site.CheckReport) { report = r },
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, issue := range report.Issues {
				fmt.Fprintln(out, issue.String())
			}
			fmt.Fprintf(out, "checked %d files, %d issues\n", report.Checked, len(report.Issues))
			if !report.OK() {
				return fmt.Errorf("content check found %d issues", len(report.Issues))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&kinds, "kind", nil, "content kind to check (services, case-studies, blog), repeatable")
	return cmd
}
