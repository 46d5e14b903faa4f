package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-agency-site/internal/contact"
	"github.com/goliatone/go-agency-site/internal/estimate"
)

func newEstimatesCommand(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "estimates [id]",
		Short: "List logged estimates, or show one",
		Long:  "Reads the estimate log. Requires storage.enabled and estimate.persist.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, _, err := root.newModule(nil)
			if err != nil {
				return err
			}
			defer module.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("invalid estimate id %q: %w", args[0], err)
				}
				result, err := module.Estimates().Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if asJSON {
					return writeIndentedJSON(out, result)
				}
				fmt.Fprintf(out, "id:        %s\n", result.ID)
				fmt.Fprintf(out, "created:   %s\n", result.CreatedAt.Format(time.RFC3339))
				printEstimate(out, result)
				return nil
			}

			list, err := module.Estimates().List(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeIndentedJSON(out, list)
			}
			printEstimateTable(out, list)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newInboxCommand(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inbox [id]",
		Short: "List stored contact submissions, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, _, err := root.newModule(nil)
			if err != nil {
				return err
			}
			defer module.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("invalid submission id %q: %w", args[0], err)
				}
				record, err := module.Contact().Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if asJSON {
					return writeIndentedJSON(out, record)
				}
				printSubmission(out, record)
				return nil
			}

			list, err := module.Contact().List(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeIndentedJSON(out, list)
			}
			printInboxTable(out, list)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func writeIndentedJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printEstimateTable(w io.Writer, list []*estimate.Estimate) {
	if len(list) == 0 {
		fmt.Fprintln(w, "no estimates logged")
		return
	}
	table := newTable(w, "ID", "Created", "Project", "Scale", "Total")
	for _, e := range list {
		table.Append([]string{
			e.ID.String(),
			e.CreatedAt.Format(time.RFC3339),
			string(e.ProjectType),
			string(e.Scale),
			fmt.Sprintf("%.2f %s", e.Total, e.Currency),
		})
	}
	table.Render()
}

func printInboxTable(w io.Writer, list []*contact.Record) {
	if len(list) == 0 {
		fmt.Fprintln(w, "inbox is empty")
		return
	}
	table := newTable(w, "ID", "Created", "Name", "Email", "Lang")
	for _, r := range list {
		table.Append([]string{r.ID.String(), r.CreatedAt.Format(time.RFC3339), r.Name, r.Email, r.Lang})
	}
	table.Render()
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

func printSubmission(w io.Writer, r *contact.Record) {
	fmt.Fprintf(w, "id:        %s\n", r.ID)
	fmt.Fprintf(w, "created:   %s\n", r.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "from:      %s <%s>\n", r.Name, r.Email)
	for _, field := range []struct{ label, value string }{
		{"company:   ", r.Company},
		{"phone:     ", r.Phone},
		{"subject:   ", r.Subject},
	} {
		if field.value != "" {
			fmt.Fprintf(w, "%s%s\n", field.label, field.value)
		}
	}
	fmt.Fprintf(w, "lang:      %s\n\n", r.Lang)
	fmt.Fprintln(w, strings.TrimSpace(r.Message))
}
