package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-agency-site/internal/content"
)

func newRenderCommand(root *rootOptions) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:     "render <kind> <slug>",
		Short:   "Print the rendered HTML of one content item",
		Example: "  agency-site render blog launch --lang en",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := content.ParseKind(args[0])
			if err != nil {
				return err
			}

			module, cfg, err := root.newModule(nil)
			if err != nil {
				return err
			}
			defer module.Close()

			locale := strings.ToLower(strings.TrimSpace(lang))
			if locale == "" {
				locale = cfg.Content.DefaultLocale
			}

			item, err := module.Content().Get(cmd.Context(), kind, args[1], locale)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), item.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "locale (defaults to content.default_locale)")
	return cmd
}
